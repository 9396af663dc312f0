package entity

import "time"

// Kunde ist ein Auftraggeber (Firma oder Privatperson).
type Kunde struct {
	ID        string
	Firma     string
	Vorname   string
	Nachname  string
	Email     string
	Telefon   string
	Adresse   string
	Notiz     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
