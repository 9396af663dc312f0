package entity

import "time"

// Ticket-Status.
const (
	TicketStatusOffen       = "Offen"
	TicketStatusInArbeit    = "In Arbeit"
	TicketStatusGeschlossen = "Geschlossen"
)

// Ticket ist eine Support-Anfrage.
type Ticket struct {
	ID           string
	Betreff      string
	Beschreibung string
	ErstelltVon  string // BenutzerID oder leer (öffentliches Formular)
	Email        string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
