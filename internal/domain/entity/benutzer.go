package entity

import "time"

// Benutzer-Status.
const (
	BenutzerStatusAktiv   = "Aktiv"
	BenutzerStatusInaktiv = "Inaktiv"
)

// Benutzer ist ein Mitarbeiter mit Position und optionalem Vorgesetzten.
// QRCode dient der Anmeldung am Lager-Terminal.
type Benutzer struct {
	ID             string
	Vorname        string
	Nachname       string
	Email          string
	PasswortHash   string
	Position       string // authz.Position*
	VorgesetzterID string
	QRCode         string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// VollerName liefert "Vorname Nachname".
func (b *Benutzer) VollerName() string {
	if b.Vorname == "" {
		return b.Nachname
	}
	if b.Nachname == "" {
		return b.Vorname
	}
	return b.Vorname + " " + b.Nachname
}
