package entity

import "time"

// Anfrage-Status.
const (
	AnfrageStatusNeu        = "Neu"
	AnfrageStatusInPruefung = "In Prüfung"
	AnfrageStatusAngenommen = "Angenommen"
	AnfrageStatusAbgelehnt  = "Abgelehnt"
)

// Anfrage ist eine Kundenanfrage aus dem öffentlichen Formular.
// Sie geht einem Projekt voraus und kann in eines überführt werden.
type Anfrage struct {
	ID            string
	Name          string
	Email         string
	Telefon       string
	Adresse       string
	Nachricht     string
	KategoriePfad []string
	Feldwerte     map[string]string
	Status        string
	ProjektID     string // gesetzt nach Überführung in ein Projekt
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
