package entity

import "time"

// Aufgaben-Status.
const (
	AufgabeStatusOffen        = "Offen"
	AufgabeStatusInArbeit     = "In Arbeit"
	AufgabeStatusErledigt     = "Erledigt"
)

// Aufgabe ist eine interne Aufgabe, optional einem Benutzer und Projekt zugewiesen.
// Nicht zugewiesene Aufgaben ("Für alle") sind für jeden sichtbar.
type Aufgabe struct {
	ID           string
	Titel        string
	Beschreibung string
	ZugewiesenAn string // BenutzerID, leer = für alle
	ProjektID    string
	Prioritaet   string
	Status       string
	FaelligAm    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
