package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Projekt-Status.
const (
	ProjektStatusNeu           = "Neu"
	ProjektStatusInBearbeitung = "In Bearbeitung"
	ProjektStatusPausiert      = "Pausiert"
	ProjektStatusAbgeschlossen = "Abgeschlossen"
)

// Prioritäten (für Projekte und Aufgaben).
const (
	PrioNiedrig = "Niedrig"
	PrioMittel  = "Mittel"
	PrioHoch    = "Hoch"
)

// Projekt ist ein Bauprojekt. Nummer ist eindeutig.
// KategoriePfad und Feldwerte stammen aus dem Kategoriebaum mit dynamischen
// Zusatzfeldern (gleiche Logik wie bei der öffentlichen Anfrage).
type Projekt struct {
	ID            string
	Nummer        string
	Name          string
	Beschreibung  string
	Status        string
	Prioritaet    string
	Budget        decimal.Decimal
	Startdatum    *time.Time
	Enddatum      *time.Time
	Adresse       string
	KundeID       string
	KategoriePfad []string          // Kategorie-IDs von Wurzel zum Blatt
	Feldwerte     map[string]string // Zusatzfeld-Name -> Wert
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Etappe ist ein Projektabschnitt mit Abschluss-Flag.
type Etappe struct {
	ID            string
	ProjektID     string
	Titel         string
	Abgeschlossen bool
	Sortierung    int
	CreatedAt     time.Time
}

// Dokument referenziert eine hochgeladene Datei (URL vom externen Upload-Dienst).
type Dokument struct {
	ID        string
	ProjektID string
	Name      string
	URL       string
	CreatedAt time.Time
}
