package entity

import "time"

// Feldtypen für dynamische Zusatzfelder.
const (
	FeldTypText     = "text"
	FeldTypNumber   = "number"
	FeldTypSelect   = "select"
	FeldTypTextarea = "textarea"
	FeldTypRadio    = "radio"
)

// Zusatzfeld beschreibt ein dynamisches Formularfeld einer Kategorie.
// Die Reihenfolge in der Liste ist signifikant.
type Zusatzfeld struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Typ      string   `json:"typ"` // text, number, select, textarea, radio
	Optionen []string `json:"optionen,omitempty"`
	Pflicht  bool     `json:"pflicht,omitempty"`
}

// Kategorie ist ein Knoten im Kategoriebaum (Kategorie → Unterkategorie → Unter-Unterkategorie).
// ParentID ist leer für Wurzelkategorien; die Tiefe ist im Datenmodell unbegrenzt.
type Kategorie struct {
	ID           string
	ParentID     string
	Name         string
	IconName     string
	Bild         string // URL aus dem externen Upload-Dienst
	Zusatzfelder []Zusatzfeld
	Sortierung   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
