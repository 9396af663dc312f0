package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Einheiten für Lagerartikel.
const (
	EinheitStueck       = "Stk"
	EinheitKilogramm    = "kg"
	EinheitMeter        = "m"
	EinheitLiter        = "l"
	EinheitQuadratmeter = "m²"
	EinheitKubikmeter   = "m³"
	EinheitSet          = "Set"
)

// Ware ist ein Lagerartikel mit geführtem Bestand.
// Status wird ausschließlich aus Bestand und Mindestbestand abgeleitet
// (lager.DeriveStatus) und nie unabhängig gesetzt.
type Ware struct {
	ID             string
	Name           string
	Beschreibung   string
	Barcode        string // eindeutig über alle Waren
	KategorieID    string
	Einheit        string
	Einkaufspreis  decimal.Decimal
	Verkaufspreis  decimal.Decimal
	Bestand        decimal.Decimal
	Mindestbestand decimal.Decimal // <= 0 bedeutet: kein Schwellwert gesetzt
	Lagerort       string
	Status         string // lager.StatusVerfuegbar | StatusNiedrig | StatusAusverkauft
	Bild           string // URL aus dem externen Upload-Dienst
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
