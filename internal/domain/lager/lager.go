// Package lager enthält die reinen Regeln des Lagerkerns:
// Statusableitung und die Wirkung einer Aktion auf den Bestand.
// Keine Seiteneffekte; Persistenz liegt in application/lager.
package lager

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ep-bau/ep-system/internal/domain"
)

// Status eines Lagerartikels, abgeleitet aus Bestand und Mindestbestand.
const (
	StatusVerfuegbar  = "Verfügbar"
	StatusNiedrig     = "Niedrig"
	StatusAusverkauft = "Ausverkauft"
)

// Aktionen im Bewegungsprotokoll.
const (
	AktionEntnahme  = "Entnahme"  // Bestand -= Menge
	AktionRueckgabe = "Rückgabe"  // Bestand += Menge
	AktionEingang   = "Eingang"   // Bestand += Menge
	AktionKorrektur = "Korrektur" // Bestand += Delta (Delta darf negativ sein)
	AktionInventur  = "Inventur"  // Bestand = gezählter Wert; protokolliert |gezählt - vorher|
	AktionVerkauf   = "Verkauf"   // Bestand -= Menge (Kassa-Webhook)
)

// GueltigeAktion prüft, ob s eine bekannte Aktion ist.
func GueltigeAktion(s string) bool {
	switch s {
	case AktionEntnahme, AktionRueckgabe, AktionEingang, AktionKorrektur, AktionInventur, AktionVerkauf:
		return true
	}
	return false
}

// DeriveStatus leitet den Status aus Bestand und Mindestbestand ab.
// Invariante: Status == Ausverkauft gdw. Bestand <= 0;
// Status == Niedrig gdw. 0 < Bestand <= Mindestbestand (Mindestbestand > 0);
// sonst Verfügbar. Mindestbestand <= 0 bedeutet: kein Schwellwert, nur
// Ausverkauft kann greifen.
func DeriveStatus(bestand, mindestbestand decimal.Decimal) string {
	if bestand.LessThanOrEqual(decimal.Zero) {
		return StatusAusverkauft
	}
	if mindestbestand.GreaterThan(decimal.Zero) && bestand.LessThanOrEqual(mindestbestand) {
		return StatusNiedrig
	}
	return StatusVerfuegbar
}

// Apply wendet eine Aktion auf den Bestand an und liefert den neuen Bestand
// sowie die zu protokollierende Menge (immer positiv).
//
// Für Entnahme/Rückgabe/Eingang/Verkauf muss menge > 0 sein. Für Korrektur ist
// menge ein vorzeichenbehaftetes Delta ungleich null. Für Inventur ist menge
// der gezählte Absolutwert (>= 0); protokolliert wird |gezählt - vorher|.
// Der Bestand wird nicht geklemmt und kann negativ werden.
func Apply(bestand decimal.Decimal, aktion string, menge decimal.Decimal) (neu, logMenge decimal.Decimal, err error) {
	switch aktion {
	case AktionEntnahme, AktionVerkauf:
		if !menge.GreaterThan(decimal.Zero) {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%s: %w", aktion, domain.ErrInvalidInput)
		}
		return bestand.Sub(menge), menge, nil
	case AktionRueckgabe, AktionEingang:
		if !menge.GreaterThan(decimal.Zero) {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%s: %w", aktion, domain.ErrInvalidInput)
		}
		return bestand.Add(menge), menge, nil
	case AktionKorrektur:
		if menge.IsZero() {
			return decimal.Zero, decimal.Zero, fmt.Errorf("korrektur ohne delta: %w", domain.ErrInvalidInput)
		}
		return bestand.Add(menge), menge.Abs(), nil
	case AktionInventur:
		if menge.LessThan(decimal.Zero) {
			return decimal.Zero, decimal.Zero, fmt.Errorf("inventur mit negativem zählwert: %w", domain.ErrInvalidInput)
		}
		return menge, menge.Sub(bestand).Abs(), nil
	}
	return decimal.Zero, decimal.Zero, fmt.Errorf("unbekannte aktion %q: %w", aktion, domain.ErrInvalidInput)
}
