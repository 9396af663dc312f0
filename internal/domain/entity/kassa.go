package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kassa-Status.
const (
	KassaStatusVerbunden = "Verbunden"
	KassaStatusGetrennt  = "Getrennt"
)

// Kassa ist ein Point-of-Sale-Terminal, das über den Webhook Verkäufe meldet.
// Der APIKey authentifiziert den Webhook (Header x-api-key).
type Kassa struct {
	ID          string
	Name        string
	KassaNummer string
	APIKey      string
	Status      string
	LetzteSync  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// KassaSale protokolliert einen verarbeiteten Kassenverkauf.
type KassaSale struct {
	ID                   string
	KassaID              string
	KassaName            string // Snapshot
	WareID               string
	WareName             string // Snapshot
	Menge                decimal.Decimal
	Betrag               decimal.Decimal
	Datum                time.Time
	NachbestellungNoetig bool // neuer Bestand unter Mindestbestand
}
