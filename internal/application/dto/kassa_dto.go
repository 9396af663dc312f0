package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// KassaWebhookRequest Body des POS-Webhooks (Header x-api-key identifiziert die Kassa).
type KassaWebhookRequest struct {
	WareID string           `json:"ware_id"`
	Menge  decimal.Decimal  `json:"menge"`
	Betrag *decimal.Decimal `json:"betrag,omitempty"` // leer = Menge * Verkaufspreis
}

// KassaWebhookResponse Antwort des Webhooks.
type KassaWebhookResponse struct {
	Success              bool            `json:"success"`
	Message              string          `json:"message"`
	NeuerBestand         decimal.Decimal `json:"neuer_bestand"`
	NachbestellungNoetig bool            `json:"nachbestellung_noetig"`
	SaleID               string          `json:"sale_id"`
}

// CreateKassaRequest Body für POST /api/kassen.
type CreateKassaRequest struct {
	Name        string `json:"name"`
	KassaNummer string `json:"kassa_nummer"`
}

// KassaResponse Antwortdarstellung eines Kassenterminals.
// APIKey wird nur direkt nach dem Anlegen mitgeliefert.
type KassaResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	KassaNummer string    `json:"kassa_nummer"`
	APIKey      string    `json:"api_key,omitempty"`
	Status      string    `json:"status"`
	LetzteSync  time.Time `json:"letzte_sync,omitempty"`
}

// KassaSaleResponse Antwortdarstellung eines Kassenverkaufs.
type KassaSaleResponse struct {
	ID                   string          `json:"id"`
	KassaID              string          `json:"kassa_id"`
	KassaName            string          `json:"kassa_name"`
	WareID               string          `json:"ware_id"`
	WareName             string          `json:"ware_name"`
	Menge                decimal.Decimal `json:"menge"`
	Betrag               decimal.Decimal `json:"betrag"`
	Datum                time.Time       `json:"datum"`
	NachbestellungNoetig bool            `json:"nachbestellung_noetig"`
}
