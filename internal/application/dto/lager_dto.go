package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWareRequest Body für POST /api/waren.
type CreateWareRequest struct {
	Name           string          `json:"name"`
	Beschreibung   string          `json:"beschreibung,omitempty"`
	Barcode        string          `json:"barcode,omitempty"`
	KategorieID    string          `json:"kategorie_id,omitempty"`
	Einheit        string          `json:"einheit"`
	Einkaufspreis  decimal.Decimal `json:"einkaufspreis"`
	Verkaufspreis  decimal.Decimal `json:"verkaufspreis"`
	Bestand        decimal.Decimal `json:"bestand"`
	Mindestbestand decimal.Decimal `json:"mindestbestand"`
	Lagerort       string          `json:"lagerort,omitempty"`
	Bild           string          `json:"bild,omitempty"`
}

// UpdateWareRequest Body für PUT /api/waren/:id. Bestand und Status sind hier
// bewusst nicht enthalten; Bestandsänderungen laufen nur über Bewegungen.
type UpdateWareRequest struct {
	Name           *string          `json:"name,omitempty"`
	Beschreibung   *string          `json:"beschreibung,omitempty"`
	Barcode        *string          `json:"barcode,omitempty"`
	KategorieID    *string          `json:"kategorie_id,omitempty"`
	Einheit        *string          `json:"einheit,omitempty"`
	Einkaufspreis  *decimal.Decimal `json:"einkaufspreis,omitempty"`
	Verkaufspreis  *decimal.Decimal `json:"verkaufspreis,omitempty"`
	Mindestbestand *decimal.Decimal `json:"mindestbestand,omitempty"`
	Lagerort       *string          `json:"lagerort,omitempty"`
	Bild           *string          `json:"bild,omitempty"`
}

// WareResponse Antwortdarstellung einer Ware.
type WareResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Beschreibung   string          `json:"beschreibung,omitempty"`
	Barcode        string          `json:"barcode,omitempty"`
	KategorieID    string          `json:"kategorie_id,omitempty"`
	Einheit        string          `json:"einheit"`
	Einkaufspreis  decimal.Decimal `json:"einkaufspreis"`
	Verkaufspreis  decimal.Decimal `json:"verkaufspreis"`
	Bestand        decimal.Decimal `json:"bestand"`
	Mindestbestand decimal.Decimal `json:"mindestbestand"`
	Lagerort       string          `json:"lagerort,omitempty"`
	Status         string          `json:"status"`
	Bild           string          `json:"bild,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// WareListResponse Listenantwort.
type WareListResponse struct {
	Items []WareResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// RecordMovementRequest Body für POST /api/lager/bewegungen (Terminal-Workflow).
// Menge: > 0 für Entnahme/Rückgabe/Eingang; vorzeichenbehaftetes Delta bei
// Korrektur; gezählter Absolutwert bei Inventur.
type RecordMovementRequest struct {
	WareID    string          `json:"ware_id"`
	Aktion    string          `json:"aktion"`
	Menge     decimal.Decimal `json:"menge"`
	ProjektID string          `json:"projekt_id,omitempty"`
	Notiz     string          `json:"notiz,omitempty"`
}

// WarenLogResponse Antwortdarstellung eines Protokolleintrags.
type WarenLogResponse struct {
	ID            string          `json:"id"`
	WareID        string          `json:"ware_id"`
	WareName      string          `json:"ware_name"`
	BenutzerID    string          `json:"benutzer_id"`
	BenutzerName  string          `json:"benutzer_name"`
	ProjektID     string          `json:"projekt_id,omitempty"`
	ProjektNummer string          `json:"projekt_nummer,omitempty"`
	Aktion        string          `json:"aktion"`
	Menge         decimal.Decimal `json:"menge"`
	Notiz         string          `json:"notiz,omitempty"`
	Datum         time.Time       `json:"datum"`
}

// MovementResponse Antwort auf eine gebuchte Bewegung: aktualisierte Ware plus Protokolleintrag.
type MovementResponse struct {
	Ware WareResponse     `json:"ware"`
	Log  WarenLogResponse `json:"log"`
}
