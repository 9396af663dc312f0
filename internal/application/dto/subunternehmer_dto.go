package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSubunternehmerRequest Body für POST /api/subunternehmer.
type CreateSubunternehmerRequest struct {
	Firma           string          `json:"firma"`
	Ansprechpartner string          `json:"ansprechpartner,omitempty"`
	Email           string          `json:"email,omitempty"`
	Telefon         string          `json:"telefon,omitempty"`
	Adresse         string          `json:"adresse,omitempty"`
	PLZ             string          `json:"plz,omitempty"`
	Stadt           string          `json:"stadt,omitempty"`
	Spezialisierung string          `json:"spezialisierung,omitempty"`
	Stundensatz     decimal.Decimal `json:"stundensatz,omitempty"`
	Status          string          `json:"status,omitempty"`
	Notizen         string          `json:"notizen,omitempty"`
}

// UpdateSubunternehmerRequest Body für PUT /api/subunternehmer/:id.
type UpdateSubunternehmerRequest struct {
	Firma           *string          `json:"firma,omitempty"`
	Ansprechpartner *string          `json:"ansprechpartner,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Telefon         *string          `json:"telefon,omitempty"`
	Adresse         *string          `json:"adresse,omitempty"`
	PLZ             *string          `json:"plz,omitempty"`
	Stadt           *string          `json:"stadt,omitempty"`
	Spezialisierung *string          `json:"spezialisierung,omitempty"`
	Stundensatz     *decimal.Decimal `json:"stundensatz,omitempty"`
	Status          *string          `json:"status,omitempty"`
	Notizen         *string          `json:"notizen,omitempty"`
}

// SubunternehmerResponse Antwortdarstellung eines Subunternehmers.
type SubunternehmerResponse struct {
	ID              string          `json:"id"`
	Firma           string          `json:"firma"`
	Ansprechpartner string          `json:"ansprechpartner,omitempty"`
	Email           string          `json:"email,omitempty"`
	Telefon         string          `json:"telefon,omitempty"`
	Adresse         string          `json:"adresse,omitempty"`
	PLZ             string          `json:"plz,omitempty"`
	Stadt           string          `json:"stadt,omitempty"`
	Spezialisierung string          `json:"spezialisierung,omitempty"`
	Stundensatz     decimal.Decimal `json:"stundensatz"`
	Status          string          `json:"status"`
	Notizen         string          `json:"notizen,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
