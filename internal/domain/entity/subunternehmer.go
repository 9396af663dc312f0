package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status eines Subunternehmers.
const (
	SubunternehmerStatusAktiv   = "Aktiv"
	SubunternehmerStatusInaktiv = "Inaktiv"
)

// Subunternehmer ist ein externer Nachunternehmer mit Gewerk und Stundensatz.
type Subunternehmer struct {
	ID              string
	Firma           string
	Ansprechpartner string
	Email           string
	Telefon         string
	Adresse         string
	PLZ             string
	Stadt           string
	Spezialisierung string
	Stundensatz     decimal.Decimal // 0 = nicht hinterlegt
	Status          string          // SubunternehmerStatusAktiv | SubunternehmerStatusInaktiv
	Notizen         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
