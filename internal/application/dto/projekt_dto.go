package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjektRequest Body für POST /api/projekte.
type CreateProjektRequest struct {
	Nummer        string            `json:"nummer"`
	Name          string            `json:"name"`
	Beschreibung  string            `json:"beschreibung,omitempty"`
	Status        string            `json:"status,omitempty"`
	Prioritaet    string            `json:"prioritaet,omitempty"`
	Budget        decimal.Decimal   `json:"budget,omitempty"`
	Startdatum    *time.Time        `json:"startdatum,omitempty"`
	Enddatum      *time.Time        `json:"enddatum,omitempty"`
	Adresse       string            `json:"adresse,omitempty"`
	KundeID       string            `json:"kunde_id,omitempty"`
	KategoriePfad []string          `json:"kategorie_pfad,omitempty"`
	Feldwerte     map[string]string `json:"feldwerte,omitempty"`
}

// UpdateProjektRequest Body für PUT /api/projekte/:id.
type UpdateProjektRequest struct {
	Name          *string            `json:"name,omitempty"`
	Beschreibung  *string            `json:"beschreibung,omitempty"`
	Status        *string            `json:"status,omitempty"`
	Prioritaet    *string            `json:"prioritaet,omitempty"`
	Budget        *decimal.Decimal   `json:"budget,omitempty"`
	Startdatum    *time.Time         `json:"startdatum,omitempty"`
	Enddatum      *time.Time         `json:"enddatum,omitempty"`
	Adresse       *string            `json:"adresse,omitempty"`
	KundeID       *string            `json:"kunde_id,omitempty"`
	KategoriePfad *[]string          `json:"kategorie_pfad,omitempty"`
	Feldwerte     *map[string]string `json:"feldwerte,omitempty"`
}

// ProjektResponse Antwortdarstellung eines Projekts.
type ProjektResponse struct {
	ID            string            `json:"id"`
	Nummer        string            `json:"nummer"`
	Name          string            `json:"name"`
	Beschreibung  string            `json:"beschreibung,omitempty"`
	Status        string            `json:"status"`
	Prioritaet    string            `json:"prioritaet"`
	Budget        decimal.Decimal   `json:"budget"`
	Startdatum    *time.Time        `json:"startdatum,omitempty"`
	Enddatum      *time.Time        `json:"enddatum,omitempty"`
	Adresse       string            `json:"adresse,omitempty"`
	KundeID       string            `json:"kunde_id,omitempty"`
	KategoriePfad []string          `json:"kategorie_pfad,omitempty"`
	Feldwerte     map[string]string `json:"feldwerte,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// CreateEtappeRequest Body für POST /api/projekte/:id/etappen.
type CreateEtappeRequest struct {
	Titel      string `json:"titel"`
	Sortierung int    `json:"sortierung,omitempty"`
}

// UpdateEtappeRequest Body für PUT /api/etappen/:id.
type UpdateEtappeRequest struct {
	Titel         *string `json:"titel,omitempty"`
	Abgeschlossen *bool   `json:"abgeschlossen,omitempty"`
	Sortierung    *int    `json:"sortierung,omitempty"`
}

// EtappeResponse Antwortdarstellung einer Etappe.
type EtappeResponse struct {
	ID            string `json:"id"`
	ProjektID     string `json:"projekt_id"`
	Titel         string `json:"titel"`
	Abgeschlossen bool   `json:"abgeschlossen"`
	Sortierung    int    `json:"sortierung"`
}

// CreateDokumentRequest Body für POST /api/projekte/:id/dokumente.
// URL stammt aus dem externen Upload-Dienst.
type CreateDokumentRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DokumentResponse Antwortdarstellung eines Dokuments.
type DokumentResponse struct {
	ID        string    `json:"id"`
	ProjektID string    `json:"projekt_id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
