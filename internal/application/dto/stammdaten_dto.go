package dto

import "time"

// CreateKundeRequest Body für POST /api/kunden.
type CreateKundeRequest struct {
	Firma    string `json:"firma"`
	Vorname  string `json:"vorname,omitempty"`
	Nachname string `json:"nachname,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefon  string `json:"telefon,omitempty"`
	Adresse  string `json:"adresse,omitempty"`
	Notiz    string `json:"notiz,omitempty"`
}

// UpdateKundeRequest Body für PUT /api/kunden/:id.
type UpdateKundeRequest struct {
	Firma    *string `json:"firma,omitempty"`
	Vorname  *string `json:"vorname,omitempty"`
	Nachname *string `json:"nachname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Telefon  *string `json:"telefon,omitempty"`
	Adresse  *string `json:"adresse,omitempty"`
	Notiz    *string `json:"notiz,omitempty"`
}

// KundeResponse Antwortdarstellung eines Kunden.
type KundeResponse struct {
	ID        string    `json:"id"`
	Firma     string    `json:"firma"`
	Vorname   string    `json:"vorname,omitempty"`
	Nachname  string    `json:"nachname,omitempty"`
	Email     string    `json:"email,omitempty"`
	Telefon   string    `json:"telefon,omitempty"`
	Adresse   string    `json:"adresse,omitempty"`
	Notiz     string    `json:"notiz,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateAufgabeRequest Body für POST /api/aufgaben.
type CreateAufgabeRequest struct {
	Titel        string     `json:"titel"`
	Beschreibung string     `json:"beschreibung,omitempty"`
	ZugewiesenAn string     `json:"zugewiesen_an,omitempty"`
	ProjektID    string     `json:"projekt_id,omitempty"`
	Prioritaet   string     `json:"prioritaet,omitempty"`
	FaelligAm    *time.Time `json:"faellig_am,omitempty"`
}

// UpdateAufgabeRequest Body für PUT /api/aufgaben/:id.
type UpdateAufgabeRequest struct {
	Titel        *string    `json:"titel,omitempty"`
	Beschreibung *string    `json:"beschreibung,omitempty"`
	ZugewiesenAn *string    `json:"zugewiesen_an,omitempty"`
	ProjektID    *string    `json:"projekt_id,omitempty"`
	Prioritaet   *string    `json:"prioritaet,omitempty"`
	Status       *string    `json:"status,omitempty"`
	FaelligAm    *time.Time `json:"faellig_am,omitempty"`
}

// AufgabeResponse Antwortdarstellung einer Aufgabe.
type AufgabeResponse struct {
	ID           string     `json:"id"`
	Titel        string     `json:"titel"`
	Beschreibung string     `json:"beschreibung,omitempty"`
	ZugewiesenAn string     `json:"zugewiesen_an,omitempty"`
	ProjektID    string     `json:"projekt_id,omitempty"`
	Prioritaet   string     `json:"prioritaet"`
	Status       string     `json:"status"`
	FaelligAm    *time.Time `json:"faellig_am,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CreateTicketRequest Body für POST /api/support (auch öffentlich nutzbar).
type CreateTicketRequest struct {
	Betreff      string `json:"betreff"`
	Beschreibung string `json:"beschreibung"`
	Email        string `json:"email,omitempty"`
}

// UpdateTicketRequest Body für PUT /api/support/:id.
type UpdateTicketRequest struct {
	Status *string `json:"status,omitempty"`
}

// TicketResponse Antwortdarstellung eines Tickets.
type TicketResponse struct {
	ID           string    `json:"id"`
	Betreff      string    `json:"betreff"`
	Beschreibung string    `json:"beschreibung,omitempty"`
	ErstelltVon  string    `json:"erstellt_von,omitempty"`
	Email        string    `json:"email,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
