package dto

import "time"

// CreateAnfrageRequest Body des öffentlichen Anfrageformulars (ohne Auth).
type CreateAnfrageRequest struct {
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Telefon       string            `json:"telefon,omitempty"`
	Adresse       string            `json:"adresse,omitempty"`
	Nachricht     string            `json:"nachricht,omitempty"`
	KategoriePfad []string          `json:"kategorie_pfad"`
	Feldwerte     map[string]string `json:"feldwerte,omitempty"`
}

// UpdateAnfrageRequest Body für PUT /api/anfragen/:id (nur Statuspflege).
type UpdateAnfrageRequest struct {
	Status *string `json:"status,omitempty"`
}

// AnfrageResponse Antwortdarstellung einer Anfrage.
type AnfrageResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Telefon       string            `json:"telefon,omitempty"`
	Adresse       string            `json:"adresse,omitempty"`
	Nachricht     string            `json:"nachricht,omitempty"`
	KategoriePfad []string          `json:"kategorie_pfad,omitempty"`
	Feldwerte     map[string]string `json:"feldwerte,omitempty"`
	Status        string            `json:"status"`
	ProjektID     string            `json:"projekt_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
