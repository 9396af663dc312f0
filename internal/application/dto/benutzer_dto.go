package dto

import "time"

// LoginRequest Body für POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TerminalLoginRequest Body für POST /api/terminal/login (Anmeldung per QR-Code-Scan).
type TerminalLoginRequest struct {
	QRCode string `json:"qr_code"`
}

// LoginResponse Antwort auf eine erfolgreiche Anmeldung.
type LoginResponse struct {
	Token    string           `json:"token"`
	Benutzer BenutzerResponse `json:"benutzer"`
}

// CreateBenutzerRequest Body für POST /api/benutzer.
type CreateBenutzerRequest struct {
	Vorname        string `json:"vorname"`
	Nachname       string `json:"nachname"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Position       string `json:"position"`
	VorgesetzterID string `json:"vorgesetzter_id,omitempty"`
	QRCode         string `json:"qr_code,omitempty"`
}

// UpdateBenutzerRequest Body für PUT /api/benutzer/:id.
type UpdateBenutzerRequest struct {
	Vorname        *string `json:"vorname,omitempty"`
	Nachname       *string `json:"nachname,omitempty"`
	Email          *string `json:"email,omitempty"`
	Password       *string `json:"password,omitempty"`
	Position       *string `json:"position,omitempty"`
	VorgesetzterID *string `json:"vorgesetzter_id,omitempty"`
	QRCode         *string `json:"qr_code,omitempty"`
	Status         *string `json:"status,omitempty"`
}

// BenutzerResponse Antwortdarstellung eines Benutzers (ohne Passworthash).
type BenutzerResponse struct {
	ID             string    `json:"id"`
	Vorname        string    `json:"vorname"`
	Nachname       string    `json:"nachname"`
	Email          string    `json:"email"`
	Position       string    `json:"position"`
	VorgesetzterID string    `json:"vorgesetzter_id,omitempty"`
	QRCode         string    `json:"qr_code,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
