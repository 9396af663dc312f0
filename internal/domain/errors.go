package domain

import "errors"

// Domänenfehler (ohne externe Abhängigkeiten).
var (
	ErrNotFound          = errors.New("ressource nicht gefunden")
	ErrUserNotFound      = errors.New("benutzer nicht gefunden")
	ErrEmailExists       = errors.New("e-mail bereits registriert")
	ErrBarcodeExists     = errors.New("barcode bereits vergeben")
	ErrProjektNrExists   = errors.New("projektnummer bereits vergeben")
	ErrInvalidInput      = errors.New("ungültige eingabe")
	ErrDuplicate         = errors.New("ressource bereits vorhanden")
	ErrUnauthorized      = errors.New("nicht angemeldet")
	ErrForbidden         = errors.New("zugriff verweigert")
	ErrConflict          = errors.New("konflikt mit aktuellem zustand")
	ErrPflichtfeldFehlt  = errors.New("pflichtfeld nicht ausgefüllt")
	ErrInvalidAPIKey     = errors.New("ungültiger api-schlüssel")
)
