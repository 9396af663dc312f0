package dto

import "github.com/ep-bau/ep-system/internal/domain/entity"

// CreateKategorieRequest Body für POST /api/kategorien.
type CreateKategorieRequest struct {
	ParentID     string              `json:"parent_id,omitempty"`
	Name         string              `json:"name"`
	IconName     string              `json:"icon_name,omitempty"`
	Bild         string              `json:"bild,omitempty"`
	Zusatzfelder []entity.Zusatzfeld `json:"zusatzfelder,omitempty"`
	Sortierung   int                 `json:"sortierung,omitempty"`
}

// UpdateKategorieRequest Body für PUT /api/kategorien/:id.
type UpdateKategorieRequest struct {
	Name         *string              `json:"name,omitempty"`
	IconName     *string              `json:"icon_name,omitempty"`
	Bild         *string              `json:"bild,omitempty"`
	Zusatzfelder *[]entity.Zusatzfeld `json:"zusatzfelder,omitempty"`
	Sortierung   *int                 `json:"sortierung,omitempty"`
}

// KategorieResponse Antwortdarstellung einer Kategorie.
type KategorieResponse struct {
	ID           string              `json:"id"`
	ParentID     string              `json:"parent_id,omitempty"`
	Name         string              `json:"name"`
	IconName     string              `json:"icon_name,omitempty"`
	Bild         string              `json:"bild,omitempty"`
	Zusatzfelder []entity.Zusatzfeld `json:"zusatzfelder,omitempty"`
	Sortierung   int                 `json:"sortierung,omitempty"`
}

// FelderResponse Antwort auf GET /api/kategorien/felder?pfad=a,b,c.
type FelderResponse struct {
	Felder []entity.Zusatzfeld `json:"felder"`
}
