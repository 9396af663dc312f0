package repository

import "github.com/ep-bau/ep-system/internal/domain/entity"

// AnfrageRepository definiert den Persistenz-Port für Kundenanfragen.
type AnfrageRepository interface {
	Create(anfrage *entity.Anfrage) error
	GetByID(id string) (*entity.Anfrage, error)
	Update(anfrage *entity.Anfrage) error
	List(status string, limit, offset int) ([]*entity.Anfrage, error)
	Delete(id string) error
}
