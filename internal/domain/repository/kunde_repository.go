package repository

import "github.com/ep-bau/ep-system/internal/domain/entity"

// KundeRepository definiert den Persistenz-Port für Kunden.
type KundeRepository interface {
	Create(kunde *entity.Kunde) error
	GetByID(id string) (*entity.Kunde, error)
	Update(kunde *entity.Kunde) error
	List(limit, offset int) ([]*entity.Kunde, error)
	Delete(id string) error
}
