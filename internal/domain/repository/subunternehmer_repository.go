package repository

import "github.com/ep-bau/ep-system/internal/domain/entity"

// SubunternehmerRepository definiert den Persistenz-Port für Subunternehmer.
type SubunternehmerRepository interface {
	Create(s *entity.Subunternehmer) error
	GetByID(id string) (*entity.Subunternehmer, error)
	Update(s *entity.Subunternehmer) error
	List(status string, limit, offset int) ([]*entity.Subunternehmer, error)
	Delete(id string) error
}
