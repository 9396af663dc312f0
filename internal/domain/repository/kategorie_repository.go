package repository

import "github.com/ep-bau/ep-system/internal/domain/entity"

// KategorieRepository definiert den Persistenz-Port für den Kategoriebaum.
// Die Baumlogik (Kinder, Pfadauflösung, Zusatzfelder) liegt in domain/kategorie.
type KategorieRepository interface {
	Create(kategorie *entity.Kategorie) error
	GetByID(id string) (*entity.Kategorie, error)
	Update(kategorie *entity.Kategorie) error
	ListAll() ([]*entity.Kategorie, error)
	Delete(id string) error
}
