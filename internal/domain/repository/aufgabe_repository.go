package repository

import "github.com/ep-bau/ep-system/internal/domain/entity"

// AufgabeRepository definiert den Persistenz-Port für Aufgaben.
type AufgabeRepository interface {
	Create(aufgabe *entity.Aufgabe) error
	GetByID(id string) (*entity.Aufgabe, error)
	Update(aufgabe *entity.Aufgabe) error
	List(status string, limit, offset int) ([]*entity.Aufgabe, error)
	Delete(id string) error
}
