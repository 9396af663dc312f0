package repository

import "github.com/ep-bau/ep-system/internal/domain/entity"

// BenutzerRepository definiert den Persistenz-Port für Benutzer (DIP).
type BenutzerRepository interface {
	Create(benutzer *entity.Benutzer) error
	GetByID(id string) (*entity.Benutzer, error)
	GetByEmail(email string) (*entity.Benutzer, error)
	GetByQRCode(qrCode string) (*entity.Benutzer, error)
	Update(benutzer *entity.Benutzer) error
	ListAll() ([]*entity.Benutzer, error)
	List(status string, limit, offset int) ([]*entity.Benutzer, error)
	Delete(id string) error
}
