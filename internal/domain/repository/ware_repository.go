package repository

import "github.com/ep-bau/ep-system/internal/domain/entity"

// WareRepository definiert den Persistenz-Port für Waren (DIP).
type WareRepository interface {
	Create(ware *entity.Ware) error
	GetByID(id string) (*entity.Ware, error)
	GetByBarcode(barcode string) (*entity.Ware, error)
	Update(ware *entity.Ware) error
	List(limit, offset int) ([]*entity.Ware, error)
	ListByKategorie(kategorieID string, limit, offset int) ([]*entity.Ware, error)
	Delete(id string) error
	// GetForUpdate sperrt die Zeile für die Dauer der Transaktion (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Ware, error)
}
