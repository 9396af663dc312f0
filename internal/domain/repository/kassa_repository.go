package repository

import (
	"time"

	"github.com/ep-bau/ep-system/internal/domain/entity"
)

// KassaRepository definiert den Persistenz-Port für Kassenterminals.
type KassaRepository interface {
	Create(kassa *entity.Kassa) error
	GetByID(id string) (*entity.Kassa, error)
	GetByAPIKey(apiKey string) (*entity.Kassa, error)
	Update(kassa *entity.Kassa) error
	UpdateSync(id, status string, sync time.Time) error
	List(limit, offset int) ([]*entity.Kassa, error)
	Delete(id string) error
}

// KassaSaleRepository definiert den Persistenz-Port für Kassenverkäufe.
type KassaSaleRepository interface {
	Create(sale *entity.KassaSale) error
	ListByKassa(kassaID string, from, to *time.Time, limit, offset int) ([]*entity.KassaSale, error)
}
