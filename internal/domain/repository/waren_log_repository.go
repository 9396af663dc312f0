package repository

import (
	"time"

	"github.com/ep-bau/ep-system/internal/domain/entity"
)

// WarenLogRepository definiert den Persistenz-Port für das Bewegungsprotokoll.
// Einträge werden nur angefügt, nie geändert oder gelöscht.
type WarenLogRepository interface {
	Create(eintrag *entity.WarenLog) error
	GetByID(id string) (*entity.WarenLog, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.WarenLog, error)
	ListByWare(wareID string, from, to *time.Time, limit, offset int) ([]*entity.WarenLog, error)
	ListByBenutzer(benutzerID string, from, to *time.Time, limit, offset int) ([]*entity.WarenLog, error)
}
