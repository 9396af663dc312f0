package repository

import "github.com/ep-bau/ep-system/internal/domain/entity"

// ProjektRepository definiert den Persistenz-Port für Projekte.
type ProjektRepository interface {
	Create(projekt *entity.Projekt) error
	GetByID(id string) (*entity.Projekt, error)
	GetByNummer(nummer string) (*entity.Projekt, error)
	Update(projekt *entity.Projekt) error
	List(status string, limit, offset int) ([]*entity.Projekt, error)
	Delete(id string) error
}

// EtappeRepository definiert den Persistenz-Port für Projektetappen.
type EtappeRepository interface {
	Create(etappe *entity.Etappe) error
	Update(etappe *entity.Etappe) error
	ListByProjekt(projektID string) ([]*entity.Etappe, error)
	Delete(id string) error
}

// DokumentRepository definiert den Persistenz-Port für Projektdokumente.
// Die Dateien selbst liegen beim externen Upload-Dienst; hier nur Referenzen.
type DokumentRepository interface {
	Create(dokument *entity.Dokument) error
	ListByProjekt(projektID string) ([]*entity.Dokument, error)
	CountByProjekt(projektID string) (int, error)
	Delete(id string) error
}
