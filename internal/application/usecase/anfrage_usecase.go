package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	domkategorie "github.com/ep-bau/ep-system/internal/domain/kategorie"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// AnfrageUseCase verarbeitet Kundenanfragen aus dem öffentlichen Formular
// und deren Überführung in Projekte. Der Kategoriepfad wird gegen den Baum
// aufgelöst und die Pflicht-Zusatzfelder werden serverseitig geprüft.
type AnfrageUseCase struct {
	repo          repository.AnfrageRepository
	kategorieRepo repository.KategorieRepository
	projektRepo   repository.ProjektRepository
}

func NewAnfrageUseCase(
	repo repository.AnfrageRepository,
	kategorieRepo repository.KategorieRepository,
	projektRepo repository.ProjektRepository,
) *AnfrageUseCase {
	return &AnfrageUseCase{repo: repo, kategorieRepo: kategorieRepo, projektRepo: projektRepo}
}

// Create nimmt eine öffentliche Anfrage entgegen. Name, E-Mail und ein
// gültiger Kategoriepfad sind Pflicht; fehlende Pflichtfelder des Pfades
// werden mit ErrPflichtfeldFehlt abgewiesen.
func (uc *AnfrageUseCase) Create(in dto.CreateAnfrageRequest) (*dto.AnfrageResponse, error) {
	if in.Name == "" || in.Email == "" || len(in.KategoriePfad) == 0 {
		return nil, domain.ErrInvalidInput
	}
	alle, err := uc.kategorieRepo.ListAll()
	if err != nil {
		return nil, err
	}
	pfad, err := domkategorie.ResolvePath(alle, in.KategoriePfad)
	if err != nil {
		return nil, err
	}
	felder := domkategorie.ApplicableFields(pfad)
	if err := domkategorie.ValidateRequired(felder, in.Feldwerte); err != nil {
		return nil, err
	}
	now := time.Now()
	a := &entity.Anfrage{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		Telefon:       in.Telefon,
		Adresse:       in.Adresse,
		Nachricht:     in.Nachricht,
		KategoriePfad: in.KategoriePfad,
		Feldwerte:     in.Feldwerte,
		Status:        entity.AnfrageStatusNeu,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	resp := toAnfrageResponse(a)
	return &resp, nil
}

// GetByID liefert eine Anfrage; unbekannte IDs ergeben ErrNotFound.
func (uc *AnfrageUseCase) GetByID(id string) (*dto.AnfrageResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	resp := toAnfrageResponse(a)
	return &resp, nil
}

// List liefert Anfragen, optional nach Status gefiltert.
func (uc *AnfrageUseCase) List(status string, limit, offset int) ([]dto.AnfrageResponse, error) {
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AnfrageResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAnfrageResponse(a))
	}
	return out, nil
}

// UpdateStatus pflegt den Bearbeitungsstatus einer Anfrage.
func (uc *AnfrageUseCase) UpdateStatus(id string, in dto.UpdateAnfrageRequest) (*dto.AnfrageResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	resp := toAnfrageResponse(a)
	return &resp, nil
}

// Convert überführt eine Anfrage in ein Projekt. Kategoriepfad und Feldwerte
// werden übernommen, die Anfrage wird auf Angenommen gesetzt und mit dem
// Projekt verknüpft. Eine bereits überführte Anfrage wird abgewiesen.
func (uc *AnfrageUseCase) Convert(id, projektNummer string) (*dto.ProjektResponse, error) {
	if projektNummer == "" {
		return nil, domain.ErrInvalidInput
	}
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.ProjektID != "" {
		return nil, domain.ErrConflict
	}
	existing, err := uc.projektRepo.GetByNummer(projektNummer)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProjektNrExists
	}
	now := time.Now()
	p := &entity.Projekt{
		ID:            uuid.New().String(),
		Nummer:        projektNummer,
		Name:          a.Name,
		Beschreibung:  a.Nachricht,
		Status:        entity.ProjektStatusNeu,
		Prioritaet:    entity.PrioMittel,
		Adresse:       a.Adresse,
		KategoriePfad: a.KategoriePfad,
		Feldwerte:     a.Feldwerte,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.projektRepo.Create(p); err != nil {
		return nil, err
	}
	a.Status = entity.AnfrageStatusAngenommen
	a.ProjektID = p.ID
	a.UpdatedAt = now
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	resp := toProjektResponse(p)
	return &resp, nil
}

// Delete entfernt eine Anfrage.
func (uc *AnfrageUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAnfrageResponse(a *entity.Anfrage) dto.AnfrageResponse {
	return dto.AnfrageResponse{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Telefon:       a.Telefon,
		Adresse:       a.Adresse,
		Nachricht:     a.Nachricht,
		KategoriePfad: a.KategoriePfad,
		Feldwerte:     a.Feldwerte,
		Status:        a.Status,
		ProjektID:     a.ProjektID,
		CreatedAt:     a.CreatedAt,
	}
}
