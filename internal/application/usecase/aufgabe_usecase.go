package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// AufgabeUseCase verwaltet Aufgaben. Die Sichtbarkeit folgt der
// Vorgesetztenhierarchie: jeder sieht die eigenen Aufgaben und die seiner
// transitiv Unterstellten; nicht zugewiesene Aufgaben sieht jeder.
type AufgabeUseCase struct {
	repo      repository.AufgabeRepository
	hierarchy *HierarchyCache
}

func NewAufgabeUseCase(repo repository.AufgabeRepository, hierarchy *HierarchyCache) *AufgabeUseCase {
	return &AufgabeUseCase{repo: repo, hierarchy: hierarchy}
}

// Create legt eine Aufgabe an. Leeres ZugewiesenAn bedeutet "für alle".
func (uc *AufgabeUseCase) Create(in dto.CreateAufgabeRequest) (*dto.AufgabeResponse, error) {
	if in.Titel == "" {
		return nil, domain.ErrInvalidInput
	}
	prio := in.Prioritaet
	if prio == "" {
		prio = entity.PrioMittel
	}
	now := time.Now()
	a := &entity.Aufgabe{
		ID:           uuid.New().String(),
		Titel:        in.Titel,
		Beschreibung: in.Beschreibung,
		ZugewiesenAn: in.ZugewiesenAn,
		ProjektID:    in.ProjektID,
		Prioritaet:   prio,
		Status:       entity.AufgabeStatusOffen,
		FaelligAm:    in.FaelligAm,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	resp := toAufgabeResponse(a)
	return &resp, nil
}

// GetByID liefert eine Aufgabe, sofern der anfragende Benutzer sie sehen darf.
func (uc *AufgabeUseCase) GetByID(userID, id string) (*dto.AufgabeResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	h, err := uc.hierarchy.Get()
	if err != nil {
		return nil, err
	}
	if !h.CanSeeAufgabe(userID, a) {
		return nil, domain.ErrForbidden
	}
	resp := toAufgabeResponse(a)
	return &resp, nil
}

// List liefert die für userID sichtbaren Aufgaben, optional nach Status gefiltert.
func (uc *AufgabeUseCase) List(userID, status string, limit, offset int) ([]dto.AufgabeResponse, error) {
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	h, err := uc.hierarchy.Get()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AufgabeResponse, 0, len(list))
	for _, a := range list {
		if h.CanSeeAufgabe(userID, a) {
			out = append(out, toAufgabeResponse(a))
		}
	}
	return out, nil
}

// Update ändert eine Aufgabe, sofern der Benutzer sie sehen darf.
func (uc *AufgabeUseCase) Update(userID, id string, in dto.UpdateAufgabeRequest) (*dto.AufgabeResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	h, err := uc.hierarchy.Get()
	if err != nil {
		return nil, err
	}
	if !h.CanSeeAufgabe(userID, a) {
		return nil, domain.ErrForbidden
	}
	if in.Titel != nil {
		a.Titel = *in.Titel
	}
	if in.Beschreibung != nil {
		a.Beschreibung = *in.Beschreibung
	}
	if in.ZugewiesenAn != nil {
		a.ZugewiesenAn = *in.ZugewiesenAn
	}
	if in.ProjektID != nil {
		a.ProjektID = *in.ProjektID
	}
	if in.Prioritaet != nil {
		a.Prioritaet = *in.Prioritaet
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.FaelligAm != nil {
		a.FaelligAm = in.FaelligAm
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	resp := toAufgabeResponse(a)
	return &resp, nil
}

// Delete entfernt eine Aufgabe.
func (uc *AufgabeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAufgabeResponse(a *entity.Aufgabe) dto.AufgabeResponse {
	return dto.AufgabeResponse{
		ID:           a.ID,
		Titel:        a.Titel,
		Beschreibung: a.Beschreibung,
		ZugewiesenAn: a.ZugewiesenAn,
		ProjektID:    a.ProjektID,
		Prioritaet:   a.Prioritaet,
		Status:       a.Status,
		FaelligAm:    a.FaelligAm,
		CreatedAt:    a.CreatedAt,
	}
}
