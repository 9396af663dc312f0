package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// KundeUseCase verwaltet Auftraggeber.
type KundeUseCase struct {
	repo repository.KundeRepository
}

func NewKundeUseCase(repo repository.KundeRepository) *KundeUseCase {
	return &KundeUseCase{repo: repo}
}

// Create legt einen Kunden an. Firma oder Nachname muss gesetzt sein.
func (uc *KundeUseCase) Create(in dto.CreateKundeRequest) (*dto.KundeResponse, error) {
	if in.Firma == "" && in.Nachname == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	k := &entity.Kunde{
		ID:        uuid.New().String(),
		Firma:     in.Firma,
		Vorname:   in.Vorname,
		Nachname:  in.Nachname,
		Email:     in.Email,
		Telefon:   in.Telefon,
		Adresse:   in.Adresse,
		Notiz:     in.Notiz,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(k); err != nil {
		return nil, err
	}
	resp := toKundeResponse(k)
	return &resp, nil
}

// GetByID liefert einen Kunden; unbekannte IDs ergeben ErrNotFound.
func (uc *KundeUseCase) GetByID(id string) (*dto.KundeResponse, error) {
	k, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, domain.ErrNotFound
	}
	resp := toKundeResponse(k)
	return &resp, nil
}

// List liefert Kunden mit Paginierung.
func (uc *KundeUseCase) List(limit, offset int) ([]dto.KundeResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KundeResponse, 0, len(list))
	for _, k := range list {
		out = append(out, toKundeResponse(k))
	}
	return out, nil
}

// Update ändert einen Kunden.
func (uc *KundeUseCase) Update(id string, in dto.UpdateKundeRequest) (*dto.KundeResponse, error) {
	k, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, domain.ErrNotFound
	}
	if in.Firma != nil {
		k.Firma = *in.Firma
	}
	if in.Vorname != nil {
		k.Vorname = *in.Vorname
	}
	if in.Nachname != nil {
		k.Nachname = *in.Nachname
	}
	if in.Email != nil {
		k.Email = *in.Email
	}
	if in.Telefon != nil {
		k.Telefon = *in.Telefon
	}
	if in.Adresse != nil {
		k.Adresse = *in.Adresse
	}
	if in.Notiz != nil {
		k.Notiz = *in.Notiz
	}
	k.UpdatedAt = time.Now()
	if err := uc.repo.Update(k); err != nil {
		return nil, err
	}
	resp := toKundeResponse(k)
	return &resp, nil
}

// Delete entfernt einen Kunden.
func (uc *KundeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toKundeResponse(k *entity.Kunde) dto.KundeResponse {
	return dto.KundeResponse{
		ID:        k.ID,
		Firma:     k.Firma,
		Vorname:   k.Vorname,
		Nachname:  k.Nachname,
		Email:     k.Email,
		Telefon:   k.Telefon,
		Adresse:   k.Adresse,
		Notiz:     k.Notiz,
		CreatedAt: k.CreatedAt,
	}
}
