package kassa

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// KassaUseCase verwaltet Kassenterminals. Der API-Key wird beim Anlegen
// generiert und nur in dieser einen Antwort mitgeliefert.
type KassaUseCase struct {
	repo     repository.KassaRepository
	saleRepo repository.KassaSaleRepository
}

func NewKassaUseCase(repo repository.KassaRepository, saleRepo repository.KassaSaleRepository) *KassaUseCase {
	return &KassaUseCase{repo: repo, saleRepo: saleRepo}
}

// Create legt ein Kassenterminal an und generiert seinen API-Key.
func (uc *KassaUseCase) Create(in dto.CreateKassaRequest) (*dto.KassaResponse, error) {
	if in.Name == "" || in.KassaNummer == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	kassa := &entity.Kassa{
		ID:          uuid.New().String(),
		Name:        in.Name,
		KassaNummer: in.KassaNummer,
		APIKey:      newAPIKey(),
		Status:      entity.KassaStatusGetrennt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(kassa); err != nil {
		return nil, err
	}
	return &dto.KassaResponse{
		ID:          kassa.ID,
		Name:        kassa.Name,
		KassaNummer: kassa.KassaNummer,
		APIKey:      kassa.APIKey,
		Status:      kassa.Status,
	}, nil
}

// GetByID liefert ein Terminal ohne API-Key.
func (uc *KassaUseCase) GetByID(id string) (*dto.KassaResponse, error) {
	kassa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if kassa == nil {
		return nil, domain.ErrNotFound
	}
	resp := toKassaResponse(kassa)
	return &resp, nil
}

// List liefert alle Terminals ohne API-Keys.
func (uc *KassaUseCase) List(limit, offset int) ([]dto.KassaResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KassaResponse, 0, len(list))
	for _, k := range list {
		out = append(out, toKassaResponse(k))
	}
	return out, nil
}

// RotateKey generiert einen neuen API-Key; der alte ist sofort ungültig.
// Die Antwort ist die einzige Stelle, an der der neue Key sichtbar wird.
func (uc *KassaUseCase) RotateKey(id string) (*dto.KassaResponse, error) {
	kassa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if kassa == nil {
		return nil, domain.ErrNotFound
	}
	kassa.APIKey = newAPIKey()
	kassa.UpdatedAt = time.Now()
	if err := uc.repo.Update(kassa); err != nil {
		return nil, err
	}
	resp := toKassaResponse(kassa)
	resp.APIKey = kassa.APIKey
	return &resp, nil
}

// Delete entfernt ein Terminal. Verkaufsdatensätze bleiben erhalten.
func (uc *KassaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Sales liefert die Verkäufe eines Terminals im Zeitraum.
func (uc *KassaUseCase) Sales(kassaID string, from, to *time.Time, limit, offset int) ([]dto.KassaSaleResponse, error) {
	list, err := uc.saleRepo.ListByKassa(kassaID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KassaSaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.KassaSaleResponse{
			ID:                   s.ID,
			KassaID:              s.KassaID,
			KassaName:            s.KassaName,
			WareID:               s.WareID,
			WareName:             s.WareName,
			Menge:                s.Menge,
			Betrag:               s.Betrag,
			Datum:                s.Datum,
			NachbestellungNoetig: s.NachbestellungNoetig,
		})
	}
	return out, nil
}

func toKassaResponse(k *entity.Kassa) dto.KassaResponse {
	return dto.KassaResponse{
		ID:          k.ID,
		Name:        k.Name,
		KassaNummer: k.KassaNummer,
		Status:      k.Status,
		LetzteSync:  k.LetzteSync,
	}
}

func newAPIKey() string {
	return "kassa_" + strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
}
