package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// SubunternehmerUseCase verwaltet Nachunternehmer (Gewerk, Stundensatz, Status).
type SubunternehmerUseCase struct {
	repo repository.SubunternehmerRepository
}

func NewSubunternehmerUseCase(repo repository.SubunternehmerRepository) *SubunternehmerUseCase {
	return &SubunternehmerUseCase{repo: repo}
}

// Create legt einen Subunternehmer an. Firma ist Pflicht; ohne Angabe
// startet der Status als Aktiv.
func (uc *SubunternehmerUseCase) Create(in dto.CreateSubunternehmerRequest) (*dto.SubunternehmerResponse, error) {
	if in.Firma == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.SubunternehmerStatusAktiv
	}
	now := time.Now()
	s := &entity.Subunternehmer{
		ID:              uuid.New().String(),
		Firma:           in.Firma,
		Ansprechpartner: in.Ansprechpartner,
		Email:           in.Email,
		Telefon:         in.Telefon,
		Adresse:         in.Adresse,
		PLZ:             in.PLZ,
		Stadt:           in.Stadt,
		Spezialisierung: in.Spezialisierung,
		Stundensatz:     in.Stundensatz,
		Status:          status,
		Notizen:         in.Notizen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	resp := toSubunternehmerResponse(s)
	return &resp, nil
}

// GetByID liefert einen Subunternehmer; unbekannte IDs ergeben ErrNotFound.
func (uc *SubunternehmerUseCase) GetByID(id string) (*dto.SubunternehmerResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSubunternehmerResponse(s)
	return &resp, nil
}

// List listet Subunternehmer, optional nach Status gefiltert.
func (uc *SubunternehmerUseCase) List(status string, limit, offset int) ([]dto.SubunternehmerResponse, error) {
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubunternehmerResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSubunternehmerResponse(s))
	}
	return out, nil
}

// Update aktualisiert einen Subunternehmer feldweise.
func (uc *SubunternehmerUseCase) Update(id string, in dto.UpdateSubunternehmerRequest) (*dto.SubunternehmerResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Firma != nil {
		if *in.Firma == "" {
			return nil, domain.ErrInvalidInput
		}
		s.Firma = *in.Firma
	}
	if in.Ansprechpartner != nil {
		s.Ansprechpartner = *in.Ansprechpartner
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.Telefon != nil {
		s.Telefon = *in.Telefon
	}
	if in.Adresse != nil {
		s.Adresse = *in.Adresse
	}
	if in.PLZ != nil {
		s.PLZ = *in.PLZ
	}
	if in.Stadt != nil {
		s.Stadt = *in.Stadt
	}
	if in.Spezialisierung != nil {
		s.Spezialisierung = *in.Spezialisierung
	}
	if in.Stundensatz != nil {
		s.Stundensatz = *in.Stundensatz
	}
	if in.Status != nil {
		s.Status = *in.Status
	}
	if in.Notizen != nil {
		s.Notizen = *in.Notizen
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	resp := toSubunternehmerResponse(s)
	return &resp, nil
}

// Delete entfernt einen Subunternehmer.
func (uc *SubunternehmerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSubunternehmerResponse(s *entity.Subunternehmer) dto.SubunternehmerResponse {
	return dto.SubunternehmerResponse{
		ID:              s.ID,
		Firma:           s.Firma,
		Ansprechpartner: s.Ansprechpartner,
		Email:           s.Email,
		Telefon:         s.Telefon,
		Adresse:         s.Adresse,
		PLZ:             s.PLZ,
		Stadt:           s.Stadt,
		Spezialisierung: s.Spezialisierung,
		Stundensatz:     s.Stundensatz,
		Status:          s.Status,
		Notizen:         s.Notizen,
		CreatedAt:       s.CreatedAt,
	}
}
