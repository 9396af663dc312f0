package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ep-bau/ep-system/internal/application/auth"
	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// BenutzerUseCase verwaltet Mitarbeiterkonten. Jede Änderung am Bestand
// invalidiert den Hierarchie-Index.
type BenutzerUseCase struct {
	repo      repository.BenutzerRepository
	hierarchy *HierarchyCache
}

func NewBenutzerUseCase(repo repository.BenutzerRepository, hierarchy *HierarchyCache) *BenutzerUseCase {
	return &BenutzerUseCase{repo: repo, hierarchy: hierarchy}
}

// Create legt einen Benutzer an. E-Mail muss eindeutig sein; das Passwort
// wird mit bcrypt gehasht. Ohne QR-Code wird einer generiert.
func (uc *BenutzerUseCase) Create(in dto.CreateBenutzerRequest) (*dto.BenutzerResponse, error) {
	if in.Email == "" || in.Password == "" || in.Nachname == "" || in.Position == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	qrCode := in.QRCode
	if qrCode == "" {
		qrCode = "EP-" + uuid.New().String()
	}
	now := time.Now()
	b := &entity.Benutzer{
		ID:             uuid.New().String(),
		Vorname:        in.Vorname,
		Nachname:       in.Nachname,
		Email:          in.Email,
		PasswortHash:   string(hash),
		Position:       in.Position,
		VorgesetzterID: in.VorgesetzterID,
		QRCode:         qrCode,
		Status:         entity.BenutzerStatusAktiv,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(b); err != nil {
		return nil, err
	}
	uc.hierarchy.Invalidate()
	resp := auth.ToBenutzerResponse(b)
	return &resp, nil
}

// GetByID liefert einen Benutzer; unbekannte IDs ergeben ErrUserNotFound.
func (uc *BenutzerUseCase) GetByID(id string) (*dto.BenutzerResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := auth.ToBenutzerResponse(b)
	return &resp, nil
}

// Update ändert einen Benutzer. Passwortänderungen werden neu gehasht.
func (uc *BenutzerUseCase) Update(id string, in dto.UpdateBenutzerRequest) (*dto.BenutzerResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil && *in.Email != b.Email {
		existing, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrEmailExists
		}
		b.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		b.PasswortHash = string(hash)
	}
	if in.Vorname != nil {
		b.Vorname = *in.Vorname
	}
	if in.Nachname != nil {
		b.Nachname = *in.Nachname
	}
	if in.Position != nil {
		b.Position = *in.Position
	}
	if in.VorgesetzterID != nil {
		b.VorgesetzterID = *in.VorgesetzterID
	}
	if in.QRCode != nil {
		b.QRCode = *in.QRCode
	}
	if in.Status != nil {
		b.Status = *in.Status
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	uc.hierarchy.Invalidate()
	resp := auth.ToBenutzerResponse(b)
	return &resp, nil
}

// List liefert Benutzer, optional nach Position gefiltert.
func (uc *BenutzerUseCase) List(position string, limit, offset int) ([]dto.BenutzerResponse, error) {
	list, err := uc.repo.List(position, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BenutzerResponse, 0, len(list))
	for _, b := range list {
		out = append(out, auth.ToBenutzerResponse(b))
	}
	return out, nil
}

// Delete entfernt einen Benutzer. Protokolleinträge behalten den Namens-Snapshot.
func (uc *BenutzerUseCase) Delete(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.hierarchy.Invalidate()
	return nil
}
