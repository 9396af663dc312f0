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

// KategorieUseCase verwaltet den Kategoriebaum mit dynamischen Zusatzfeldern.
// Baum- und Feldlogik liegt in domain/kategorie und wird hier nur angebunden.
type KategorieUseCase struct {
	repo repository.KategorieRepository
}

func NewKategorieUseCase(repo repository.KategorieRepository) *KategorieUseCase {
	return &KategorieUseCase{repo: repo}
}

// Create legt eine Kategorie an. ParentID muss, wenn gesetzt, existieren.
func (uc *KategorieUseCase) Create(in dto.CreateKategorieRequest) (*dto.KategorieResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	k := &entity.Kategorie{
		ID:           uuid.New().String(),
		ParentID:     in.ParentID,
		Name:         in.Name,
		IconName:     in.IconName,
		Bild:         in.Bild,
		Zusatzfelder: in.Zusatzfelder,
		Sortierung:   in.Sortierung,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(k); err != nil {
		return nil, err
	}
	resp := toKategorieResponse(k)
	return &resp, nil
}

// Update ändert eine Kategorie. Ein Ersetzen der Zusatzfelder wirkt auf alle
// künftigen Anfragen und Projektbearbeitungen; bestehende Feldwerte bleiben.
func (uc *KategorieUseCase) Update(id string, in dto.UpdateKategorieRequest) (*dto.KategorieResponse, error) {
	k, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		k.Name = *in.Name
	}
	if in.IconName != nil {
		k.IconName = *in.IconName
	}
	if in.Bild != nil {
		k.Bild = *in.Bild
	}
	if in.Zusatzfelder != nil {
		k.Zusatzfelder = *in.Zusatzfelder
	}
	if in.Sortierung != nil {
		k.Sortierung = *in.Sortierung
	}
	k.UpdatedAt = time.Now()
	if err := uc.repo.Update(k); err != nil {
		return nil, err
	}
	resp := toKategorieResponse(k)
	return &resp, nil
}

// Tree liefert die direkten Kinder von parentID (leer = Wurzelebene),
// sortiert nach Sortierung, dann Name.
func (uc *KategorieUseCase) Tree(parentID string) ([]dto.KategorieResponse, error) {
	alle, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	kinder := domkategorie.ChildrenOf(alle, parentID)
	out := make([]dto.KategorieResponse, 0, len(kinder))
	for _, k := range kinder {
		out = append(out, toKategorieResponse(k))
	}
	return out, nil
}

// Felder liefert die Zusatzfelder für einen Kategoriepfad, so wie das
// öffentliche Formular sie anzeigen muss.
func (uc *KategorieUseCase) Felder(pfadIDs []string) (*dto.FelderResponse, error) {
	alle, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	pfad, err := domkategorie.ResolvePath(alle, pfadIDs)
	if err != nil {
		return nil, err
	}
	return &dto.FelderResponse{Felder: domkategorie.ApplicableFields(pfad)}, nil
}

// Delete löscht eine Kategorie. Kategorien mit Kindern sind nicht löschbar.
func (uc *KategorieUseCase) Delete(id string) error {
	alle, err := uc.repo.ListAll()
	if err != nil {
		return err
	}
	if len(domkategorie.ChildrenOf(alle, id)) > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toKategorieResponse(k *entity.Kategorie) dto.KategorieResponse {
	return dto.KategorieResponse{
		ID:           k.ID,
		ParentID:     k.ParentID,
		Name:         k.Name,
		IconName:     k.IconName,
		Bild:         k.Bild,
		Zusatzfelder: k.Zusatzfelder,
		Sortierung:   k.Sortierung,
	}
}
