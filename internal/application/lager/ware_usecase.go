package lager

import (
	"time"

	"github.com/google/uuid"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	domlager "github.com/ep-bau/ep-system/internal/domain/lager"
	"github.com/ep-bau/ep-system/internal/domain/repository"
	"github.com/ep-bau/ep-system/pkg/textutil"
)

// WareUseCase CRUD für Waren. Bestand und Status werden nach dem Anlegen nur
// noch über Bewegungen geändert (RecordMovementUseCase).
type WareUseCase struct {
	repo    repository.WareRepository
	logRepo repository.WarenLogRepository
}

// NewWareUseCase konstruiert den Use Case.
func NewWareUseCase(repo repository.WareRepository, logRepo repository.WarenLogRepository) *WareUseCase {
	return &WareUseCase{repo: repo, logRepo: logRepo}
}

// Create legt eine neue Ware an. Barcode muss eindeutig sein; der Status wird
// aus Anfangsbestand und Mindestbestand abgeleitet.
func (uc *WareUseCase) Create(in dto.CreateWareRequest) (*dto.WareResponse, error) {
	if in.Name == "" || in.Einheit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Barcode != "" {
		existing, _ := uc.repo.GetByBarcode(in.Barcode)
		if existing != nil {
			return nil, domain.ErrBarcodeExists
		}
	}
	now := time.Now()
	ware := &entity.Ware{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Beschreibung:   in.Beschreibung,
		Barcode:        in.Barcode,
		KategorieID:    in.KategorieID,
		Einheit:        in.Einheit,
		Einkaufspreis:  in.Einkaufspreis,
		Verkaufspreis:  in.Verkaufspreis,
		Bestand:        in.Bestand,
		Mindestbestand: in.Mindestbestand,
		Lagerort:       in.Lagerort,
		Status:         domlager.DeriveStatus(in.Bestand, in.Mindestbestand),
		Bild:           in.Bild,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ware); err != nil {
		return nil, err
	}
	resp := ToWareResponse(ware)
	return &resp, nil
}

// GetByID liefert eine Ware; unbekannte IDs ergeben ErrNotFound.
func (uc *WareUseCase) GetByID(id string) (*dto.WareResponse, error) {
	ware, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ware == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToWareResponse(ware)
	return &resp, nil
}

// GetByBarcode liefert eine Ware über ihren Barcode (Terminal-Scan).
func (uc *WareUseCase) GetByBarcode(barcode string) (*dto.WareResponse, error) {
	ware, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if ware == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToWareResponse(ware)
	return &resp, nil
}

// Update ändert Stammdaten einer Ware. Bestand und Status sind hier nicht
// änderbar; der Status wird bei geändertem Mindestbestand neu abgeleitet.
func (uc *WareUseCase) Update(id string, in dto.UpdateWareRequest) (*dto.WareResponse, error) {
	ware, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ware == nil {
		return nil, domain.ErrNotFound
	}
	if in.Barcode != nil && *in.Barcode != ware.Barcode && *in.Barcode != "" {
		existing, _ := uc.repo.GetByBarcode(*in.Barcode)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrBarcodeExists
		}
		ware.Barcode = *in.Barcode
	}
	if in.Name != nil {
		ware.Name = *in.Name
	}
	if in.Beschreibung != nil {
		ware.Beschreibung = *in.Beschreibung
	}
	if in.KategorieID != nil {
		ware.KategorieID = *in.KategorieID
	}
	if in.Einheit != nil {
		ware.Einheit = *in.Einheit
	}
	if in.Einkaufspreis != nil {
		ware.Einkaufspreis = *in.Einkaufspreis
	}
	if in.Verkaufspreis != nil {
		ware.Verkaufspreis = *in.Verkaufspreis
	}
	if in.Mindestbestand != nil {
		ware.Mindestbestand = *in.Mindestbestand
	}
	if in.Lagerort != nil {
		ware.Lagerort = *in.Lagerort
	}
	if in.Bild != nil {
		ware.Bild = *in.Bild
	}
	ware.Status = domlager.DeriveStatus(ware.Bestand, ware.Mindestbestand)
	ware.UpdatedAt = time.Now()
	if err := uc.repo.Update(ware); err != nil {
		return nil, err
	}
	resp := ToWareResponse(ware)
	return &resp, nil
}

// List liefert Waren mit Paginierung, optional nach Kategorie gefiltert.
func (uc *WareUseCase) List(kategorieID string, limit, offset int) (*dto.WareListResponse, error) {
	var (
		list []*entity.Ware
		err  error
	)
	if kategorieID != "" {
		list, err = uc.repo.ListByKategorie(kategorieID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.WareResponse, 0, len(list))
	for _, w := range list {
		items = append(items, ToWareResponse(w))
	}
	return &dto.WareListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search sucht Waren nach Name oder Barcode, diakritik- und
// großschreibungsunabhängig ("Größe" findet auch "grosse").
func (uc *WareUseCase) Search(query string, limit int) ([]dto.WareResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	// Bestand an Waren ist klein genug für eine In-Memory-Suche über die Liste
	list, err := uc.repo.List(1000, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WareResponse, 0, limit)
	for _, w := range list {
		if textutil.ContainsFold(w.Name, query) || textutil.ContainsFold(w.Barcode, query) {
			out = append(out, ToWareResponse(w))
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

// Delete löscht eine Ware. Protokolleinträge bleiben bestehen und referenzieren
// danach eine nicht mehr vorhandene Ware (weiche Referenz, gewollt).
func (uc *WareUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Protokoll liefert das Bewegungsprotokoll, optional gefiltert nach Ware oder Benutzer.
func (uc *WareUseCase) Protokoll(wareID, benutzerID string, from, to *time.Time, limit, offset int) ([]dto.WarenLogResponse, error) {
	var (
		list []*entity.WarenLog
		err  error
	)
	switch {
	case wareID != "":
		list, err = uc.logRepo.ListByWare(wareID, from, to, limit, offset)
	case benutzerID != "":
		list, err = uc.logRepo.ListByBenutzer(benutzerID, from, to, limit, offset)
	default:
		list, err = uc.logRepo.List(from, to, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarenLogResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ToWarenLogResponse(e))
	}
	return out, nil
}
