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

// ProjektUseCase verwaltet Bauprojekte samt Etappen und Dokumentreferenzen.
type ProjektUseCase struct {
	repo          repository.ProjektRepository
	etappeRepo    repository.EtappeRepository
	dokumentRepo  repository.DokumentRepository
	kategorieRepo repository.KategorieRepository
}

func NewProjektUseCase(
	repo repository.ProjektRepository,
	etappeRepo repository.EtappeRepository,
	dokumentRepo repository.DokumentRepository,
	kategorieRepo repository.KategorieRepository,
) *ProjektUseCase {
	return &ProjektUseCase{
		repo:          repo,
		etappeRepo:    etappeRepo,
		dokumentRepo:  dokumentRepo,
		kategorieRepo: kategorieRepo,
	}
}

// Create legt ein Projekt an. Die Nummer muss eindeutig sein; ein gesetzter
// Kategoriepfad wird gegen den Baum validiert.
func (uc *ProjektUseCase) Create(in dto.CreateProjektRequest) (*dto.ProjektResponse, error) {
	if in.Nummer == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNummer(in.Nummer)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProjektNrExists
	}
	if len(in.KategoriePfad) > 0 {
		if err := uc.validatePfad(in.KategoriePfad, in.Feldwerte); err != nil {
			return nil, err
		}
	}
	status := in.Status
	if status == "" {
		status = entity.ProjektStatusNeu
	}
	prio := in.Prioritaet
	if prio == "" {
		prio = entity.PrioMittel
	}
	now := time.Now()
	p := &entity.Projekt{
		ID:            uuid.New().String(),
		Nummer:        in.Nummer,
		Name:          in.Name,
		Beschreibung:  in.Beschreibung,
		Status:        status,
		Prioritaet:    prio,
		Budget:        in.Budget,
		Startdatum:    in.Startdatum,
		Enddatum:      in.Enddatum,
		Adresse:       in.Adresse,
		KundeID:       in.KundeID,
		KategoriePfad: in.KategoriePfad,
		Feldwerte:     in.Feldwerte,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	resp := toProjektResponse(p)
	return &resp, nil
}

// GetByID liefert ein Projekt; unbekannte IDs ergeben ErrNotFound.
func (uc *ProjektUseCase) GetByID(id string) (*dto.ProjektResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProjektResponse(p)
	return &resp, nil
}

// List liefert Projekte, optional nach Status gefiltert.
func (uc *ProjektUseCase) List(status string, limit, offset int) ([]dto.ProjektResponse, error) {
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjektResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjektResponse(p))
	}
	return out, nil
}

// Update ändert ein Projekt. Die Nummer ist nach dem Anlegen unveränderlich.
func (uc *ProjektUseCase) Update(id string, in dto.UpdateProjektRequest) (*dto.ProjektResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.KategoriePfad != nil {
		feldwerte := p.Feldwerte
		if in.Feldwerte != nil {
			feldwerte = *in.Feldwerte
		}
		if len(*in.KategoriePfad) > 0 {
			if err := uc.validatePfad(*in.KategoriePfad, feldwerte); err != nil {
				return nil, err
			}
		}
		p.KategoriePfad = *in.KategoriePfad
	}
	if in.Feldwerte != nil {
		p.Feldwerte = *in.Feldwerte
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Beschreibung != nil {
		p.Beschreibung = *in.Beschreibung
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Prioritaet != nil {
		p.Prioritaet = *in.Prioritaet
	}
	if in.Budget != nil {
		p.Budget = *in.Budget
	}
	if in.Startdatum != nil {
		p.Startdatum = in.Startdatum
	}
	if in.Enddatum != nil {
		p.Enddatum = in.Enddatum
	}
	if in.Adresse != nil {
		p.Adresse = *in.Adresse
	}
	if in.KundeID != nil {
		p.KundeID = *in.KundeID
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	resp := toProjektResponse(p)
	return &resp, nil
}

// Delete entfernt ein Projekt.
func (uc *ProjektUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// CreateEtappe fügt dem Projekt einen Abschnitt hinzu.
func (uc *ProjektUseCase) CreateEtappe(projektID string, in dto.CreateEtappeRequest) (*dto.EtappeResponse, error) {
	if in.Titel == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(projektID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	e := &entity.Etappe{
		ID:         uuid.New().String(),
		ProjektID:  projektID,
		Titel:      in.Titel,
		Sortierung: in.Sortierung,
		CreatedAt:  time.Now(),
	}
	if err := uc.etappeRepo.Create(e); err != nil {
		return nil, err
	}
	resp := toEtappeResponse(e)
	return &resp, nil
}

// UpdateEtappe ändert Titel, Abschluss-Flag oder Reihenfolge einer Etappe.
func (uc *ProjektUseCase) UpdateEtappe(projektID, etappeID string, in dto.UpdateEtappeRequest) (*dto.EtappeResponse, error) {
	etappen, err := uc.etappeRepo.ListByProjekt(projektID)
	if err != nil {
		return nil, err
	}
	var e *entity.Etappe
	for _, kandidat := range etappen {
		if kandidat.ID == etappeID {
			e = kandidat
			break
		}
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Titel != nil {
		e.Titel = *in.Titel
	}
	if in.Abgeschlossen != nil {
		e.Abgeschlossen = *in.Abgeschlossen
	}
	if in.Sortierung != nil {
		e.Sortierung = *in.Sortierung
	}
	if err := uc.etappeRepo.Update(e); err != nil {
		return nil, err
	}
	resp := toEtappeResponse(e)
	return &resp, nil
}

// Etappen liefert die Abschnitte eines Projekts.
func (uc *ProjektUseCase) Etappen(projektID string) ([]dto.EtappeResponse, error) {
	list, err := uc.etappeRepo.ListByProjekt(projektID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EtappeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEtappeResponse(e))
	}
	return out, nil
}

// DeleteEtappe entfernt eine Etappe.
func (uc *ProjektUseCase) DeleteEtappe(id string) error {
	return uc.etappeRepo.Delete(id)
}

// AddDokument registriert eine hochgeladene Datei am Projekt.
// Die Datei selbst liegt beim externen Upload-Dienst.
func (uc *ProjektUseCase) AddDokument(projektID string, in dto.CreateDokumentRequest) (*dto.DokumentResponse, error) {
	if in.Name == "" || in.URL == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(projektID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	d := &entity.Dokument{
		ID:        uuid.New().String(),
		ProjektID: projektID,
		Name:      in.Name,
		URL:       in.URL,
		CreatedAt: time.Now(),
	}
	if err := uc.dokumentRepo.Create(d); err != nil {
		return nil, err
	}
	resp := toDokumentResponse(d)
	return &resp, nil
}

// Dokumente liefert die Dateireferenzen eines Projekts.
func (uc *ProjektUseCase) Dokumente(projektID string) ([]dto.DokumentResponse, error) {
	list, err := uc.dokumentRepo.ListByProjekt(projektID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DokumentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDokumentResponse(d))
	}
	return out, nil
}

// DeleteDokument entfernt eine Dateireferenz.
func (uc *ProjektUseCase) DeleteDokument(id string) error {
	return uc.dokumentRepo.Delete(id)
}

func (uc *ProjektUseCase) validatePfad(pfadIDs []string, feldwerte map[string]string) error {
	alle, err := uc.kategorieRepo.ListAll()
	if err != nil {
		return err
	}
	pfad, err := domkategorie.ResolvePath(alle, pfadIDs)
	if err != nil {
		return err
	}
	return domkategorie.ValidateRequired(domkategorie.ApplicableFields(pfad), feldwerte)
}

func toProjektResponse(p *entity.Projekt) dto.ProjektResponse {
	return dto.ProjektResponse{
		ID:            p.ID,
		Nummer:        p.Nummer,
		Name:          p.Name,
		Beschreibung:  p.Beschreibung,
		Status:        p.Status,
		Prioritaet:    p.Prioritaet,
		Budget:        p.Budget,
		Startdatum:    p.Startdatum,
		Enddatum:      p.Enddatum,
		Adresse:       p.Adresse,
		KundeID:       p.KundeID,
		KategoriePfad: p.KategoriePfad,
		Feldwerte:     p.Feldwerte,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toEtappeResponse(e *entity.Etappe) dto.EtappeResponse {
	return dto.EtappeResponse{
		ID:            e.ID,
		ProjektID:     e.ProjektID,
		Titel:         e.Titel,
		Abgeschlossen: e.Abgeschlossen,
		Sortierung:    e.Sortierung,
	}
}

func toDokumentResponse(d *entity.Dokument) dto.DokumentResponse {
	return dto.DokumentResponse{
		ID:        d.ID,
		ProjektID: d.ProjektID,
		Name:      d.Name,
		URL:       d.URL,
		CreatedAt: d.CreatedAt,
	}
}
