package reports

import (
	"context"
	"fmt"
	"strings"

	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// ProjektberichtData sind die aufbereiteten Daten für den PDF-Bericht.
type ProjektberichtData struct {
	Projekt            *entity.Projekt
	Kunde              *entity.Kunde // nil wenn kein Kunde verknüpft
	KategorieNamen     []string      // aufgelöster Pfad, Wurzel zuerst
	Etappen            []*entity.Etappe
	EtappenGesamt      int
	EtappenErledigt    int
	FortschrittProzent int
	DokumenteAnzahl    int
}

// ProjektberichtGenerator rendert die Daten zu einem PDF.
type ProjektberichtGenerator interface {
	GenerateProjektbericht(ctx context.Context, data *ProjektberichtData) ([]byte, error)
}

// ProjektberichtUseCase sammelt alle Daten eines Projekts und erzeugt den
// herunterladbaren PDF-Bericht.
type ProjektberichtUseCase struct {
	projektRepo   repository.ProjektRepository
	kundeRepo     repository.KundeRepository
	etappeRepo    repository.EtappeRepository
	dokumentRepo  repository.DokumentRepository
	kategorieRepo repository.KategorieRepository
	generator     ProjektberichtGenerator
}

// NewProjektberichtUseCase konstruiert den Use Case mit allen Abhängigkeiten.
func NewProjektberichtUseCase(
	projektRepo repository.ProjektRepository,
	kundeRepo repository.KundeRepository,
	etappeRepo repository.EtappeRepository,
	dokumentRepo repository.DokumentRepository,
	kategorieRepo repository.KategorieRepository,
	generator ProjektberichtGenerator,
) *ProjektberichtUseCase {
	return &ProjektberichtUseCase{
		projektRepo:   projektRepo,
		kundeRepo:     kundeRepo,
		etappeRepo:    etappeRepo,
		dokumentRepo:  dokumentRepo,
		kategorieRepo: kategorieRepo,
		generator:     generator,
	}
}

// Download lädt Projekt, Kunde, Etappen, Dokumentanzahl und Kategorienamen
// und erzeugt das PDF. Liefert Bytes und Dateinamen.
func (uc *ProjektberichtUseCase) Download(ctx context.Context, projektID string) (pdfBytes []byte, filename string, err error) {
	projekt, err := uc.projektRepo.GetByID(projektID)
	if err != nil {
		return nil, "", fmt.Errorf("bericht: projekt laden: %w", err)
	}
	if projekt == nil {
		return nil, "", domain.ErrNotFound
	}

	data := &ProjektberichtData{Projekt: projekt}

	if projekt.KundeID != "" {
		kunde, err := uc.kundeRepo.GetByID(projekt.KundeID)
		if err != nil {
			return nil, "", fmt.Errorf("bericht: kunde laden: %w", err)
		}
		data.Kunde = kunde
	}

	if len(projekt.KategoriePfad) > 0 {
		alle, err := uc.kategorieRepo.ListAll()
		if err != nil {
			return nil, "", fmt.Errorf("bericht: kategorien laden: %w", err)
		}
		byID := make(map[string]string, len(alle))
		for _, k := range alle {
			byID[k.ID] = k.Name
		}
		for _, id := range projekt.KategoriePfad {
			if name, ok := byID[id]; ok {
				data.KategorieNamen = append(data.KategorieNamen, name)
			}
		}
	}

	etappen, err := uc.etappeRepo.ListByProjekt(projektID)
	if err != nil {
		return nil, "", fmt.Errorf("bericht: etappen laden: %w", err)
	}
	data.Etappen = etappen
	data.EtappenGesamt = len(etappen)
	for _, e := range etappen {
		if e.Abgeschlossen {
			data.EtappenErledigt++
		}
	}
	if data.EtappenGesamt > 0 {
		data.FortschrittProzent = data.EtappenErledigt * 100 / data.EtappenGesamt
	}

	anzahl, err := uc.dokumentRepo.CountByProjekt(projektID)
	if err != nil {
		return nil, "", fmt.Errorf("bericht: dokumente zählen: %w", err)
	}
	data.DokumenteAnzahl = anzahl

	pdfBytes, err = uc.generator.GenerateProjektbericht(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("bericht: pdf erzeugen: %w", err)
	}

	filename = fmt.Sprintf("projektbericht_%s.pdf", sanitizeFilename(projekt.Nummer))
	return pdfBytes, filename, nil
}

func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
