package lager

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	domlager "github.com/ep-bau/ep-system/internal/domain/lager"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// RecordMovementUseCase bucht Lagerbewegungen (Entnahme, Rückgabe, Eingang,
// Korrektur, Inventur) transaktional: Zeilensperre auf der Ware (SELECT FOR
// UPDATE), Bestand + Status + Protokolleintrag in einem Commit.
type RecordMovementUseCase struct {
	txRunner     TxRunner
	benutzerRepo repository.BenutzerRepository
	projektRepo  repository.ProjektRepository
}

// NewRecordMovementUseCase konstruiert den Use Case.
func NewRecordMovementUseCase(
	txRunner TxRunner,
	benutzerRepo repository.BenutzerRepository,
	projektRepo repository.ProjektRepository,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:     txRunner,
		benutzerRepo: benutzerRepo,
		projektRepo:  projektRepo,
	}
}

// MovementInput Eingabe für eine Lagerbewegung.
type MovementInput struct {
	BenutzerID string
	WareID     string
	Aktion     string
	Menge      decimal.Decimal
	ProjektID  string
	Notiz      string // leer = automatisch erzeugte Zusammenfassung
}

// Record validiert die Eingabe, wendet die Wirkungsregel an, leitet den Status
// neu ab und schreibt Warenupdate und Protokolleintrag in einer Transaktion.
// Eine Entnahme über den Bestand hinaus wird nicht blockiert (das Terminal
// warnt nur); der Bestand kann dadurch negativ werden.
func (uc *RecordMovementUseCase) Record(ctx context.Context, input MovementInput) (*dto.MovementResponse, error) {
	if input.WareID == "" || input.BenutzerID == "" || !domlager.GueltigeAktion(input.Aktion) {
		return nil, domain.ErrInvalidInput
	}
	if input.Aktion == domlager.AktionVerkauf {
		// Verkäufe kommen ausschließlich über den Kassa-Webhook
		return nil, domain.ErrInvalidInput
	}

	benutzer, err := uc.benutzerRepo.GetByID(input.BenutzerID)
	if err != nil {
		return nil, err
	}
	if benutzer == nil {
		return nil, domain.ErrUserNotFound
	}

	var projektNummer string
	if input.ProjektID != "" {
		projekt, err := uc.projektRepo.GetByID(input.ProjektID)
		if err != nil {
			return nil, err
		}
		if projekt == nil {
			return nil, domain.ErrNotFound
		}
		projektNummer = projekt.Nummer
	}

	now := time.Now()
	var resp *dto.MovementResponse

	err = uc.txRunner.Run(ctx, func(
		wareRepo repository.WareRepository,
		logRepo repository.WarenLogRepository,
	) error {
		ware, err := wareRepo.GetForUpdate(input.WareID)
		if err != nil {
			return err
		}
		if ware == nil {
			return domain.ErrNotFound
		}

		altBestand := ware.Bestand
		neuBestand, logMenge, err := domlager.Apply(ware.Bestand, input.Aktion, input.Menge)
		if err != nil {
			return err
		}

		ware.Bestand = neuBestand
		ware.Status = domlager.DeriveStatus(neuBestand, ware.Mindestbestand)
		ware.UpdatedAt = now
		if err := wareRepo.Update(ware); err != nil {
			return err
		}

		notiz := input.Notiz
		if notiz == "" {
			notiz = buildNotiz(input.Aktion, ware, logMenge, altBestand, neuBestand, projektNummer)
		}
		eintrag := &entity.WarenLog{
			ID:            uuid.New().String(),
			WareID:        ware.ID,
			WareName:      ware.Name,
			BenutzerID:    benutzer.ID,
			BenutzerName:  benutzer.VollerName(),
			ProjektID:     input.ProjektID,
			ProjektNummer: projektNummer,
			Aktion:        input.Aktion,
			Menge:         logMenge,
			Notiz:         notiz,
			Datum:         now,
		}
		if err := logRepo.Create(eintrag); err != nil {
			return err
		}

		resp = &dto.MovementResponse{
			Ware: ToWareResponse(ware),
			Log:  ToWarenLogResponse(eintrag),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// buildNotiz erzeugt die lesbare Zusammenfassung im Stil der Terminal-Buchungen.
func buildNotiz(aktion string, ware *entity.Ware, menge, alt, neu decimal.Decimal, projektNummer string) string {
	switch aktion {
	case domlager.AktionEntnahme:
		s := fmt.Sprintf("Entnahme vom Terminal: %s %s von %s", menge, ware.Einheit, ware.Name)
		if projektNummer != "" {
			s += " für Projekt " + projektNummer
		}
		return s
	case domlager.AktionRueckgabe:
		s := fmt.Sprintf("Rückgabe vom Terminal: %s %s von %s", menge, ware.Einheit, ware.Name)
		if projektNummer != "" {
			s += " von Projekt " + projektNummer
		}
		return s
	case domlager.AktionEingang:
		return fmt.Sprintf("Lieferung erhalten: %s %s von %s auf Lager eingegangen. Bestand: %s → %s",
			menge, ware.Einheit, ware.Name, alt, neu)
	case domlager.AktionKorrektur:
		return fmt.Sprintf("Korrektur: Bestand von %s angepasst. Bestand: %s → %s", ware.Name, alt, neu)
	case domlager.AktionInventur:
		return fmt.Sprintf("Inventur: Bestand von %s neu gezählt. Bestand: %s → %s", ware.Name, alt, neu)
	}
	return ""
}

// ToWareResponse mappt die Entität auf die Antwortdarstellung.
func ToWareResponse(w *entity.Ware) dto.WareResponse {
	return dto.WareResponse{
		ID:             w.ID,
		Name:           w.Name,
		Beschreibung:   w.Beschreibung,
		Barcode:        w.Barcode,
		KategorieID:    w.KategorieID,
		Einheit:        w.Einheit,
		Einkaufspreis:  w.Einkaufspreis,
		Verkaufspreis:  w.Verkaufspreis,
		Bestand:        w.Bestand,
		Mindestbestand: w.Mindestbestand,
		Lagerort:       w.Lagerort,
		Status:         w.Status,
		Bild:           w.Bild,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

// ToWarenLogResponse mappt den Protokolleintrag auf die Antwortdarstellung.
func ToWarenLogResponse(e *entity.WarenLog) dto.WarenLogResponse {
	return dto.WarenLogResponse{
		ID:            e.ID,
		WareID:        e.WareID,
		WareName:      e.WareName,
		BenutzerID:    e.BenutzerID,
		BenutzerName:  e.BenutzerName,
		ProjektID:     e.ProjektID,
		ProjektNummer: e.ProjektNummer,
		Aktion:        e.Aktion,
		Menge:         e.Menge,
		Notiz:         e.Notiz,
		Datum:         e.Datum,
	}
}
