package kassa

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ep-bau/ep-system/internal/application/dto"
	applager "github.com/ep-bau/ep-system/internal/application/lager"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	domlager "github.com/ep-bau/ep-system/internal/domain/lager"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// SystemBenutzerKassa kennzeichnet Protokolleinträge, die nicht von einer
// Person, sondern vom Kassensystem ausgelöst wurden.
const SystemBenutzerKassa = "system_kassa"

// WebhookUseCase verarbeitet Verkaufsmeldungen der Kassenterminals. Ein
// Verkauf ist eine normale Lagerbewegung (Aktion Verkauf) plus Verkaufs-
// datensatz plus Sync-Zeitstempel der Kassa, alles in einer Transaktion.
type WebhookUseCase struct {
	txRunner applager.KassaTxRunner
}

// NewWebhookUseCase konstruiert den Use Case.
func NewWebhookUseCase(txRunner applager.KassaTxRunner) *WebhookUseCase {
	return &WebhookUseCase{txRunner: txRunner}
}

// ProcessSale bucht einen Kassenverkauf. Der API-Key aus dem Header
// identifiziert die Kassa; ein unbekannter Key wird mit ErrInvalidAPIKey
// abgewiesen, ohne dass irgendetwas geschrieben wird. Fehlt der Betrag,
// wird Menge * Verkaufspreis angesetzt.
func (uc *WebhookUseCase) ProcessSale(ctx context.Context, apiKey string, in dto.KassaWebhookRequest) (*dto.KassaWebhookResponse, error) {
	if apiKey == "" {
		return nil, domain.ErrInvalidAPIKey
	}
	if in.WareID == "" || !in.Menge.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.KassaWebhookResponse

	err := uc.txRunner.RunKassa(ctx, func(
		wareRepo repository.WareRepository,
		logRepo repository.WarenLogRepository,
		kassaRepo repository.KassaRepository,
		saleRepo repository.KassaSaleRepository,
	) error {
		kassa, err := kassaRepo.GetByAPIKey(apiKey)
		if err != nil {
			return err
		}
		if kassa == nil {
			return domain.ErrInvalidAPIKey
		}

		ware, err := wareRepo.GetForUpdate(in.WareID)
		if err != nil {
			return err
		}
		if ware == nil {
			return domain.ErrNotFound
		}

		altBestand := ware.Bestand
		neuBestand, logMenge, err := domlager.Apply(ware.Bestand, domlager.AktionVerkauf, in.Menge)
		if err != nil {
			return err
		}

		ware.Bestand = neuBestand
		ware.Status = domlager.DeriveStatus(neuBestand, ware.Mindestbestand)
		ware.UpdatedAt = now
		if err := wareRepo.Update(ware); err != nil {
			return err
		}

		nachbestellung := ware.Status != domlager.StatusVerfuegbar

		notiz := fmt.Sprintf("Verkauf über Kassa %s (%s): %s %s von %s verkauft. Bestand: %s → %s",
			kassa.Name, kassa.KassaNummer, logMenge, ware.Einheit, ware.Name, altBestand, neuBestand)
		if nachbestellung {
			notiz += ". NACHBESTELLUNG ERFORDERLICH"
		}
		eintrag := &entity.WarenLog{
			ID:           uuid.New().String(),
			WareID:       ware.ID,
			WareName:     ware.Name,
			BenutzerID:   SystemBenutzerKassa,
			BenutzerName: "Kassa " + kassa.Name,
			Aktion:       domlager.AktionVerkauf,
			Menge:        logMenge,
			Notiz:        notiz,
			Datum:        now,
		}
		if err := logRepo.Create(eintrag); err != nil {
			return err
		}

		betrag := logMenge.Mul(ware.Verkaufspreis)
		if in.Betrag != nil {
			betrag = *in.Betrag
		}
		sale := &entity.KassaSale{
			ID:                   uuid.New().String(),
			KassaID:              kassa.ID,
			KassaName:            kassa.Name,
			WareID:               ware.ID,
			WareName:             ware.Name,
			Menge:                logMenge,
			Betrag:               betrag,
			Datum:                now,
			NachbestellungNoetig: nachbestellung,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		if err := kassaRepo.UpdateSync(kassa.ID, entity.KassaStatusVerbunden, now); err != nil {
			return err
		}

		resp = &dto.KassaWebhookResponse{
			Success:              true,
			Message:              fmt.Sprintf("%s %s von %s verbucht", logMenge, ware.Einheit, ware.Name),
			NeuerBestand:         neuBestand,
			NachbestellungNoetig: nachbestellung,
			SaleID:               sale.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
