package kassa_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep-bau/ep-system/internal/application/dto"
	appkassa "github.com/ep-bau/ep-system/internal/application/kassa"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	domlager "github.com/ep-bau/ep-system/internal/domain/lager"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

type fakeWareRepo struct {
	waren map[string]*entity.Ware
}

func (r *fakeWareRepo) Create(w *entity.Ware) error { r.waren[w.ID] = w; return nil }
func (r *fakeWareRepo) GetByID(id string) (*entity.Ware, error) {
	w, ok := r.waren[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}
func (r *fakeWareRepo) GetByBarcode(string) (*entity.Ware, error) { return nil, nil }
func (r *fakeWareRepo) Update(w *entity.Ware) error {
	cp := *w
	r.waren[w.ID] = &cp
	return nil
}
func (r *fakeWareRepo) List(int, int) ([]*entity.Ware, error)                    { return nil, nil }
func (r *fakeWareRepo) ListByKategorie(string, int, int) ([]*entity.Ware, error) { return nil, nil }
func (r *fakeWareRepo) Delete(string) error                                      { return nil }
func (r *fakeWareRepo) GetForUpdate(id string) (*entity.Ware, error)             { return r.GetByID(id) }

type fakeLogRepo struct {
	eintraege []*entity.WarenLog
}

func (r *fakeLogRepo) Create(e *entity.WarenLog) error          { r.eintraege = append(r.eintraege, e); return nil }
func (r *fakeLogRepo) GetByID(string) (*entity.WarenLog, error) { return nil, nil }
func (r *fakeLogRepo) List(*time.Time, *time.Time, int, int) ([]*entity.WarenLog, error) {
	return r.eintraege, nil
}
func (r *fakeLogRepo) ListByWare(string, *time.Time, *time.Time, int, int) ([]*entity.WarenLog, error) {
	return nil, nil
}
func (r *fakeLogRepo) ListByBenutzer(string, *time.Time, *time.Time, int, int) ([]*entity.WarenLog, error) {
	return nil, nil
}

type fakeKassaRepo struct {
	kassen   map[string]*entity.Kassa
	syncedAt time.Time
}

func (r *fakeKassaRepo) Create(k *entity.Kassa) error          { r.kassen[k.ID] = k; return nil }
func (r *fakeKassaRepo) GetByID(id string) (*entity.Kassa, error) { return r.kassen[id], nil }
func (r *fakeKassaRepo) GetByAPIKey(key string) (*entity.Kassa, error) {
	for _, k := range r.kassen {
		if k.APIKey == key {
			return k, nil
		}
	}
	return nil, nil
}
func (r *fakeKassaRepo) Update(*entity.Kassa) error { return nil }
func (r *fakeKassaRepo) UpdateSync(id, status string, sync time.Time) error {
	r.kassen[id].Status = status
	r.syncedAt = sync
	return nil
}
func (r *fakeKassaRepo) List(int, int) ([]*entity.Kassa, error) { return nil, nil }
func (r *fakeKassaRepo) Delete(string) error                    { return nil }

type fakeSaleRepo struct {
	sales []*entity.KassaSale
}

func (r *fakeSaleRepo) Create(s *entity.KassaSale) error { r.sales = append(r.sales, s); return nil }
func (r *fakeSaleRepo) ListByKassa(string, *time.Time, *time.Time, int, int) ([]*entity.KassaSale, error) {
	return r.sales, nil
}

type fakeKassaTxRunner struct {
	wareRepo  *fakeWareRepo
	logRepo   *fakeLogRepo
	kassaRepo *fakeKassaRepo
	saleRepo  *fakeSaleRepo
}

func (r *fakeKassaTxRunner) RunKassa(_ context.Context, fn func(
	wareRepo repository.WareRepository,
	logRepo repository.WarenLogRepository,
	kassaRepo repository.KassaRepository,
	saleRepo repository.KassaSaleRepository,
) error) error {
	return fn(r.wareRepo, r.logRepo, r.kassaRepo, r.saleRepo)
}

func newWebhookSetup() (*appkassa.WebhookUseCase, *fakeKassaTxRunner) {
	runner := &fakeKassaTxRunner{
		wareRepo: &fakeWareRepo{waren: map[string]*entity.Ware{
			"w1": {
				ID: "w1", Name: "Arbeitshandschuhe", Einheit: entity.EinheitStueck,
				Bestand: decimal.NewFromInt(12), Mindestbestand: decimal.NewFromInt(5),
				Verkaufspreis: decimal.NewFromFloat(4.50),
				Status:        domlager.StatusVerfuegbar,
			},
		}},
		logRepo: &fakeLogRepo{},
		kassaRepo: &fakeKassaRepo{kassen: map[string]*entity.Kassa{
			"k1": {ID: "k1", Name: "Lager Nord", KassaNummer: "K-01", APIKey: "kassa_geheim", Status: entity.KassaStatusGetrennt},
		}},
		saleRepo: &fakeSaleRepo{},
	}
	return appkassa.NewWebhookUseCase(runner), runner
}

func TestProcessSale_Erfolgreich(t *testing.T) {
	uc, runner := newWebhookSetup()

	resp, err := uc.ProcessSale(context.Background(), "kassa_geheim", dto.KassaWebhookRequest{
		WareID: "w1", Menge: decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.True(t, resp.NeuerBestand.Equal(decimal.NewFromInt(9)))
	assert.False(t, resp.NachbestellungNoetig)
	assert.NotEmpty(t, resp.SaleID)

	// Bestand, Protokoll, Verkauf und Sync-Status in einem Durchgang
	ware, _ := runner.wareRepo.GetByID("w1")
	assert.True(t, ware.Bestand.Equal(decimal.NewFromInt(9)))

	require.Len(t, runner.logRepo.eintraege, 1)
	eintrag := runner.logRepo.eintraege[0]
	assert.Equal(t, domlager.AktionVerkauf, eintrag.Aktion)
	assert.Equal(t, appkassa.SystemBenutzerKassa, eintrag.BenutzerID)
	assert.Contains(t, eintrag.Notiz, "Verkauf über Kassa Lager Nord (K-01)")

	require.Len(t, runner.saleRepo.sales, 1)
	// Betrag fehlt im Request: Menge * Verkaufspreis
	assert.True(t, runner.saleRepo.sales[0].Betrag.Equal(decimal.NewFromFloat(13.50)))

	assert.Equal(t, entity.KassaStatusVerbunden, runner.kassaRepo.kassen["k1"].Status)
	assert.False(t, runner.kassaRepo.syncedAt.IsZero())
}

func TestProcessSale_NachbestellungUnterMindestbestand(t *testing.T) {
	uc, runner := newWebhookSetup()

	resp, err := uc.ProcessSale(context.Background(), "kassa_geheim", dto.KassaWebhookRequest{
		WareID: "w1", Menge: decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	assert.True(t, resp.NachbestellungNoetig)
	assert.True(t, resp.NeuerBestand.Equal(decimal.NewFromInt(4)))
	assert.Contains(t, runner.logRepo.eintraege[0].Notiz, "NACHBESTELLUNG ERFORDERLICH")
	assert.True(t, runner.saleRepo.sales[0].NachbestellungNoetig)
}

func TestProcessSale_ExpliziterBetrag(t *testing.T) {
	uc, runner := newWebhookSetup()

	betrag := decimal.NewFromFloat(9.99)
	_, err := uc.ProcessSale(context.Background(), "kassa_geheim", dto.KassaWebhookRequest{
		WareID: "w1", Menge: decimal.NewFromInt(2), Betrag: &betrag,
	})
	require.NoError(t, err)
	assert.True(t, runner.saleRepo.sales[0].Betrag.Equal(betrag))
}

func TestProcessSale_UngueltigerAPIKey(t *testing.T) {
	uc, runner := newWebhookSetup()

	_, err := uc.ProcessSale(context.Background(), "falscher_key", dto.KassaWebhookRequest{
		WareID: "w1", Menge: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAPIKey)

	_, err = uc.ProcessSale(context.Background(), "", dto.KassaWebhookRequest{
		WareID: "w1", Menge: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAPIKey)

	// nichts geschrieben
	ware, _ := runner.wareRepo.GetByID("w1")
	assert.True(t, ware.Bestand.Equal(decimal.NewFromInt(12)))
	assert.Empty(t, runner.logRepo.eintraege)
	assert.Empty(t, runner.saleRepo.sales)
}

func TestProcessSale_UngueltigeEingabe(t *testing.T) {
	uc, _ := newWebhookSetup()

	_, err := uc.ProcessSale(context.Background(), "kassa_geheim", dto.KassaWebhookRequest{
		WareID: "w1", Menge: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ProcessSale(context.Background(), "kassa_geheim", dto.KassaWebhookRequest{
		WareID: "", Menge: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ProcessSale(context.Background(), "kassa_geheim", dto.KassaWebhookRequest{
		WareID: "fehlt", Menge: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
