package lager_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applager "github.com/ep-bau/ep-system/internal/application/lager"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	domlager "github.com/ep-bau/ep-system/internal/domain/lager"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-Memory-Fakes
// ──────────────────────────────────────────────────────────────────────────────

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
	if _, ok := r.waren[w.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *w
	r.waren[w.ID] = &cp
	return nil
}
func (r *fakeWareRepo) List(int, int) ([]*entity.Ware, error) { return nil, nil }
func (r *fakeWareRepo) ListByKategorie(string, int, int) ([]*entity.Ware, error) { return nil, nil }
func (r *fakeWareRepo) Delete(id string) error { delete(r.waren, id); return nil }
func (r *fakeWareRepo) GetForUpdate(id string) (*entity.Ware, error) { return r.GetByID(id) }

type fakeLogRepo struct {
	eintraege []*entity.WarenLog
}

func (r *fakeLogRepo) Create(e *entity.WarenLog) error { r.eintraege = append(r.eintraege, e); return nil }
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

type fakeBenutzerRepo struct {
	benutzer map[string]*entity.Benutzer
}

func (r *fakeBenutzerRepo) Create(b *entity.Benutzer) error { r.benutzer[b.ID] = b; return nil }
func (r *fakeBenutzerRepo) GetByID(id string) (*entity.Benutzer, error) {
	return r.benutzer[id], nil
}
func (r *fakeBenutzerRepo) GetByEmail(string) (*entity.Benutzer, error)  { return nil, nil }
func (r *fakeBenutzerRepo) GetByQRCode(string) (*entity.Benutzer, error) { return nil, nil }
func (r *fakeBenutzerRepo) Update(*entity.Benutzer) error                { return nil }
func (r *fakeBenutzerRepo) ListAll() ([]*entity.Benutzer, error)         { return nil, nil }
func (r *fakeBenutzerRepo) List(string, int, int) ([]*entity.Benutzer, error) {
	return nil, nil
}
func (r *fakeBenutzerRepo) Delete(string) error { return nil }

type fakeProjektRepo struct {
	projekte map[string]*entity.Projekt
}

func (r *fakeProjektRepo) Create(p *entity.Projekt) error { r.projekte[p.ID] = p; return nil }
func (r *fakeProjektRepo) GetByID(id string) (*entity.Projekt, error) {
	return r.projekte[id], nil
}
func (r *fakeProjektRepo) GetByNummer(string) (*entity.Projekt, error) { return nil, nil }
func (r *fakeProjektRepo) Update(*entity.Projekt) error                { return nil }
func (r *fakeProjektRepo) List(string, int, int) ([]*entity.Projekt, error) {
	return nil, nil
}
func (r *fakeProjektRepo) Delete(string) error { return nil }

// fakeTxRunner ruft fn direkt mit den Fakes auf; "Transaktion" ist hier nur der Rahmen.
type fakeTxRunner struct {
	wareRepo *fakeWareRepo
	logRepo  *fakeLogRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	wareRepo repository.WareRepository,
	logRepo repository.WarenLogRepository,
) error) error {
	return fn(r.wareRepo, r.logRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func newTestSetup() (*applager.RecordMovementUseCase, *fakeWareRepo, *fakeLogRepo) {
	wareRepo := &fakeWareRepo{waren: map[string]*entity.Ware{
		"w1": {
			ID: "w1", Name: "Kabeltrommel", Einheit: entity.EinheitStueck,
			Bestand: decimal.NewFromInt(10), Mindestbestand: decimal.NewFromInt(5),
			Status: domlager.StatusVerfuegbar,
		},
	}}
	logRepo := &fakeLogRepo{}
	benutzerRepo := &fakeBenutzerRepo{benutzer: map[string]*entity.Benutzer{
		"b1": {ID: "b1", Vorname: "Max", Nachname: "Huber", Status: entity.BenutzerStatusAktiv},
	}}
	projektRepo := &fakeProjektRepo{projekte: map[string]*entity.Projekt{
		"p1": {ID: "p1", Nummer: "EP-2024-001", Name: "Dachsanierung"},
	}}
	uc := applager.NewRecordMovementUseCase(
		&fakeTxRunner{wareRepo: wareRepo, logRepo: logRepo},
		benutzerRepo, projektRepo,
	)
	return uc, wareRepo, logRepo
}

func TestRecord_EntnahmeMitProjekt(t *testing.T) {
	uc, wareRepo, logRepo := newTestSetup()

	resp, err := uc.Record(context.Background(), applager.MovementInput{
		BenutzerID: "b1", WareID: "w1",
		Aktion: domlager.AktionEntnahme, Menge: decimal.NewFromInt(6),
		ProjektID: "p1",
	})
	require.NoError(t, err)

	assert.True(t, resp.Ware.Bestand.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, domlager.StatusNiedrig, resp.Ware.Status)

	// Ware und Protokoll wurden in derselben Transaktion geschrieben
	gespeichert, _ := wareRepo.GetByID("w1")
	assert.True(t, gespeichert.Bestand.Equal(decimal.NewFromInt(4)))
	require.Len(t, logRepo.eintraege, 1)

	eintrag := logRepo.eintraege[0]
	assert.Equal(t, "Kabeltrommel", eintrag.WareName)
	assert.Equal(t, "Max Huber", eintrag.BenutzerName)
	assert.Equal(t, "EP-2024-001", eintrag.ProjektNummer)
	assert.True(t, eintrag.Menge.Equal(decimal.NewFromInt(6)))
	assert.Contains(t, eintrag.Notiz, "Entnahme vom Terminal")
	assert.Contains(t, eintrag.Notiz, "für Projekt EP-2024-001")
}

func TestRecord_SzenarioBisAusverkauft(t *testing.T) {
	uc, wareRepo, _ := newTestSetup()
	ctx := context.Background()

	_, err := uc.Record(ctx, applager.MovementInput{
		BenutzerID: "b1", WareID: "w1", Aktion: domlager.AktionEntnahme, Menge: decimal.NewFromInt(6),
	})
	require.NoError(t, err)

	resp, err := uc.Record(ctx, applager.MovementInput{
		BenutzerID: "b1", WareID: "w1", Aktion: domlager.AktionEntnahme, Menge: decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.True(t, resp.Ware.Bestand.IsZero())
	assert.Equal(t, domlager.StatusAusverkauft, resp.Ware.Status)

	resp, err = uc.Record(ctx, applager.MovementInput{
		BenutzerID: "b1", WareID: "w1", Aktion: domlager.AktionRueckgabe, Menge: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.True(t, resp.Ware.Bestand.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, domlager.StatusVerfuegbar, resp.Ware.Status)

	gespeichert, _ := wareRepo.GetByID("w1")
	assert.Equal(t, domlager.StatusVerfuegbar, gespeichert.Status)
}

func TestRecord_InventurAufNull(t *testing.T) {
	uc, _, logRepo := newTestSetup()

	// Bestand 10 → Inventur zählt 0: Bestand absolut gesetzt, Menge = |0-10|
	resp, err := uc.Record(context.Background(), applager.MovementInput{
		BenutzerID: "b1", WareID: "w1", Aktion: domlager.AktionInventur, Menge: decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, resp.Ware.Bestand.IsZero())
	assert.Equal(t, domlager.StatusAusverkauft, resp.Ware.Status)

	require.Len(t, logRepo.eintraege, 1)
	assert.Equal(t, domlager.AktionInventur, logRepo.eintraege[0].Aktion)
	assert.True(t, logRepo.eintraege[0].Menge.Equal(decimal.NewFromInt(10)))
}

func TestRecord_Fehlerfaelle(t *testing.T) {
	uc, _, logRepo := newTestSetup()
	ctx := context.Background()

	_, err := uc.Record(ctx, applager.MovementInput{
		BenutzerID: "b1", WareID: "w1", Aktion: "Quatsch", Menge: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Verkauf ist dem Webhook vorbehalten
	_, err = uc.Record(ctx, applager.MovementInput{
		BenutzerID: "b1", WareID: "w1", Aktion: domlager.AktionVerkauf, Menge: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record(ctx, applager.MovementInput{
		BenutzerID: "unbekannt", WareID: "w1", Aktion: domlager.AktionEntnahme, Menge: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Record(ctx, applager.MovementInput{
		BenutzerID: "b1", WareID: "fehlt", Aktion: domlager.AktionEntnahme, Menge: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Fehlgeschlagene Buchungen hinterlassen keine Protokolleinträge
	assert.Empty(t, logRepo.eintraege)
}
