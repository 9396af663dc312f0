package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/usecase"
	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
)

type fakeAnfrageRepo struct {
	anfragen map[string]*entity.Anfrage
}

func (r *fakeAnfrageRepo) Create(a *entity.Anfrage) error { r.anfragen[a.ID] = a; return nil }
func (r *fakeAnfrageRepo) GetByID(id string) (*entity.Anfrage, error) {
	return r.anfragen[id], nil
}
func (r *fakeAnfrageRepo) Update(a *entity.Anfrage) error { r.anfragen[a.ID] = a; return nil }
func (r *fakeAnfrageRepo) List(string, int, int) ([]*entity.Anfrage, error) {
	out := make([]*entity.Anfrage, 0, len(r.anfragen))
	for _, a := range r.anfragen {
		out = append(out, a)
	}
	return out, nil
}
func (r *fakeAnfrageRepo) Delete(id string) error { delete(r.anfragen, id); return nil }

type fakeKategorieRepo struct {
	kategorien []*entity.Kategorie
}

func (r *fakeKategorieRepo) Create(k *entity.Kategorie) error { r.kategorien = append(r.kategorien, k); return nil }
func (r *fakeKategorieRepo) GetByID(id string) (*entity.Kategorie, error) {
	for _, k := range r.kategorien {
		if k.ID == id {
			return k, nil
		}
	}
	return nil, nil
}
func (r *fakeKategorieRepo) Update(*entity.Kategorie) error { return nil }
func (r *fakeKategorieRepo) ListAll() ([]*entity.Kategorie, error) {
	return r.kategorien, nil
}
func (r *fakeKategorieRepo) Delete(string) error { return nil }

type fakeProjektRepo struct {
	projekte map[string]*entity.Projekt
}

func (r *fakeProjektRepo) Create(p *entity.Projekt) error { r.projekte[p.ID] = p; return nil }
func (r *fakeProjektRepo) GetByID(id string) (*entity.Projekt, error) {
	return r.projekte[id], nil
}
func (r *fakeProjektRepo) GetByNummer(nummer string) (*entity.Projekt, error) {
	for _, p := range r.projekte {
		if p.Nummer == nummer {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProjektRepo) Update(*entity.Projekt) error { return nil }
func (r *fakeProjektRepo) List(string, int, int) ([]*entity.Projekt, error) {
	return nil, nil
}
func (r *fakeProjektRepo) Delete(string) error { return nil }

func newAnfrageSetup() (*usecase.AnfrageUseCase, *fakeAnfrageRepo, *fakeProjektRepo) {
	anfrageRepo := &fakeAnfrageRepo{anfragen: map[string]*entity.Anfrage{}}
	kategorieRepo := &fakeKategorieRepo{kategorien: []*entity.Kategorie{
		{ID: "bau", Name: "Bau"},
		{ID: "neubau", ParentID: "bau", Name: "Neubau", Zusatzfelder: []entity.Zusatzfeld{
			{Name: "wohnflaeche", Label: "Wohnfläche", Typ: entity.FeldTypNumber, Pflicht: true},
		}},
		{ID: "efh", ParentID: "neubau", Name: "Einfamilienhaus", Zusatzfelder: []entity.Zusatzfeld{
			{Name: "stockwerke", Label: "Stockwerke", Typ: entity.FeldTypNumber},
		}},
	}}
	projektRepo := &fakeProjektRepo{projekte: map[string]*entity.Projekt{}}
	return usecase.NewAnfrageUseCase(anfrageRepo, kategorieRepo, projektRepo), anfrageRepo, projektRepo
}

func TestAnfrageCreate(t *testing.T) {
	uc, _, _ := newAnfrageSetup()

	resp, err := uc.Create(dto.CreateAnfrageRequest{
		Name: "Familie Moser", Email: "moser@example.at",
		KategoriePfad: []string{"bau", "neubau", "efh"},
		Feldwerte:     map[string]string{"wohnflaeche": "140"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AnfrageStatusNeu, resp.Status)
	assert.Equal(t, []string{"bau", "neubau", "efh"}, resp.KategoriePfad)
}

func TestAnfrageCreate_PflichtfeldFehlt(t *testing.T) {
	uc, _, _ := newAnfrageSetup()

	_, err := uc.Create(dto.CreateAnfrageRequest{
		Name: "Familie Moser", Email: "moser@example.at",
		KategoriePfad: []string{"bau", "neubau", "efh"},
		Feldwerte:     map[string]string{"wohnflaeche": "   "},
	})
	assert.ErrorIs(t, err, domain.ErrPflichtfeldFehlt)
}

func TestAnfrageCreate_UngueltigerPfad(t *testing.T) {
	uc, _, _ := newAnfrageSetup()

	// efh ist kein Kind der Wurzel
	_, err := uc.Create(dto.CreateAnfrageRequest{
		Name: "Familie Moser", Email: "moser@example.at",
		KategoriePfad: []string{"bau", "efh"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateAnfrageRequest{
		Name: "Familie Moser", Email: "moser@example.at",
		KategoriePfad: []string{"gibtsnicht"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnfrageConvert(t *testing.T) {
	uc, anfrageRepo, projektRepo := newAnfrageSetup()

	resp, err := uc.Create(dto.CreateAnfrageRequest{
		Name: "Familie Moser", Email: "moser@example.at", Adresse: "Hauptstraße 1",
		Nachricht:     "Neubau eines Einfamilienhauses",
		KategoriePfad: []string{"bau", "neubau", "efh"},
		Feldwerte:     map[string]string{"wohnflaeche": "140", "stockwerke": "2"},
	})
	require.NoError(t, err)

	projekt, err := uc.Convert(resp.ID, "EP-2026-042")
	require.NoError(t, err)
	assert.Equal(t, "EP-2026-042", projekt.Nummer)
	assert.Equal(t, entity.ProjektStatusNeu, projekt.Status)
	// Pfad und Feldwerte werden übernommen
	assert.Equal(t, []string{"bau", "neubau", "efh"}, projekt.KategoriePfad)
	assert.Equal(t, "140", projekt.Feldwerte["wohnflaeche"])

	a := anfrageRepo.anfragen[resp.ID]
	assert.Equal(t, entity.AnfrageStatusAngenommen, a.Status)
	assert.Equal(t, projekt.ID, a.ProjektID)
	require.NotNil(t, projektRepo.projekte[projekt.ID])

	// zweite Überführung derselben Anfrage wird abgewiesen
	_, err = uc.Convert(resp.ID, "EP-2026-043")
	assert.ErrorIs(t, err, domain.ErrConflict)

	// doppelte Projektnummer wird abgewiesen
	resp2, err := uc.Create(dto.CreateAnfrageRequest{
		Name: "Zweiter Kunde", Email: "zwei@example.at",
		KategoriePfad: []string{"bau", "neubau"},
		Feldwerte:     map[string]string{"wohnflaeche": "90"},
	})
	require.NoError(t, err)
	_, err = uc.Convert(resp2.ID, "EP-2026-042")
	assert.ErrorIs(t, err, domain.ErrProjektNrExists)
}
