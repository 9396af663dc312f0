package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep-bau/ep-system/internal/application/analytics"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	domlager "github.com/ep-bau/ep-system/internal/domain/lager"
)

type fakeDashboardRepo struct {
	projekte map[string]int
	aufgaben map[string]int
	waren    map[string]int
	benutzer int
	anfragen int
	tickets  int
}

func (r *fakeDashboardRepo) CountProjekteNachStatus(context.Context) (map[string]int, error) {
	return r.projekte, nil
}

func (r *fakeDashboardRepo) CountAufgabenNachStatus(context.Context) (map[string]int, error) {
	return r.aufgaben, nil
}

func (r *fakeDashboardRepo) CountWarenNachStatus(context.Context) (map[string]int, error) {
	return r.waren, nil
}

func (r *fakeDashboardRepo) CountBenutzerAktiv(context.Context) (int, error) {
	return r.benutzer, nil
}

func (r *fakeDashboardRepo) CountAnfragen(context.Context, string) (int, error) {
	return r.anfragen, nil
}

func (r *fakeDashboardRepo) CountTickets(context.Context, string) (int, error) {
	return r.tickets, nil
}

func TestDashboardOverview(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeDashboardRepo{
		projekte: map[string]int{
			entity.ProjektStatusNeu:           2,
			entity.ProjektStatusInBearbeitung: 3,
			entity.ProjektStatusAbgeschlossen: 5,
		},
		aufgaben: map[string]int{
			entity.AufgabeStatusOffen:    4,
			entity.AufgabeStatusInArbeit: 2,
			entity.AufgabeStatusErledigt: 10,
		},
		waren: map[string]int{
			domlager.StatusVerfuegbar:  30,
			domlager.StatusNiedrig:     6,
			domlager.StatusAusverkauft: 1,
		},
		benutzer: 12,
		anfragen: 7,
		tickets:  3,
	})

	resp, err := uc.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, resp.ProjekteGesamt)
	assert.Equal(t, 3, resp.ProjekteInBearbeitung)
	assert.Equal(t, 5, resp.ProjekteAbgeschlossen)
	assert.Equal(t, 16, resp.AufgabenGesamt)
	// offen = Offen + In Arbeit
	assert.Equal(t, 6, resp.AufgabenOffen)
	assert.Equal(t, 12, resp.BenutzerAktiv)
	assert.Equal(t, 37, resp.WarenGesamt)
	assert.Equal(t, 6, resp.WarenNiedrig)
	assert.Equal(t, 1, resp.WarenAusverkauft)
	assert.Equal(t, 7, resp.AnfragenNeu)
	assert.Equal(t, 3, resp.TicketsOffen)
}

func TestDashboardOverviewLeer(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeDashboardRepo{})

	resp, err := uc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.ProjekteGesamt)
	assert.Equal(t, 0, resp.AufgabenOffen)
	assert.Equal(t, 0, resp.WarenGesamt)
}
