// Package analytics enthält den Use Case für die Dashboard-Übersicht.
package analytics

import (
	"context"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	domlager "github.com/ep-bau/ep-system/internal/domain/lager"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

// DashboardUseCase aggregiert die Kennzahlen der Startseite.
//
// Datenquelle: DashboardRepository (read-only Zählabfragen). Es wird nicht
// über die CRUD-Repositories iteriert; die Zählung passiert in der Datenbank.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase konstruiert den Use Case.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetOverview liest alle Kennzahlen und baut die Antwort.
//
// Vier parallele Abfragegruppen:
//  1. Projekte nach Status
//  2. Aufgaben nach Status
//  3. Waren nach Status
//  4. Einzelzähler (aktive Benutzer, neue Anfragen, offene Tickets)
func (uc *DashboardUseCase) GetOverview(ctx context.Context) (*dto.DashboardResponse, error) {
	type mapResult struct {
		counts map[string]int
		err    error
	}
	type countsResult struct {
		benutzer int
		anfragen int
		tickets  int
		err      error
	}

	projekteCh := make(chan mapResult, 1)
	aufgabenCh := make(chan mapResult, 1)
	warenCh := make(chan mapResult, 1)
	zaehlerCh := make(chan countsResult, 1)

	go func() {
		counts, err := uc.repo.CountProjekteNachStatus(ctx)
		projekteCh <- mapResult{counts, err}
	}()
	go func() {
		counts, err := uc.repo.CountAufgabenNachStatus(ctx)
		aufgabenCh <- mapResult{counts, err}
	}()
	go func() {
		counts, err := uc.repo.CountWarenNachStatus(ctx)
		warenCh <- mapResult{counts, err}
	}()
	go func() {
		benutzer, err := uc.repo.CountBenutzerAktiv(ctx)
		if err != nil {
			zaehlerCh <- countsResult{err: err}
			return
		}
		anfragen, err := uc.repo.CountAnfragen(ctx, entity.AnfrageStatusNeu)
		if err != nil {
			zaehlerCh <- countsResult{err: err}
			return
		}
		tickets, err := uc.repo.CountTickets(ctx, entity.TicketStatusOffen)
		zaehlerCh <- countsResult{benutzer: benutzer, anfragen: anfragen, tickets: tickets, err: err}
	}()

	projekte := <-projekteCh
	aufgaben := <-aufgabenCh
	waren := <-warenCh
	zaehler := <-zaehlerCh

	for _, r := range []error{projekte.err, aufgaben.err, waren.err, zaehler.err} {
		if r != nil {
			return nil, r
		}
	}

	resp := &dto.DashboardResponse{
		ProjekteInBearbeitung: projekte.counts[entity.ProjektStatusInBearbeitung],
		ProjekteAbgeschlossen: projekte.counts[entity.ProjektStatusAbgeschlossen],
		ProjekteNachStatus:    projekte.counts,
		AufgabenOffen:         aufgaben.counts[entity.AufgabeStatusOffen] + aufgaben.counts[entity.AufgabeStatusInArbeit],
		BenutzerAktiv:         zaehler.benutzer,
		WarenNiedrig:          waren.counts[domlager.StatusNiedrig],
		WarenAusverkauft:      waren.counts[domlager.StatusAusverkauft],
		AnfragenNeu:           zaehler.anfragen,
		TicketsOffen:          zaehler.tickets,
	}
	for _, n := range projekte.counts {
		resp.ProjekteGesamt += n
	}
	for _, n := range aufgaben.counts {
		resp.AufgabenGesamt += n
	}
	for _, n := range waren.counts {
		resp.WarenGesamt += n
	}
	return resp, nil
}
