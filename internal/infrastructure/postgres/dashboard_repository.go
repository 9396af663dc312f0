package postgres

import (
	"context"
	"fmt"

	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo implementiert die Zählabfragen der Dashboard-Übersicht.
// Alle Abfragen sind read-only und laufen direkt gegen den Pool.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository konstruiert den Adapter.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

func (r *DashboardRepo) countByStatus(ctx context.Context, table string) (map[string]int, error) {
	// table kommt ausschließlich aus den Methoden unten, nie von außen.
	query := fmt.Sprintf(`SELECT status, COUNT(*) FROM %s GROUP BY status`, table)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count %s nach status: %w", table, err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan %s count: %w", table, err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *DashboardRepo) CountProjekteNachStatus(ctx context.Context) (map[string]int, error) {
	return r.countByStatus(ctx, "projekte")
}

func (r *DashboardRepo) CountAufgabenNachStatus(ctx context.Context) (map[string]int, error) {
	return r.countByStatus(ctx, "aufgaben")
}

func (r *DashboardRepo) CountWarenNachStatus(ctx context.Context) (map[string]int, error) {
	return r.countByStatus(ctx, "waren")
}

func (r *DashboardRepo) CountBenutzerAktiv(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM benutzer WHERE status = $1`, entity.BenutzerStatusAktiv).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count benutzer aktiv: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) CountAnfragen(ctx context.Context, status string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM anfragen WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count anfragen: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) CountTickets(ctx context.Context, status string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return n, nil
}
