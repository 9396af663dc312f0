package repository

import "context"

// DashboardRepository definiert die read-only Zählabfragen für die
// Dashboard-Übersicht. Eigene Schnittstelle, damit die Aggregation nicht
// über die CRUD-Repositories mit Seitenlimits laufen muss.
type DashboardRepository interface {
	CountProjekteNachStatus(ctx context.Context) (map[string]int, error)
	CountAufgabenNachStatus(ctx context.Context) (map[string]int, error)
	CountWarenNachStatus(ctx context.Context) (map[string]int, error)
	CountBenutzerAktiv(ctx context.Context) (int, error)
	CountAnfragen(ctx context.Context, status string) (int, error)
	CountTickets(ctx context.Context, status string) (int, error)
}
