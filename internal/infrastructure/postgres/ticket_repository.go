package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementiert TicketRepository auf PostgreSQL.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository konstruiert den Adapter.
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

// Create persistiert ein Ticket.
func (r *TicketRepo) Create(t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, betreff, beschreibung, erstellt_von, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Betreff, t.Beschreibung, nullIfEmpty(t.ErstelltVon), t.Email, t.Status,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID liest ein Ticket.
func (r *TicketRepo) GetByID(id string) (*entity.Ticket, error) {
	query := `
		SELECT id, betreff, beschreibung, erstellt_von, email, status, created_at, updated_at
		FROM tickets WHERE id = $1`
	var t entity.Ticket
	var erstelltVon *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Betreff, &t.Beschreibung, &erstelltVon, &t.Email, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if erstelltVon != nil {
		t.ErstelltVon = *erstelltVon
	}
	return &t, nil
}

// Update aktualisiert ein Ticket.
func (r *TicketRepo) Update(t *entity.Ticket) error {
	query := `UPDATE tickets SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Status, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

// List listet Tickets, optional nach Status gefiltert, neueste zuerst.
func (r *TicketRepo) List(status string, limit, offset int) ([]*entity.Ticket, error) {
	query := `
		SELECT id, betreff, beschreibung, erstellt_von, email, status, created_at, updated_at
		FROM tickets
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		var erstelltVon *string
		if err := rows.Scan(
			&t.ID, &t.Betreff, &t.Beschreibung, &erstelltVon, &t.Email, &t.Status,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		if erstelltVon != nil {
			t.ErstelltVon = *erstelltVon
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete entfernt ein Ticket.
func (r *TicketRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}
