package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ repository.AnfrageRepository = (*AnfrageRepo)(nil)

// AnfrageRepo implementiert AnfrageRepository auf PostgreSQL.
type AnfrageRepo struct {
	q Querier
}

// NewAnfrageRepository konstruiert den Adapter.
func NewAnfrageRepository(q Querier) *AnfrageRepo {
	return &AnfrageRepo{q: q}
}

const anfrageColumns = `id, name, email, telefon, adresse, nachricht,
	kategorie_pfad, feldwerte, status, projekt_id, created_at, updated_at`

// Create persistiert eine Anfrage.
func (r *AnfrageRepo) Create(a *entity.Anfrage) error {
	query := `
		INSERT INTO anfragen (id, name, email, telefon, adresse, nachricht, kategorie_pfad, feldwerte, status, projekt_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Name, a.Email, a.Telefon, a.Adresse, a.Nachricht,
		a.KategoriePfad, a.Feldwerte, a.Status, nullIfEmpty(a.ProjektID), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert anfrage: %w", err)
	}
	return nil
}

// GetByID liest eine Anfrage.
func (r *AnfrageRepo) GetByID(id string) (*entity.Anfrage, error) {
	query := `SELECT ` + anfrageColumns + ` FROM anfragen WHERE id = $1`
	var a entity.Anfrage
	var projektID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Telefon, &a.Adresse, &a.Nachricht,
		&a.KategoriePfad, &a.Feldwerte, &a.Status, &projektID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get anfrage: %w", err)
	}
	if projektID != nil {
		a.ProjektID = *projektID
	}
	return &a, nil
}

// Update aktualisiert eine Anfrage (Status und Projektverknüpfung).
func (r *AnfrageRepo) Update(a *entity.Anfrage) error {
	query := `
		UPDATE anfragen SET status = $2, projekt_id = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Status, nullIfEmpty(a.ProjektID), a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update anfrage: %w", err)
	}
	return nil
}

// List listet Anfragen, optional nach Status gefiltert, neueste zuerst.
func (r *AnfrageRepo) List(status string, limit, offset int) ([]*entity.Anfrage, error) {
	query := `SELECT ` + anfrageColumns + ` FROM anfragen
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list anfragen: %w", err)
	}
	defer rows.Close()
	var list []*entity.Anfrage
	for rows.Next() {
		var a entity.Anfrage
		var projektID *string
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.Telefon, &a.Adresse, &a.Nachricht,
			&a.KategoriePfad, &a.Feldwerte, &a.Status, &projektID, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan anfrage: %w", err)
		}
		if projektID != nil {
			a.ProjektID = *projektID
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete entfernt eine Anfrage.
func (r *AnfrageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM anfragen WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete anfrage: %w", err)
	}
	return nil
}
