package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ repository.KategorieRepository = (*KategorieRepo)(nil)

// KategorieRepo implementiert KategorieRepository auf PostgreSQL.
// Zusatzfelder liegen als JSONB-Spalte; die Baumstruktur über parent_id.
type KategorieRepo struct {
	q Querier
}

// NewKategorieRepository konstruiert den Adapter.
func NewKategorieRepository(q Querier) *KategorieRepo {
	return &KategorieRepo{q: q}
}

// Create persistiert eine Kategorie.
func (r *KategorieRepo) Create(k *entity.Kategorie) error {
	query := `
		INSERT INTO kategorien (id, parent_id, name, icon_name, bild, zusatzfelder, sortierung, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		k.ID, nullIfEmpty(k.ParentID), k.Name, k.IconName, k.Bild, k.Zusatzfelder, k.Sortierung,
		k.CreatedAt, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert kategorie: %w", err)
	}
	return nil
}

// GetByID liest eine Kategorie.
func (r *KategorieRepo) GetByID(id string) (*entity.Kategorie, error) {
	query := `
		SELECT id, parent_id, name, icon_name, bild, zusatzfelder, sortierung, created_at, updated_at
		FROM kategorien WHERE id = $1`
	var k entity.Kategorie
	var parentID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&k.ID, &parentID, &k.Name, &k.IconName, &k.Bild, &k.Zusatzfelder, &k.Sortierung,
		&k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kategorie: %w", err)
	}
	if parentID != nil {
		k.ParentID = *parentID
	}
	return &k, nil
}

// Update aktualisiert eine Kategorie.
func (r *KategorieRepo) Update(k *entity.Kategorie) error {
	query := `
		UPDATE kategorien SET name = $2, icon_name = $3, bild = $4, zusatzfelder = $5, sortierung = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		k.ID, k.Name, k.IconName, k.Bild, k.Zusatzfelder, k.Sortierung, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update kategorie: %w", err)
	}
	return nil
}

// ListAll liest den gesamten Baum. Der Bestand ist klein; die Baumlogik
// (Kinder, Pfade) arbeitet in-memory in domain/kategorie.
func (r *KategorieRepo) ListAll() ([]*entity.Kategorie, error) {
	query := `
		SELECT id, parent_id, name, icon_name, bild, zusatzfelder, sortierung, created_at, updated_at
		FROM kategorien ORDER BY sortierung, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list kategorien: %w", err)
	}
	defer rows.Close()
	var list []*entity.Kategorie
	for rows.Next() {
		var k entity.Kategorie
		var parentID *string
		if err := rows.Scan(
			&k.ID, &parentID, &k.Name, &k.IconName, &k.Bild, &k.Zusatzfelder, &k.Sortierung,
			&k.CreatedAt, &k.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan kategorie: %w", err)
		}
		if parentID != nil {
			k.ParentID = *parentID
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}

// Delete entfernt eine Kategorie.
func (r *KategorieRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM kategorien WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kategorie: %w", err)
	}
	return nil
}
