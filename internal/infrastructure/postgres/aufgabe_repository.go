package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ repository.AufgabeRepository = (*AufgabeRepo)(nil)

// AufgabeRepo implementiert AufgabeRepository auf PostgreSQL.
// Die Sichtbarkeitsfilterung passiert im Use Case über den Hierarchie-Index.
type AufgabeRepo struct {
	q Querier
}

// NewAufgabeRepository konstruiert den Adapter.
func NewAufgabeRepository(q Querier) *AufgabeRepo {
	return &AufgabeRepo{q: q}
}

const aufgabeColumns = `id, titel, beschreibung, zugewiesen_an, projekt_id,
	prioritaet, status, faellig_am, created_at, updated_at`

// Create persistiert eine Aufgabe.
func (r *AufgabeRepo) Create(a *entity.Aufgabe) error {
	query := `
		INSERT INTO aufgaben (id, titel, beschreibung, zugewiesen_an, projekt_id, prioritaet, status, faellig_am, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Titel, a.Beschreibung, nullIfEmpty(a.ZugewiesenAn), nullIfEmpty(a.ProjektID),
		a.Prioritaet, a.Status, a.FaelligAm, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert aufgabe: %w", err)
	}
	return nil
}

// GetByID liest eine Aufgabe.
func (r *AufgabeRepo) GetByID(id string) (*entity.Aufgabe, error) {
	query := `SELECT ` + aufgabeColumns + ` FROM aufgaben WHERE id = $1`
	var a entity.Aufgabe
	var zugewiesenAn, projektID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Titel, &a.Beschreibung, &zugewiesenAn, &projektID,
		&a.Prioritaet, &a.Status, &a.FaelligAm, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get aufgabe: %w", err)
	}
	if zugewiesenAn != nil {
		a.ZugewiesenAn = *zugewiesenAn
	}
	if projektID != nil {
		a.ProjektID = *projektID
	}
	return &a, nil
}

// Update aktualisiert eine Aufgabe.
func (r *AufgabeRepo) Update(a *entity.Aufgabe) error {
	query := `
		UPDATE aufgaben SET titel = $2, beschreibung = $3, zugewiesen_an = $4, projekt_id = $5,
			prioritaet = $6, status = $7, faellig_am = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Titel, a.Beschreibung, nullIfEmpty(a.ZugewiesenAn), nullIfEmpty(a.ProjektID),
		a.Prioritaet, a.Status, a.FaelligAm, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update aufgabe: %w", err)
	}
	return nil
}

// List listet Aufgaben, optional nach Status gefiltert, neueste zuerst.
func (r *AufgabeRepo) List(status string, limit, offset int) ([]*entity.Aufgabe, error) {
	query := `SELECT ` + aufgabeColumns + ` FROM aufgaben
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list aufgaben: %w", err)
	}
	defer rows.Close()
	var list []*entity.Aufgabe
	for rows.Next() {
		var a entity.Aufgabe
		var zugewiesenAn, projektID *string
		if err := rows.Scan(
			&a.ID, &a.Titel, &a.Beschreibung, &zugewiesenAn, &projektID,
			&a.Prioritaet, &a.Status, &a.FaelligAm, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan aufgabe: %w", err)
		}
		if zugewiesenAn != nil {
			a.ZugewiesenAn = *zugewiesenAn
		}
		if projektID != nil {
			a.ProjektID = *projektID
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete entfernt eine Aufgabe.
func (r *AufgabeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM aufgaben WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete aufgabe: %w", err)
	}
	return nil
}
