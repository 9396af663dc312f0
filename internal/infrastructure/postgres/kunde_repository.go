package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ repository.KundeRepository = (*KundeRepo)(nil)

// KundeRepo implementiert KundeRepository auf PostgreSQL.
type KundeRepo struct {
	q Querier
}

// NewKundeRepository konstruiert den Adapter.
func NewKundeRepository(q Querier) *KundeRepo {
	return &KundeRepo{q: q}
}

// Create persistiert einen Kunden.
func (r *KundeRepo) Create(k *entity.Kunde) error {
	query := `
		INSERT INTO kunden (id, firma, vorname, nachname, email, telefon, adresse, notiz, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		k.ID, k.Firma, k.Vorname, k.Nachname, k.Email, k.Telefon, k.Adresse, k.Notiz,
		k.CreatedAt, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert kunde: %w", err)
	}
	return nil
}

// GetByID liest einen Kunden.
func (r *KundeRepo) GetByID(id string) (*entity.Kunde, error) {
	query := `
		SELECT id, firma, vorname, nachname, email, telefon, adresse, notiz, created_at, updated_at
		FROM kunden WHERE id = $1`
	var k entity.Kunde
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&k.ID, &k.Firma, &k.Vorname, &k.Nachname, &k.Email, &k.Telefon, &k.Adresse, &k.Notiz,
		&k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kunde: %w", err)
	}
	return &k, nil
}

// Update aktualisiert einen Kunden.
func (r *KundeRepo) Update(k *entity.Kunde) error {
	query := `
		UPDATE kunden SET firma = $2, vorname = $3, nachname = $4, email = $5, telefon = $6,
			adresse = $7, notiz = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		k.ID, k.Firma, k.Vorname, k.Nachname, k.Email, k.Telefon, k.Adresse, k.Notiz, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update kunde: %w", err)
	}
	return nil
}

// List listet Kunden alphabetisch nach Firma bzw. Nachname.
func (r *KundeRepo) List(limit, offset int) ([]*entity.Kunde, error) {
	query := `
		SELECT id, firma, vorname, nachname, email, telefon, adresse, notiz, created_at, updated_at
		FROM kunden ORDER BY firma, nachname LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list kunden: %w", err)
	}
	defer rows.Close()
	var list []*entity.Kunde
	for rows.Next() {
		var k entity.Kunde
		if err := rows.Scan(
			&k.ID, &k.Firma, &k.Vorname, &k.Nachname, &k.Email, &k.Telefon, &k.Adresse, &k.Notiz,
			&k.CreatedAt, &k.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan kunde: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}

// Delete entfernt einen Kunden.
func (r *KundeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM kunden WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kunde: %w", err)
	}
	return nil
}
