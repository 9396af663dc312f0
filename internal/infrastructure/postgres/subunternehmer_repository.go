package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ repository.SubunternehmerRepository = (*SubunternehmerRepo)(nil)

// SubunternehmerRepo implementiert SubunternehmerRepository auf PostgreSQL.
type SubunternehmerRepo struct {
	q Querier
}

// NewSubunternehmerRepository konstruiert den Adapter.
func NewSubunternehmerRepository(q Querier) *SubunternehmerRepo {
	return &SubunternehmerRepo{q: q}
}

const subunternehmerColumns = `id, firma, ansprechpartner, email, telefon, adresse, plz, stadt,
	spezialisierung, stundensatz, status, notizen, created_at, updated_at`

// Create persistiert einen Subunternehmer.
func (r *SubunternehmerRepo) Create(s *entity.Subunternehmer) error {
	query := `
		INSERT INTO subunternehmer (id, firma, ansprechpartner, email, telefon, adresse, plz, stadt, spezialisierung, stundensatz, status, notizen, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Firma, s.Ansprechpartner, s.Email, s.Telefon, s.Adresse, s.PLZ, s.Stadt,
		s.Spezialisierung, s.Stundensatz, s.Status, s.Notizen, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subunternehmer: %w", err)
	}
	return nil
}

// GetByID liest einen Subunternehmer.
func (r *SubunternehmerRepo) GetByID(id string) (*entity.Subunternehmer, error) {
	query := `SELECT ` + subunternehmerColumns + ` FROM subunternehmer WHERE id = $1`
	var s entity.Subunternehmer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Firma, &s.Ansprechpartner, &s.Email, &s.Telefon, &s.Adresse, &s.PLZ, &s.Stadt,
		&s.Spezialisierung, &s.Stundensatz, &s.Status, &s.Notizen, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subunternehmer: %w", err)
	}
	return &s, nil
}

// Update aktualisiert einen Subunternehmer.
func (r *SubunternehmerRepo) Update(s *entity.Subunternehmer) error {
	query := `
		UPDATE subunternehmer SET firma = $2, ansprechpartner = $3, email = $4, telefon = $5,
			adresse = $6, plz = $7, stadt = $8, spezialisierung = $9, stundensatz = $10,
			status = $11, notizen = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Firma, s.Ansprechpartner, s.Email, s.Telefon, s.Adresse, s.PLZ, s.Stadt,
		s.Spezialisierung, s.Stundensatz, s.Status, s.Notizen, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subunternehmer: %w", err)
	}
	return nil
}

// List listet Subunternehmer, optional nach Status gefiltert, alphabetisch.
func (r *SubunternehmerRepo) List(status string, limit, offset int) ([]*entity.Subunternehmer, error) {
	query := `SELECT ` + subunternehmerColumns + ` FROM subunternehmer
		WHERE ($1 = '' OR status = $1)
		ORDER BY firma LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list subunternehmer: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subunternehmer
	for rows.Next() {
		var s entity.Subunternehmer
		if err := rows.Scan(
			&s.ID, &s.Firma, &s.Ansprechpartner, &s.Email, &s.Telefon, &s.Adresse, &s.PLZ, &s.Stadt,
			&s.Spezialisierung, &s.Stundensatz, &s.Status, &s.Notizen, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan subunternehmer: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete entfernt einen Subunternehmer.
func (r *SubunternehmerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM subunternehmer WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subunternehmer: %w", err)
	}
	return nil
}
