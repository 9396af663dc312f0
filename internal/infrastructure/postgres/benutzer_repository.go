package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ repository.BenutzerRepository = (*BenutzerRepo)(nil)

// BenutzerRepo implementiert BenutzerRepository auf PostgreSQL.
type BenutzerRepo struct {
	q Querier
}

// NewBenutzerRepository konstruiert den Adapter.
func NewBenutzerRepository(q Querier) *BenutzerRepo {
	return &BenutzerRepo{q: q}
}

const benutzerColumns = `id, vorname, nachname, email, passwort_hash, position,
	vorgesetzter_id, qr_code, status, created_at, updated_at`

// Create persistiert einen Benutzer. E-Mail und QR-Code sind eindeutig.
func (r *BenutzerRepo) Create(b *entity.Benutzer) error {
	query := `
		INSERT INTO benutzer (id, vorname, nachname, email, passwort_hash, position, vorgesetzter_id, qr_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Vorname, b.Nachname, b.Email, b.PasswortHash, b.Position,
		nullIfEmpty(b.VorgesetzterID), b.QRCode, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert benutzer: %w", err)
	}
	return nil
}

// GetByID liest einen Benutzer.
func (r *BenutzerRepo) GetByID(id string) (*entity.Benutzer, error) {
	return r.get(`SELECT `+benutzerColumns+` FROM benutzer WHERE id = $1`, id)
}

// GetByEmail liest einen Benutzer über die E-Mail (Login).
func (r *BenutzerRepo) GetByEmail(email string) (*entity.Benutzer, error) {
	return r.get(`SELECT `+benutzerColumns+` FROM benutzer WHERE email = $1`, email)
}

// GetByQRCode liest einen Benutzer über den QR-Code (Terminal-Login).
func (r *BenutzerRepo) GetByQRCode(qrCode string) (*entity.Benutzer, error) {
	return r.get(`SELECT `+benutzerColumns+` FROM benutzer WHERE qr_code = $1`, qrCode)
}

func (r *BenutzerRepo) get(query string, arg any) (*entity.Benutzer, error) {
	var b entity.Benutzer
	var vorgesetzterID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.Vorname, &b.Nachname, &b.Email, &b.PasswortHash, &b.Position,
		&vorgesetzterID, &b.QRCode, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get benutzer: %w", err)
	}
	if vorgesetzterID != nil {
		b.VorgesetzterID = *vorgesetzterID
	}
	return &b, nil
}

// Update aktualisiert einen Benutzer.
func (r *BenutzerRepo) Update(b *entity.Benutzer) error {
	query := `
		UPDATE benutzer SET vorname = $2, nachname = $3, email = $4, passwort_hash = $5,
			position = $6, vorgesetzter_id = $7, qr_code = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Vorname, b.Nachname, b.Email, b.PasswortHash, b.Position,
		nullIfEmpty(b.VorgesetzterID), b.QRCode, b.Status, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("update benutzer: %w", err)
	}
	return nil
}

// ListAll liest den gesamten Benutzerbestand (für den Hierarchie-Index).
func (r *BenutzerRepo) ListAll() ([]*entity.Benutzer, error) {
	query := `SELECT ` + benutzerColumns + ` FROM benutzer ORDER BY nachname, vorname`
	return r.list(query)
}

// List listet Benutzer, optional nach Position gefiltert.
func (r *BenutzerRepo) List(position string, limit, offset int) ([]*entity.Benutzer, error) {
	query := `SELECT ` + benutzerColumns + ` FROM benutzer
		WHERE ($1 = '' OR position = $1)
		ORDER BY nachname, vorname LIMIT $2 OFFSET $3`
	return r.list(query, position, limit, offset)
}

func (r *BenutzerRepo) list(query string, args ...any) ([]*entity.Benutzer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list benutzer: %w", err)
	}
	defer rows.Close()
	var list []*entity.Benutzer
	for rows.Next() {
		var b entity.Benutzer
		var vorgesetzterID *string
		if err := rows.Scan(
			&b.ID, &b.Vorname, &b.Nachname, &b.Email, &b.PasswortHash, &b.Position,
			&vorgesetzterID, &b.QRCode, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan benutzer: %w", err)
		}
		if vorgesetzterID != nil {
			b.VorgesetzterID = *vorgesetzterID
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete entfernt einen Benutzer.
func (r *BenutzerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM benutzer WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete benutzer: %w", err)
	}
	return nil
}
