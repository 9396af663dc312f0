package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ repository.KassaRepository = (*KassaRepo)(nil)
var _ repository.KassaSaleRepository = (*KassaSaleRepo)(nil)

// KassaRepo implementiert KassaRepository auf PostgreSQL.
type KassaRepo struct {
	q Querier
}

// NewKassaRepository konstruiert den Adapter. Pool oder Tx übergeben (Querier).
func NewKassaRepository(q Querier) *KassaRepo {
	return &KassaRepo{q: q}
}

const kassaColumns = `id, name, kassa_nummer, api_key, status, letzte_sync, created_at, updated_at`

// Create persistiert ein Kassenterminal.
func (r *KassaRepo) Create(k *entity.Kassa) error {
	query := `
		INSERT INTO kassen (id, name, kassa_nummer, api_key, status, letzte_sync, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		k.ID, k.Name, k.KassaNummer, k.APIKey, k.Status, k.LetzteSync, k.CreatedAt, k.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert kassa: %w", err)
	}
	return nil
}

// GetByID liest ein Terminal.
func (r *KassaRepo) GetByID(id string) (*entity.Kassa, error) {
	return r.get(`SELECT `+kassaColumns+` FROM kassen WHERE id = $1`, id)
}

// GetByAPIKey liest ein Terminal über den Webhook-Key.
func (r *KassaRepo) GetByAPIKey(apiKey string) (*entity.Kassa, error) {
	return r.get(`SELECT `+kassaColumns+` FROM kassen WHERE api_key = $1`, apiKey)
}

func (r *KassaRepo) get(query string, arg any) (*entity.Kassa, error) {
	var k entity.Kassa
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&k.ID, &k.Name, &k.KassaNummer, &k.APIKey, &k.Status, &k.LetzteSync, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kassa: %w", err)
	}
	return &k, nil
}

// Update aktualisiert ein Terminal (inkl. API-Key bei Rotation).
func (r *KassaRepo) Update(k *entity.Kassa) error {
	query := `
		UPDATE kassen SET name = $2, kassa_nummer = $3, api_key = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		k.ID, k.Name, k.KassaNummer, k.APIKey, k.Status, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update kassa: %w", err)
	}
	return nil
}

// UpdateSync setzt Status und Sync-Zeitstempel nach einer Webhook-Verarbeitung.
func (r *KassaRepo) UpdateSync(id, status string, sync time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE kassen SET status = $2, letzte_sync = $3, updated_at = now() WHERE id = $1`,
		id, status, sync,
	)
	if err != nil {
		return fmt.Errorf("update kassa sync: %w", err)
	}
	return nil
}

// List listet Terminals.
func (r *KassaRepo) List(limit, offset int) ([]*entity.Kassa, error) {
	query := `SELECT ` + kassaColumns + ` FROM kassen ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list kassen: %w", err)
	}
	defer rows.Close()
	var list []*entity.Kassa
	for rows.Next() {
		var k entity.Kassa
		if err := rows.Scan(
			&k.ID, &k.Name, &k.KassaNummer, &k.APIKey, &k.Status, &k.LetzteSync, &k.CreatedAt, &k.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan kassa: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}

// Delete entfernt ein Terminal.
func (r *KassaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM kassen WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kassa: %w", err)
	}
	return nil
}

// KassaSaleRepo implementiert KassaSaleRepository auf PostgreSQL.
type KassaSaleRepo struct {
	q Querier
}

// NewKassaSaleRepository konstruiert den Adapter. Pool oder Tx übergeben (Querier).
func NewKassaSaleRepository(q Querier) *KassaSaleRepo {
	return &KassaSaleRepo{q: q}
}

// Create persistiert einen Kassenverkauf.
func (r *KassaSaleRepo) Create(s *entity.KassaSale) error {
	query := `
		INSERT INTO kassa_sales (id, kassa_id, kassa_name, ware_id, ware_name, menge, betrag, datum, nachbestellung_noetig)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.KassaID, s.KassaName, s.WareID, s.WareName, s.Menge, s.Betrag, s.Datum, s.NachbestellungNoetig,
	)
	if err != nil {
		return fmt.Errorf("insert kassa_sale: %w", err)
	}
	return nil
}

// ListByKassa liefert die Verkäufe eines Terminals, neueste zuerst.
func (r *KassaSaleRepo) ListByKassa(kassaID string, from, to *time.Time, limit, offset int) ([]*entity.KassaSale, error) {
	query := `
		SELECT id, kassa_id, kassa_name, ware_id, ware_name, menge, betrag, datum, nachbestellung_noetig
		FROM kassa_sales
		WHERE kassa_id = $1
		AND ($2::timestamptz IS NULL OR datum >= $2) AND ($3::timestamptz IS NULL OR datum <= $3)
		ORDER BY datum DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, kassaID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list kassa_sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.KassaSale
	for rows.Next() {
		var s entity.KassaSale
		if err := rows.Scan(
			&s.ID, &s.KassaID, &s.KassaName, &s.WareID, &s.WareName,
			&s.Menge, &s.Betrag, &s.Datum, &s.NachbestellungNoetig,
		); err != nil {
			return nil, fmt.Errorf("scan kassa_sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
