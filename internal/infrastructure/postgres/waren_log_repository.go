package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ repository.WarenLogRepository = (*WarenLogRepo)(nil)

// WarenLogRepo implementiert das Bewegungsprotokoll auf PostgreSQL.
// Es gibt bewusst kein Update und kein Delete.
type WarenLogRepo struct {
	q Querier
}

// NewWarenLogRepository konstruiert den Adapter. Pool oder Tx übergeben (Querier).
func NewWarenLogRepository(q Querier) *WarenLogRepo {
	return &WarenLogRepo{q: q}
}

const warenLogColumns = `id, ware_id, ware_name, benutzer_id, benutzer_name,
	projekt_id, projekt_nummer, aktion, menge, notiz, datum`

// Create fügt einen Protokolleintrag an.
func (r *WarenLogRepo) Create(e *entity.WarenLog) error {
	query := `
		INSERT INTO waren_log (id, ware_id, ware_name, benutzer_id, benutzer_name, projekt_id, projekt_nummer, aktion, menge, notiz, datum)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.WareID, e.WareName, e.BenutzerID, e.BenutzerName,
		nullIfEmpty(e.ProjektID), e.ProjektNummer, e.Aktion, e.Menge, e.Notiz, e.Datum,
	)
	if err != nil {
		return fmt.Errorf("insert waren_log: %w", err)
	}
	return nil
}

// GetByID liest einen Eintrag.
func (r *WarenLogRepo) GetByID(id string) (*entity.WarenLog, error) {
	query := `SELECT ` + warenLogColumns + ` FROM waren_log WHERE id = $1`
	var e entity.WarenLog
	var projektID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.WareID, &e.WareName, &e.BenutzerID, &e.BenutzerName,
		&projektID, &e.ProjektNummer, &e.Aktion, &e.Menge, &e.Notiz, &e.Datum,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get waren_log: %w", err)
	}
	if projektID != nil {
		e.ProjektID = *projektID
	}
	return &e, nil
}

// List liefert das Protokoll, neueste zuerst, optional auf den Zeitraum begrenzt.
func (r *WarenLogRepo) List(from, to *time.Time, limit, offset int) ([]*entity.WarenLog, error) {
	query := `SELECT ` + warenLogColumns + ` FROM waren_log
		WHERE ($1::timestamptz IS NULL OR datum >= $1) AND ($2::timestamptz IS NULL OR datum <= $2)
		ORDER BY datum DESC LIMIT $3 OFFSET $4`
	return r.list(query, from, to, limit, offset)
}

// ListByWare liefert das Protokoll einer Ware.
func (r *WarenLogRepo) ListByWare(wareID string, from, to *time.Time, limit, offset int) ([]*entity.WarenLog, error) {
	query := `SELECT ` + warenLogColumns + ` FROM waren_log
		WHERE ware_id = $1
		AND ($2::timestamptz IS NULL OR datum >= $2) AND ($3::timestamptz IS NULL OR datum <= $3)
		ORDER BY datum DESC LIMIT $4 OFFSET $5`
	return r.list(query, wareID, from, to, limit, offset)
}

// ListByBenutzer liefert das Protokoll eines Benutzers.
func (r *WarenLogRepo) ListByBenutzer(benutzerID string, from, to *time.Time, limit, offset int) ([]*entity.WarenLog, error) {
	query := `SELECT ` + warenLogColumns + ` FROM waren_log
		WHERE benutzer_id = $1
		AND ($2::timestamptz IS NULL OR datum >= $2) AND ($3::timestamptz IS NULL OR datum <= $3)
		ORDER BY datum DESC LIMIT $4 OFFSET $5`
	return r.list(query, benutzerID, from, to, limit, offset)
}

func (r *WarenLogRepo) list(query string, args ...any) ([]*entity.WarenLog, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list waren_log: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarenLog
	for rows.Next() {
		var e entity.WarenLog
		var projektID *string
		if err := rows.Scan(
			&e.ID, &e.WareID, &e.WareName, &e.BenutzerID, &e.BenutzerName,
			&projektID, &e.ProjektNummer, &e.Aktion, &e.Menge, &e.Notiz, &e.Datum,
		); err != nil {
			return nil, fmt.Errorf("scan waren_log: %w", err)
		}
		if projektID != nil {
			e.ProjektID = *projektID
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
