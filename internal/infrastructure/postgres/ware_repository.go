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

var _ repository.WareRepository = (*WareRepo)(nil)

// WareRepo implementiert WareRepository auf PostgreSQL (nutzbar mit Pool oder Tx).
type WareRepo struct {
	q Querier
}

// NewWareRepository konstruiert den Adapter. Pool oder Tx übergeben (Querier).
func NewWareRepository(q Querier) *WareRepo {
	return &WareRepo{q: q}
}

const wareColumns = `id, name, beschreibung, barcode, kategorie_id, einheit,
	einkaufspreis, verkaufspreis, bestand, mindestbestand, lagerort, status, bild,
	created_at, updated_at`

// Create persistiert eine neue Ware.
func (r *WareRepo) Create(w *entity.Ware) error {
	query := `
		INSERT INTO waren (id, name, beschreibung, barcode, kategorie_id, einheit, einkaufspreis, verkaufspreis, bestand, mindestbestand, lagerort, status, bild, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Name, w.Beschreibung, w.Barcode, nullIfEmpty(w.KategorieID), w.Einheit,
		w.Einkaufspreis, w.Verkaufspreis, w.Bestand, w.Mindestbestand, w.Lagerort,
		w.Status, w.Bild, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBarcodeExists
		}
		return fmt.Errorf("insert ware: %w", err)
	}
	return nil
}

// GetByID liest eine Ware per ID.
func (r *WareRepo) GetByID(id string) (*entity.Ware, error) {
	return r.get(`SELECT `+wareColumns+` FROM waren WHERE id = $1`, id)
}

// GetByBarcode liest eine Ware per Barcode (Terminal-Scan).
func (r *WareRepo) GetByBarcode(barcode string) (*entity.Ware, error) {
	return r.get(`SELECT `+wareColumns+` FROM waren WHERE barcode = $1`, barcode)
}

// GetForUpdate sperrt die Zeile für die Dauer der Transaktion.
func (r *WareRepo) GetForUpdate(id string) (*entity.Ware, error) {
	return r.get(`SELECT `+wareColumns+` FROM waren WHERE id = $1 FOR UPDATE`, id)
}

func (r *WareRepo) get(query string, arg any) (*entity.Ware, error) {
	var w entity.Ware
	var kategorieID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&w.ID, &w.Name, &w.Beschreibung, &w.Barcode, &kategorieID, &w.Einheit,
		&w.Einkaufspreis, &w.Verkaufspreis, &w.Bestand, &w.Mindestbestand,
		&w.Lagerort, &w.Status, &w.Bild, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ware: %w", err)
	}
	if kategorieID != nil {
		w.KategorieID = *kategorieID
	}
	return &w, nil
}

// Update aktualisiert eine Ware (inkl. Bestand und Status, vom Use Case abgeleitet).
func (r *WareRepo) Update(w *entity.Ware) error {
	query := `
		UPDATE waren SET name = $2, beschreibung = $3, barcode = $4, kategorie_id = $5, einheit = $6,
			einkaufspreis = $7, verkaufspreis = $8, bestand = $9, mindestbestand = $10,
			lagerort = $11, status = $12, bild = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Name, w.Beschreibung, w.Barcode, nullIfEmpty(w.KategorieID), w.Einheit,
		w.Einkaufspreis, w.Verkaufspreis, w.Bestand, w.Mindestbestand,
		w.Lagerort, w.Status, w.Bild, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBarcodeExists
		}
		return fmt.Errorf("update ware: %w", err)
	}
	return nil
}

// List listet Waren mit Paginierung.
func (r *WareRepo) List(limit, offset int) ([]*entity.Ware, error) {
	query := `SELECT ` + wareColumns + ` FROM waren ORDER BY name LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByKategorie listet Waren einer Kategorie.
func (r *WareRepo) ListByKategorie(kategorieID string, limit, offset int) ([]*entity.Ware, error) {
	query := `SELECT ` + wareColumns + ` FROM waren WHERE kategorie_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, kategorieID, limit, offset)
}

func (r *WareRepo) list(query string, args ...any) ([]*entity.Ware, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list waren: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ware
	for rows.Next() {
		var w entity.Ware
		var kategorieID *string
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Beschreibung, &w.Barcode, &kategorieID, &w.Einheit,
			&w.Einkaufspreis, &w.Verkaufspreis, &w.Bestand, &w.Mindestbestand,
			&w.Lagerort, &w.Status, &w.Bild, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ware: %w", err)
		}
		if kategorieID != nil {
			w.KategorieID = *kategorieID
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Delete löscht eine Ware. Protokolleinträge bleiben bestehen.
func (r *WareRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM waren WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ware: %w", err)
	}
	return nil
}

// nullIfEmpty mappt leere Strings auf NULL (für optionale FK-Spalten).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
