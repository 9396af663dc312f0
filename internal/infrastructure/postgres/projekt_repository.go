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

var _ repository.ProjektRepository = (*ProjektRepo)(nil)
var _ repository.EtappeRepository = (*EtappeRepo)(nil)
var _ repository.DokumentRepository = (*DokumentRepo)(nil)

// ProjektRepo implementiert ProjektRepository auf PostgreSQL.
// KategoriePfad liegt als text[], Feldwerte als JSONB.
type ProjektRepo struct {
	q Querier
}

// NewProjektRepository konstruiert den Adapter.
func NewProjektRepository(q Querier) *ProjektRepo {
	return &ProjektRepo{q: q}
}

const projektColumns = `id, nummer, name, beschreibung, status, prioritaet, budget,
	startdatum, enddatum, adresse, kunde_id, kategorie_pfad, feldwerte, created_at, updated_at`

// Create persistiert ein Projekt. Nummer ist eindeutig.
func (r *ProjektRepo) Create(p *entity.Projekt) error {
	query := `
		INSERT INTO projekte (id, nummer, name, beschreibung, status, prioritaet, budget, startdatum, enddatum, adresse, kunde_id, kategorie_pfad, feldwerte, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nummer, p.Name, p.Beschreibung, p.Status, p.Prioritaet, p.Budget,
		p.Startdatum, p.Enddatum, p.Adresse, nullIfEmpty(p.KundeID), p.KategoriePfad, p.Feldwerte,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProjektNrExists
		}
		return fmt.Errorf("insert projekt: %w", err)
	}
	return nil
}

// GetByID liest ein Projekt.
func (r *ProjektRepo) GetByID(id string) (*entity.Projekt, error) {
	return r.get(`SELECT `+projektColumns+` FROM projekte WHERE id = $1`, id)
}

// GetByNummer liest ein Projekt über seine eindeutige Nummer.
func (r *ProjektRepo) GetByNummer(nummer string) (*entity.Projekt, error) {
	return r.get(`SELECT `+projektColumns+` FROM projekte WHERE nummer = $1`, nummer)
}

func (r *ProjektRepo) get(query string, arg any) (*entity.Projekt, error) {
	var p entity.Projekt
	var kundeID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nummer, &p.Name, &p.Beschreibung, &p.Status, &p.Prioritaet, &p.Budget,
		&p.Startdatum, &p.Enddatum, &p.Adresse, &kundeID, &p.KategoriePfad, &p.Feldwerte,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get projekt: %w", err)
	}
	if kundeID != nil {
		p.KundeID = *kundeID
	}
	return &p, nil
}

// Update aktualisiert ein Projekt. Die Nummer bleibt unverändert.
func (r *ProjektRepo) Update(p *entity.Projekt) error {
	query := `
		UPDATE projekte SET name = $2, beschreibung = $3, status = $4, prioritaet = $5, budget = $6,
			startdatum = $7, enddatum = $8, adresse = $9, kunde_id = $10, kategorie_pfad = $11,
			feldwerte = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Beschreibung, p.Status, p.Prioritaet, p.Budget,
		p.Startdatum, p.Enddatum, p.Adresse, nullIfEmpty(p.KundeID), p.KategoriePfad,
		p.Feldwerte, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update projekt: %w", err)
	}
	return nil
}

// List listet Projekte, optional nach Status gefiltert, neueste zuerst.
func (r *ProjektRepo) List(status string, limit, offset int) ([]*entity.Projekt, error) {
	query := `SELECT ` + projektColumns + ` FROM projekte
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projekte: %w", err)
	}
	defer rows.Close()
	var list []*entity.Projekt
	for rows.Next() {
		var p entity.Projekt
		var kundeID *string
		if err := rows.Scan(
			&p.ID, &p.Nummer, &p.Name, &p.Beschreibung, &p.Status, &p.Prioritaet, &p.Budget,
			&p.Startdatum, &p.Enddatum, &p.Adresse, &kundeID, &p.KategoriePfad, &p.Feldwerte,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan projekt: %w", err)
		}
		if kundeID != nil {
			p.KundeID = *kundeID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete entfernt ein Projekt.
func (r *ProjektRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM projekte WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete projekt: %w", err)
	}
	return nil
}

// EtappeRepo implementiert EtappeRepository auf PostgreSQL.
type EtappeRepo struct {
	q Querier
}

// NewEtappeRepository konstruiert den Adapter.
func NewEtappeRepository(q Querier) *EtappeRepo {
	return &EtappeRepo{q: q}
}

// Create persistiert eine Etappe.
func (r *EtappeRepo) Create(e *entity.Etappe) error {
	query := `
		INSERT INTO etappen (id, projekt_id, titel, abgeschlossen, sortierung, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ProjektID, e.Titel, e.Abgeschlossen, e.Sortierung, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert etappe: %w", err)
	}
	return nil
}

// Update aktualisiert eine Etappe.
func (r *EtappeRepo) Update(e *entity.Etappe) error {
	query := `UPDATE etappen SET titel = $2, abgeschlossen = $3, sortierung = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, e.ID, e.Titel, e.Abgeschlossen, e.Sortierung)
	if err != nil {
		return fmt.Errorf("update etappe: %w", err)
	}
	return nil
}

// ListByProjekt liefert die Etappen eines Projekts in definierter Reihenfolge.
func (r *EtappeRepo) ListByProjekt(projektID string) ([]*entity.Etappe, error) {
	query := `
		SELECT id, projekt_id, titel, abgeschlossen, sortierung, created_at
		FROM etappen WHERE projekt_id = $1 ORDER BY sortierung, created_at`
	rows, err := r.q.Query(context.Background(), query, projektID)
	if err != nil {
		return nil, fmt.Errorf("list etappen: %w", err)
	}
	defer rows.Close()
	var list []*entity.Etappe
	for rows.Next() {
		var e entity.Etappe
		if err := rows.Scan(&e.ID, &e.ProjektID, &e.Titel, &e.Abgeschlossen, &e.Sortierung, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan etappe: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete entfernt eine Etappe.
func (r *EtappeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM etappen WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete etappe: %w", err)
	}
	return nil
}

// DokumentRepo implementiert DokumentRepository auf PostgreSQL.
// Die Dateien liegen beim externen Upload-Dienst; hier nur Referenzen.
type DokumentRepo struct {
	q Querier
}

// NewDokumentRepository konstruiert den Adapter.
func NewDokumentRepository(q Querier) *DokumentRepo {
	return &DokumentRepo{q: q}
}

// Create persistiert eine Dateireferenz.
func (r *DokumentRepo) Create(d *entity.Dokument) error {
	query := `
		INSERT INTO dokumente (id, projekt_id, name, url, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.ProjektID, d.Name, d.URL, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert dokument: %w", err)
	}
	return nil
}

// ListByProjekt liefert die Dateireferenzen eines Projekts.
func (r *DokumentRepo) ListByProjekt(projektID string) ([]*entity.Dokument, error) {
	query := `
		SELECT id, projekt_id, name, url, created_at
		FROM dokumente WHERE projekt_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, projektID)
	if err != nil {
		return nil, fmt.Errorf("list dokumente: %w", err)
	}
	defer rows.Close()
	var list []*entity.Dokument
	for rows.Next() {
		var d entity.Dokument
		if err := rows.Scan(&d.ID, &d.ProjektID, &d.Name, &d.URL, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dokument: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// CountByProjekt zählt die Dateireferenzen eines Projekts (für den Bericht).
func (r *DokumentRepo) CountByProjekt(projektID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM dokumente WHERE projekt_id = $1`, projektID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count dokumente: %w", err)
	}
	return n, nil
}

// Delete entfernt eine Dateireferenz.
func (r *DokumentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM dokumente WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dokument: %w", err)
	}
	return nil
}
