// Package kategorie enthält die Baum- und Zusatzfeldlogik des Kategoriesystems.
// Die Logik ist zentralisiert und wird vom öffentlichen Anfrageformular und der
// Projektbearbeitung gemeinsam genutzt.
package kategorie

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ep-bau/ep-system/internal/domain"
	"github.com/ep-bau/ep-system/internal/domain/entity"
)

// ChildrenOf liefert die direkten Kinder von parentID (leer = Wurzelkategorien),
// stabil sortiert nach Sortierung, dann Name.
func ChildrenOf(kategorien []*entity.Kategorie, parentID string) []*entity.Kategorie {
	var out []*entity.Kategorie
	for _, k := range kategorien {
		if k.ParentID == parentID {
			out = append(out, k)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Sortierung != out[j].Sortierung {
			return out[i].Sortierung < out[j].Sortierung
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ApplicableFields liefert die Zusatzfelder des gewählten Pfades:
// Konkatenation der Felder der letzten beiden Pfadsegmente (Unterkategorie,
// dann Unter-Unterkategorie), Reihenfolge erhalten, ohne Deduplizierung —
// auch bei kollidierenden Feldnamen.
func ApplicableFields(pfad []*entity.Kategorie) []entity.Zusatzfeld {
	var out []entity.Zusatzfeld
	start := len(pfad) - 2
	if start < 0 {
		start = 0
	}
	for _, k := range pfad[start:] {
		out = append(out, k.Zusatzfelder...)
	}
	return out
}

// ValidateRequired prüft, ob alle Pflichtfelder in values belegt sind.
// Bei mehreren fehlenden Feldern wird das erste gemeldet.
func ValidateRequired(felder []entity.Zusatzfeld, values map[string]string) error {
	for _, f := range felder {
		if !f.Pflicht {
			continue
		}
		if strings.TrimSpace(values[f.Name]) == "" {
			return fmt.Errorf("feld %q: %w", f.Name, domain.ErrPflichtfeldFehlt)
		}
	}
	return nil
}

// ResolvePath löst eine Liste von Kategorie-IDs gegen den geladenen Baum auf.
// Jedes Segment muss existieren und Kind seines Vorgängers sein.
func ResolvePath(kategorien []*entity.Kategorie, ids []string) ([]*entity.Kategorie, error) {
	byID := make(map[string]*entity.Kategorie, len(kategorien))
	for _, k := range kategorien {
		byID[k.ID] = k
	}
	pfad := make([]*entity.Kategorie, 0, len(ids))
	parent := ""
	for _, id := range ids {
		k, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("kategorie %q: %w", id, domain.ErrNotFound)
		}
		if k.ParentID != parent {
			return nil, fmt.Errorf("kategorie %q gehört nicht zu %q: %w", id, parent, domain.ErrInvalidInput)
		}
		pfad = append(pfad, k)
		parent = id
	}
	return pfad, nil
}
