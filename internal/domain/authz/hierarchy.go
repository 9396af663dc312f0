package authz

import "github.com/ep-bau/ep-system/internal/domain/entity"

// Hierarchy ist der vorberechnete Index Vorgesetzter → Unterstellte.
// Er wird nur beim Laden bzw. bei Änderungen am Benutzerbestand neu gebaut,
// nicht pro Abfrage.
type Hierarchy struct {
	position map[string]string
	children map[string][]string
}

// BuildHierarchy baut den Index aus dem aktuellen Benutzerbestand.
func BuildHierarchy(benutzer []*entity.Benutzer) *Hierarchy {
	h := &Hierarchy{
		position: make(map[string]string, len(benutzer)),
		children: make(map[string][]string),
	}
	for _, b := range benutzer {
		h.position[b.ID] = b.Position
		if b.VorgesetzterID != "" {
			h.children[b.VorgesetzterID] = append(h.children[b.VorgesetzterID], b.ID)
		}
	}
	return h
}

// VisibleUserIDs liefert die Menge der Benutzer, deren Aufgaben und Zuordnungen
// userID sehen darf: sich selbst plus alle transitiv Unterstellten.
// Admin und Büro sehen alle Benutzer.
func (h *Hierarchy) VisibleUserIDs(userID string) map[string]bool {
	visible := make(map[string]bool)
	pos, ok := h.position[userID]
	if !ok {
		return visible
	}
	if pos == PositionAdmin || pos == PositionBuero {
		for id := range h.position {
			visible[id] = true
		}
		return visible
	}

	// Breitensuche über die Unterstellten-Kanten
	queue := []string{userID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visible[cur] {
			continue
		}
		visible[cur] = true
		queue = append(queue, h.children[cur]...)
	}
	return visible
}

// CanSeeAufgabe prüft die Aufgaben-Sichtbarkeit: nicht zugewiesene Aufgaben
// sieht jeder, zugewiesene nur, wenn der Zugewiesene in der sichtbaren Menge liegt.
func (h *Hierarchy) CanSeeAufgabe(userID string, a *entity.Aufgabe) bool {
	if a.ZugewiesenAn == "" {
		return true
	}
	return h.VisibleUserIDs(userID)[a.ZugewiesenAn]
}
