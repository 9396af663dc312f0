// Package authz zentralisiert Rollenpolicy und Sichtbarkeitshierarchie.
// Eine Capability-Tabelle je Position ersetzt die früher pro Seite
// duplizierten Zugriffslisten; geprüft wird serverseitig vor dem Datenzugriff.
package authz

// Positionen der Mitarbeiter.
const (
	PositionAdmin         = "Admin"
	PositionBuero         = "Büro"
	PositionProjektleiter = "Projektleiter"
	PositionGruppenleiter = "Gruppenleiter"
	PositionWorker        = "Worker"
	PositionLager         = "Lager"
)

// Ressourcen der Anwendung.
const (
	ResProjekte       = "projekte"
	ResAnfragen       = "anfragen"
	ResAufgaben       = "aufgaben"
	ResKunden         = "kunden"
	ResSubunternehmer = "subunternehmer"
	ResBenutzer       = "benutzer"
	ResKategorien     = "kategorien"
	ResWaren          = "waren"
	ResProtokoll      = "protokoll"
	ResKassa          = "kassa"
	ResSupport        = "support"
	ResBerichte       = "berichte"
)

// Aktionen auf Ressourcen.
const (
	ActionView   = "view"
	ActionManage = "manage"
)

type capability struct {
	view   bool
	manage bool
}

// policy ist die einzige Quelle für Positionsrechte.
var policy = map[string]map[string]capability{
	PositionAdmin: {
		ResProjekte: {true, true}, ResAnfragen: {true, true}, ResAufgaben: {true, true},
		ResKunden: {true, true}, ResSubunternehmer: {true, true}, ResBenutzer: {true, true}, ResKategorien: {true, true},
		ResWaren: {true, true}, ResProtokoll: {true, false}, ResKassa: {true, true},
		ResSupport: {true, true}, ResBerichte: {true, true},
	},
	PositionBuero: {
		ResProjekte: {true, true}, ResAnfragen: {true, true}, ResAufgaben: {true, true},
		ResKunden: {true, true}, ResSubunternehmer: {true, true}, ResKategorien: {true, false},
		ResWaren: {true, false}, ResProtokoll: {true, false},
		ResSupport: {true, true}, ResBerichte: {true, true},
	},
	PositionProjektleiter: {
		ResProjekte: {true, true}, ResAufgaben: {true, true},
		ResKunden: {true, false}, ResSubunternehmer: {true, false}, ResKategorien: {true, false},
		ResWaren: {true, false}, ResSupport: {true, false}, ResBerichte: {true, true},
	},
	PositionGruppenleiter: {
		ResProjekte: {true, false}, ResAufgaben: {true, true},
		ResWaren: {true, false}, ResSupport: {true, false},
	},
	PositionWorker: {
		ResProjekte: {true, false}, ResAufgaben: {true, false},
		ResWaren: {true, false}, ResSupport: {true, false},
	},
	PositionLager: {
		ResWaren: {true, true}, ResProtokoll: {true, false}, ResKassa: {true, true},
	},
}

// Can prüft, ob eine Position die Aktion auf der Ressource ausführen darf.
// Unbekannte Positionen, Aktionen oder Ressourcen ergeben false.
func Can(position, action, resource string) bool {
	caps, ok := policy[position]
	if !ok {
		return false
	}
	c, ok := caps[resource]
	if !ok {
		return false
	}
	switch action {
	case ActionView:
		return c.view
	case ActionManage:
		return c.manage
	}
	return false
}
