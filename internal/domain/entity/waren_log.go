package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarenLog ist ein unveränderlicher Eintrag im Bewegungsprotokoll.
// Einträge werden nie mutiert oder gelöscht; WareID ist eine weiche Referenz
// und bleibt auch nach dem Löschen der Ware bestehen.
type WarenLog struct {
	ID            string
	WareID        string
	WareName      string // Snapshot zum Zeitpunkt der Buchung
	BenutzerID    string
	BenutzerName  string // Snapshot
	ProjektID     string // optional
	ProjektNummer string // Snapshot, optional
	Aktion        string // lager.Aktion*
	Menge         decimal.Decimal // immer positiv; Wirkung ergibt sich aus Aktion
	Notiz         string
	Datum         time.Time
}
