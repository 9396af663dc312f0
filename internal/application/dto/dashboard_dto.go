package dto

// DashboardResponse Kennzahlen für die Startseitenübersicht.
type DashboardResponse struct {
	ProjekteGesamt        int            `json:"projekte_gesamt"`
	ProjekteInBearbeitung int            `json:"projekte_in_bearbeitung"`
	ProjekteAbgeschlossen int            `json:"projekte_abgeschlossen"`
	ProjekteNachStatus    map[string]int `json:"projekte_nach_status"`
	AufgabenGesamt        int            `json:"aufgaben_gesamt"`
	AufgabenOffen         int            `json:"aufgaben_offen"`
	BenutzerAktiv         int            `json:"benutzer_aktiv"`
	WarenGesamt           int            `json:"waren_gesamt"`
	WarenNiedrig          int            `json:"waren_niedrig"`
	WarenAusverkauft      int            `json:"waren_ausverkauft"`
	AnfragenNeu           int            `json:"anfragen_neu"`
	TicketsOffen          int            `json:"tickets_offen"`
}
