package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ep-bau/ep-system/internal/domain/authz"
	"github.com/ep-bau/ep-system/internal/domain/entity"
)

func TestCan(t *testing.T) {
	cases := []struct {
		position string
		action   string
		resource string
		want     bool
	}{
		{authz.PositionAdmin, authz.ActionManage, authz.ResBenutzer, true},
		{authz.PositionBuero, authz.ActionManage, authz.ResBenutzer, false},
		{authz.PositionBuero, authz.ActionManage, authz.ResKunden, true},
		{authz.PositionBuero, authz.ActionManage, authz.ResSubunternehmer, true},
		{authz.PositionProjektleiter, authz.ActionManage, authz.ResProjekte, true},
		{authz.PositionProjektleiter, authz.ActionManage, authz.ResSubunternehmer, false},
		{authz.PositionProjektleiter, authz.ActionView, authz.ResSubunternehmer, true},
		{authz.PositionGruppenleiter, authz.ActionManage, authz.ResProjekte, false},
		{authz.PositionWorker, authz.ActionView, authz.ResWaren, true},
		{authz.PositionWorker, authz.ActionManage, authz.ResAufgaben, false},
		{authz.PositionLager, authz.ActionManage, authz.ResWaren, true},
		{authz.PositionLager, authz.ActionView, authz.ResKunden, false},
		{"Unbekannt", authz.ActionView, authz.ResWaren, false},
		{authz.PositionAdmin, "löschen", authz.ResWaren, false},
		{authz.PositionAdmin, authz.ActionView, "geheim", false},
	}
	for _, tc := range cases {
		got := authz.Can(tc.position, tc.action, tc.resource)
		assert.Equal(t, tc.want, got, "%s/%s/%s", tc.position, tc.action, tc.resource)
	}
}

// Organigramm für die Hierarchie-Tests:
//
//	admin
//	pl ── gl1 ── w1
//	   └─ w2    gl2 ── w3
func testBenutzer() []*entity.Benutzer {
	return []*entity.Benutzer{
		{ID: "admin", Position: authz.PositionAdmin},
		{ID: "pl", Position: authz.PositionProjektleiter},
		{ID: "gl1", Position: authz.PositionGruppenleiter, VorgesetzterID: "pl"},
		{ID: "w1", Position: authz.PositionWorker, VorgesetzterID: "gl1"},
		{ID: "w2", Position: authz.PositionWorker, VorgesetzterID: "pl"},
		{ID: "gl2", Position: authz.PositionGruppenleiter},
		{ID: "w3", Position: authz.PositionWorker, VorgesetzterID: "gl2"},
	}
}

func TestVisibleUserIDs(t *testing.T) {
	h := authz.BuildHierarchy(testBenutzer())

	// Admin sieht alle
	assert.Len(t, h.VisibleUserIDs("admin"), 7)

	// Projektleiter sieht sich, gl1, w1 (transitiv), w2 — nicht gl2/w3
	pl := h.VisibleUserIDs("pl")
	assert.True(t, pl["pl"])
	assert.True(t, pl["gl1"])
	assert.True(t, pl["w1"])
	assert.True(t, pl["w2"])
	assert.False(t, pl["gl2"])
	assert.False(t, pl["w3"])

	// Gruppenleiter sieht sich und seine Worker
	gl1 := h.VisibleUserIDs("gl1")
	assert.Len(t, gl1, 2)
	assert.True(t, gl1["w1"])

	// Worker sieht nur sich selbst
	w1 := h.VisibleUserIDs("w1")
	assert.Len(t, w1, 1)
	assert.True(t, w1["w1"])

	// Unbekannte Benutzer sehen nichts
	assert.Empty(t, h.VisibleUserIDs("fremd"))
}

func TestCanSeeAufgabe(t *testing.T) {
	h := authz.BuildHierarchy(testBenutzer())

	offen := &entity.Aufgabe{Titel: "Für alle"}
	assert.True(t, h.CanSeeAufgabe("w1", offen))

	zugewiesen := &entity.Aufgabe{Titel: "Kabel ziehen", ZugewiesenAn: "w1"}
	assert.True(t, h.CanSeeAufgabe("gl1", zugewiesen))
	assert.True(t, h.CanSeeAufgabe("pl", zugewiesen))
	assert.True(t, h.CanSeeAufgabe("w1", zugewiesen))
	assert.False(t, h.CanSeeAufgabe("w2", zugewiesen))
	assert.False(t, h.CanSeeAufgabe("gl2", zugewiesen))
}
