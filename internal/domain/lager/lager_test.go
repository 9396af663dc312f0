package lager_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep-bau/ep-system/internal/domain/lager"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name           string
		bestand        float64
		mindestbestand float64
		want           string
	}{
		{"über Mindestbestand", 10, 5, lager.StatusVerfuegbar},
		{"genau auf Mindestbestand", 5, 5, lager.StatusNiedrig},
		{"unter Mindestbestand", 3, 5, lager.StatusNiedrig},
		{"genau null", 0, 5, lager.StatusAusverkauft},
		{"negativ", -2, 5, lager.StatusAusverkauft},
		// Mindestbestand 0 oder nicht gesetzt: nur Ausverkauft kann greifen
		{"kein Schwellwert, positiver Bestand", 1, 0, lager.StatusVerfuegbar},
		{"kein Schwellwert, null", 0, 0, lager.StatusAusverkauft},
		{"null schlägt Niedrig", 0, 100, lager.StatusAusverkauft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := lager.DeriveStatus(d(tc.bestand), d(tc.mindestbestand))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApply_EntnahmeReduziertBestand(t *testing.T) {
	neu, logMenge, err := lager.Apply(d(10), lager.AktionEntnahme, d(6))
	require.NoError(t, err)
	assert.True(t, neu.Equal(d(4)))
	assert.True(t, logMenge.Equal(d(6)))
}

// Entnahme über den Bestand hinaus wird nicht blockiert; der Status kippt auf Ausverkauft.
func TestApply_EntnahmeUnterNull(t *testing.T) {
	neu, _, err := lager.Apply(d(3), lager.AktionEntnahme, d(5))
	require.NoError(t, err)
	assert.True(t, neu.Equal(d(-2)))
	assert.Equal(t, lager.StatusAusverkauft, lager.DeriveStatus(neu, d(5)))
}

func TestApply_RueckgabeUndEingangErhoehen(t *testing.T) {
	for _, aktion := range []string{lager.AktionRueckgabe, lager.AktionEingang} {
		neu, logMenge, err := lager.Apply(d(4), aktion, d(20))
		require.NoError(t, err, aktion)
		assert.True(t, neu.Equal(d(24)), aktion)
		assert.True(t, logMenge.Equal(d(20)), aktion)
	}
}

func TestApply_VerkaufReduziertBestand(t *testing.T) {
	neu, _, err := lager.Apply(d(8), lager.AktionVerkauf, d(3))
	require.NoError(t, err)
	assert.True(t, neu.Equal(d(5)))
}

// Inventur setzt den Bestand absolut und protokolliert |gezählt - vorher|.
func TestApply_InventurSetztAbsolut(t *testing.T) {
	neu, logMenge, err := lager.Apply(d(50), lager.AktionInventur, d(0))
	require.NoError(t, err)
	assert.True(t, neu.Equal(d(0)))
	assert.True(t, logMenge.Equal(d(50)))
	assert.Equal(t, lager.StatusAusverkauft, lager.DeriveStatus(neu, d(5)))

	neu, logMenge, err = lager.Apply(d(10), lager.AktionInventur, d(42))
	require.NoError(t, err)
	assert.True(t, neu.Equal(d(42)))
	assert.True(t, logMenge.Equal(d(32)))
}

// Korrektur ist ein vorzeichenbehaftetes Delta; protokolliert wird der Betrag.
func TestApply_KorrekturDelta(t *testing.T) {
	neu, logMenge, err := lager.Apply(d(10), lager.AktionKorrektur, d(-3))
	require.NoError(t, err)
	assert.True(t, neu.Equal(d(7)))
	assert.True(t, logMenge.Equal(d(3)))

	neu, logMenge, err = lager.Apply(d(10), lager.AktionKorrektur, d(4))
	require.NoError(t, err)
	assert.True(t, neu.Equal(d(14)))
	assert.True(t, logMenge.Equal(d(4)))
}

func TestApply_UngueltigeEingaben(t *testing.T) {
	cases := []struct {
		name   string
		aktion string
		menge  float64
	}{
		{"Entnahme null", lager.AktionEntnahme, 0},
		{"Entnahme negativ", lager.AktionEntnahme, -1},
		{"Rückgabe null", lager.AktionRueckgabe, 0},
		{"Verkauf negativ", lager.AktionVerkauf, -2},
		{"Korrektur ohne Delta", lager.AktionKorrektur, 0},
		{"Inventur negativ", lager.AktionInventur, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := lager.Apply(d(10), tc.aktion, d(tc.menge))
			assert.Error(t, err)
		})
	}

	_, _, err := lager.Apply(d(10), "Diebstahl", d(1))
	assert.Error(t, err)
}

// Durchgespieltes Szenario: 10/min 5 → Entnahme 6 → 4 Niedrig → Entnahme 4 →
// 0 Ausverkauft → Rückgabe 20 → 20 Verfügbar.
func TestSzenario_EntnahmeRueckgabe(t *testing.T) {
	min := d(5)
	bestand := d(10)

	bestand, _, err := lager.Apply(bestand, lager.AktionEntnahme, d(6))
	require.NoError(t, err)
	assert.True(t, bestand.Equal(d(4)))
	assert.Equal(t, lager.StatusNiedrig, lager.DeriveStatus(bestand, min))

	bestand, _, err = lager.Apply(bestand, lager.AktionEntnahme, d(4))
	require.NoError(t, err)
	assert.True(t, bestand.Equal(d(0)))
	assert.Equal(t, lager.StatusAusverkauft, lager.DeriveStatus(bestand, min))

	bestand, _, err = lager.Apply(bestand, lager.AktionRueckgabe, d(20))
	require.NoError(t, err)
	assert.True(t, bestand.Equal(d(20)))
	assert.Equal(t, lager.StatusVerfuegbar, lager.DeriveStatus(bestand, min))
}

func TestGueltigeAktion(t *testing.T) {
	for _, a := range []string{"Entnahme", "Rückgabe", "Eingang", "Korrektur", "Inventur", "Verkauf"} {
		assert.True(t, lager.GueltigeAktion(a), a)
	}
	assert.False(t, lager.GueltigeAktion("entnahme"))
	assert.False(t, lager.GueltigeAktion(""))
}
