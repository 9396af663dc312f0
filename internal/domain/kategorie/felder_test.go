package kategorie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep-bau/ep-system/internal/domain/entity"
	"github.com/ep-bau/ep-system/internal/domain/kategorie"
)

func kat(id, parent, name string, felder ...entity.Zusatzfeld) *entity.Kategorie {
	return &entity.Kategorie{ID: id, ParentID: parent, Name: name, Zusatzfelder: felder}
}

func feld(name string) entity.Zusatzfeld {
	return entity.Zusatzfeld{Name: name, Label: name, Typ: entity.FeldTypText}
}

func baum() []*entity.Kategorie {
	return []*entity.Kategorie{
		kat("elektro", "", "Elektro"),
		kat("sanitaer", "", "Sanitär"),
		kat("elektro-neubau", "elektro", "Neubau", feld("wohnflaeche"), feld("stockwerke")),
		kat("elektro-sanierung", "elektro", "Sanierung", feld("baujahr")),
		kat("elektro-neubau-smart", "elektro-neubau", "Smart Home", feld("wohnflaeche"), feld("komponenten")),
	}
}

func TestChildrenOf(t *testing.T) {
	ks := baum()

	wurzeln := kategorie.ChildrenOf(ks, "")
	require.Len(t, wurzeln, 2)
	assert.Equal(t, "Elektro", wurzeln[0].Name)
	assert.Equal(t, "Sanitär", wurzeln[1].Name)

	kinder := kategorie.ChildrenOf(ks, "elektro")
	require.Len(t, kinder, 2)

	assert.Empty(t, kategorie.ChildrenOf(ks, "sanitaer"))
}

// Felder = Unterkategorie + Unter-Unterkategorie, Reihenfolge erhalten,
// Duplikate bleiben bestehen (wohnflaeche erscheint zweimal).
func TestApplicableFields_KonkatenationOhneDeduplizierung(t *testing.T) {
	ks := baum()
	pfad, err := kategorie.ResolvePath(ks, []string{"elektro", "elektro-neubau", "elektro-neubau-smart"})
	require.NoError(t, err)

	felder := kategorie.ApplicableFields(pfad)
	namen := make([]string, len(felder))
	for i, f := range felder {
		namen[i] = f.Name
	}
	assert.Equal(t, []string{"wohnflaeche", "stockwerke", "wohnflaeche", "komponenten"}, namen)
}

func TestApplicableFields_KurzePfade(t *testing.T) {
	ks := baum()

	pfad, err := kategorie.ResolvePath(ks, []string{"elektro", "elektro-sanierung"})
	require.NoError(t, err)
	felder := kategorie.ApplicableFields(pfad)
	require.Len(t, felder, 1)
	assert.Equal(t, "baujahr", felder[0].Name)

	pfad, err = kategorie.ResolvePath(ks, []string{"elektro"})
	require.NoError(t, err)
	assert.Empty(t, kategorie.ApplicableFields(pfad))

	assert.Empty(t, kategorie.ApplicableFields(nil))
}

func TestResolvePath_Fehler(t *testing.T) {
	ks := baum()

	_, err := kategorie.ResolvePath(ks, []string{"gibtsnicht"})
	assert.Error(t, err)

	// Segment ist kein Kind des Vorgängers
	_, err = kategorie.ResolvePath(ks, []string{"sanitaer", "elektro-neubau"})
	assert.Error(t, err)
}

func TestValidateRequired(t *testing.T) {
	felder := []entity.Zusatzfeld{
		{Name: "wohnflaeche", Typ: entity.FeldTypNumber, Pflicht: true},
		{Name: "anmerkung", Typ: entity.FeldTypTextarea},
	}

	assert.NoError(t, kategorie.ValidateRequired(felder, map[string]string{"wohnflaeche": "120"}))
	assert.Error(t, kategorie.ValidateRequired(felder, map[string]string{"anmerkung": "x"}))
	assert.Error(t, kategorie.ValidateRequired(felder, map[string]string{"wohnflaeche": "   "}))
}
