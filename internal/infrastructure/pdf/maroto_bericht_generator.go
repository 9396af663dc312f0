// Package pdf rendert den herunterladbaren Projektbericht.
//
// Seitenaufbau (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  KOPF: Projektname + Nummer  │  Status + Datum              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STAMMDATEN: Kunde / Adresse / Kategorie / Budget / Termine  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BESCHREIBUNG                                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ETAPPEN: Liste mit Abschluss-Markierung + Fortschrittsbalken│
//	│  ─────────────────────────────────────────────────────────  │
//	│  FUSS: Dokumentanzahl + Erstellungshinweis                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ep-bau/ep-system/internal/application/reports"
	"github.com/ep-bau/ep-system/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 194, Green: 65, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 130, Blue: 60}
)

// MarotoBerichtGenerator implementiert reports.ProjektberichtGenerator mit Maroto v2.
type MarotoBerichtGenerator struct{}

// NewMarotoBerichtGenerator konstruiert den Generator.
func NewMarotoBerichtGenerator() *MarotoBerichtGenerator { return &MarotoBerichtGenerator{} }

// GenerateProjektbericht rendert den Bericht und liefert die PDF-Bytes.
func (g *MarotoBerichtGenerator) GenerateProjektbericht(
	_ context.Context,
	data *reports.ProjektberichtData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Projektbericht "+data.Projekt.Nummer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(kopfRow(data.Projekt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(stammdatenRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if data.Projekt.Beschreibung != "" {
		m.AddRows(beschreibungRows(data.Projekt.Beschreibung)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(etappenRows(data)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(fussRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: dokument erzeugen: %w", err)
	}
	return doc.GetBytes(), nil
}

// kopfRow: Projektname + Nummer (links), Status + Datum (rechts).
func kopfRow(p *entity.Projekt) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(p.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Projekt "+p.Nummer, props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PROJEKTBERICHT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(p.Status, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Stand: "+time.Now().Format("02.01.2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// stammdatenRows: Kunde, Adresse, Kategorie, Budget und Termine.
func stammdatenRows(data *reports.ProjektberichtData) []core.Row {
	p := data.Projekt

	kunde := "—"
	if data.Kunde != nil {
		kunde = kundeName(data.Kunde)
	}
	kategorie := "—"
	if len(data.KategorieNamen) > 0 {
		kategorie = strings.Join(data.KategorieNamen, " / ")
	}
	budget := "—"
	if !p.Budget.IsZero() {
		budget = "€ " + p.Budget.StringFixed(2)
	}

	zeitraum := formatDatum(p.Startdatum) + " – " + formatDatum(p.Enddatum)

	feld := func(label, wert string) core.Col {
		return col.New(6).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7.5, Color: colorPrimary, Top: 1,
			}),
			text.New(wert, props.Text{Size: 9, Top: 5.5}),
		)
	}

	return []core.Row{
		row.New(12).Add(
			feld("AUFTRAGGEBER", kunde),
			feld("ADRESSE", nonEmpty(p.Adresse, "—")),
		),
		row.New(12).Add(
			feld("KATEGORIE", kategorie),
			feld("PRIORITÄT", p.Prioritaet),
		),
		row.New(12).Add(
			feld("BUDGET", budget),
			feld("ZEITRAUM", zeitraum),
		),
	}
}

// beschreibungRows: Freitext des Projekts.
func beschreibungRows(beschreibung string) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("BESCHREIBUNG", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		text.NewRow(14, beschreibung, props.Text{Size: 9, Top: 1, Color: colorGray}),
	}
}

// etappenRows: Etappenliste mit Abschluss-Markierung plus Fortschrittsbalken.
func etappenRows(data *reports.ProjektberichtData) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(fmt.Sprintf("ETAPPEN (%d von %d abgeschlossen)",
				data.EtappenErledigt, data.EtappenGesamt), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	for _, e := range data.Etappen {
		marker := "○"
		farbe := colorGray
		if e.Abgeschlossen {
			marker = "●"
			farbe = colorGreen
		}
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(marker, props.Text{
				Size: 9, Align: align.Center, Top: 1, Color: farbe,
			})),
			col.New(11).Add(text.New(e.Titel, props.Text{Size: 9, Top: 1})),
		))
	}
	if len(data.Etappen) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Keine Etappen angelegt.", props.Text{Size: 9, Top: 1, Color: colorGray}),
		)))
	}

	// Fortschrittsbalken: gefüllter Anteil als dicke Linie
	rows = append(rows, row.New(4))
	rows = append(rows, row.New(8).Add(
		col.New(9).Add(
			line.New(props.Line{
				Color:         colorGreen,
				Thickness:     3,
				SizePercent:   float64(maxInt(data.FortschrittProzent, 1)),
				OffsetPercent: 50,
			}),
		),
		col.New(3).Add(text.New(fmt.Sprintf("%d %%", data.FortschrittProzent), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorGreen,
		})),
	))

	return rows
}

// fussRow: Dokumentanzahl und Hinweis.
func fussRow(data *reports.ProjektberichtData) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("Hinterlegte Dokumente: %d", data.DokumenteAnzahl),
			props.Text{Size: 8, Top: 2, Color: colorGray},
		)),
		col.New(6).Add(text.New(
			"Automatisch erstellt mit EP-System",
			props.Text{Size: 7, Align: align.Right, Top: 3, Color: colorGray},
		)),
	)
}

func kundeName(k *entity.Kunde) string {
	if k.Firma != "" {
		return k.Firma
	}
	return strings.TrimSpace(k.Vorname + " " + k.Nachname)
}

func formatDatum(t *time.Time) string {
	if t == nil {
		return "offen"
	}
	return t.Format("02.01.2006")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
