// Package pdf genera los reportes de movimientos de bodega.
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte        │  Fecha de generación        │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Lote | Tipo | Motivo | Cant. | Usuario │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de movimientos y cantidades por unidad           │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-alimentos/internal/application/inventory"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
)

var _ inventory.MovementReportGenerator = (*MovementReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 110, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 245, Blue: 240}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MovementReportGenerator implementa inventory.MovementReportGenerator usando Maroto v2.
type MovementReportGenerator struct {
	author string
	loc    *time.Location
}

// NewMovementReportGenerator construye el generador. loc nil = UTC.
func NewMovementReportGenerator(author string, loc *time.Location) *MovementReportGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &MovementReportGenerator{author: author, loc: loc}
}

// GenerateMovementReport genera el PDF y devuelve sus bytes.
func (g *MovementReportGenerator) GenerateMovementReport(
	_ context.Context,
	title string,
	kind entity.MovementKind,
	rows []*entity.MovementView,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(title, kind, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay movimientos registrados.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}
	for i, r := range rows {
		m.AddRows(g.detailRow(r, i%2 == 1))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(rows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MovementReportGenerator) headerRow(title string, kind entity.MovementKind, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Libro de movimientos: "+KindLabel(kind), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(at.In(g.loc).Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Lote", 1, align.Left),
		h("Tipo", 2, align.Left),
		h("Motivo", 2, align.Left),
		h("Cantidad", 1, align.Right),
		h("Usuario", 1, align.Left),
	)
}

func (g *MovementReportGenerator) detailRow(m *entity.MovementView, striped bool) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	r := row.New(6).Add(
		cell(m.CreatedAt.In(g.loc).Format("02/01/2006 15:04"), 2, align.Left),
		cell(m.ProductName, 3, align.Left),
		cell(nonEmpty(m.Lot, "-"), 1, align.Left),
		cell(TypeLabel(m.Type), 2, align.Left),
		cell(CategoryLabel(m.Category), 2, align.Left),
		cell(m.Quantity.String()+" "+string(m.Unit), 1, align.Right),
		cell(m.CreatedBy, 1, align.Left),
	)
	if striped {
		r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// summaryRows: total de movimientos y suma de cantidades por unidad declarada.
func summaryRows(rows []*entity.MovementView) []core.Row {
	out := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New(
			fmt.Sprintf("Total de movimientos: %d", len(rows)),
			props.Text{Style: fontstyle.Bold, Size: 9, Top: 2},
		))),
	}
	for _, t := range TotalsByUnit(rows) {
		out = append(out, row.New(5).Add(col.New(12).Add(text.New(
			fmt.Sprintf("%s %s", t.Quantity.String(), t.Unit),
			props.Text{Size: 8, Left: 4, Color: colorGray},
		))))
	}
	return out
}

// UnitTotal suma de cantidades declaradas en una unidad.
type UnitTotal struct {
	Unit     entity.Unit
	Quantity decimal.Decimal
}

// TotalsByUnit agrupa las cantidades declaradas por unidad, ordenadas por unidad.
// Los ajustes negativos restan.
func TotalsByUnit(rows []*entity.MovementView) []UnitTotal {
	acc := map[entity.Unit]decimal.Decimal{}
	for _, m := range rows {
		q := m.Quantity
		if m.Type == entity.MovementTypeAdjustmentNegative {
			q = q.Neg()
		}
		acc[m.Unit] = acc[m.Unit].Add(q)
	}
	out := make([]UnitTotal, 0, len(acc))
	for u, q := range acc {
		out = append(out, UnitTotal{Unit: u, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Unit < out[j].Unit })
	return out
}

// ── etiquetas ─────────────────────────────────────────────────────────────────

var kindLabels = map[entity.MovementKind]string{
	entity.MovementKindInput:      "Entradas",
	entity.MovementKindOutput:     "Salidas",
	entity.MovementKindAdjustment: "Ajustes",
}

var typeLabels = map[entity.MovementType]string{
	entity.MovementTypeInput:              "Entrada",
	entity.MovementTypeOutput:             "Salida",
	entity.MovementTypeAdjustmentPositive: "Ajuste positivo",
	entity.MovementTypeAdjustmentNegative: "Ajuste negativo",
}

var categoryLabels = map[string]string{
	entity.CategoryDonation:    "Donación",
	entity.CategoryPurchase:    "Compra",
	entity.CategoryReturn:      "Devolución",
	entity.CategoryTransfer:    "Traslado",
	entity.CategoryConsumption: "Consumo",
	entity.CategorySale:        "Venta",
	entity.CategoryCorrection:  "Corrección",
	entity.CategoryLossDamage:  "Pérdida o daño",
	entity.CategoryTheft:       "Robo",
	entity.CategoryDueDate:     "Vencimiento",
	entity.CategoryGeneral:     "General",
}

// KindLabel nombre visible de la familia de movimientos.
func KindLabel(k entity.MovementKind) string { return labelOr(kindLabels, k) }

// TypeLabel nombre visible del tipo de movimiento.
func TypeLabel(t entity.MovementType) string { return labelOr(typeLabels, t) }

// CategoryLabel nombre visible del motivo.
func CategoryLabel(c string) string { return labelOr(categoryLabels, c) }

func labelOr[K ~string](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
