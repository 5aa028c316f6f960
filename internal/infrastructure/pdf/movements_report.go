// Package pdf genera reportes PDF del libro de stock con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período     │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Tipo | Cant | P.Unit | Total | …  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Entradas / Salidas / Movimientos                   │
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLoss    = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorProfit  = &props.Color{Red: 20, Green: 120, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MovementsReportGenerator implementa ledger.ReportGenerator usando Maroto v2.
type MovementsReportGenerator struct {
	title string
	now   func() time.Time
}

// NewMovementsReportGenerator construye el generador. title encabeza cada reporte.
func NewMovementsReportGenerator(title string) *MovementsReportGenerator {
	if title == "" {
		title = "Movimientos de stock"
	}
	return &MovementsReportGenerator{title: title, now: time.Now}
}

// GenerateMovementsReport genera el PDF y devuelve sus bytes.
func (g *MovementsReportGenerator) GenerateMovementsReport(_ context.Context, report *dto.MovementsReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, report.Period, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(report.Items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, period dto.PeriodDTO, issued time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(strings.ToUpper(title), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Período: %s a %s", period.StartDate, period.EndDate), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitido: "+issued.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Tipo", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("P. Unit.", 1, align.Right),
		h("Total", 1, align.Right),
		h("Resta", 1, align.Right),
		h("Result.", 1, align.Center),
	)
}

func tableRows(items []dto.MovementResponse) []core.Row {
	rows := make([]core.Row, 0, len(items))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	for _, it := range items {
		product := it.ProductName
		if it.ProductType != "" {
			product += " (" + it.ProductType + ")"
		}
		rows = append(rows, row.New(6).Add(
			cell(it.Date.Format("02/01/2006 15:04"), 2, align.Left),
			cell(product, 3, align.Left),
			cell(movementLabel(it.MovementType), 2, align.Left),
			cell(fmt.Sprintf("%d", it.ProductQuantity), 1, align.Right),
			cell(formatMoney(it.PricePerUnit), 1, align.Right),
			cell(formatMoney(it.TotalPrice), 1, align.Right),
			cell(fmt.Sprintf("%d", it.RemainingQuantity), 1, align.Right),
			col.New(1).Add(text.New(profitLabel(it.ProfitStatus), props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: profitColor(it.ProfitStatus),
			})),
		))
	}
	return rows
}

func summaryRow(items []dto.MovementResponse) core.Row {
	in, out := decimal.Zero, decimal.Zero
	for _, it := range items {
		if it.MovementType == entity.MovementKindStockOut {
			out = out.Add(it.TotalPrice)
		} else {
			in = in.Add(it.TotalPrice)
		}
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(label("Entradas:"), label("Salidas:"), label("Movimientos:")),
		col.New(3).Add(
			value("$"+formatMoney(in)),
			value("$"+formatMoney(out)),
			value(fmt.Sprintf("%d", len(items))),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func movementLabel(kind string) string {
	switch kind {
	case entity.MovementKindStockIn:
		return "Entrada"
	case entity.MovementKindStockUpdate:
		return "Reposición"
	case entity.MovementKindStockOut:
		return "Salida"
	}
	return kind
}

func profitLabel(status string) string {
	switch status {
	case inventory.ProfitStatusProfit:
		return "Ganancia"
	case inventory.ProfitStatusLoss:
		return "Pérdida"
	}
	return "Equilibrio"
}

func profitColor(status string) *props.Color {
	switch status {
	case inventory.ProfitStatusProfit:
		return colorProfit
	case inventory.ProfitStatusLoss:
		return colorLoss
	}
	return colorGray
}

// formatMoney formatea con punto de miles y coma decimal (2 decimales).
// Ej: 25000.5 → "25.000,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
