// Package pdf implementa el reporte resumen de RuStock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app         │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Productos | Unidades | Valor | Ventas | Compras    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant. | Precio | Valor                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK BAJO: productos con cantidad <= umbral               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/rustock/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.Renderer = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.Renderer usando Maroto v2.
type MarotoReportGenerator struct {
	appName string
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador. Los montos se formatean según lang.
func NewMarotoReportGenerator(appName string, lang language.Tag) *MarotoReportGenerator {
	return &MarotoReportGenerator{appName: appName, printer: message.NewPrinter(lang)}
}

// RenderSummary genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) RenderSummary(_ context.Context, s *report.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("EXISTENCIAS", colorPrimary))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.productRows(s.Inventory.Products)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle(fmt.Sprintf("STOCK BAJO (cantidad <= %d)", s.Inventory.Threshold), colorAlert))
	if len(s.Inventory.LowStock) == 0 {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Sin productos con stock bajo.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(g.productRows(s.Inventory.LowStock)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(s *report.Summary) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario, ventas y compras", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+s.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: cifras globales en cinco columnas.
func (g *MarotoReportGenerator) summaryRow(s *report.Summary) core.Row {
	cell := func(size int, label, value string) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell(2, "Productos", g.printer.Sprintf("%d", s.Inventory.TotalProducts)),
		cell(2, "Unidades", g.printer.Sprintf("%d", s.Inventory.TotalUnits)),
		cell(3, "Valor en stock", g.money(s.Inventory.StockValue)),
		cell(3, g.printer.Sprintf("Ventas (%d)", s.Sales.Count), g.money(s.Sales.Revenue)),
		cell(2, g.printer.Sprintf("Compras (%d)", s.Purchases.Count), g.money(s.Purchases.TotalCost)),
	)
}

func sectionTitle(title string, color *props.Color) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: color, Top: 2}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 6, align.Left),
		h("Cant.", 2, align.Center),
		h("Precio", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

func (g *MarotoReportGenerator) productRows(lines []report.ProductLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, p := range lines {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.printer.Sprintf("%d", p.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.money(p.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.money(p.Value), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separadores del idioma configurado y dos decimales.
func (g *MarotoReportGenerator) money(d decimal.Decimal) string {
	return "$" + g.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}
