// Package pdf genera la versión imprimible del reporte de productos faltantes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del restaurante │ Fecha y hora                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Actual | Mínimo | Necesita   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos faltantes                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/inventario-restaurante/internal/application/report"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 176, Green: 42, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.LowStockPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.LowStockPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	title string
}

// NewMarotoPDFGenerator construye el generador. title suele ser el nombre del restaurante.
func NewMarotoPDFGenerator(title string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{title: title}
}

// GenerateLowStockPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateLowStockPDF(_ context.Context, products []*entity.Product, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de productos faltantes", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(products) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Todos los productos tienen stock suficiente", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 4,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(tableRows(products)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(title, "Inventario"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("REPORTE DE INVENTARIO - PRODUCTOS FALTANTES", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+at.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Hora: "+at.Format("15:04:05"), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow cabecera con fondo de color.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 3, align.Left),
		h("Actual", 2, align.Right),
		h("Mínimo", 1, align.Right),
		h("Necesita", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows una fila por producto.
func tableRows(products []*entity.Product) []core.Row {
	out := make([]core.Row, 0, len(products))
	for _, p := range products {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		out = append(out, row.New(7).Add(
			cell(p.Name, 4, align.Left),
			cell(p.CategoryName, 3, align.Left),
			cell(fmt.Sprintf("%d %s", p.CurrentStock, p.Unit), 2, align.Right),
			cell(fmt.Sprintf("%d", p.MinStock), 1, align.Right),
			cell(fmt.Sprintf("%d %s", inventory.Shortfall(p), p.Unit), 2, align.Right),
		))
	}
	return out
}

func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Productos por reponer: %d", count), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorPrimary,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
