// Package pdf renderiza el reporte de auditoría del historial de movimientos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Ítem | Dirección | Cant. | Valor | Resp.     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades entradas / salidas / valor entradas       │
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stockmaster-api/internal/application/report"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

var _ report.HistoryPDFGenerator = (*MarotoHistoryReport)(nil)

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var moneyPrinter = message.NewPrinter(language.LatinAmericanSpanish)

// MarotoHistoryReport implementa report.HistoryPDFGenerator usando Maroto v2.
type MarotoHistoryReport struct{}

// NewMarotoHistoryReport construye el generador.
func NewMarotoHistoryReport() *MarotoHistoryReport { return &MarotoHistoryReport{} }

// GenerateHistoryPDF genera el PDF del historial y devuelve sus bytes.
// Los movimientos vienen ya ordenados, más reciente primero.
func (g *MarotoHistoryReport) GenerateHistoryPDF(_ context.Context, movements []*entity.Movement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Historial de Movimientos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(movements)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, mov := range movements {
		m.AddRows(movementRow(mov))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(movements))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación + total de filas (der).
func headerRow(count int) core.Row {
	generated := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(7).Add(
			text.New("HISTORIAL DE MOVIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de auditoría de inventario", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generated, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d movimientos", count), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del historial.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Ítem", 4, align.Left),
		h("Dir.", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Valor", 2, align.Right),
		h("Responsable", 2, align.Left),
	)
}

// movementRow: una fila por movimiento.
func movementRow(mov *entity.Movement) core.Row {
	direction := "Entrada"
	if mov.Direction == entity.DirectionOut {
		direction = "Salida"
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(
			mov.CreatedAt.Format("02/01/2006 15:04"),
			props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(4).Add(text.New(
			mov.ItemName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(1).Add(text.New(
			direction,
			props.Text{Size: 7, Align: align.Center, Top: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", mov.Quantity),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			formatMoney(mov.TotalValue),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			mov.Responsible,
			props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
		)),
	)
}

// totalsRow: unidades por dirección y valor total de entradas.
func totalsRow(movements []*entity.Movement) core.Row {
	var unitsIn, unitsOut int64
	valueIn := decimal.Zero
	for _, mov := range movements {
		switch mov.Direction {
		case entity.DirectionIn:
			unitsIn += mov.Quantity
			valueIn = valueIn.Add(mov.TotalValue)
		case entity.DirectionOut:
			unitsOut += mov.Quantity
		}
	}

	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Unidades entradas:", 2),
			label("Unidades salidas:", 8),
			label("Valor de entradas:", 14),
		),
		col.New(4).Add(
			value(fmt.Sprintf("%d", unitsIn), 2),
			value(fmt.Sprintf("%d", unitsOut), 8),
			value(formatMoney(valueIn), 14),
		),
	)
}

func formatMoney(v decimal.Decimal) string {
	f, _ := v.Float64()
	return moneyPrinter.Sprintf("$ %.2f", f)
}
