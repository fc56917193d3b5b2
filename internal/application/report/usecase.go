// Package report contiene los casos de uso de solo lectura: snapshots del
// inventario, historial, agregados diarios, dashboard y exportaciones.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

const dashboardTopItems = 5 // ítems en el widget de mayores existencias

// Encabezado del CSV del historial, una columna por atributo del movimiento.
var csvHeader = []string{"id", "item_name", "quantity", "direction", "total_value", "responsible", "created_at"}

var currencyPrinter = message.NewPrinter(language.LatinAmericanSpanish)

// ReportUseCase proyecciones de solo lectura sobre el estado actual.
// No cachea nada: cada llamada consulta el repositorio.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	pdfGen     HistoryPDFGenerator
	excelGen   InventoryExcelGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(reportRepo repository.ReportRepository, pdfGen HistoryPDFGenerator, excelGen InventoryExcelGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, pdfGen: pdfGen, excelGen: excelGen}
}

// Inventory devuelve el snapshot del inventario actual.
func (uc *ReportUseCase) Inventory(ctx context.Context) ([]dto.StockItemDTO, error) {
	items, err := uc.reportRepo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	return toItemDTOs(items), nil
}

// LowStock devuelve los ítems en o por debajo de su umbral mínimo.
func (uc *ReportUseCase) LowStock(ctx context.Context) ([]dto.StockItemDTO, error) {
	items, err := uc.reportRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toItemDTOs(items), nil
}

// Movements devuelve una página del historial, más reciente primero.
func (uc *ReportUseCase) Movements(ctx context.Context, page dto.PageRequest) (*dto.MovementPageDTO, error) {
	page.DefaultPage()
	movements, err := uc.reportRepo.ListMovements(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementDTO(m))
	}
	return &dto.MovementPageDTO{Movements: out, Limit: page.Limit, Offset: page.Offset}, nil
}

// Daily agrega las cantidades movidas por día y dirección (serie del
// gráfico entrada-vs-salida).
func (uc *ReportUseCase) Daily(ctx context.Context) ([]dto.DailyAggregateDTO, error) {
	rows, err := uc.reportRepo.DailyAggregates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailyAggregateDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailyAggregateDTO{
			Date:      r.Date.Format("2006-01-02"),
			Direction: r.Direction,
			Quantity:  r.Quantity,
		})
	}
	return out, nil
}

// Dashboard construye el resumen ejecutivo: KPIs globales, top de ítems por
// cantidad y valor por categoría. Las tres consultas corren en paralelo.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type totalsResult struct {
		totals *repository.InventoryTotals
		err    error
	}
	type topResult struct {
		items []*entity.StockItem
		err   error
	}
	type categoriesResult struct {
		values []repository.CategoryValue
		err    error
	}

	totalsCh := make(chan totalsResult, 1)
	topCh := make(chan topResult, 1)
	catCh := make(chan categoriesResult, 1)

	go func() {
		t, err := uc.reportRepo.Totals(ctx)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		items, err := uc.reportRepo.TopItems(ctx, dashboardTopItems)
		topCh <- topResult{items, err}
	}()
	go func() {
		values, err := uc.reportRepo.ValueByCategory(ctx)
		catCh <- categoriesResult{values, err}
	}()

	totals := <-totalsCh
	top := <-topCh
	cats := <-catCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard totals: %w", totals.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard top items: %w", top.err)
	}
	if cats.err != nil {
		return nil, fmt.Errorf("dashboard categories: %w", cats.err)
	}

	byCategory := make([]dto.CategoryValueDTO, 0, len(cats.values))
	for _, c := range cats.values {
		byCategory = append(byCategory, dto.CategoryValueDTO{
			Category:   c.Category,
			Units:      c.Units,
			TotalValue: c.TotalValue,
		})
	}

	totalValue, _ := totals.totals.TotalValue.Float64()
	return &dto.DashboardSummaryDTO{
		TotalUnits:      totals.totals.TotalUnits,
		TotalValue:      totals.totals.TotalValue,
		TotalValueLabel: currencyPrinter.Sprintf("$ %.2f", totalValue),
		LowStockCount:   totals.totals.LowStockCount,
		CategoryCount:   totals.totals.CategoryCount,
		TopItems:        toItemDTOs(top.items),
		ValueByCategory: byCategory,
	}, nil
}

// ExportHistoryCSV exporta el historial completo como CSV: fila de
// encabezado y un movimiento por fila, más reciente primero.
func (uc *ReportUseCase) ExportHistoryCSV(ctx context.Context) ([]byte, error) {
	movements, err := uc.reportRepo.ListAllMovements(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for _, m := range movements {
		record := []string{
			m.ID,
			m.ItemName,
			strconv.FormatInt(m.Quantity, 10),
			m.Direction,
			m.TotalValue.StringFixed(2),
			m.Responsible,
			m.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportHistoryPDF renderiza el historial completo como PDF.
func (uc *ReportUseCase) ExportHistoryPDF(ctx context.Context) ([]byte, error) {
	movements, err := uc.reportRepo.ListAllMovements(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateHistoryPDF(ctx, movements)
}

// ExportInventoryXLSX genera el libro XLSX del inventario actual.
func (uc *ReportUseCase) ExportInventoryXLSX(ctx context.Context) ([]byte, error) {
	items, err := uc.reportRepo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	return uc.excelGen.GenerateInventoryXLSX(items)
}

func toItemDTOs(items []*entity.StockItem) []dto.StockItemDTO {
	out := make([]dto.StockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StockItemDTO{
			ID:           it.ID,
			Name:         it.Name,
			Category:     it.Category,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TotalValue:   it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
			MinThreshold: it.MinThreshold,
			LowStock:     it.LowStock(),
			Responsible:  it.Responsible,
			UpdatedAt:    it.UpdatedAt,
		})
	}
	return out
}

func toMovementDTO(m *entity.Movement) dto.MovementDTO {
	return dto.MovementDTO{
		ID:          m.ID,
		ItemName:    m.ItemName,
		Quantity:    m.Quantity,
		Direction:   m.Direction,
		TotalValue:  m.TotalValue,
		Responsible: m.Responsible,
		CreatedAt:   m.CreatedAt,
	}
}
