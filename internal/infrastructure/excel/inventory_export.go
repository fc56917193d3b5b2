// Package excel genera el libro XLSX del inventario actual.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/report"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

var _ report.InventoryExcelGenerator = (*InventoryExport)(nil)

// InventoryExport implementa report.InventoryExcelGenerator usando excelize.
type InventoryExport struct{}

// NewInventoryExport construye el generador.
func NewInventoryExport() *InventoryExport { return &InventoryExport{} }

// GenerateInventoryXLSX escribe una hoja con una fila por ítem del inventario.
func (g *InventoryExport) GenerateInventoryXLSX(items []*entity.StockItem) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"id",
		"name",
		"category",
		"quantity",
		"unit_price",
		"min_threshold",
		"responsible",
		"updated_at",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx header: %w", err)
	}

	row := 2
	for _, it := range items {
		price, _ := it.UnitPrice.Float64()
		excelRow := []interface{}{
			it.ID,
			it.Name,
			it.Category,
			it.Quantity,
			price,
			it.MinThreshold,
			it.Responsible,
			it.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("xlsx cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx row: %w", err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
