package report

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// HistoryPDFGenerator renderiza el reporte del historial de movimientos.
type HistoryPDFGenerator interface {
	GenerateHistoryPDF(ctx context.Context, movements []*entity.Movement) ([]byte, error)
}

// InventoryExcelGenerator genera el libro XLSX del inventario actual.
type InventoryExcelGenerator interface {
	GenerateInventoryXLSX(items []*entity.StockItem) ([]byte, error)
}
