package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// InventoryTotals KPIs agregados del inventario completo.
type InventoryTotals struct {
	TotalUnits    int64
	TotalValue    decimal.Decimal // Σ cantidad × precio unitario
	LowStockCount int64
	CategoryCount int64
}

// DailyAggregate suma de cantidades por día y dirección.
type DailyAggregate struct {
	Date      time.Time
	Direction string
	Quantity  int64
}

// CategoryValue valor del inventario agrupado por categoría.
type CategoryValue struct {
	Category   string
	Units      int64
	TotalValue decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
// Sin caché: cada llamada relee el estado actual.
type ReportRepository interface {
	ListInventory(ctx context.Context) ([]*entity.StockItem, error)
	ListLowStock(ctx context.Context) ([]*entity.StockItem, error)
	// ListMovements pagina el historial ordenado por fecha descendente.
	ListMovements(ctx context.Context, limit, offset int) ([]*entity.Movement, error)
	// ListAllMovements devuelve el historial completo, más reciente primero.
	ListAllMovements(ctx context.Context) ([]*entity.Movement, error)
	DailyAggregates(ctx context.Context) ([]DailyAggregate, error)
	Totals(ctx context.Context) (*InventoryTotals, error)
	TopItems(ctx context.Context, limit int) ([]*entity.StockItem, error)
	ValueByCategory(ctx context.Context) ([]CategoryValue, error)
}
