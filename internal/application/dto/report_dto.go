package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItemDTO fila del inventario actual.
type StockItemDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalValue   decimal.Decimal `json:"total_value"` // cantidad × precio unitario
	MinThreshold int64           `json:"min_threshold"`
	LowStock     bool            `json:"low_stock"`
	Responsible  string          `json:"responsible"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MovementDTO fila del historial de movimientos.
type MovementDTO struct {
	ID          string          `json:"id"`
	ItemName    string          `json:"item_name"`
	Quantity    int64           `json:"quantity"`
	Direction   string          `json:"direction"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Responsible string          `json:"responsible"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MovementPageDTO página del historial.
type MovementPageDTO struct {
	Movements []MovementDTO `json:"movements"`
	Limit     int           `json:"limit"`
	Offset    int           `json:"offset"`
}

// DailyAggregateDTO punto de la serie entrada-vs-salida por día.
type DailyAggregateDTO struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Direction string `json:"direction"`
	Quantity  int64  `json:"quantity"`
}

// CategoryValueDTO valor del inventario por categoría (gráfico de torta).
type CategoryValueDTO struct {
	Category   string          `json:"category"`
	Units      int64           `json:"units"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// DashboardSummaryDTO respuesta de GET /api/reports/dashboard.
// KPIs del inventario completo más los widgets de apoyo.
type DashboardSummaryDTO struct {
	TotalUnits      int64              `json:"total_units"`
	TotalValue      decimal.Decimal    `json:"total_value"`
	TotalValueLabel string             `json:"total_value_label"` // formateado para UI
	LowStockCount   int64              `json:"low_stock_count"`
	CategoryCount   int64              `json:"category_count"`
	TopItems        []StockItemDTO     `json:"top_items"` // top 5 por cantidad
	ValueByCategory []CategoryValueDTO `json:"value_by_category"`
}
