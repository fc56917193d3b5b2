package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto al crear un ítem implícitamente (primera entrada).
const (
	DefaultCategory     = "General"
	DefaultMinThreshold = 5
)

// StockItem representa un ítem del inventario. La clave natural es Name
// (única); ID es un surrogate para la edición por fila en la grilla.
// Quantity es un contador acumulado: debe coincidir con la suma con signo de
// los movimientos del ítem (las ediciones masivas son la excepción documentada).
type StockItem struct {
	ID           string
	Name         string
	Category     string
	Quantity     int64
	UnitPrice    decimal.Decimal // último costo registrado; cada entrada lo sobreescribe
	MinThreshold int64
	Responsible  string // último responsable que movió el ítem
	CreatedAt    time.Time
	UpdatedAt    time.Time // timestamp del último movimiento
}

// LowStock indica si el ítem está en o por debajo de su umbral mínimo.
func (s *StockItem) LowStock() bool {
	return s.Quantity <= s.MinThreshold
}
