package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de movimiento.
const (
	DirectionIn  = "in"  // entrada: compra, devolución
	DirectionOut = "out" // salida: venta, consumo
)

// ValidDirection valida la dirección de un movimiento.
func ValidDirection(d string) bool {
	return d == DirectionIn || d == DirectionOut
}

// Movement es un registro inmutable del historial: nunca se actualiza ni se
// borra una vez escrito. Referencia al ítem por su clave natural (Name), sin
// foreign key: el historial sobrevive a renombres y borrados del ítem.
type Movement struct {
	ID          string
	ItemName    string
	Quantity    int64  // siempre positivo; el signo lo aporta Direction
	Direction   string // in, out
	TotalValue  decimal.Decimal // cantidad × precio unitario al momento del movimiento
	Responsible string
	CreatedAt   time.Time
}
