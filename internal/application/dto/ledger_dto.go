package dto

import "github.com/shopspring/decimal"

// RecordMovementRequest body para POST /api/ledger/movements.
// UnitPrice solo aplica a entradas; omitido equivale a 0.
type RecordMovementRequest struct {
	ItemName    string           `json:"item_name"`
	Quantity    int64            `json:"quantity"`
	Direction   string           `json:"direction"` // in | out
	Responsible string           `json:"responsible,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
}

// RecordMovementResponse resultado de un movimiento exitoso.
type RecordMovementResponse struct {
	ItemName    string `json:"item_name"`
	NewQuantity int64  `json:"new_quantity"`
}

// InventoryEdit una fila editada de la grilla de inventario.
// Sobreescritura completa por ID; los campos no se revalidan (gap heredado).
type InventoryEdit struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	MinThreshold int64           `json:"min_threshold"`
	Responsible  string          `json:"responsible"`
}

// BulkUpdateRequest body para PUT /api/ledger/inventory.
type BulkUpdateRequest struct {
	Edits []InventoryEdit `json:"edits"`
}
