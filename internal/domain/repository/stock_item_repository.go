package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// StockItemRepository puerto de persistencia para ítems de inventario.
// Las búsquedas retornan (nil, nil) cuando el ítem no existe.
type StockItemRepository interface {
	GetByName(name string) (*entity.StockItem, error)
	// GetByNameForUpdate obtiene el ítem y bloquea su fila (SELECT FOR UPDATE)
	// dentro de la transacción activa.
	GetByNameForUpdate(name string) (*entity.StockItem, error)
	GetByID(id string) (*entity.StockItem, error)
	// Create inserta un ítem nuevo. Retorna domain.ErrDuplicate si la clave
	// natural (name) ya existe.
	Create(item *entity.StockItem) error
	Update(item *entity.StockItem) error
	// Overwrite sobreescribe la fila completa por ID (edición de grilla).
	// Un ID inexistente es un no-op, igual que un UPDATE sin filas afectadas.
	Overwrite(item *entity.StockItem) error
}
