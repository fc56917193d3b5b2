package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// MovementRepository puerto de persistencia para el historial de movimientos.
// Solo inserción: el historial es append-only.
type MovementRepository interface {
	Create(movement *entity.Movement) error
}
