package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// Dos primeras entradas simultáneas de un ítem nuevo chocan en el índice
// único de name; la perdedora reintenta y toma la ruta de actualización.
const maxCreateRetries = 3

// LedgerUseCase registra movimientos de inventario y aplica ediciones
// masivas de la grilla, siempre de forma transaccional: bloqueo de fila
// (SELECT FOR UPDATE) más Commit/Rollback vía TxRunner.
type LedgerUseCase struct {
	txRunner       TxRunner
	auditBulkEdits bool
}

// NewLedgerUseCase construye el caso de uso. auditBulkEdits activa los
// movimientos sintéticos para ediciones masivas (apagado por defecto).
func NewLedgerUseCase(txRunner TxRunner, auditBulkEdits bool) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, auditBulkEdits: auditBulkEdits}
}

// RecordMovement registra una entrada o salida sobre un ítem identificado por
// su clave natural y devuelve la cantidad resultante.
//
// Entrada: crea el ítem si no existe (categoría General, umbral mínimo por
// defecto); si existe, suma la cantidad y sobreescribe el precio unitario con
// el de esta llamada (política de último costo, sin promediar).
// Salida: falla con InsufficientStockError si el ítem no existe o no alcanza
// la cantidad; sin despachos parciales. El precio unitario no se toca.
//
// En ambos casos el responsable y el timestamp del ítem quedan con los
// valores de esta llamada, y se agrega exactamente un registro al historial
// dentro de la misma transacción. Una llamada fallida no deja rastro.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, in dto.RecordMovementRequest) (int64, error) {
	if in.ItemName == "" || in.Quantity <= 0 || !entity.ValidDirection(in.Direction) {
		return 0, domain.ErrInvalidInput
	}
	unitPrice := decimal.Zero
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return 0, domain.ErrInvalidInput
		}
		unitPrice = *in.UnitPrice
	}

	var newQty int64
	var err error
	for attempt := 0; attempt < maxCreateRetries; attempt++ {
		newQty, err = uc.recordOnce(ctx, in, unitPrice)
		if !errors.Is(err, domain.ErrDuplicate) {
			break
		}
	}
	return newQty, err
}

func (uc *LedgerUseCase) recordOnce(ctx context.Context, in dto.RecordMovementRequest, unitPrice decimal.Decimal) (int64, error) {
	var newQty int64
	err := uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository, movRepo repository.MovementRepository) error {
		now := time.Now()
		item, err := itemRepo.GetByNameForUpdate(in.ItemName)
		if err != nil {
			return err
		}

		totalValue := decimal.Zero
		switch in.Direction {
		case entity.DirectionIn:
			if item == nil {
				item = &entity.StockItem{
					ID:           uuid.New().String(),
					Name:         in.ItemName,
					Category:     entity.DefaultCategory,
					Quantity:     in.Quantity,
					UnitPrice:    unitPrice,
					MinThreshold: entity.DefaultMinThreshold,
					Responsible:  in.Responsible,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
				if err := itemRepo.Create(item); err != nil {
					return err
				}
			} else {
				item.Quantity += in.Quantity
				item.UnitPrice = unitPrice
				item.Responsible = in.Responsible
				item.UpdatedAt = now
				if err := itemRepo.Update(item); err != nil {
					return err
				}
			}
			totalValue = unitPrice.Mul(decimal.NewFromInt(in.Quantity))

		case entity.DirectionOut:
			if item == nil {
				return &domain.InsufficientStockError{ItemName: in.ItemName, Requested: in.Quantity, Available: 0}
			}
			if item.Quantity < in.Quantity {
				return &domain.InsufficientStockError{ItemName: in.ItemName, Requested: in.Quantity, Available: item.Quantity}
			}
			item.Quantity -= in.Quantity
			item.Responsible = in.Responsible
			item.UpdatedAt = now
			if err := itemRepo.Update(item); err != nil {
				return err
			}
			// Las salidas no traen precio: valor total 0.
		}

		newQty = item.Quantity
		mov := &entity.Movement{
			ID:          uuid.New().String(),
			ItemName:    in.ItemName,
			Quantity:    in.Quantity,
			Direction:   in.Direction,
			TotalValue:  totalValue,
			Responsible: in.Responsible,
			CreatedAt:   now,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return 0, err
	}
	return newQty, nil
}

// BulkUpdateInventory sobreescribe filas completas del inventario por ID,
// en una sola transacción. Las filas editadas no se revalidan y por defecto
// NO generan historial: limitación conocida de la edición de grilla,
// conservada a propósito. Con auditBulkEdits activo, las diferencias de
// cantidad sí quedan registradas como movimientos sintéticos.
func (uc *LedgerUseCase) BulkUpdateInventory(ctx context.Context, edits []dto.InventoryEdit) error {
	if len(edits) == 0 {
		return nil
	}
	return uc.txRunner.Run(ctx, func(itemRepo repository.StockItemRepository, movRepo repository.MovementRepository) error {
		now := time.Now()
		for _, edit := range edits {
			if edit.ID == "" {
				return domain.ErrInvalidInput
			}

			if uc.auditBulkEdits {
				if err := uc.auditEdit(itemRepo, movRepo, edit, now); err != nil {
					return err
				}
			}

			item := &entity.StockItem{
				ID:           edit.ID,
				Name:         edit.Name,
				Category:     edit.Category,
				Quantity:     edit.Quantity,
				UnitPrice:    edit.UnitPrice,
				MinThreshold: edit.MinThreshold,
				Responsible:  edit.Responsible,
				UpdatedAt:    now,
			}
			if err := itemRepo.Overwrite(item); err != nil {
				return err
			}
		}
		return nil
	})
}

// auditEdit registra la diferencia de cantidad de una edición como movimiento
// sintético. Ediciones sin cambio de cantidad, o sobre IDs inexistentes, no
// generan nada.
func (uc *LedgerUseCase) auditEdit(
	itemRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
	edit dto.InventoryEdit,
	now time.Time,
) error {
	current, err := itemRepo.GetByID(edit.ID)
	if err != nil {
		return err
	}
	if current == nil || current.Quantity == edit.Quantity {
		return nil
	}
	delta := edit.Quantity - current.Quantity
	direction := entity.DirectionIn
	totalValue := edit.UnitPrice.Mul(decimal.NewFromInt(delta))
	if delta < 0 {
		delta = -delta
		direction = entity.DirectionOut
		totalValue = decimal.Zero
	}
	mov := &entity.Movement{
		ID:          uuid.New().String(),
		ItemName:    edit.Name,
		Quantity:    delta,
		Direction:   direction,
		TotalValue:  totalValue,
		Responsible: edit.Responsible,
		CreatedAt:   now,
	}
	return movRepo.Create(mov)
}
