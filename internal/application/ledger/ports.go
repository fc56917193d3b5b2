package ledger

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización del contador
// de stock y el append al historial se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}
