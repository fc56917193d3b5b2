package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const stockItemColumns = `id, name, category, quantity, unit_price, min_threshold, responsible, created_at, updated_at`

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL
// (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de ítems. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// GetByName obtiene un ítem por su clave natural. (nil, nil) si no existe.
func (r *StockItemRepo) GetByName(name string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get stock item by name")
}

// GetByNameForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE)
// para que movimientos concurrentes sobre el mismo ítem se serialicen.
func (r *StockItemRepo) GetByNameForUpdate(name string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE name = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get stock item for update")
}

// GetByID obtiene un ítem por su ID surrogate. (nil, nil) si no existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock item by id")
}

// Create inserta un ítem nuevo. Mapea la violación del índice único de name
// a domain.ErrDuplicate para que el caller pueda reintentar.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, name, category, quantity, unit_price, min_threshold, responsible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Quantity, item.UnitPrice,
		item.MinThreshold, item.Responsible, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// Update actualiza cantidad, precio, responsable y timestamp de un ítem.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET quantity = $2, unit_price = $3, responsible = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.UnitPrice, item.Responsible, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// Overwrite sobreescribe la fila completa por ID (edición de grilla). Un ID
// inexistente no afecta filas y no es error.
func (r *StockItemRepo) Overwrite(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET name = $2, category = $3, quantity = $4, unit_price = $5, min_threshold = $6, responsible = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Quantity, item.UnitPrice,
		item.MinThreshold, item.Responsible, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("overwrite stock item: %w", err)
	}
	return nil
}

func (r *StockItemRepo) scanOne(row pgx.Row, op string) (*entity.StockItem, error) {
	var it entity.StockItem
	err := row.Scan(
		&it.ID, &it.Name, &it.Category, &it.Quantity, &it.UnitPrice,
		&it.MinThreshold, &it.Responsible, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
