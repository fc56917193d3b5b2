package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y dashboard.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// ListInventory devuelve el inventario completo ordenado por nombre.
func (r *ReportRepo) ListInventory(ctx context.Context) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY name`
	return r.queryItems(ctx, query)
}

// ListLowStock devuelve los ítems en o por debajo de su umbral mínimo.
func (r *ReportRepo) ListLowStock(ctx context.Context) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE quantity <= min_threshold ORDER BY name`
	return r.queryItems(ctx, query)
}

// TopItems devuelve los `limit` ítems con mayor existencia.
func (r *ReportRepo) TopItems(ctx context.Context, limit int) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY quantity DESC, name LIMIT $1`
	return r.queryItems(ctx, query, limit)
}

// ListMovements pagina el historial, más reciente primero.
func (r *ReportRepo) ListMovements(ctx context.Context, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, item_name, quantity, direction, total_value, responsible, created_at
		FROM movements ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	return r.queryMovements(ctx, query, limit, offset)
}

// ListAllMovements devuelve el historial completo, más reciente primero.
func (r *ReportRepo) ListAllMovements(ctx context.Context) ([]*entity.Movement, error) {
	query := `
		SELECT id, item_name, quantity, direction, total_value, responsible, created_at
		FROM movements ORDER BY created_at DESC, id`
	return r.queryMovements(ctx, query)
}

// DailyAggregates suma las cantidades movidas por día y dirección.
func (r *ReportRepo) DailyAggregates(ctx context.Context) ([]repository.DailyAggregate, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, direction, SUM(quantity)
		FROM movements
		GROUP BY day, direction
		ORDER BY day, direction`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.DailyAggregates: %w", err)
	}
	defer rows.Close()
	var out []repository.DailyAggregate
	for rows.Next() {
		var a repository.DailyAggregate
		if err := rows.Scan(&a.Date, &a.Direction, &a.Quantity); err != nil {
			return nil, fmt.Errorf("report.DailyAggregates scan: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Totals calcula los KPIs globales del inventario en una sola consulta.
// COALESCE protege el caso de inventario vacío.
func (r *ReportRepo) Totals(ctx context.Context) (*repository.InventoryTotals, error) {
	query := `
		SELECT
		    COALESCE(SUM(quantity), 0)                                  AS total_units,
		    COALESCE(SUM(quantity * unit_price), 0)                     AS total_value,
		    COUNT(*) FILTER (WHERE quantity <= min_threshold)           AS low_stock_count,
		    COUNT(DISTINCT category)                                    AS category_count
		FROM stock_items`
	var t repository.InventoryTotals
	err := r.pool.QueryRow(ctx, query).Scan(
		&t.TotalUnits, &t.TotalValue, &t.LowStockCount, &t.CategoryCount,
	)
	if err != nil {
		return nil, fmt.Errorf("report.Totals: %w", err)
	}
	return &t, nil
}

// ValueByCategory agrupa unidades y valor del inventario por categoría.
func (r *ReportRepo) ValueByCategory(ctx context.Context) ([]repository.CategoryValue, error) {
	query := `
		SELECT category, COALESCE(SUM(quantity), 0), COALESCE(SUM(quantity * unit_price), 0)
		FROM stock_items
		GROUP BY category
		ORDER BY 3 DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.ValueByCategory: %w", err)
	}
	defer rows.Close()
	var out []repository.CategoryValue
	for rows.Next() {
		var c repository.CategoryValue
		if err := rows.Scan(&c.Category, &c.Units, &c.TotalValue); err != nil {
			return nil, fmt.Errorf("report.ValueByCategory scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ReportRepo) queryItems(ctx context.Context, query string, args ...any) ([]*entity.StockItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var out []*entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Category, &it.Quantity, &it.UnitPrice,
			&it.MinThreshold, &it.Responsible, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

func (r *ReportRepo) queryMovements(ctx context.Context, query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var out []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.ItemName, &m.Quantity, &m.Direction,
			&m.TotalValue, &m.Responsible, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
