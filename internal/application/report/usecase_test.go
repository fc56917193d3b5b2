package report

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

type fakeReportRepo struct {
	items     []*entity.StockItem
	movements []*entity.Movement
	totals    repository.InventoryTotals
	daily     []repository.DailyAggregate
	byCat     []repository.CategoryValue

	lastLimit, lastOffset int
}

func (r *fakeReportRepo) ListInventory(ctx context.Context) ([]*entity.StockItem, error) {
	return r.items, nil
}

func (r *fakeReportRepo) ListLowStock(ctx context.Context) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range r.items {
		if it.LowStock() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) ListMovements(ctx context.Context, limit, offset int) ([]*entity.Movement, error) {
	r.lastLimit, r.lastOffset = limit, offset
	return r.movements, nil
}

func (r *fakeReportRepo) ListAllMovements(ctx context.Context) ([]*entity.Movement, error) {
	return r.movements, nil
}

func (r *fakeReportRepo) DailyAggregates(ctx context.Context) ([]repository.DailyAggregate, error) {
	return r.daily, nil
}

func (r *fakeReportRepo) Totals(ctx context.Context) (*repository.InventoryTotals, error) {
	t := r.totals
	return &t, nil
}

func (r *fakeReportRepo) TopItems(ctx context.Context, limit int) ([]*entity.StockItem, error) {
	if len(r.items) > limit {
		return r.items[:limit], nil
	}
	return r.items, nil
}

func (r *fakeReportRepo) ValueByCategory(ctx context.Context) ([]repository.CategoryValue, error) {
	return r.byCat, nil
}

type stubPDF struct{ out []byte }

func (s *stubPDF) GenerateHistoryPDF(ctx context.Context, movements []*entity.Movement) ([]byte, error) {
	return s.out, nil
}

type stubExcel struct{ out []byte }

func (s *stubExcel) GenerateInventoryXLSX(items []*entity.StockItem) ([]byte, error) {
	return s.out, nil
}

func newReportFixture(repo *fakeReportRepo) *ReportUseCase {
	return NewReportUseCase(repo, &stubPDF{out: []byte("%PDF")}, &stubExcel{out: []byte("PK")})
}

func TestExportHistoryCSV(t *testing.T) {
	created := time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC)
	repo := &fakeReportRepo{movements: []*entity.Movement{
		{
			ID: "m-2", ItemName: "Shampoo 500ml", Quantity: 4, Direction: entity.DirectionOut,
			TotalValue: decimal.Zero, Responsible: "laura", CreatedAt: created.Add(time.Hour),
		},
		{
			ID: "m-1", ItemName: "Shampoo 500ml", Quantity: 10, Direction: entity.DirectionIn,
			TotalValue: decimal.RequireFromString("125.00"), Responsible: "carlos", CreatedAt: created,
		},
	}}
	uc := newReportFixture(repo)

	raw, err := uc.ExportHistoryCSV(context.Background())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"id", "item_name", "quantity", "direction", "total_value", "responsible", "created_at"}, rows[0])
	// Más reciente primero, en el orden que entrega el repositorio.
	assert.Equal(t, []string{"m-2", "Shampoo 500ml", "4", "out", "0.00", "laura", "2026-08-14 10:30:00"}, rows[1])
	assert.Equal(t, []string{"m-1", "Shampoo 500ml", "10", "in", "125.00", "carlos", "2026-08-14 09:30:00"}, rows[2])
}

func TestExportHistoryCSVSinMovimientos(t *testing.T) {
	uc := newReportFixture(&fakeReportRepo{})

	raw, err := uc.ExportHistoryCSV(context.Background())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // solo encabezado
}

func TestDashboard(t *testing.T) {
	repo := &fakeReportRepo{
		items: []*entity.StockItem{
			{ID: "it-1", Name: "Shampoo", Quantity: 40, UnitPrice: decimal.RequireFromString("10.00"), MinThreshold: 5},
			{ID: "it-2", Name: "Peine", Quantity: 2, UnitPrice: decimal.RequireFromString("3.00"), MinThreshold: 5},
		},
		totals: repository.InventoryTotals{
			TotalUnits:    42,
			TotalValue:    decimal.RequireFromString("406.00"),
			LowStockCount: 1,
			CategoryCount: 2,
		},
		byCat: []repository.CategoryValue{
			{Category: "Higiene", Units: 40, TotalValue: decimal.RequireFromString("400.00")},
			{Category: "Accesorios", Units: 2, TotalValue: decimal.RequireFromString("6.00")},
		},
	}
	uc := newReportFixture(repo)

	summary, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), summary.TotalUnits)
	assert.True(t, summary.TotalValue.Equal(decimal.RequireFromString("406.00")))
	assert.NotEmpty(t, summary.TotalValueLabel)
	assert.Equal(t, int64(1), summary.LowStockCount)
	assert.Equal(t, int64(2), summary.CategoryCount)

	require.Len(t, summary.TopItems, 2)
	assert.True(t, summary.TopItems[0].TotalValue.Equal(decimal.RequireFromString("400.00")))
	assert.False(t, summary.TopItems[0].LowStock)
	assert.True(t, summary.TopItems[1].LowStock)

	require.Len(t, summary.ValueByCategory, 2)
	assert.Equal(t, "Higiene", summary.ValueByCategory[0].Category)
}

func TestDailyFormateaFechas(t *testing.T) {
	repo := &fakeReportRepo{daily: []repository.DailyAggregate{
		{Date: time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), Direction: entity.DirectionIn, Quantity: 12},
		{Date: time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC), Direction: entity.DirectionOut, Quantity: 7},
	}}
	uc := newReportFixture(repo)

	out, err := uc.Daily(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2026-08-14", out[0].Date)
	assert.Equal(t, entity.DirectionIn, out[0].Direction)
	assert.Equal(t, int64(7), out[1].Quantity)
}

func TestMovementsAplicaPaginacionPorDefecto(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := newReportFixture(repo)

	page, err := uc.Movements(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, 50, page.Limit)
	assert.Empty(t, page.Movements)
}

func TestLowStockFiltraPorUmbral(t *testing.T) {
	repo := &fakeReportRepo{items: []*entity.StockItem{
		{ID: "it-1", Name: "Shampoo", Quantity: 40, MinThreshold: 5},
		{ID: "it-2", Name: "Peine", Quantity: 5, MinThreshold: 5}, // igual al umbral cuenta como alerta
	}}
	uc := newReportFixture(repo)

	out, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Peine", out[0].Name)
	assert.True(t, out[0].LowStock)
}
