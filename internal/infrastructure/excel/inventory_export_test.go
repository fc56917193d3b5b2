package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

func TestGenerateInventoryXLSX(t *testing.T) {
	updated := time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC)
	items := []*entity.StockItem{
		{
			ID: "it-1", Name: "Shampoo 500ml", Category: "Higiene",
			Quantity: 40, UnitPrice: decimal.RequireFromString("12.50"),
			MinThreshold: 5, Responsible: "carlos", UpdatedAt: updated,
		},
		{
			ID: "it-2", Name: "Peine", Category: "Accesorios",
			Quantity: 2, UnitPrice: decimal.RequireFromString("3.00"),
			MinThreshold: 5, Responsible: "laura", UpdatedAt: updated,
		},
	}

	raw, err := NewInventoryExport().GenerateInventoryXLSX(items)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"id", "name", "category", "quantity", "unit_price", "min_threshold", "responsible", "updated_at"}, rows[0])
	assert.Equal(t, "Shampoo 500ml", rows[1][1])
	assert.Equal(t, "40", rows[1][3])
	assert.Equal(t, "12.5", rows[1][4])
	assert.Equal(t, "2026-08-14 09:30:00", rows[1][7])
	assert.Equal(t, "Peine", rows[2][1])
}

func TestGenerateInventoryXLSXVacio(t *testing.T) {
	raw, err := NewInventoryExport().GenerateInventoryXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	require.Len(t, rows, 1) // solo encabezado
}
