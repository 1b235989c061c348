package documents

import (
	"math/rand"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/runnerr0/patina/internal/layout"
)

func TestGenerateInvestmentDocuments(t *testing.T) {
	cfg := financeConfig()
	tree := layout.New(t.TempDir())
	rng := rand.New(rand.NewSource(7))

	written, err := GenerateInvestmentDocuments(cfg, tree, rng)
	require.NoError(t, err)
	require.Len(t, written, 2, "one statement per tax year")

	wantPath := filepath.Join(tree.Desktop(), "Investments", "Investment_Statement_2023.xlsx")
	assert.Equal(t, wantPath, written[0])

	f, err := excelize.OpenFile(written[0])
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	assert.Equal(t, []string{
		"Summary", "Stock Transactions", "ETF Transactions",
		"Bond Transactions", "Holdings", "Tax Information",
	}, f.GetSheetList())

	year, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2023", year)

	holder, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", holder)

	header, err := f.GetCellValue("Stock Transactions", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Type", header)
}

func TestAnnualStatementLedgerTotals(t *testing.T) {
	cfg := financeConfig()
	rng := rand.New(rand.NewSource(3))

	sheets := annualStatementSheets(cfg, rng, 2024)
	require.Len(t, sheets, 6)

	stockSheet := sheets[1]
	require.Equal(t, "Stock Transactions", stockSheet.Name)

	// Header row, then one or two trades per sampled symbol, then a blank
	// row and two total rows.
	trades := stockSheet.Rows[1 : len(stockSheet.Rows)-3]
	require.NotEmpty(t, trades)
	for _, row := range trades {
		require.Len(t, row, 7)
		kind, ok := row[1].(string)
		require.True(t, ok)
		assert.Contains(t, []string{"BUY", "SELL"}, kind)
		shares, ok := row[3].(int)
		require.True(t, ok)
		assert.Greater(t, shares, 0)
	}

	// Trade dates stay inside the statement year and arrive sorted.
	var last string
	for _, row := range trades {
		date := row[0].(string)
		y, err := strconv.Atoi(date[6:])
		require.NoError(t, err)
		assert.Equal(t, 2024, y)
		if last != "" {
			assert.GreaterOrEqual(t, date[:2]+date[3:5], last[:2]+last[3:5], "trades out of order")
		}
		last = date
	}
}

func TestAnnualStatementDeterministic(t *testing.T) {
	cfg := financeConfig()

	a := annualStatementSheets(cfg, rand.New(rand.NewSource(11)), 2024)
	b := annualStatementSheets(cfg, rand.New(rand.NewSource(11)), 2024)
	assert.Equal(t, a, b)
}
