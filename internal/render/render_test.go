package render

import (
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "W2_2024.pdf")
	sections := []Section{
		{Heading: "Employer", Body: "TechCorp Solutions Inc.\n123 Innovation Drive"},
		{Heading: "Wages", Body: "Box 1: 95,000.00"},
	}

	require.NoError(t, WritePDF(path, "Form W-2 Wage and Tax Statement", sections))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "missing PDF magic")
}

func TestWritePDFNonLatinText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.pdf")
	sections := []Section{{Heading: "Résumé — naïve", Body: "Ünïcödé stays rénderable"}}
	require.NoError(t, WritePDF(path, "Títle", sections))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheets", "Portfolio.xlsx")
	sheets := []Sheet{
		{
			Name: "Holdings",
			Rows: [][]interface{}{
				{"Symbol", "Shares", "Price"},
				{"AAPL", 50, 182.52},
			},
		},
		{
			Name: "Summary",
			Rows: [][]interface{}{{"Total Value", 9126.0}},
		},
	}

	require.NoError(t, WriteWorkbook(path, sheets))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	assert.Equal(t, []string{"Holdings", "Summary"}, f.GetSheetList())

	symbol, err := f.GetCellValue("Holdings", "A2")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", symbol)

	shares, err := f.GetCellValue("Holdings", "B2")
	require.NoError(t, err)
	assert.Equal(t, "50", shares)
}

func TestWriteWorkbookLongSheetName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.xlsx")
	longName := strings.Repeat("Quarterly Report ", 4) // 68 chars

	require.NoError(t, WriteWorkbook(path, []Sheet{
		{Name: longName, Rows: [][]interface{}{{"x"}}},
	}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	list := f.GetSheetList()
	require.Len(t, list, 1)
	assert.Equal(t, longName[:31], list[0])
}

func TestWriteDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks", "Q3_Review.md")
	slides := []Slide{
		{Title: "Agenda", Bullets: []string{"Numbers", "Roadmap"}},
		{Title: "Numbers", Bullets: []string{"Revenue up 12%"}},
	}

	require.NoError(t, WriteDeck(path, "Q3 Business Review", slides))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "# Q3 Business Review\n\n"))
	assert.Contains(t, content, "## Agenda\n\n- Numbers\n- Roadmap\n")
	assert.Contains(t, content, "## Numbers\n\n- Revenue up 12%\n")
}

func TestWritePhoto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Photos", "IMG_4821.png")
	rng := rand.New(rand.NewSource(21))

	require.NoError(t, WritePhoto(path, "Vacation 2024", 320, 240, rng))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 240, cfg.Height)
}

func TestWritePhotoDeterministic(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.png")
	pathB := filepath.Join(dir, "b.png")

	require.NoError(t, WritePhoto(pathA, "same", 64, 64, rand.New(rand.NewSource(9))))
	require.NoError(t, WritePhoto(pathB, "same", 64, 64, rand.New(rand.NewSource(9))))

	a, err := os.ReadFile(pathA)
	require.NoError(t, err)
	b, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
