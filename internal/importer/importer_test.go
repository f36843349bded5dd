package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCSVDelimiter(t *testing.T) {
	assert.Equal(t, ',', DetectCSVDelimiter([]byte("sku,length,width,height\nA,6,4,3\n")))
	assert.Equal(t, ';', DetectCSVDelimiter([]byte("sku;length;width;height\nA;6;4;3\n")))
	assert.Equal(t, '\t', DetectCSVDelimiter([]byte("sku\tlength\twidth\theight\nA\t6\t4\t3\n")))
	assert.Equal(t, '|', DetectCSVDelimiter([]byte("sku|length|width|height\nA|6|4|3\n")))
}

func TestDetectColumns_HeaderAliases(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"Item", "Len", "W", "H", "Unit Weight", "Qty Per Box", "Notes"})
	require.True(t, hasHeader)
	assert.Equal(t, 0, mapping.SKU)
	assert.Equal(t, 1, mapping.Length)
	assert.Equal(t, 2, mapping.Width)
	assert.Equal(t, 3, mapping.Height)
	assert.Equal(t, 4, mapping.Weight)
	assert.Equal(t, 5, mapping.Baseline)
	assert.Equal(t, 6, mapping.Notes)
}

func TestDetectColumns_PositionalFallback(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"A", "6", "4", "3"})
	assert.False(t, hasHeader)
	assert.Equal(t, 0, mapping.SKU)
	assert.Equal(t, 1, mapping.Length)
	assert.Equal(t, 2, mapping.Width)
	assert.Equal(t, 3, mapping.Height)
}

func TestImportCSVFromReader_FullCatalog(t *testing.T) {
	csv := strings.NewReader(
		"sku,length,width,height,weight,baseline,notes\n" +
			"MUG-11OZ,4.5,3.5,4.0,0.9,24,Boxed mug\n" +
			"TUM-20OZ,3.2,3.2,7.1,0.75,12,\n")

	result := ImportCSVFromReader(csv, ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Products, 2)

	mug := result.Products[0]
	assert.Equal(t, "MUG-11OZ", mug.SKU)
	assert.InDelta(t, 4.5, mug.Unit.Length, 1e-9)
	assert.InDelta(t, 0.9, mug.Weight, 1e-9)
	assert.Equal(t, 24, mug.Baseline)
	assert.Equal(t, "Boxed mug", mug.Notes)
	assert.NotEmpty(t, mug.ID)

	assert.Equal(t, 12, result.Products[1].Baseline)
}

func TestImportCSVFromReader_RowErrorsDoNotAbort(t *testing.T) {
	csv := strings.NewReader(
		"sku,length,width,height\n" +
			"GOOD,6,4,3\n" +
			"BAD,-2,4,3\n" +
			"ALSO-BAD,6,,3\n" +
			"FINE,1,1,1\n")

	result := ImportCSVFromReader(csv, ',')

	assert.Len(t, result.Products, 2)
	assert.Len(t, result.Errors, 2)
}

func TestImportCSVFromReader_WeightAndBaselineWarnings(t *testing.T) {
	csv := strings.NewReader(
		"sku,length,width,height,weight,baseline\n" +
			"A,6,4,3,heavy,lots\n")

	result := ImportCSVFromReader(csv, ',')

	require.Len(t, result.Products, 1)
	assert.Equal(t, 0.0, result.Products[0].Weight)
	assert.Equal(t, 0, result.Products[0].Baseline)
	assert.NotEmpty(t, result.Warnings)
}

func TestImportCSV_DetectsSemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	data := "sku;length;width;height\nA;6;4;3\nB;2;2;2\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	result := ImportCSV(path)

	require.Empty(t, result.Errors)
	assert.Len(t, result.Products, 2)
	assert.Contains(t, result.Warnings, "Detected semicolon delimiter")
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.NotEmpty(t, result.Errors)
	assert.Empty(t, result.Products)
}

func TestImportCSV_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

	result := ImportCSV(path)
	assert.NotEmpty(t, result.Errors)
}

func TestImportFromRows_MissingRequiredHeader(t *testing.T) {
	rows := [][]string{
		{"sku", "length", "width"}, // no height column
		{"A", "6", "4"},
	}
	result := importFromRows(rows, "Row", nil)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Height")
}

func TestImportFromRows_SkipsEmptyRows(t *testing.T) {
	rows := [][]string{
		{"sku", "length", "width", "height"},
		{"", "", "", ""},
		{"A", "6", "4", "3"},
	}
	result := importFromRows(rows, "Row", nil)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Products, 1)
}
