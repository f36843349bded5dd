// Package importer provides CSV and Excel import functionality for
// product catalogs. It supports automatic delimiter detection, flexible
// column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/MasterPack/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Products []model.ProductUnit
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	SKU      int
	Length   int
	Width    int
	Height   int
	Weight   int
	Baseline int
	Notes    int
}

// headerAliases maps canonical column names to their accepted aliases
// (all lowercase).
var headerAliases = map[string][]string{
	"sku":      {"sku", "item", "product", "part", "name", "label", "description"},
	"length":   {"length", "len", "l", "depth", "d"},
	"width":    {"width", "w"},
	"height":   {"height", "h", "tall"},
	"weight":   {"weight", "wt", "lbs", "lb", "unit weight"},
	"baseline": {"baseline", "current qty", "qty per box", "per container", "qty", "count"},
	"notes":    {"notes", "note", "comment", "comments", "remarks"},
}

// DetectCSVDelimiter reads the file content and determines the most
// likely CSV delimiter. It tries comma, semicolon, tab, and pipe. The
// delimiter that produces the most consistent column count across lines
// wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. It
// performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or
// a default positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		SKU:      -1,
		Length:   -1,
		Width:    -1,
		Height:   -1,
		Weight:   -1,
		Baseline: -1,
		Notes:    -1,
	}

	set := func(dst *int, idx int) {
		if *dst == -1 {
			*dst = idx
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "sku":
						set(&mapping.SKU, i)
					case "length":
						set(&mapping.Length, i)
					case "width":
						set(&mapping.Width, i)
					case "height":
						set(&mapping.Height, i)
					case "weight":
						set(&mapping.Weight, i)
					case "baseline":
						set(&mapping.Baseline, i)
					case "notes":
						set(&mapping.Notes, i)
					}
				}
			}
		}
	}

	if !isHeader {
		// Positional fallback: SKU, Length, Width, Height, Weight, Baseline, Notes
		return ColumnMapping{
			SKU:      0,
			Length:   1,
			Width:    2,
			Height:   3,
			Weight:   4,
			Baseline: 5,
			Notes:    6,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDimension parses one required positive dimension cell.
func parseDimension(row []string, idx int, name, rowLabel string) (float64, string) {
	raw := getCell(row, idx)
	if raw == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, raw)
	}
	if v <= 0 {
		return 0, fmt.Sprintf("%s: %s must be positive", rowLabel, name)
	}
	return v, ""
}

// parseRow extracts a ProductUnit from a row using the given column
// mapping. Returns the product, any error message, and any warning.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, productCount int) (model.ProductUnit, string, string) {
	sku := getCell(row, mapping.SKU)
	if sku == "" {
		sku = fmt.Sprintf("Product %d", productCount+1)
	}

	length, errMsg := parseDimension(row, mapping.Length, "length", rowLabel)
	if errMsg != "" {
		return model.ProductUnit{}, errMsg, ""
	}
	width, errMsg := parseDimension(row, mapping.Width, "width", rowLabel)
	if errMsg != "" {
		return model.ProductUnit{}, errMsg, ""
	}
	height, errMsg := parseDimension(row, mapping.Height, "height", rowLabel)
	if errMsg != "" {
		return model.ProductUnit{}, errMsg, ""
	}

	var weight float64
	var warning string
	if raw := getCell(row, mapping.Weight); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			warning = fmt.Sprintf("%s: Unusable weight '%s', defaulting to 0", rowLabel, raw)
		} else {
			weight = v
		}
	}

	product := model.NewProductUnit(sku, length, width, height, weight)

	// Optional legacy per-container count
	if raw := getCell(row, mapping.Baseline); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			warning = fmt.Sprintf("%s: Unusable baseline '%s', ignoring", rowLabel, raw)
		} else {
			product.Baseline = v
		}
	}
	product.Notes = getCell(row, mapping.Notes)

	return product, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports products from a CSV file. It automatically detects
// the delimiter and maps columns by header names. Supports comma,
// semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports products from a CSV reader with a specific
// delimiter. Useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports products from an Excel (.xlsx, .xls) file. Reads
// the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into products.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Length == -1 {
			missing = append(missing, "Length")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No recognized header: if the second column of the first row is
		// not numeric it is probably an unrecognized header, skip it but
		// keep the positional mapping.
		if len(rows[0]) >= 4 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		product, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Products))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Products = append(result.Products, product)
	}

	return result
}
