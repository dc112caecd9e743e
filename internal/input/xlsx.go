package input

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// metadataSheets are skipped when no sheet is configured.
var metadataSheets = map[string]bool{
	"info":     true,
	"metadata": true,
	"about":    true,
	"readme":   true,
	"notes":    true,
}

// parseWorkbook reads the selected worksheet of an xlsx file into a table.
func parseWorkbook(path, sheet string) (table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName, err := selectSheet(f.GetSheetList(), sheet)
	if err != nil {
		return table{}, err
	}
	allRows, err := f.GetRows(sheetName)
	if err != nil {
		return table{}, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(allRows) == 0 {
		return table{}, ErrEmptyTable
	}

	header := allRows[0]
	rows := allRows[1:]
	// excelize drops trailing empty cells; pad so every row spans the header.
	for i, row := range rows {
		for len(row) < len(header) {
			row = append(row, "")
		}
		rows[i] = row
	}
	return table{header: header, rows: rows}, nil
}

// selectSheet returns the configured sheet or the first non-metadata sheet.
func selectSheet(sheets []string, want string) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if strings.TrimSpace(want) != "" {
		for _, sheet := range sheets {
			if sheet == want {
				return sheet, nil
			}
		}
		return "", fmt.Errorf("sheet %q not found (available: %s)", want, strings.Join(sheets, ", "))
	}
	for _, sheet := range sheets {
		if !metadataSheets[strings.ToLower(sheet)] {
			return sheet, nil
		}
	}
	return sheets[len(sheets)-1], nil
}
