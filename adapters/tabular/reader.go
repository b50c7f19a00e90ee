package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"adlens/domain/source"

	"github.com/xuri/excelize/v2"
)

// parseTable decodes raw file bytes into an untyped table, dispatching on
// the file extension. CSV is the common case; XLSX exports are read from
// their first sheet.
func parseTable(path string, data []byte) (*source.RawTable, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return parseXLSX(path, data)
	}
	return parseCSV(path, data)
}

func parseCSV(path string, data []byte) (*source.RawTable, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	// Exports are frequently ragged; short rows read as empty cells.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	return &source.RawTable{
		Columns: records[0],
		Rows:    records[1:],
		Path:    path,
	}, nil
}

func parseXLSX(path string, data []byte) (*source.RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("XLSX sheet %s is empty", sheets[0])
	}

	return &source.RawTable{
		Columns: rows[0],
		Rows:    rows[1:],
		Path:    path,
	}, nil
}
