package sheets

import (
	"fmt"
	"strings"
)

// Record is a spreadsheet row keyed by the header row's column names.
type Record map[string]string

// Get returns the value of a column, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r[column]
}

// RowsToRecords turns raw sheet values into records keyed by the first
// non-empty row. Fully blank rows are dropped, and cells missing from
// short rows read as "". Fewer than two usable rows yields no records.
func RowsToRecords(rows [][]any) []Record {
	filtered := make([][]any, 0, len(rows))
	for _, row := range rows {
		if !rowBlank(row) {
			filtered = append(filtered, row)
		}
	}
	if len(filtered) < 2 {
		return nil
	}

	header := make([]string, len(filtered[0]))
	for i, cell := range filtered[0] {
		header[i] = cellString(cell)
	}

	records := make([]Record, 0, len(filtered)-1)
	for _, row := range filtered[1:] {
		rec := make(Record, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(row) {
				rec[key] = cellString(row[i])
			} else {
				rec[key] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// PairsToMap reads a two-column tab (key in column A, value in column
// B) into a map, skipping the header row and rows with a blank key.
func PairsToMap(rows [][]any) map[string]string {
	out := make(map[string]string)
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		key := strings.TrimSpace(cellString(row[0]))
		if key == "" {
			continue
		}
		value := ""
		if len(row) > 1 {
			value = cellString(row[1])
		}
		out[key] = value
	}
	return out
}

func rowBlank(row []any) bool {
	for _, cell := range row {
		if strings.TrimSpace(cellString(cell)) != "" {
			return false
		}
	}
	return true
}

func cellString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}
