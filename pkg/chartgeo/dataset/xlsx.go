package dataset

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// SheetOptions selects the worksheet block read by ReadSheet.
type SheetOptions struct {
	// Sheet is the sheet name. Defaults to the first sheet.
	Sheet string
	// Range restricts reading to an A1 range; the first row is the header.
	// When empty, the bounding box of non-empty cells is used.
	Range string
}

// ReadSheet opens an xlsx file and reads one table of records from it.
func ReadSheet(path string, opts SheetOptions) ([]map[string]interface{}, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadRecords(f, opts)
}

// ReadRecords reads a header row and the rows below it as records keyed by
// header text. Numeric cells become int64 or float64.
func ReadRecords(f *excelize.File, opts SheetOptions) ([]map[string]interface{}, error) {
	sheetName := opts.Sheet
	var area *CellRange
	if opts.Range != "" {
		r, err := ParseRange(opts.Range)
		if err != nil {
			return nil, err
		}
		if r.Sheet != "" {
			sheetName = r.Sheet
		}
		area = &r
	}
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrSheetNotFound
		}
		sheetName = sheets[0]
	}
	if !slices.Contains(f.GetSheetList(), sheetName) {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	if area == nil {
		minRow, maxRow, minCol, maxCol := findDataBounds(rows)
		if minRow < 0 {
			return nil, nil
		}
		area = &CellRange{Sheet: sheetName, R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}
	}

	header := make([]string, 0, area.C2-area.C1+1)
	for col := area.C1; col <= area.C2; col++ {
		name := cellAt(rows, area.R1, col)
		if name == "" {
			name, _ = excelize.ColumnNumberToName(col)
		}
		header = append(header, name)
	}

	var records []map[string]interface{}
	for row := area.R1 + 1; row <= area.R2; row++ {
		rec := make(map[string]interface{}, len(header))
		hasData := false
		for i, key := range header {
			v := cellAt(rows, row, area.C1+i)
			if v == "" {
				continue
			}
			hasData = true
			rec[key] = parseValue(v)
		}
		if hasData {
			records = append(records, rec)
		}
	}
	return records, nil
}

// cellAt returns the cell text at the 1-based row and column, or "".
func cellAt(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	r := rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
// minRow is -1 when the sheet is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
