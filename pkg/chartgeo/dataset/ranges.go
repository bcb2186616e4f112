package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRange is a rectangular block of cells on one sheet (1-based, inclusive).
type CellRange struct {
	// Sheet is the owning sheet name; empty when the reference had none.
	Sheet string `json:"sheet,omitempty"`
	// R1 is the start row.
	R1 int `json:"r1"`
	// C1 is the start column.
	C1 int `json:"c1"`
	// R2 is the end row.
	R2 int `json:"r2"`
	// C2 is the end column.
	C2 int `json:"c2"`
}

// Cells returns the number of cells in the range.
func (r CellRange) Cells() int {
	return (r.R2 - r.R1 + 1) * (r.C2 - r.C1 + 1)
}

// String formats the range in A1 notation.
func (r CellRange) String() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	ref := start
	if start != end {
		ref = start + ":" + end
	}
	if r.Sheet == "" {
		return ref
	}
	return "'" + strings.ReplaceAll(r.Sheet, "'", "''") + "'!" + ref
}

// ParseRange parses a reference such as 'Sheet 1'!$A$2:$A$9, Sheet1!B3 or A1:C4.
func ParseRange(ref string) (CellRange, error) {
	var r CellRange
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, "=")
	if ref == "" {
		return r, fmt.Errorf("%w: empty reference", ErrInvalidRange)
	}

	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet := ref[:idx]
		if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		}
		r.Sheet = sheet
		ref = ref[idx+1:]
	}

	ref = strings.ReplaceAll(ref, "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return r, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return r, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	c2, r2 := c1, r1
	if len(parts) == 2 {
		c2, r2, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return r, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
	}

	if c2 < c1 {
		c1, c2 = c2, c1
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	r.R1, r.C1, r.R2, r.C2 = r1, c1, r2, c2
	return r, nil
}

// ReadRange reads the values of every cell in r, row-major.
func ReadRange(f *excelize.File, r CellRange) ([]string, error) {
	if r.Sheet == "" {
		return nil, fmt.Errorf("%w: range %s has no sheet", ErrInvalidRange, r)
	}
	values := make([]string, 0, r.Cells())
	for row := r.R1; row <= r.R2; row++ {
		for col := r.C1; col <= r.C2; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			v, err := f.GetCellValue(r.Sheet, cell)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return values, nil
}
