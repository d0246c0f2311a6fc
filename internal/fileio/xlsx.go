package fileio

import (
	"io"

	excelize "github.com/xuri/excelize/v2"
)

// readXLSX — первый лист книги.
func readXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cells, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(cells))
	for i, rec := range cells {
		for j := range rec {
			rec[j] = normalizeCell(rec[j])
		}
		rows = append(rows, Row{Line: i + 1, Cells: rec})
	}
	return rows, nil
}
