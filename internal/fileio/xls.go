// Парсер .xls: ширину таблицы фиксируем сами, Row.LastCol() ненадёжен.
package fileio

import (
	"bytes"
	"errors"
	"io"

	xls "github.com/extrame/xls"
)

const xlsProbeCols = 256

func xlsWidth(sheet *xls.WorkSheet) int {
	width := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := width; j < xlsProbeCols; j++ {
			if normalizeCell(row.Col(j)) != "" {
				width = j + 1
			}
		}
	}
	return width
}

func readXLS(r io.Reader) ([]Row, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// старые выгрузки обычно в cp1251, но встречаются UTF-8/KOI8-R
	var (
		wb      *xls.WorkBook
		lastErr error
	)
	for _, ch := range []string{"windows-1251", "utf-8", "koi8-r"} {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	width := xlsWidth(sheet)
	rows := make([]Row, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, width)
		if row != nil {
			for j := 0; j < width; j++ {
				cols[j] = normalizeCell(row.Col(j))
			}
		}
		rows = append(rows, Row{Line: i + 1, Cells: cols})
	}
	return rows, nil
}
