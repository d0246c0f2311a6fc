// Package fileio читает прайс-листы (CSV/XLS/XLSX) в сырые строки таблицы.
package fileio

import (
	"io"
	"path/filepath"
	"strings"
)

// Row — строка таблицы; Line — её номер в файле (1-based), для диагностики.
type Row struct {
	Line  int
	Cells []string
}

// ReadRows выбирает парсер по расширению и возвращает строки таблицы как есть:
// первая строка — заголовки. Полностью пустые строки после шапки отброшены.
// Всё, что не .xlsx/.xls, читается как CSV.
func ReadRows(r io.Reader, filename string) ([]Row, error) {
	var (
		rows []Row
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		rows, err = readXLSX(r)
	case ".xls":
		rows, err = readXLS(r)
	default:
		rows, err = readCSV(r)
	}
	if err != nil {
		return nil, err
	}
	return dropEmptyRows(rows), nil
}

// dropEmptyRows — шапку оставляем всегда, из данных убираем строки без значений.
func dropEmptyRows(rows []Row) []Row {
	if len(rows) == 0 {
		return rows
	}
	out := rows[:1]
	for _, rec := range rows[1:] {
		for _, v := range rec.Cells {
			if strings.TrimSpace(v) != "" {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// normalizeCell — NBSP в пробел и обрезка по краям.
func normalizeCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00A0", " "))
}
