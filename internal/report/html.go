// Package report выгружает датасет в HTML-таблицу, отсортированную по цене.
package report

import (
	"bufio"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"price-analyzer/internal/prices/model"
	"price-analyzer/internal/prices/service"
)

var page = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"base":  filepath.Base,
}).Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8">
    <title>Анализ прайс-листов</title>
</head>
<body>
    <h1>Результаты анализа прайс-листов</h1>
    <table border="1">
        <thead>
            <tr>
                <th>№</th>
                <th>Наименование</th>
                <th>Цена</th>
                <th>Вес</th>
                <th>Файл</th>
                <th>Цена за кг.</th>
            </tr>
        </thead>
        <tbody>
{{- range $i, $r := . }}
            <tr>
                <td>{{ inc $i }}</td>
                <td>{{ $r.Name }}</td>
                <td>{{ money $r.Price }}</td>
                <td>{{ money $r.Weight }}</td>
                <td>{{ base $r.File }}</td>
                <td>{{ money $r.PricePerUnit }}</td>
            </tr>
{{- end }}
        </tbody>
    </table>
</body>
</html>
`))

// WriteHTML пишет отчёт: все записи по возрастанию цены, № — место в отчёте.
func WriteHTML(w io.Writer, ds *model.Dataset) error {
	return page.Execute(w, service.SortByPrice(ds))
}

// ExportHTML перезаписывает файл path отчётом.
func ExportHTML(path string, ds *model.Dataset) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := WriteHTML(bw, ds); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}
