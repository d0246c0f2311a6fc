package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"price-analyzer/internal/fileio"
	"price-analyzer/internal/prices/model"
	"price-analyzer/internal/utils"
)

// Loader собирает Dataset из каталога с прайс-листами.
type Loader struct {
	log zerolog.Logger
}

func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// PriceFiles — файлы каталога, в имени которых есть "price" (без учёта регистра),
// в лексическом порядке, чтобы результат загрузки не зависел от ФС.
func PriceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrDirUnreadable, dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.Contains(strings.ToLower(e.Name()), "price") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Load читает все прайсы каталога. Плохие файлы и строки пропускаются и
// возвращаются как диагностика; ошибка только если каталог не прочитать.
func (l *Loader) Load(dir string) (*model.Dataset, []model.Skip, error) {
	names, err := PriceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	ds := model.NewDataset()
	var skipped []model.Skip
	for _, name := range names {
		skipped = append(skipped, l.loadFile(ds, dir, name)...)
	}

	l.log.Info().
		Str("dir", dir).
		Int("files", len(names)).
		Int("records", ds.Len()).
		Int("skipped", len(skipped)).
		Msg("prices loaded")
	return ds, skipped, nil
}

func (l *Loader) loadFile(ds *model.Dataset, dir, name string) []model.Skip {
	rows, err := readFile(filepath.Join(dir, name))
	if err != nil {
		return []model.Skip{l.skip(name, 0, fmt.Errorf("%w: %v", model.ErrUnreadable, err))}
	}
	if len(rows) == 0 {
		return []model.Skip{l.skip(name, 0, model.ErrEmptyFile)}
	}

	m := ResolveColumns(rows[0].Cells)
	if missing := m.Missing(); len(missing) > 0 {
		return []model.Skip{l.skip(name, 0, fmt.Errorf("%w: %v", model.ErrMissingColumns, missing))}
	}

	var skipped []model.Skip
	before := ds.Len()
	for _, row := range rows[1:] {
		rec, err := parseRow(row.Cells, m)
		if err != nil {
			skipped = append(skipped, l.skip(name, row.Line, err))
			continue
		}
		rec.File = name
		ds.Append(rec)
	}
	l.log.Debug().Str("file", name).Int("records", ds.Len()-before).Int("skipped", len(skipped)).Msg("file loaded")
	return skipped
}

func (l *Loader) skip(file string, line int, err error) model.Skip {
	s := model.Skip{File: file, Line: line, Reason: err}
	ev := l.log.Warn().Str("file", file).Err(err)
	if line > 0 {
		ev.Int("line", line).Msg("row skipped")
	} else {
		ev.Msg("file skipped")
	}
	return s
}

func readFile(path string) ([]fileio.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fileio.ReadRows(f, filepath.Base(path))
}

// parseRow — одна строка данных в Record (без File).
func parseRow(row []string, m model.ColumnMapping) (model.Record, error) {
	cell := func(r model.Role) (string, error) {
		i := m.Index(r)
		if i < 0 || i >= len(row) {
			return "", fmt.Errorf("%w: %s", model.ErrMissingCell, r)
		}
		return row[i], nil
	}

	name, err := cell(model.RoleProduct)
	if err != nil {
		return model.Record{}, err
	}
	rawPrice, err := cell(model.RolePrice)
	if err != nil {
		return model.Record{}, err
	}
	rawWeight, err := cell(model.RoleWeight)
	if err != nil {
		return model.Record{}, err
	}

	price, ok := utils.ParseFloatRU(rawPrice)
	if !ok {
		return model.Record{}, fmt.Errorf("%w: price %q", model.ErrBadNumber, rawPrice)
	}
	weight, ok := utils.ParseFloatRU(rawWeight)
	if !ok {
		return model.Record{}, fmt.Errorf("%w: weight %q", model.ErrBadNumber, rawWeight)
	}
	if price <= 0 {
		return model.Record{}, fmt.Errorf("%w: %v", model.ErrBadPrice, price)
	}
	// делим только на положительный вес
	if weight <= 0 {
		return model.Record{}, fmt.Errorf("%w: %v", model.ErrZeroWeight, weight)
	}

	return model.Record{
		Name:         strings.TrimSpace(name),
		Price:        price,
		Weight:       weight,
		PricePerUnit: PricePerUnit(price, weight),
	}, nil
}

// PricePerUnit — цена за килограмм с округлением до копеек.
func PricePerUnit(price, weight float64) float64 {
	return utils.Round2(price / weight)
}
