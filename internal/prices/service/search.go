package service

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"price-analyzer/internal/prices/model"
)

// FindByText — позиции, в названии которых есть fragment (без учёта регистра),
// по возрастанию цены за кг; при равной цене — в порядке датасета.
// Пустой fragment находит всё.
func FindByText(ds *model.Dataset, fragment string) []model.SearchResult {
	fold := cases.Fold()
	needle := fold.String(fragment)

	out := make([]model.SearchResult, 0)
	for i := 0; i < ds.Len(); i++ {
		rec := ds.At(i)
		if strings.Contains(fold.String(rec.Name), needle) {
			out = append(out, model.SearchResult{Ordinal: i + 1, Record: rec})
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].PricePerUnit < out[b].PricePerUnit
	})
	return out
}

// SortByPrice — копия записей по возрастанию цены (порядок отчёта).
func SortByPrice(ds *model.Dataset) []model.Record {
	recs := ds.Records()
	sort.SliceStable(recs, func(a, b int) bool {
		return recs[a].Price < recs[b].Price
	})
	return recs
}
