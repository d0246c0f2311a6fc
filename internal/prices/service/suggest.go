package service

import (
	"sort"

	"price-analyzer/internal/prices/model"
)

// DefaultSuggestThreshold — минимальная схожесть для подсказки.
const DefaultSuggestThreshold = 0.6

// Suggest подбирает до limit похожих названий, когда FindByText ничего не нашёл
// (опечатка, перепутанная раскладка букв-двойников, другой порядок слов).
func Suggest(ds *model.Dataset, fragment string, limit int, threshold float64) []string {
	norm := normalizeName(fragment)
	if norm == "" || limit <= 0 {
		return nil
	}
	idx := buildNameIndex(ds)

	type scored struct {
		norm  string
		score float64
	}
	var hits []scored
	for _, cand := range idx.candidates(norm) {
		if s := matchScore(norm, cand); s >= threshold {
			hits = append(hits, scored{cand, s})
		}
	}
	// candidates уже отсортированы по имени, стабильная сортировка сохраняет это при равном score
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })

	out := make([]string, 0, min(limit, len(hits)))
	for _, h := range hits {
		if len(out) == limit {
			break
		}
		out = append(out, idx.byNorm[h.norm])
	}
	return out
}
