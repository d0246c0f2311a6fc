package service

import (
	"sort"
	"strings"

	"price-analyzer/internal/prices/model"
)

// nameIndex — триграммный индекс нормализованных названий датасета.
type nameIndex struct {
	byNorm map[string]string              // нормализованное -> первое исходное название
	inv    map[string]map[string]struct{} // триграмма -> набор нормализованных названий
}

func buildNameIndex(ds *model.Dataset) *nameIndex {
	idx := &nameIndex{
		byNorm: make(map[string]string),
		inv:    make(map[string]map[string]struct{}),
	}
	for i := 0; i < ds.Len(); i++ {
		name := ds.At(i).Name
		nn := normalizeName(name)
		if nn == "" {
			continue
		}
		if _, ok := idx.byNorm[nn]; ok {
			continue
		}
		idx.byNorm[nn] = name
		for g := range trigramSet(nn) {
			bucket, ok := idx.inv[g]
			if !ok {
				bucket = make(map[string]struct{})
				idx.inv[g] = bucket
			}
			bucket[nn] = struct{}{}
		}
	}
	return idx
}

func trigramSet(s string) map[string]struct{} {
	m := make(map[string]struct{})
	if s == "" {
		return m
	}
	r := []rune(" " + s + " ")
	if len(r) < 3 {
		m[string(r)] = struct{}{}
		return m
	}
	for i := 0; i <= len(r)-3; i++ {
		m[string(r[i:i+3])] = struct{}{}
	}
	return m
}

// candidates — названия, у которых есть хоть одна общая триграмма с norm.
func (idx *nameIndex) candidates(norm string) []string {
	seen := make(map[string]struct{})
	for g := range trigramSet(norm) {
		for nn := range idx.inv[g] {
			seen[nn] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for nn := range seen {
		out = append(out, nn)
	}
	sort.Strings(out)
	return out
}

// matchScore: фрагмент сравниваем и с названием целиком, и с каждым словом —
// пользователь обычно ищет одно слово из длинного наименования.
func matchScore(fragment, name string) float64 {
	best := max(similarity(fragment, name), similarity(tokenSort(fragment), tokenSort(name)))
	if strings.Contains(fragment, " ") {
		return best
	}
	for _, tok := range strings.Fields(name) {
		best = max(best, similarity(fragment, tok))
	}
	return best
}
