package service

import (
	"regexp"
	"sort"
	"strings"
)

// Латиница→кириллица (визуальные двойники), после приведения к нижнему регистру
var lookalikes = map[rune]rune{
	'a': 'а', 'c': 'с', 'e': 'е', 'o': 'о', 'p': 'р', 'x': 'х', 'y': 'у', 'k': 'к', 'm': 'м', 'h': 'н', 't': 'т', 'b': 'в',
}

var decComma = regexp.MustCompile(`(\d),(\d)`)

var punct = regexp.MustCompile(`[^\p{L}\p{N}\s.%]+`)

// normalizeName готовит название к нечёткому сравнению:
// регистр, ё→е, двойники, "0,5"→"0.5", пунктуация в пробелы.
func normalizeName(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = unifyLookalikes(s)
	s = decComma.ReplaceAllString(s, "$1.$2")
	s = punct.ReplaceAllString(s, " ")
	return collapseSpaces(s)
}

func unifyLookalikes(s string) string {
	b := make([]rune, 0, len(s))
	for _, r := range s {
		if r == 'ё' {
			r = 'е'
		} else if rr, ok := lookalikes[r]; ok {
			r = rr
		}
		b = append(b, r)
	}
	return string(b)
}

// tokenSort: "молоко сгущёнка" и "сгущёнка молоко" дают одну строку
func tokenSort(s string) string {
	f := strings.Fields(s)
	sort.Strings(f)
	return strings.Join(f, " ")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
