package utils

import (
	"math"
	"strconv"
	"strings"
)

var numSpaces = strings.NewReplacer(" ", "", "\u00A0", "", "\u202F", "", "\u2009", "", "\t", "")

// ParseFloatRU парсит "10", "0.5", "0,5", "1 234,50", "1.234,50" (в т.ч. с NBSP/NNBSP).
// Мусор внутри числа ("12 руб", "abc") не вырезается: такая строка не число.
// "1,234.50" (запятая перед точкой) и шестнадцатеричная запись тоже не числа.
func ParseFloatRU(s string) (float64, bool) {
	s = numSpaces.Replace(strings.TrimSpace(s))
	if s == "" || strings.ContainsAny(s, "xXpP") {
		return 0, false
	}
	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	if comma >= 0 {
		if dot > comma {
			return 0, false
		}
		// "1.234,50": точка — разделитель тысяч, запятая — десятичная
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Round2 округляет до копеек через десятичную запись: половина — к чётному,
// как round(x, 2) над точным двоичным значением.
func Round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}
