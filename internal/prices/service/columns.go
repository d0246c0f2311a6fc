package service

import (
	"strings"

	"golang.org/x/text/cases"

	"price-analyzer/internal/prices/model"
)

// Допустимые заголовки колонок (сравнение без учёта регистра, строгое).
var synonyms = map[model.Role][]string{
	model.RoleProduct: {"название", "продукт", "товар", "наименование", "name", "product", "item", "title"},
	model.RolePrice:   {"цена", "розница", "price", "retail"},
	model.RoleWeight:  {"вес", "масса", "фасовка", "weight", "mass", "packaging"},
}

var headerRoles = buildHeaderRoles()

func buildHeaderRoles() map[string]model.Role {
	fold := cases.Fold()
	out := make(map[string]model.Role)
	for role, names := range synonyms {
		for _, n := range names {
			out[fold.String(n)] = role
		}
	}
	return out
}

// ResolveColumns сопоставляет шапку файла ролям. Для каждой роли берётся
// первая подходящая колонка слева.
func ResolveColumns(headers []string) model.ColumnMapping {
	fold := cases.Fold()
	m := model.NewColumnMapping()
	for i, h := range headers {
		role, ok := headerRoles[fold.String(cleanHeader(h))]
		if ok && m[role] < 0 {
			m[role] = i
		}
	}
	return m
}

func cleanHeader(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00A0", " "))
}
