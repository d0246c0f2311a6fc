package model

import (
	"errors"
	"slices"
	"strconv"
	"unicode/utf8"
)

// Record — одна нормализованная позиция прайса. После добавления в Dataset не меняется.
type Record struct {
	Name         string  `json:"name"`         // наименование как в файле
	Price        float64 `json:"price"`        // цена за единицу
	Weight       float64 `json:"weight"`       // вес/фасовка, > 0
	File         string  `json:"file"`         // имя файла без каталога
	PricePerUnit float64 `json:"pricePerUnit"` // round(Price/Weight, 2)
}

// Dataset — все загруженные позиции в порядке загрузки.
type Dataset struct {
	records       []Record
	maxNameLength int
}

func NewDataset() *Dataset { return &Dataset{} }

// Append добавляет запись и обновляет максимальную длину имени (в символах).
func (d *Dataset) Append(r Record) {
	d.records = append(d.records, r)
	d.maxNameLength = max(d.maxNameLength, utf8.RuneCountInString(r.Name))
}

func (d *Dataset) Len() int { return len(d.records) }

// At — запись по 0-based индексу.
func (d *Dataset) At(i int) Record { return d.records[i] }

// Records возвращает копию, чтобы потребители не могли поменять датасет.
func (d *Dataset) Records() []Record { return slices.Clone(d.records) }

func (d *Dataset) MaxNameLength() int { return d.maxNameLength }

// Role — какая колонка нужна из прайса.
type Role int

const (
	RoleProduct Role = iota
	RolePrice
	RoleWeight
	roleCount
)

func (r Role) String() string {
	switch r {
	case RoleProduct:
		return "product"
	case RolePrice:
		return "price"
	case RoleWeight:
		return "weight"
	default:
		return "unknown"
	}
}

// Roles — все роли в порядке колонок вывода.
var Roles = [roleCount]Role{RoleProduct, RolePrice, RoleWeight}

// ColumnMapping — индекс колонки для каждой роли, -1 = не найдена.
type ColumnMapping [roleCount]int

func NewColumnMapping() ColumnMapping {
	return ColumnMapping{-1, -1, -1}
}

func (m ColumnMapping) Index(r Role) int { return m[r] }

// Missing — роли, для которых колонка не найдена.
func (m ColumnMapping) Missing() []Role {
	var out []Role
	for _, r := range Roles {
		if m[r] < 0 {
			out = append(out, r)
		}
	}
	return out
}

func (m ColumnMapping) Complete() bool { return len(m.Missing()) == 0 }

// SearchResult — найденная позиция; Ordinal — 1-based номер в Dataset, а не место в выдаче.
type SearchResult struct {
	Ordinal int `json:"ordinal"`
	Record
}

// Skip — пропущенный файл (Line == 0) или строка файла.
type Skip struct {
	File   string
	Line   int
	Reason error
}

func (s Skip) Error() string {
	if s.Line == 0 {
		return s.File + ": " + s.Reason.Error()
	}
	return s.File + ":" + strconv.Itoa(s.Line) + ": " + s.Reason.Error()
}

func (s Skip) Unwrap() error { return s.Reason }

var (
	// фатальная: каталог с прайсами не прочитать
	ErrDirUnreadable = errors.New("price directory unreadable")

	// файл пропущен целиком
	ErrMissingColumns = errors.New("missing required columns")
	ErrUnreadable     = errors.New("file unreadable")
	ErrEmptyFile      = errors.New("file has no header row")

	// пропущена строка
	ErrMissingCell = errors.New("missing cell")
	ErrBadNumber   = errors.New("not a number")
	ErrZeroWeight  = errors.New("weight must be positive")
	ErrBadPrice    = errors.New("price must be positive")
)
