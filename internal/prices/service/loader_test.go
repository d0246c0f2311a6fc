package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"price-analyzer/internal/prices/model"
)

var mixedFiles = map[string]string{
	"price_b.csv": "weight,product,retail\n1,Pineapple Juice,150\n0.5,Green Apple,10\n",
	"price_a.csv": "Название,Цена,Вес\nМолоко,89.90,1\nBroken,abc,1\nZero,10,0\nShort,5\nСыр Российский,\"450,50\",0.45\n",
	"Price_no_price_column.csv": "Название,Вес\nЧай,0.1\n",
	"notes.csv":   "name,price,weight\nIgnored,1,1\n",
}

func TestLoad_MixedDirectory(t *testing.T) {
	dir := writeFiles(t, mixedFiles)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "prices_archive"), 0o755))

	ds, skipped := load(t, dir)

	// Price_no_price_column.csv < price_a.csv < price_b.csv
	var names []string
	for _, r := range ds.Records() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Молоко", "Сыр Российский", "Pineapple Juice", "Green Apple"}, names)
	assert.Equal(t, len("Pineapple Juice"), ds.MaxNameLength())

	require.Len(t, skipped, 4)
	assert.Equal(t, "Price_no_price_column.csv", skipped[0].File)
	assert.Equal(t, 0, skipped[0].Line)
	assert.True(t, errors.Is(skipped[0], model.ErrMissingColumns))

	assert.Equal(t, 3, skipped[1].Line)
	assert.True(t, errors.Is(skipped[1], model.ErrBadNumber))
	assert.Equal(t, 4, skipped[2].Line)
	assert.True(t, errors.Is(skipped[2], model.ErrZeroWeight))
	assert.Equal(t, 5, skipped[3].Line)
	assert.True(t, errors.Is(skipped[3], model.ErrMissingCell))
	for _, s := range skipped[1:] {
		assert.Equal(t, "price_a.csv", s.File)
	}
}

func TestLoad_RecordFields(t *testing.T) {
	ds, _ := load(t, writeFiles(t, mixedFiles))

	cheese := ds.At(1)
	assert.Equal(t, "Сыр Российский", cheese.Name)
	assert.Equal(t, 450.5, cheese.Price)
	assert.Equal(t, 0.45, cheese.Weight)
	assert.Equal(t, "price_a.csv", cheese.File)
	assert.Equal(t, 1001.11, cheese.PricePerUnit)

	apple := ds.At(3)
	assert.Equal(t, 10.0, apple.Price)
	assert.Equal(t, 0.5, apple.Weight)
	assert.Equal(t, 20.0, apple.PricePerUnit)
}

func TestLoad_PricePerUnitIsRoundedQuotient(t *testing.T) {
	ds, _ := load(t, writeFiles(t, map[string]string{
		"price.csv": "name,price,weight\nA,1,8\nB,10,3\nC,5,8\nD,2.675,1\nE,99.99,1.5\nF,1,0.3\n",
	}))

	want := map[string]float64{
		"A": 0.12, // 0.125: половина — к чётному
		"B": 3.33,
		"C": 0.62, // 0.625
		"D": 2.67, // 2.675 в двоичном виде чуть меньше
		"E": 66.66,
		"F": 3.33,
	}
	require.Equal(t, len(want), ds.Len())
	for _, r := range ds.Records() {
		assert.Equal(t, want[r.Name], r.PricePerUnit, r.Name)
	}
}

func TestLoad_EnglishGroupedNumberIsRowSkip(t *testing.T) {
	ds, skipped := load(t, writeFiles(t, map[string]string{
		"price.csv": "name,price,weight\nA,\"1,234.50\",1\nB,\"1.234,50\",1\nC,0x1p-2,1\n",
	}))

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "B", ds.At(0).Name)
	assert.Equal(t, 1234.5, ds.At(0).Price)
	require.Len(t, skipped, 2)
	assert.Equal(t, 2, skipped[0].Line)
	assert.True(t, errors.Is(skipped[0], model.ErrBadNumber))
	assert.Equal(t, 4, skipped[1].Line)
	assert.True(t, errors.Is(skipped[1], model.ErrBadNumber))
}

func TestLoad_SkipLineCountsBlankLines(t *testing.T) {
	_, skipped := load(t, writeFiles(t, map[string]string{
		"price.csv": "name,price,weight\n\n\nBad,abc,1\nOk,1,1\n\nZero,1,0\n",
	}))

	require.Len(t, skipped, 2)
	assert.Equal(t, 4, skipped[0].Line)
	assert.Equal(t, 7, skipped[1].Line)
	assert.Equal(t, "price.csv:4: not a number: price \"abc\"", skipped[0].Error())
}

func TestLoad_Idempotent(t *testing.T) {
	dir := writeFiles(t, mixedFiles)

	first, _ := load(t, dir)
	second, _ := load(t, dir)
	assert.Equal(t, first.Records(), second.Records())
	assert.Equal(t, first.MaxNameLength(), second.MaxNameLength())
}

func TestLoad_MissingPriceColumnContributesNothing(t *testing.T) {
	ds, skipped := load(t, writeFiles(t, map[string]string{
		"price_1.csv": "товар,фасовка\nЧай,0.1\nКофе,0.25\n",
		"price_2.csv": "товар,розница,фасовка\nКакао,300,0.5\n",
	}))

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Какао", ds.At(0).Name)
	assert.Equal(t, 600.0, ds.At(0).PricePerUnit)
	require.Len(t, skipped, 1)
	assert.Equal(t, "price_1.csv", skipped[0].File)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	ds, skipped := load(t, t.TempDir())
	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, 0, ds.MaxNameLength())
	assert.Empty(t, skipped)
}

func TestLoad_NoPriceFiles(t *testing.T) {
	ds, skipped := load(t, writeFiles(t, map[string]string{"stock.csv": "name,price,weight\nA,1,1\n"}))
	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, skipped)
}

func TestLoad_EmptyAndHeaderOnlyFiles(t *testing.T) {
	ds, skipped := load(t, writeFiles(t, map[string]string{
		"price_empty.csv":  "",
		"price_header.csv": "name,price,weight\n",
	}))
	assert.Equal(t, 0, ds.Len())
	require.Len(t, skipped, 1)
	assert.Equal(t, "price_empty.csv", skipped[0].File)
	assert.True(t, errors.Is(skipped[0], model.ErrEmptyFile))
}

func TestLoad_NonPositivePriceSkipped(t *testing.T) {
	ds, skipped := load(t, writeFiles(t, map[string]string{
		"price.csv": "name,price,weight\nFree,0,1\nRefund,-5,1\nOk,5,1\n",
	}))
	assert.Equal(t, 1, ds.Len())
	require.Len(t, skipped, 2)
	assert.True(t, errors.Is(skipped[0], model.ErrBadPrice))
	assert.True(t, errors.Is(skipped[1], model.ErrBadPrice))
}

func TestLoad_BrokenWorkbookSkipped(t *testing.T) {
	ds, skipped := load(t, writeFiles(t, map[string]string{
		"price.xlsx": "not a workbook",
		"price.csv":  "name,price,weight\nOk,5,1\n",
	}))
	assert.Equal(t, 1, ds.Len())
	require.Len(t, skipped, 1)
	assert.Equal(t, "price.xlsx", skipped[0].File)
	assert.True(t, errors.Is(skipped[0], model.ErrUnreadable))
}

func TestLoad_UnreadableDirectory(t *testing.T) {
	_, _, err := NewLoader(zerolog.Nop()).Load(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrDirUnreadable))
}

func TestPriceFiles_SortedCaseInsensitive(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"z_price.csv": "", "PRICE_1.csv": "", "a-Price.txt": "", "catalog.csv": "",
	})
	names, err := PriceFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"PRICE_1.csv", "a-Price.txt", "z_price.csv"}, names)
}
