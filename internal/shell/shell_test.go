package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"price-analyzer/internal/prices/model"
)

func dataset() *model.Dataset {
	ds := model.NewDataset()
	ds.Append(model.Record{Name: "Green Apple", Price: 10, Weight: 0.5, File: "price_b.csv", PricePerUnit: 20})
	ds.Append(model.Record{Name: "Pineapple Juice", Price: 150, Weight: 1, File: "price_b.csv", PricePerUnit: 150})
	ds.Append(model.Record{Name: "Сыр Российский", Price: 1234.5, Weight: 1, File: "price_a.csv", PricePerUnit: 1234.5})
	return ds
}

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(dataset(), strings.NewReader(input), &out).Run())
	return out.String()
}

func TestRun_SearchAndExit(t *testing.T) {
	out := run(t, "APPLE\nExit\n")

	assert.Contains(t, out, "Найдено 2 позиций:")
	assert.Contains(t, out, "2   Pineapple Juice     150.00  1.00 price_b.csv              150.00")
	assert.Contains(t, out, "1   Green Apple          10.00  0.50 price_b.csv               20.00")
	// сортировка по цене за кг
	assert.Less(t, strings.Index(out, "Green Apple "), strings.Index(out, "Pineapple Juice "))
	assert.True(t, strings.HasSuffix(out, "\nРабота завершена.\n"))
}

func TestRun_HeaderAlignedToLongestName(t *testing.T) {
	out := run(t, "juice\nexit\n")
	// самое длинное имя — 15 символов
	assert.Contains(t, out, "№   Наименование          Цена   Вес        Файл          Цена за кг.")
}

func TestRun_ThousandsSeparator(t *testing.T) {
	out := run(t, "сыр\nexit\n")
	assert.Contains(t, out, "1,234.50")
	assert.Contains(t, out, "3   Сыр Российский")
}

func TestRun_NotFoundWithSuggestion(t *testing.T) {
	out := run(t, "aplpe\nexit\n")
	assert.Contains(t, out, "Товар не найден.")
	assert.Contains(t, out, "Возможно, вы искали: Green Apple")
}

func TestRun_NotFoundWithoutSuggestion(t *testing.T) {
	out := run(t, "шоколад\nexit\n")
	assert.Contains(t, out, "Товар не найден.")
	assert.NotContains(t, out, "Возможно")
}

func TestRun_EOFEndsLoop(t *testing.T) {
	out := run(t, "juice")
	assert.Contains(t, out, "Найдено 1 позиций:")
	assert.Contains(t, out, "Работа завершена.")

	out = run(t, "")
	assert.NotContains(t, out, "Найдено")
	assert.Contains(t, out, "Работа завершена.")
}

func TestRun_ExitIsExactMatch(t *testing.T) {
	// "exit now" — обычный запрос, а не команда
	out := run(t, "exit now\r\nEXIT\r\n")
	assert.Contains(t, out, "Товар не найден.")
	assert.Equal(t, 2, strings.Count(out, "Введите фрагмент"))
}
