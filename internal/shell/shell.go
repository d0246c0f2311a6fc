// Package shell — интерактивный поиск по загруженным прайсам.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"price-analyzer/internal/prices/model"
	"price-analyzer/internal/prices/service"
)

const (
	exitCommand = "exit"
	prompt      = "Введите фрагмент названия товара для поиска (или 'exit' для завершения): "
	maxSuggest  = 3
)

var separator = strings.Repeat("-", 94)

type styles struct {
	muted  lipgloss.Style
	accent lipgloss.Style
	title  lipgloss.Style
}

// Shell читает запросы из in и печатает результаты в out, пока не введут exit.
type Shell struct {
	ds  *model.Dataset
	in  *bufio.Reader
	out io.Writer
	num *message.Printer
	st  styles
}

func New(ds *model.Dataset, in io.Reader, out io.Writer) *Shell {
	// цвета только если out — терминал
	r := lipgloss.NewRenderer(out)
	return &Shell{
		ds:  ds,
		in:  bufio.NewReader(in),
		out: out,
		num: message.NewPrinter(language.English),
		st: styles{
			muted:  r.NewStyle().Foreground(lipgloss.Color("#666666")),
			accent: r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
			title:  r.NewStyle().Bold(true),
		},
	}
}

// Run — цикл "запрос → таблица". EOF завершает работу так же, как exit.
func (s *Shell) Run() error {
	for {
		s.println(s.st.muted.Render(separator))
		fmt.Fprint(s.out, s.st.title.Render(prompt))

		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil
		query := strings.TrimRight(line, "\r\n")

		if strings.EqualFold(query, exitCommand) || (eof && query == "") {
			break
		}
		s.search(query)
		if eof {
			break
		}
	}
	s.println("\nРабота завершена.")
	return nil
}

func (s *Shell) search(query string) {
	results := service.FindByText(s.ds, query)
	if len(results) == 0 {
		s.println(s.st.accent.Render("Товар не найден."))
		if hints := service.Suggest(s.ds, query, maxSuggest, service.DefaultSuggestThreshold); len(hints) > 0 {
			s.println(s.st.muted.Render("Возможно, вы искали: " + strings.Join(hints, ", ")))
		}
		return
	}

	w := s.ds.MaxNameLength()
	s.println(s.st.accent.Render(fmt.Sprintf("Найдено %d позиций:", len(results))))
	s.println(s.st.muted.Render(separator))
	s.println(fmt.Sprintf("№   %-*s %10s %5s %11s %20s", w, "Наименование", "Цена", "Вес", "Файл", "Цена за кг."))
	s.println(s.st.muted.Render(separator))
	for _, r := range results {
		s.println(s.row(r, w))
	}
}

// row — строка таблицы; ширина колонки имени — самое длинное имя в датасете.
func (s *Shell) row(r model.SearchResult, w int) string {
	return fmt.Sprintf("%-3d %-*s %s %s %-20s %s",
		r.Ordinal, w, r.Name,
		s.money(10, r.Price),
		s.money(5, r.Weight),
		filepath.Base(r.File),
		s.money(10, r.PricePerUnit),
	)
}

// money — число с разделителем тысяч и двумя знаками.
func (s *Shell) money(width int, v float64) string {
	return s.num.Sprintf(fmt.Sprintf("%%%d.2f", width), v)
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
