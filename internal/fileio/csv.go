package fileio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV читает CSV, определяя кодировку и приводя всё к UTF-8.
// Кроме UTF-8 понимает Windows-1251 и KOI8-R.
func readCSV(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(4096)
	if bytes.HasPrefix(peek, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		peek = peek[len(utf8BOM):]
	}

	var dec io.Reader = br
	switch detectCharset(peek) {
	case "windows-1251":
		dec = transform.NewReader(br, charmap.Windows1251.NewDecoder())
	case "koi8-r":
		dec = transform.NewReader(br, charmap.KOI8R.NewDecoder())
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		// csv сам пропускает пустые строки, поэтому номер берём у парсера
		line, _ := cr.FieldPos(0)
		rows = append(rows, Row{Line: line, Cells: rec})
	}
	return rows, nil
}

// detectCharset: валидный UTF-8 не отдаём детектору (на коротких
// кириллических строках он путает UTF-8 с однобайтовыми кодировками).
func detectCharset(sample []byte) string {
	if len(sample) == 0 || validUTF8Prefix(sample) {
		return "utf-8"
	}
	det, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || det == nil {
		return "utf-8"
	}
	switch cs := strings.ToLower(det.Charset); cs {
	case "windows-1251", "cp1251":
		return "windows-1251"
	case "koi8-r":
		return "koi8-r"
	case "utf-8":
		return cs
	default:
		// кириллица в однобайтовой кодировке без уверенного ответа — чаще всего 1251
		return "windows-1251"
	}
}

// validUTF8Prefix допускает обрезанную последнюю руну в конце выборки.
func validUTF8Prefix(b []byte) bool {
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		if utf8.Valid(b) {
			return true
		}
		b = b[:len(b)-1]
	}
	return utf8.Valid(b)
}
