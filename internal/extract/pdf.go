package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hfaheem/ttg/internal/layout"
)

// wordGap is the horizontal gap, in page units, that separates two glyph
// runs into distinct words.
const wordGap = 2.0

// Lines extracts the document's plain text as trimmed lines in reading
// order across all pages, the input form the line resolver wants.
func Lines(path string) ([]string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	var lines []string
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("read page %d: %w", pageIndex, err)
		}
		for _, line := range strings.Split(content, "\n") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines, nil
}

// Words extracts positioned words in reading order across all pages, the
// input form the word resolver wants. Consecutive glyph runs merge into
// one word until the baseline changes or the horizontal gap exceeds
// wordGap.
func Words(path string) ([]layout.Word, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	var words []layout.Word
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}
		words = append(words, pageWords(page.Content().Text)...)
	}
	return words, nil
}

func pageWords(texts []pdf.Text) []layout.Word {
	var words []layout.Word
	var cur *layout.Word
	lastEnd := 0.0

	flush := func() {
		if cur != nil && strings.TrimSpace(cur.Text) != "" {
			words = append(words, *cur)
		}
		cur = nil
	}

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			flush()
			continue
		}
		if cur != nil && (t.Y != cur.Y0 || t.X-lastEnd > wordGap) {
			flush()
		}
		if cur == nil {
			cur = &layout.Word{
				X0:   t.X,
				Y0:   t.Y,
				X1:   t.X + t.W,
				Y1:   t.Y + t.FontSize,
				Text: "",
			}
		}
		cur.Text += t.S
		cur.X1 = t.X + t.W
		lastEnd = t.X + t.W
	}
	flush()

	return words
}
