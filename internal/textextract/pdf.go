package textextract

import (
	"bytes"
	"fmt"
	"strings"

	rpdf "rsc.io/pdf"
)

// pdfPageTexts reads the text layer of each page, capped at maxPages when
// positive. The parser panics on some malformed documents, so the whole read
// is panic-guarded and surfaces as an ordinary error.
func pdfPageTexts(content []byte, maxPages int) (pages []string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("pdf parser panic: %v", recovered)
			pages = nil
		}
	}()

	reader, err := rpdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}

	total := reader.NumPage()
	for pageIndex := 1; pageIndex <= total; pageIndex++ {
		if maxPages > 0 && pageIndex > maxPages {
			break
		}
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		var builder strings.Builder
		for _, fragment := range page.Content().Text {
			builder.WriteString(fragment.S)
			builder.WriteString(" ")
		}
		pages = append(pages, builder.String())
	}

	return pages, nil
}
