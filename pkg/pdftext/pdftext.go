// Package pdftext pulls row-ordered text out of PDF statements. It only
// handles PDFs with an embedded text layer; scanned images come out empty
// and the caller decides what to do with that.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// maxTextBytes caps extraction so a pathological document cannot balloon a
// request.
const maxTextBytes = 512 * 1024

var ErrNoTextLayer = errors.New("pdf has no extractable text")

// Extract returns the document text, one line per visual row. Words within
// a row are space-separated so downstream pattern matching sees the same
// token boundaries a human would.
func Extract(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.S)
			}
			b.WriteByte('\n')

			if b.Len() > maxTextBytes {
				return truncate(b.String(), maxTextBytes), nil
			}
		}
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", ErrNoTextLayer
	}
	return b.String(), nil
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
