// Package extract converts uploaded document bytes into plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

var ErrNoText = errors.New("no text extracted from document")

// PDFExtractor pulls plain text out of PDF bytes.
type PDFExtractor struct{}

// NewPDFExtractor returns the default extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract parses data as a PDF and returns its concatenated text content.
// Unreadable input or a document without any text fails.
func (e *PDFExtractor) Extract(data []byte) (string, error) {
	rdr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := rdr.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf buffer: %w", err)
	}

	if buf.Len() == 0 {
		return "", ErrNoText
	}
	return buf.String(), nil
}
