package extraction

import (
	"fmt"
	"unicode/utf8"
)

// DocumentFormat identifies the format of an uploaded document.
type DocumentFormat string

// Supported upload formats.
const (
	FormatPlainText DocumentFormat = "txt"
	FormatPDF       DocumentFormat = "pdf"
)

// TextExtractor converts raw document bytes into UTF-8 text. Extraction is an
// external collaborator as far as the parsing core is concerned: any failure
// is fatal for that document and no partial result is produced.
type TextExtractor interface {
	ExtractText(content []byte, format DocumentFormat) (string, error)
}

// PlainTextExtractor handles plain-text documents. Other formats (PDF) need a
// dedicated extractor wired in by the caller.
type PlainTextExtractor struct{}

// ExtractText validates and returns the document as UTF-8 text.
func (PlainTextExtractor) ExtractText(content []byte, format DocumentFormat) (string, error) {
	if format != FormatPlainText {
		return "", fmt.Errorf("document format %q is not supported by the plain-text extractor", format)
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("document is not valid UTF-8 text")
	}
	return string(content), nil
}
