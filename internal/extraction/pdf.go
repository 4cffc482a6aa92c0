package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// extractPDFNative reads PDF text with the pure-Go reader. The library can
// panic on malformed cross-reference tables, so the panic is converted to an
// error and the caller moves on to the next strategy.
func extractPDFNative(_ context.Context, data []byte) (result *ExtractedText, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return nil, fmt.Errorf("failed to copy pdf text: %w", err)
	}

	return &ExtractedText{
		Text:      buf.String(),
		PageCount: reader.NumPage(),
		HasPhoto:  pdfHasEmbeddedImage(data),
	}, nil
}

// pdfImageMarkers are the object-dictionary spellings of an embedded image.
var pdfImageMarkers = [][]byte{
	[]byte("/Subtype /Image"),
	[]byte("/Subtype/Image"),
}

// pdfHasEmbeddedImage reports whether the raw bytes carry an image XObject,
// the usual sign of a headshot photo in a resume PDF.
func pdfHasEmbeddedImage(data []byte) bool {
	for _, marker := range pdfImageMarkers {
		if bytes.Contains(data, marker) {
			return true
		}
	}
	return false
}
