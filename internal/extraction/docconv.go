package extraction

import (
	"bytes"
	"context"
	"fmt"

	"code.sajari.com/docconv"
)

// MIME types for the two supported container formats.
const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// extractPDFDocconv is the table-aware fallback for PDFs the native reader
// cannot handle. The converter keeps table cell text separated rather than
// silently concatenated.
func extractPDFDocconv(_ context.Context, data []byte) (*ExtractedText, error) {
	return extractWithDocconv(data, mimePDF, pdfHasEmbeddedImage(data))
}

// extractDOCXDocconv is the generic fallback for DOCX containers with
// malformed document parts.
func extractDOCXDocconv(_ context.Context, data []byte) (*ExtractedText, error) {
	return extractWithDocconv(data, mimeDOCX, false)
}

func extractWithDocconv(data []byte, mimeType string, hasPhoto bool) (*ExtractedText, error) {
	res, err := docconv.Convert(bytes.NewReader(data), mimeType, true)
	if err != nil {
		return nil, fmt.Errorf("docconv conversion failed: %w", err)
	}

	return &ExtractedText{
		Text:     res.Body,
		HasPhoto: hasPhoto,
	}, nil
}
