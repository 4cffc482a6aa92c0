package extraction

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// extractDOCXNative reads word/document.xml out of the DOCX container and
// strips the markup. Paragraph ends become newlines; tabs and table-cell
// ends become explicit tab separators so two columns of one row stay
// distinguishable from two consecutive paragraphs.
func extractDOCXNative(_ context.Context, data []byte) (*ExtractedText, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx container: %w", err)
	}

	docXML, err := readZipEntry(zr, "word/document.xml")
	if err != nil {
		return nil, err
	}

	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = strings.ReplaceAll(text, "</w:tc>", "\t")
	text = strings.ReplaceAll(text, "<w:br/>", "\n")
	text = xmlTagPattern.ReplaceAllString(text, "")
	text = unescapeXMLEntities(text)

	return &ExtractedText{
		Text:      text,
		PageCount: docxPageCount(zr, text),
		HasPhoto:  docxHasMedia(zr),
	}, nil
}

// readZipEntry returns the contents of one archive member.
func readZipEntry(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer func() { _ = rc.Close() }()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("no %s in docx container", name)
}

var xmlEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

func unescapeXMLEntities(text string) string {
	return xmlEntityReplacer.Replace(text)
}

// appProperties is the slice of docProps/app.xml the extractor cares about.
type appProperties struct {
	XMLName xml.Name `xml:"Properties"`
	Pages   int      `xml:"Pages"`
}

// wordsPerPageEstimate approximates page count when the container carries no
// page statistics.
const wordsPerPageEstimate = 450

// docxPageCount reads the page count from the document's application
// properties, falling back to a word-count estimate.
func docxPageCount(zr *zip.Reader, text string) int {
	if propsXML, err := readZipEntry(zr, "docProps/app.xml"); err == nil {
		var props appProperties
		if err := xml.Unmarshal(propsXML, &props); err == nil && props.Pages > 0 {
			return props.Pages
		}
	}

	words := len(strings.Fields(text))
	pages := words/wordsPerPageEstimate + 1
	return pages
}

// docxHasMedia reports whether the container bundles any media file, the
// usual sign of an embedded photo.
func docxHasMedia(zr *zip.Reader) bool {
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/media/") {
			return true
		}
	}
	return false
}
