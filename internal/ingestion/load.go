package ingestion

import (
	"os"
	"path/filepath"
	"strings"
)

// LoadJobDescription reads a job description from a local file. Files with
// an .html or .htm extension are stripped down to their posting text; all
// other files are treated as plain text. The result is cleaned either way.
func LoadJobDescription(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IngestError{Message: "read " + path, Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ExtractHTML(string(data))
	default:
		return CleanText(string(data)), nil
	}
}
