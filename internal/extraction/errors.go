package extraction

import (
	"fmt"
	"strings"
)

// ExtractionError is the fatal error returned when every extraction strategy
// has been exhausted. No ResumeRecord can be produced from the document.
type ExtractionError struct {
	Format   string
	Attempts []AttemptError
}

// AttemptError records why one strategy failed.
type AttemptError struct {
	Strategy string
	Err      error
}

func (e *ExtractionError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("extraction failed for %s document: no strategies available", e.Format)
	}
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Strategy, a.Err))
	}
	return fmt.Sprintf("extraction failed for %s document after %d strategies: %s",
		e.Format, len(e.Attempts), strings.Join(parts, "; "))
}

// Unwrap exposes the last attempt's error for errors.Is chains.
func (e *ExtractionError) Unwrap() error {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[len(e.Attempts)-1].Err
}

// UnsupportedFormatError reports a declared format the extractor does not
// handle.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q (expected pdf or docx)", e.Format)
}
