package parsing

import "fmt"

// SegmentError represents a failure to segment the document into sections.
type SegmentError struct {
	Message string
	Cause   error
}

func (e *SegmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("segmentation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("segmentation error: %s", e.Message)
}

func (e *SegmentError) Unwrap() error {
	return e.Cause
}

// FieldError represents a failure extracting a typed field from an entry.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("field error: %s", e.Message)
}
