package taxonomy

import "fmt"

// TaxonomyError reports a (role, level) pair absent from the loaded
// taxonomy. It is a typed validation error so callers can tell "bad input
// role" apart from a parsing or scoring failure.
type TaxonomyError struct {
	Role  string
	Level string
}

func (e *TaxonomyError) Error() string {
	return fmt.Sprintf("no taxonomy entry for role %q at level %q", e.Role, e.Level)
}

// LoadError reports reference data that could not be read or failed schema
// validation.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
