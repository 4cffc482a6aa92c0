package ingestion

// IngestError reports a failure to load or parse a job description.
type IngestError struct {
	Message string
	Cause   error
}

func (e *IngestError) Error() string {
	if e.Cause != nil {
		return "ingestion: " + e.Message + ": " + e.Cause.Error()
	}
	return "ingestion: " + e.Message
}

func (e *IngestError) Unwrap() error {
	return e.Cause
}
