// Package extraction converts binary resume documents (PDF, DOCX) into plain
// text plus coarse layout hints, trying a primary strategy and ordered
// fallbacks until one yields viable output.
package extraction

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/resume-scanner/internal/types"
)

// ExtractedText is the raw output of a successful extraction: plain text, a
// tag naming the strategy that produced it, and coarse document facts.
type ExtractedText struct {
	Text      string
	Strategy  string
	RawLength int
	PageCount int
	HasPhoto  bool
}

// strategyFunc is one extraction attempt over raw document bytes.
type strategyFunc func(ctx context.Context, data []byte) (*ExtractedText, error)

// namedStrategy pairs a strategy with the tag recorded on success.
type namedStrategy struct {
	name string
	fn   strategyFunc
}

const (
	// DefaultMinViableLength is the output size under which a strategy's
	// result is treated as a failure and the next fallback is tried. Short
	// output on a real resume means the parser choked on the layout.
	DefaultMinViableLength = 150

	// DefaultBudget bounds total wall-clock time across all fallback
	// attempts so a pathological document cannot stall a request.
	DefaultBudget = 20 * time.Second
)

// Extractor runs the per-format strategy chains.
type Extractor struct {
	minViableLength int
	budget          time.Duration
	pdfStrategies   []namedStrategy
	docxStrategies  []namedStrategy
}

// NewExtractor returns an Extractor with the production strategy chains:
// native parsing first, the table-aware generic converter as fallback.
func NewExtractor() *Extractor {
	return &Extractor{
		minViableLength: DefaultMinViableLength,
		budget:          DefaultBudget,
		pdfStrategies: []namedStrategy{
			{name: "pdf_native", fn: extractPDFNative},
			{name: "pdf_docconv", fn: extractPDFDocconv},
		},
		docxStrategies: []namedStrategy{
			{name: "docx_native", fn: extractDOCXNative},
			{name: "docx_docconv", fn: extractDOCXDocconv},
		},
	}
}

// NewExtractorWithBudget returns the production extractor with its fallback
// chain bounded by budget instead of the default. A non-positive budget
// keeps the default.
func NewExtractorWithBudget(budget time.Duration) *Extractor {
	e := NewExtractor()
	if budget > 0 {
		e.budget = budget
	}
	return e
}

// Extract converts document bytes into text. Strategies are tried in order;
// a strategy that errors or returns output below the minimum viable length
// is skipped in favor of the next. When all strategies fail the returned
// error is a fatal *ExtractionError.
func (e *Extractor) Extract(ctx context.Context, data []byte, format types.DocumentFormat) (*ExtractedText, error) {
	var strategies []namedStrategy
	switch format {
	case types.FormatPDF:
		strategies = e.pdfStrategies
	case types.FormatDOCX:
		strategies = e.docxStrategies
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}

	ctx, cancel := context.WithTimeout(ctx, e.budget)
	defer cancel()

	failure := &ExtractionError{Format: string(format)}
	for _, strategy := range strategies {
		if err := ctx.Err(); err != nil {
			failure.Attempts = append(failure.Attempts, AttemptError{Strategy: strategy.name, Err: err})
			break
		}

		result, err := strategy.fn(ctx, data)
		if err != nil {
			failure.Attempts = append(failure.Attempts, AttemptError{Strategy: strategy.name, Err: err})
			continue
		}
		if len(result.Text) < e.minViableLength {
			failure.Attempts = append(failure.Attempts, AttemptError{
				Strategy: strategy.name,
				Err:      fmt.Errorf("output too short: %d bytes (minimum %d)", len(result.Text), e.minViableLength),
			})
			continue
		}

		result.Strategy = strategy.name
		result.RawLength = len(result.Text)
		return result, nil
	}

	return nil, failure
}
