package scoring

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scanner/internal/types"
)

// Engine evaluates the parameter battery and aggregates a ScoreReport.
type Engine struct {
	params []parameter
}

// NewEngine builds an engine over the full registered battery.
func NewEngine() *Engine {
	params := make([]parameter, 0, len(ParameterRegistry))
	for _, def := range ParameterRegistry {
		fn, ok := parameterFuncs[def.ID]
		if !ok {
			continue
		}
		params = append(params, parameter{def: def, fn: fn})
	}
	return &Engine{params: params}
}

// Score runs every parameter concurrently and aggregates the results into a
// report. Parameter failures never abort the batch; a failed parameter is
// zeroed and annotated instead.
func (e *Engine) Score(ctx context.Context, in *Input, role string, mode types.ScoringMode) *types.ScoreReport {
	results := make([]*types.ParameterResult, len(e.params))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range e.params {
		g.Go(func() error {
			results[i] = evaluate(gctx, p, in)
			return nil
		})
	}
	// Workers only report through the results slice.
	_ = g.Wait()

	report := &types.ScoreReport{
		ID:    uuid.New(),
		Role:  role,
		Level: in.Level,
		Mode:  mode,
	}

	var issues []types.Issue
	byCategory := make(map[string][]types.ParameterResult)
	for _, result := range results {
		byCategory[result.Category] = append(byCategory[result.Category], *result)
		issues = append(issues, result.Issues...)
	}

	caps := categoryCaps[mode]
	for _, name := range categoryOrder {
		params := byCategory[name]
		if len(params) == 0 {
			continue
		}
		raw := 0
		for _, p := range params {
			raw += p.Points
		}
		capped := min(raw, caps[name])
		report.Categories = append(report.Categories, types.CategoryScore{
			Name:       name,
			Score:      capped,
			RawScore:   raw,
			Max:        caps[name],
			Parameters: params,
		})
		report.Overall += capped
	}
	report.Overall = min(report.Overall, 100)
	report.Issues = types.DedupeAndRankIssues(issues)

	return report
}

// evaluate runs one parameter with full isolation: panics and returned
// errors both degrade to a zero-point annotated result.
func evaluate(ctx context.Context, p parameter, in *Input) (result *types.ParameterResult) {
	defer func() {
		if r := recover(); r != nil {
			result = failedResult(p.def, fmt.Sprintf("panic: %v", r))
		}
	}()

	result, err := p.fn(ctx, in)
	if err != nil {
		return failedResult(p.def, err.Error())
	}
	if result == nil {
		return failedResult(p.def, "parameter returned no result")
	}
	result.ID = p.def.ID
	result.Category = p.def.Category
	result.MaxPoints = p.def.MaxPoints
	if result.Points > result.MaxPoints {
		result.Points = result.MaxPoints
	}
	return result
}

func failedResult(def ParameterDefinition, reason string) *types.ParameterResult {
	return &types.ParameterResult{
		ID:        def.ID,
		Category:  def.Category,
		Points:    0,
		MaxPoints: def.MaxPoints,
		Error:     reason,
		Issues: []types.Issue{{
			Severity:    types.SeverityInfo,
			Parameter:   def.ID,
			Message:     fmt.Sprintf("parameter %s could not be evaluated: %s", def.ID, reason),
			PointImpact: def.MaxPoints,
		}},
	}
}
