package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/export/foundry"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
)

// Status is the outcome of a case
type Status string

// Statuses
const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusError Status = "error"
)

// CaseReport is the outcome of one case
type CaseReport struct {
	Name        string       `json:"name"`
	Format      string       `json:"format"`
	Status      Status       `json:"status"`
	Accuracy    int          `json:"accuracy"`
	Differences []Difference `json:"differences"`
	Summary     Summary      `json:"summary"`
	Error       string       `json:"error,omitempty"`
}

// SuiteReport is the outcome of a suite run
type SuiteReport struct {
	Name   string       `json:"name"`
	Cases  []CaseReport `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Errors int          `json:"errors"`
}

// OK reports whether every case passed
func (r *SuiteReport) OK() bool {
	return r.Failed == 0 && r.Errors == 0
}

// Config holds the dependencies for a runner
type Config struct {
	Parser *statblock.Parser
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Parser == nil {
		vb.RequiredField("Parser")
	}
	return vb.Build()
}

// Runner parses each case and compares the output with its expectation
type Runner struct {
	parser *statblock.Parser
	logger *slog.Logger
}

// NewRunner creates a fixture runner
func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{parser: cfg.Parser, logger: logger}, nil
}

// Run executes every case of the suite. Case failures are reported, not
// returned; only a canceled context stops the run.
func (r *Runner) Run(ctx context.Context, suite *Suite) (*SuiteReport, error) {
	if suite == nil {
		return nil, errors.InvalidArgument("suite is required")
	}

	report := &SuiteReport{Name: suite.Name, Cases: make([]CaseReport, 0, len(suite.Cases))}
	for _, c := range suite.Cases {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "fixture run canceled")
		}

		cr := r.runCase(suite, c)
		switch cr.Status {
		case StatusPass:
			report.Passed++
		case StatusFail:
			report.Failed++
		default:
			report.Errors++
		}

		r.logger.InfoContext(ctx, "fixture case finished",
			"suite", suite.Name,
			"case", c.Name,
			"status", cr.Status,
			"accuracy", cr.Accuracy,
			"errors", cr.Summary.Errors,
			"warnings", cr.Summary.Warnings)
		report.Cases = append(report.Cases, cr)
	}
	return report, nil
}

func (r *Runner) runCase(suite *Suite, c Case) CaseReport {
	format := c.Format
	if format == "" {
		format = FormatResult
	}
	cr := CaseReport{Name: c.Name, Format: format, Differences: []Difference{}}

	fail := func(err error) CaseReport {
		cr.Status = StatusError
		cr.Error = err.Error()
		return cr
	}

	text, err := suite.text(c)
	if err != nil {
		return fail(err)
	}
	expected, err := suite.expected(c)
	if err != nil {
		return fail(err)
	}

	result, err := r.parser.Parse(text)
	if err != nil {
		return fail(err)
	}
	cr.Accuracy = result.Accuracy

	actual, err := Render(result, format)
	if err != nil {
		return fail(err)
	}

	diffs, err := Compare(expected, actual)
	if err != nil {
		return fail(err)
	}
	if c.MinAccuracy > 0 && result.Accuracy < c.MinAccuracy {
		diffs = append(diffs, Difference{
			Path:     "accuracy",
			Issue:    IssueBelowMinimum,
			Expected: fmt.Sprintf(">= %d", c.MinAccuracy),
			Actual:   fmt.Sprintf("%d", result.Accuracy),
			Severity: issueSeverity[IssueBelowMinimum],
		})
	}

	cr.Differences = diffs
	cr.Summary = Summarize(diffs)
	cr.Status = StatusPass
	if cr.Summary.Errors > 0 || cr.Summary.Warnings > 0 {
		cr.Status = StatusFail
	}
	return cr
}

// Render produces the document a format compares against
func Render(result *statblock.ParseResult, format string) (any, error) {
	switch format {
	case "", FormatResult:
		return result, nil
	case FormatFoundryV10:
		return foundry.Serialize(result, foundry.V10)
	case FormatFoundryV12:
		return foundry.Serialize(result, foundry.V12)
	default:
		return nil, errors.InvalidArgumentf("unsupported format %q", format)
	}
}
