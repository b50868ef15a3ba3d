package domain

import (
	"context"
	"errors"
	"time"
)

// Transform turns stylesheet text into new stylesheet text.
// from and to are hints naming the source and output paths.
//
// It is declared here rather than in ports so that CompileUnit can carry a chain.
type Transform interface {
	Name() string
	Apply(ctx context.Context, css, from, to string) (string, error)
}

// CompileUnit is a single compile request. It is ephemeral and owned by the
// compiler for the duration of one request.
type CompileUnit struct {
	// Source is the absolute path of the stylesheet to compile.
	Source string
	// Output is the absolute path the compiled stylesheet is written to.
	Output string
	// Dir is the resolved working directory of the request.
	Dir string
	// Transforms is the ordered plugin chain.
	Transforms []Transform
}

// Outcome is the result of compiling one unit.
type Outcome uint8

const (
	// OutcomeFailed means the unit could not be compiled.
	OutcomeFailed Outcome = iota
	// OutcomeRecompiled means the output was regenerated.
	OutcomeRecompiled
	// OutcomeSkippedFresh means the output was up to date and left untouched.
	OutcomeSkippedFresh
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRecompiled:
		return "recompiled"
	case OutcomeSkippedFresh:
		return "fresh"
	default:
		return "failed"
	}
}

// Result records what happened to a unit in a multi-unit run.
type Result struct {
	Unit     CompileUnit
	Outcome  Outcome
	Err      error
	Duration time.Duration
}

// Report is the ordered set of results of a multi-unit run.
// Results[i] belongs to the i-th unit that was submitted.
type Report struct {
	Results []Result
}

// Failed returns the results of units that failed.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Counts returns the number of results per outcome.
func (r Report) Counts() map[Outcome]int {
	counts := make(map[Outcome]int, 3)
	for _, res := range r.Results {
		counts[res.Outcome]++
	}
	return counts
}

// Err joins the errors of all failed units, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, res.Err)
	}
	return errors.Join(errs...)
}
