package engine

import "fmt"

// Outcome is the terminal state of one entry within a run.
type Outcome int

const (
	Created Outcome = iota
	Skipped
	Overwritten
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Skipped:
		return "skipped"
	case Overwritten:
		return "overwritten"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result records the outcome for one entry. Err is non-nil only when
// Outcome is Failed.
type Result struct {
	Path    string
	Outcome Outcome
	Err     error
}

// Report is the product of one materialization run. Results are in
// registration order. A Report is created fresh per run and never mutated
// after being returned; the engine does not persist it.
type Report struct {
	Results  []Result
	Warnings []string
}

// Failed returns the results whose entries failed.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Outcome == Failed {
			out = append(out, res)
		}
	}
	return out
}

// HasFailures reports whether any entry failed. A run with failures is
// partially successful, not wholly failed.
func (r *Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Outcome == Failed {
			return true
		}
	}
	return false
}
