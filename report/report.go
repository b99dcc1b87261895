// Package report renders a symbolic run's three-way partition for the
// cmd/symsh --run-symbolic CLI mode: representative-state selection,
// unified diffing between two representative states, and atomic report
// file output.
package report

import (
	"fmt"
	"io"

	"github.com/pkg/diff"

	"github.com/shsym/shsym/interp"
)

// Representative returns the first state in set, by iteration order, as the
// bucket's witness. Which exact state this is is explicitly unspecified by
// the evaluation rules; "first by iteration order" is simply a
// deterministic, reproducible choice for a CLI that must print something.
func Representative(set interp.StateSet) (interp.SymbolicState, bool) {
	if len(set) == 0 {
		return interp.SymbolicState{}, false
	}
	return set[0], true
}

// Summary is the rendered shape of one interp.Result: bucket sizes plus a
// representative stdout excerpt per non-empty bucket.
type Summary struct {
	SuccessCount       int
	NormalFailureCount int
	EngineFailureCount int

	SuccessStdout       string
	NormalFailureStdout string
	EngineFailureStdout string
}

// Summarize builds a Summary from a run's partition.
func Summarize(res interp.Result) Summary {
	s := Summary{
		SuccessCount:       len(res.Success),
		NormalFailureCount: len(res.NormalFailure),
		EngineFailureCount: len(res.EngineFailure),
	}
	if rep, ok := Representative(res.Success); ok {
		s.SuccessStdout = rep.State.Stdout.String()
	}
	if rep, ok := Representative(res.NormalFailure); ok {
		s.NormalFailureStdout = rep.State.Stdout.String()
	}
	if rep, ok := Representative(res.EngineFailure); ok {
		s.EngineFailureStdout = rep.State.Stdout.String()
	}
	return s
}

// WriteSummary writes a human-readable rendering of s to w, one line per
// bucket, followed by its representative's stdout if non-empty — the shape
// cmd/symsh's --run-symbolic mode prints directly to stdout.
func WriteSummary(w io.Writer, s Summary) error {
	rows := []struct {
		name   string
		count  int
		stdout string
	}{
		{"success", s.SuccessCount, s.SuccessStdout},
		{"normal-failure", s.NormalFailureCount, s.NormalFailureStdout},
		{"engine-failure", s.EngineFailureCount, s.EngineFailureStdout},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s: %d state(s)\n", r.name, r.count); err != nil {
			return err
		}
		if r.count == 0 || r.stdout == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "  stdout (representative): %q\n", r.stdout); err != nil {
			return err
		}
	}
	return nil
}

// Diff writes a unified diff between two representative states' stdout,
// labeled aName/bName.
func Diff(w io.Writer, aName string, a interp.SymbolicState, bName string, b interp.SymbolicState) error {
	return diff.Text(aName, bName, []byte(a.State.Stdout.String()), []byte(b.State.Stdout.String()), w)
}
