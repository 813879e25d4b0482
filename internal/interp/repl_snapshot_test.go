package interp

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// runTranscript feeds lines one at a time to a fresh Interp and returns the
// combined stdout, matching how cmd/forth drives the REPL line by line.
func runTranscript(lines ...string) string {
	var out bytes.Buffer
	in := New(WithOutput(&out))
	for _, line := range lines {
		in.EvalLine(line) //nolint:errcheck // transcript captures output regardless of recoverable errors
	}
	return out.String()
}

// TestREPLTranscripts snapshots the worked examples from the behavioral
// contract (counted/nested loops, conditionals, begin/until, variables,
// constants), grounded on CWBudde-go-dws's fixture_test.go use of
// snaps.MatchSnapshot for end-to-end interpreter output.
func TestREPLTranscripts(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"counted_loop", []string{": T 10 0 do i . loop ;", "T"}},
		{"nested_loop", []string{": T 3 0 do 2 0 do j i + . loop loop ;", "T"}},
		{"conditional", []string{
			": T dup 0 < if -1 else 1 then ;",
			"-7 T .", "0 T .", "42 T .",
		}},
		{"indefinite_loop", []string{": T begin dup 1 - dup 0 = until drop ;", "5 T", ".s"}},
		{"variable", []string{"variable x", "42 x !", "x @ ."}},
		{"constant", []string{"100 constant c", "c c + ."}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, runTranscript(tc.lines...))
		})
	}
}
