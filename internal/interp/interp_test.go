package interp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterp(out *bytes.Buffer) *Interp {
	return New(WithOutput(out))
}

// failWriter always errors, simulating a dead output sink (e.g. a closed
// pipe) so the flush at the end of EvalLine surfaces the failure.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func evalAll(t *testing.T, in *Interp, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, in.EvalLine(line), "line %q", line)
	}
}

func TestArithmeticAndStack(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	evalAll(t, in, "3 4 + .")
	assert.Equal(t, "7 ", out.String())
}

func TestCountedLoop(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	evalAll(t, in, ": T 10 0 do i . loop ;", "T")
	assert.Equal(t, "0 1 2 3 4 5 6 7 8 9 ", out.String())
}

func TestNestedLoops(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	evalAll(t, in, ": T 3 0 do 2 0 do j i + . loop loop ;", "T")
	assert.Equal(t, "0 1 1 2 2 3 ", out.String())
}

func TestConditional(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	evalAll(t, in, ": T dup 0 < if -1 else 1 then ;")

	out.Reset()
	evalAll(t, in, "-7 T .")
	assert.Equal(t, "-1 ", out.String())

	out.Reset()
	evalAll(t, in, "0 T .")
	assert.Equal(t, "1 ", out.String())

	out.Reset()
	evalAll(t, in, "42 T .")
	assert.Equal(t, "1 ", out.String())
}

func TestIndefiniteLoop(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	evalAll(t, in, ": T begin 1 - dup 0 = until drop ;", "5 T")
	assert.Equal(t, 0, len(in.DataStack()))
}

func TestVariable(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	evalAll(t, in, "variable x", "42 x !", "x @ .")
	assert.Equal(t, "42 ", out.String())
}

func TestConstant(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	evalAll(t, in, "100 constant c", "c c + .")
	assert.Equal(t, "200 ", out.String())
}

func TestDuplicateWordRejected(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	evalAll(t, in, ": dup2 dup dup ;")

	err := in.EvalLine(": dup2 dup ;")
	require.Error(t, err)
	var ferr Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, KindDuplicateWord, ferr.Kind)
}

func TestUnderflowRecoversToIdleBaseline(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)

	err := in.EvalLine("+")
	require.Error(t, err)
	var ferr Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, KindStackUnderflow, ferr.Kind)
	assert.Equal(t, ModeInterpret, in.Mode())
	assert.Equal(t, 0, len(in.DataStack()))

	out.Reset()
	require.NoError(t, in.EvalLine("1 2 + ."))
	assert.Equal(t, "3 ", out.String())
}

func TestUnclosedControlStructureDiscardsDefinition(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)

	err := in.EvalLine(": bad dup if dup ;")
	require.Error(t, err)
	var ferr Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, KindUnclosedControlStructure, ferr.Kind)

	_, found := in.dict.Find("bad")
	assert.False(t, found, "partial definition must not be installed")
}

func TestDotQuoteImmediateAndCompiled(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)

	evalAll(t, in, `." hello"`)
	assert.Equal(t, "hello", out.String())

	out.Reset()
	evalAll(t, in, `: greet ." hi" ;`, "greet")
	assert.Equal(t, "hi", out.String())
}

func TestBaseSwitching(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	evalAll(t, in, "hex", "ff .", "decimal", "10 .")
	assert.Equal(t, "ff 10 ", out.String())
}

func TestCommentSkipped(t *testing.T) {
	var out bytes.Buffer
	in := newTestInterp(&out)
	evalAll(t, in, "1 2 ( this is a comment ) + .")
	assert.Equal(t, "3 ", out.String())
}

// TestOutputFailureIsFatal confirms KindAllocationFailure is the one kind
// marked Fatal, and that a dead output sink actually produces it: front
// ends rely on Kind.Fatal() to decide whether to halt the session instead
// of merely resetting to the idle baseline.
func TestOutputFailureIsFatal(t *testing.T) {
	in := New(WithOutput(failWriter{}))

	err := in.EvalLine("1 .")
	require.Error(t, err)

	var ferr Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, KindAllocationFailure, ferr.Kind)
	assert.True(t, ferr.Kind.Fatal())
}
