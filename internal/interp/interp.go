package interp

import (
	"fmt"

	"github.com/jcorbin/forth/internal/flushio"
)

// Mode is the interpreter's dispatch mode.
type Mode int

const (
	ModeInterpret Mode = iota
	ModeCompile
)

func (m Mode) String() string {
	if m == ModeCompile {
		return "compile"
	}
	return "interpret"
}

// compileState holds the word under construction while Mode == ModeCompile.
// It is valid only in that mode, and is discarded on any compile error.
type compileState struct {
	name string
	code []Op
}

// Interp is a single interpreter session: dictionary, memory arena, the
// three stacks, mode, base, and the currently-compiling word are all
// process-wide state exclusively owned by it. There is no locking because
// no other goroutine is meant to touch it concurrently.
type Interp struct {
	logging

	dict   Dictionary
	data   dataStack
	ret    returnStack
	branch branchStack
	mem    memory

	mode      Mode
	base      int
	compiling *compileState

	maxCode int

	out flushio.WriteFlusher

	// tz is the tokenizer for the line currently being evaluated, exposed
	// to name-parsing primitives (:, variable, constant, create) so they
	// can consume additional tokens from the same input stream, mirroring
	// classic Forth's shared >IN input pointer. Valid only during EvalLine.
	tz *tokenizer
}

// New constructs an Interp with the primitive table registered and all
// resource bounds applied.
func New(opts ...Option) *Interp {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&cfg)
		}
	}

	in := &Interp{
		dict:    newDictionary(cfg.dictCap),
		data:    newDataStack(cfg.stackCap),
		ret:     newReturnStack(cfg.retCap),
		branch:  newBranchStack(cfg.branchCap),
		mem:     newMemory(cfg.memSize),
		mode:    ModeInterpret,
		base:    cfg.base,
		maxCode: cfg.maxCode,
		out:     cfg.writeFlusher(),
	}
	in.setLogf(cfg.logfn)
	registerPrimitives(&in.dict)
	return in
}

// Base returns the current numeric base.
func (in *Interp) Base() int { return in.base }

// Mode returns the current dispatch mode.
func (in *Interp) Mode() Mode { return in.mode }

// DataStack returns a snapshot of the data stack, bottom to top.
func (in *Interp) DataStack() []Cell { return in.data.snapshot() }

// resetToIdle restores all transient state to the idle interpret-mode
// baseline: data/return/branch stacks cleared, mode back to Interpreting,
// any partially compiled word discarded. Per spec §3/§7, this is exactly
// what every recoverable error triggers before the next token is read; the
// dictionary, memory arena, free cursor, and base all survive (only the
// current line is abandoned, not the session).
func (in *Interp) resetToIdle() {
	in.data.clear()
	in.ret.clear()
	in.branch.clear()
	in.mode = ModeInterpret
	in.compiling = nil
}

// EvalLine tokenizes and processes line to completion, one token at a time,
// dispatching between immediate execution and compilation.
// Any recoverable error is reported through the returned error and the
// interpreter is reset to the idle baseline before EvalLine returns; the
// only error that should end the session entirely is one wrapping
// KindAllocationFailure (see Kind.Fatal).
func (in *Interp) EvalLine(line string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ferr, ok := r.(Error)
			if !ok {
				panic(r) // not ours; a genuine programmer error, let it crash
			}
			in.logf("!", "%v", ferr)
			in.resetToIdle()
			err = ferr
		}
	}()

	tz := newTokenizer(line)
	in.tz = tz
	defer func() { in.tz = nil }()
	for {
		tok, ok, terr := tz.nextToken()
		if terr != nil {
			in.logf("!", "%v", terr)
		}
		if !ok {
			break
		}
		in.evalToken(tok)
	}
	if in.out != nil {
		if ferr := in.out.Flush(); ferr != nil {
			fail(Errf(KindAllocationFailure, "flush output: %v", ferr))
		}
	}
	return nil
}

// evalToken dispatches a single token according to the current mode.
func (in *Interp) evalToken(tok string) {
	if in.mode == ModeCompile {
		in.compileToken(tok)
		return
	}
	in.interpretToken(tok)
}

// interpretToken executes tok immediately: dictionary words run through the
// executor, unrecognized tokens are parsed as numbers and pushed.
func (in *Interp) interpretToken(tok string) {
	if id, found := in.dict.Find(tok); found {
		in.execWord(id)
		return
	}

	n, ok := parseNumber(tok, in.base)
	if !ok {
		fail(Errf(KindUnknownWord, "%q", tok))
	}
	in.data.push(n)
}

func (in *Interp) print(s string) {
	if in.out == nil {
		return
	}
	if _, err := fmt.Fprint(in.out, s); err != nil {
		fail(Errf(KindAllocationFailure, "write output: %v", err))
	}
}
