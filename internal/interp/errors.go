package interp

import "fmt"

// Kind classifies a recoverable (or, for KindAllocationFailure, fatal)
// condition raised by the interpreter. Every primitive, the compiler, and
// the executor report failures through one of these so that the REPL's
// recovery loop (see Interp.EvalLine) can classify what happened without
// string matching.
type Kind int

const (
	KindStackUnderflow Kind = iota
	KindStackOverflow
	KindReturnStackUnderflow
	KindReturnStackOverflow
	KindBranchStackUnderflow
	KindBranchStackOverflow
	KindDictionaryFull
	KindCodeBufferOverflow
	KindDuplicateWord
	KindUnknownWord
	KindTokenTooLong
	KindUnterminatedString
	KindDivisionByZero
	KindInvalidAddress
	KindImmediateOnly
	KindCompileOnly
	KindUnclosedControlStructure
	KindUnmatchedControlWord
	KindAllocationFailure
)

var kindNames = [...]string{
	"StackUnderflow",
	"StackOverflow",
	"ReturnStackUnderflow",
	"ReturnStackOverflow",
	"BranchStackUnderflow",
	"BranchStackOverflow",
	"DictionaryFull",
	"CodeBufferOverflow",
	"DuplicateWord",
	"UnknownWord",
	"TokenTooLong",
	"UnterminatedString",
	"DivisionByZero",
	"InvalidAddress",
	"ImmediateOnly",
	"CompileOnly",
	"UnclosedControlStructure",
	"UnmatchedControlWord",
	"AllocationFailure",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Fatal reports whether an error of this kind ends the session rather than
// simply resetting interpreter state (spec: only AllocationFailure is
// fatal).
func (k Kind) Fatal() bool { return k == KindAllocationFailure }

// Error is the concrete error value carried by every reported condition.
// It is a typed value (not a bare errors.New string) so callers can
// classify it with errors.As.
type Error struct {
	Kind   Kind
	Detail string
}

func (err Error) Error() string {
	if err.Detail == "" {
		return err.Kind.String()
	}
	return fmt.Sprintf("%v: %v", err.Kind, err.Detail)
}

// Errf builds an Error of the given kind with a formatted detail string.
func Errf(kind Kind, format string, args ...interface{}) Error {
	return Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// fail panics with err, to be caught by the per-line recovery point in
// Interp.EvalLine. Deeply nested primitive and executor code calls this
// instead of threading error returns through every opcode step.
func fail(err Error) { panic(err) }
