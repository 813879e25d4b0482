package interp

import (
	"io"
	"io/ioutil"

	"github.com/jcorbin/forth/internal/flushio"
)

// Default resource bounds (spec §5) and initial base: fixed at
// construction. Exceeding a stack, dictionary, or code-vector bound raises
// the matching …Full / …Overflow error kind; an address outside the memory
// arena raises InvalidAddress.
const (
	DefaultMemSize              = 1 << 16
	DefaultStackCapacity        = 1024
	DefaultReturnStackCapacity  = 256
	DefaultBranchStackCapacity  = 64
	DefaultDictionaryCapacity   = 4096
	DefaultMaxCodeVectorSize    = 1 << 16
	DefaultBase                 = 10
)

// Option configures a New Interp via an interface/fold pattern, so zero,
// one, or many options compose without a builder type.
type Option interface{ apply(cfg *config) }

type config struct {
	memSize        uint
	stackCap       int
	retCap         int
	branchCap      int
	dictCap        int
	maxCode        int
	base           int
	out            io.Writer
	tee            io.Writer
	logfn          func(mess string, args ...interface{})
}

func defaultConfig() config {
	return config{
		memSize:  DefaultMemSize,
		stackCap: DefaultStackCapacity,
		retCap:   DefaultReturnStackCapacity,
		branchCap: DefaultBranchStackCapacity,
		dictCap:  DefaultDictionaryCapacity,
		maxCode:  DefaultMaxCodeVectorSize,
		base:     DefaultBase,
		out:      ioutil.Discard,
	}
}

type optionFunc func(cfg *config)

func (f optionFunc) apply(cfg *config) { f(cfg) }

// WithOutput sets the sink that `.`, `.s`, `cr`, and `."` print to.
func WithOutput(w io.Writer) Option { return optionFunc(func(cfg *config) { cfg.out = w }) }

// WithTee additionally mirrors all output to w, alongside the primary
// output sink.
func WithTee(w io.Writer) Option { return optionFunc(func(cfg *config) { cfg.tee = w }) }

// WithLogf installs a leveled trace sink; nil disables tracing.
func WithLogf(logfn func(mess string, args ...interface{})) Option {
	return optionFunc(func(cfg *config) { cfg.logfn = logfn })
}

// WithMemSize sets the data-memory arena's fixed cell capacity.
func WithMemSize(size uint) Option { return optionFunc(func(cfg *config) { cfg.memSize = size }) }

// WithStackCapacity bounds the data stack.
func WithStackCapacity(n int) Option { return optionFunc(func(cfg *config) { cfg.stackCap = n }) }

// WithReturnStackCapacity bounds the return stack.
func WithReturnStackCapacity(n int) Option {
	return optionFunc(func(cfg *config) { cfg.retCap = n })
}

// WithBranchStackCapacity bounds the compile-time branch stack.
func WithBranchStackCapacity(n int) Option {
	return optionFunc(func(cfg *config) { cfg.branchCap = n })
}

// WithDictionaryCapacity bounds the number of words the dictionary can hold.
func WithDictionaryCapacity(n int) Option {
	return optionFunc(func(cfg *config) { cfg.dictCap = n })
}

// WithMaxCodeVectorSize bounds the number of Ops a single compiled word may
// hold.
func WithMaxCodeVectorSize(n int) Option {
	return optionFunc(func(cfg *config) { cfg.maxCode = n })
}

// WithBase sets the initial numeric base (default 10).
func WithBase(base int) Option { return optionFunc(func(cfg *config) { cfg.base = base }) }

func (cfg config) writeFlusher() flushio.WriteFlusher {
	wf := flushio.NewWriteFlusher(cfg.out)
	if cfg.tee != nil {
		wf = flushio.WriteFlushers(wf, flushio.NewWriteFlusher(cfg.tee))
	}
	return wf
}
