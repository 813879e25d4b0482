// Command forth is the interactive front end for the interpreter in
// internal/interp: it owns the banner, the `quit` sentinel, and the
// line-at-a-time REPL driver. The engine itself knows nothing about
// stdin, stdout, or process exit codes.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcorbin/forth/internal/fileinput"
	"github.com/jcorbin/forth/internal/interp"
	"github.com/jcorbin/forth/internal/logio"
	"github.com/jcorbin/forth/internal/panicerr"
)

// Version is overridden at build time via -ldflags.
var Version = "0.1.0-dev"

const banner = "forth -- a small stack-based interpreter"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	memLimit uint
	timeout  time.Duration
	trace    bool
	dump     bool
	base     int
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "forth",
		Short:   "a small stack-based interpreter",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd)
		},
	}
	cmd.Flags().UintVar(&memLimit, "mem-limit", interp.DefaultMemSize, "memory arena size, in cells")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "specify a time limit for the session")
	cmd.Flags().BoolVar(&trace, "trace", false, "enable trace logging")
	cmd.Flags().BoolVar(&dump, "dump", false, "print a dump after the session ends")
	cmd.Flags().IntVar(&base, "base", interp.DefaultBase, "initial numeric base")
	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("forth version %s\n", Version)
		},
	}
}

// runREPL prints a banner, then reads stdin line by line, feeding each to
// the engine via EvalLine, until the literal line "quit", EOF, or a fatal
// condition. It runs the session through panicerr.Recover, mirroring the
// teacher's VM.Run: a genuine programmer error (a panic that isn't one of
// interp's own typed Errors, which EvalLine already recovers) or a stray
// runtime.Goexit is converted into a returned error rather than crashing
// the process, so main's non-zero exit path always runs.
func runREPL(cmd *cobra.Command) error {
	return panicerr.Recover("forth", func() error {
		return runSession(cmd)
	})
}

func runSession(cmd *cobra.Command) error {
	log := logio.Logger{}
	log.SetOutput(os.Stderr)

	var logf func(string, ...interface{})
	if trace {
		logf = log.Leveledf("TRACE")
	}

	in := interp.New(
		interp.WithOutput(os.Stdout),
		interp.WithMemSize(memLimit),
		interp.WithBase(base),
		interp.WithLogf(logf),
	)

	if dump {
		defer in.Dump(os.Stderr)
	}

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fmt.Fprintln(os.Stdout, banner)

	input := &fileinput.Input{Queue: []io.Reader{namedReader{cmd.InOrStdin(), "<stdin>"}}}
	return driveREPL(ctx, in, input, &log)
}

// driveREPL feeds input to in one rune at a time, dispatching complete
// lines to EvalLine, until EOF, the literal line "quit", or a fatal
// error (interp.Kind.Fatal). Recoverable errors are logged with the
// "Error: " prefix required of the session and the loop continues; a
// fatal error halts the session and is returned so the caller exits
// non-zero.
func driveREPL(ctx context.Context, in *interp.Interp, input *fileinput.Input, log *logio.Logger) error {
	var line bytes.Buffer
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session timed out: %w", err)
		}

		r, _, err := input.ReadRune()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if r != '\n' {
			line.WriteRune(r)
			continue
		}

		text := line.String()
		line.Reset()
		if text == "quit" {
			return nil
		}
		if err := in.EvalLine(text); err != nil {
			log.Printf("Error", "%v: %v", input.Last.Location, err)
			var ferr interp.Error
			if errors.As(err, &ferr) && ferr.Kind.Fatal() {
				return err
			}
		}
	}
}

// namedReader satisfies fileinput's optional Name() string interface so that
// error messages can identify the input stream.
type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
