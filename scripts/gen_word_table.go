// Command gen_word_table scans internal/interp/primitives.go's
// primitiveTable literal and regenerates a canonical-name table (the
// wordTableDoc string slice) listing the built-in words in registration
// order. Only entries whose name is a double-quoted literal are matched;
// the backtick-quoted `."` entry is not listed. Adapted from the
// teacher's scripts/gen_vm_expects.go, which scans vmTestCase methods
// instead of primitiveEntry literals; the goimports-piping and
// errgroup/context wiring is unchanged.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "goimports")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

var entryLine = regexp.MustCompile(`^\s*\{"` + "`" + `?([^"` + "`" + `]+)` + "`" + `?",\s*(true|false),\s*(\w+)\},?\s*$`)

func run(ctx context.Context) error {
	var buf bytes.Buffer
	buf.Grow(1024)
	buf.WriteString("package interp\n\n")

	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString("\n\n")

	buf.WriteString("// wordTableDoc names the built-in words in registration order, for\n")
	buf.WriteString("// documentation.\n")
	buf.WriteString("var wordTableDoc = []string{\n")

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := entryLine.FindSubmatch(sc.Bytes()); len(match) > 0 {
			name := match[1]
			immediate := string(match[2]) == "true"
			buf.WriteString("\t\"")
			buf.Write(name)
			if immediate {
				buf.WriteString(" (immediate)")
			}
			buf.WriteString("\",\n")
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	buf.WriteString("}\n")
	if _, err := buf.WriteTo(out); err != nil {
		return err
	}

	return sc.Err()
}
