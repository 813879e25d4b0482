package interp

import (
	"fmt"
	"io"
)

// Dump writes a human-readable snapshot of interpreter state to out: the
// mode, the numeric base, the data and return stacks, and the dictionary
// with each compiled word's code vector, oldest definition first. The
// branch stack is not included.
func (in *Interp) Dump(out io.Writer) {
	fmt.Fprintf(out, "# Dump\n")
	fmt.Fprintf(out, "  mode: %v  base: %v\n", in.mode, in.base)
	fmt.Fprintf(out, "  data: %v\n", in.data.snapshot())
	fmt.Fprintf(out, "  return: %v\n", in.ret.snapshot())

	for id := WordID(0); id < WordID(in.dict.Len()); id++ {
		w := in.dict.Get(id)
		if w == nil {
			continue
		}
		dumpWord(out, in, w)
	}
}

func dumpWord(out io.Writer, in *Interp, w *Word) {
	fmt.Fprintf(out, "  : %v", w.Name)
	if w.Immediate {
		fmt.Fprint(out, " immediate")
	}
	if w.Kind == KindWordPrimitive {
		fmt.Fprint(out, " (primitive)\n")
		return
	}
	fmt.Fprintln(out)
	for i, op := range w.Code {
		fmt.Fprintf(out, "      @%-3d %v\n", i, dumpOp(in, op))
	}
}

func dumpOp(in *Interp, op Op) string {
	switch op.Kind {
	case OpCall:
		name := "?"
		if w := in.dict.Get(op.Word); w != nil {
			name = w.Name
		}
		return fmt.Sprintf("call %v", name)
	case OpLit:
		return fmt.Sprintf("lit %v", op.Value)
	case OpBranch:
		return fmt.Sprintf("branch %+d", op.Offset)
	case OpZBranch:
		return fmt.Sprintf("zbranch %+d", op.Offset)
	case OpDo:
		return "do"
	case OpLoop:
		return fmt.Sprintf("loop %+d", op.Offset)
	case OpPrintStr:
		return fmt.Sprintf(".\" %q", op.Str)
	default:
		return "?"
	}
}
