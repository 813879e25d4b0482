package interp

// execWord runs a single dictionary word: a primitive invokes its handler
// directly, a compiled word walks its code vector.
func (in *Interp) execWord(id WordID) {
	w := in.dict.Get(id)
	if w.Kind == KindWordPrimitive {
		w.handler(in)
		return
	}
	in.runCode(w.Code)
}

// runCode walks code left to right, dispatching on each Op's Kind. Word
// references recurse through execWord; recursion depth is bounded only by
// the host call stack, matching spec §4.8 (tail calls are not optimized).
func (in *Interp) runCode(code []Op) {
	pc := 0
	for pc < len(code) {
		op := code[pc]
		switch op.Kind {
		case OpCall:
			in.execWord(op.Word)
			pc++

		case OpLit:
			in.data.push(op.Value)
			pc++

		case OpPrintStr:
			in.print(op.Str)
			pc++

		case OpBranch:
			pc = pc + 1 + op.Offset

		case OpZBranch:
			if cellBool(in.data.pop()) {
				pc++
			} else {
				pc = pc + 1 + op.Offset
			}

		case OpDo:
			start := in.data.pop()
			limit := in.data.pop()
			in.ret.push(limit)
			in.ret.push(start)
			pc++

		case OpLoop:
			index := in.ret.pop()
			limit := in.ret.pop()
			index++
			if index < limit {
				in.ret.push(limit)
				in.ret.push(index)
				pc = pc + 1 + op.Offset
			} else {
				pc++
			}

		default:
			fail(Errf(KindInvalidAddress, "invalid opcode kind %v", op.Kind))
		}
	}
}
