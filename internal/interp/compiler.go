package interp

// compileToken handles one token while Mode == ModeCompile: immediate words
// execute inline (and may mutate the code vector / branch stack),
// non-immediate words are appended as a call, and anything else is
// attempted as a numeric literal.
func (in *Interp) compileToken(tok string) {
	if id, found := in.dict.Find(tok); found {
		w := in.dict.Get(id)
		if w.Immediate {
			w.handler(in)
			return
		}
		in.emit(Op{Kind: OpCall, Word: id})
		return
	}

	n, ok := parseNumber(tok, in.base)
	if !ok {
		fail(Errf(KindUnknownWord, "%q", tok))
	}
	in.emit(Op{Kind: OpLit, Value: n})
}

// emit appends op to the word currently under construction, enforcing the
// per-word code-vector capacity bound, and returns its index (its "slot").
func (in *Interp) emit(op Op) int {
	cs := in.requireCompiling("(internal) emit")
	if len(cs.code) >= in.maxCode {
		fail(Errf(KindCodeBufferOverflow, "code vector capacity %d exceeded", in.maxCode))
	}
	cs.code = append(cs.code, op)
	return len(cs.code) - 1
}

// here returns the current code-vector length: the slot the next emit will
// occupy.
func (in *Interp) here() int { return len(in.compiling.code) }

// patchOffset fills in the Offset field of the op at slot so that,
// interpreted as "cells to skip relative to the position immediately after
// this op," it lands at target.
func (in *Interp) patchOffset(slot, target int) {
	in.compiling.code[slot].Offset = target - (slot + 1)
}

// requireCompiling fails with ImmediateOnly if not currently compiling a
// word; used by every control word (if/else/then/begin/until/while/repeat/
// do/loop) and by emit, since all of those only make sense while a
// definition is under construction.
func (in *Interp) requireCompiling(word string) *compileState {
	if in.mode != ModeCompile || in.compiling == nil {
		fail(Errf(KindImmediateOnly, "%v is compile-only", word))
	}
	return in.compiling
}

// requireCompilingFor is like requireCompiling, but reports the CompileOnly
// kind instead of ImmediateOnly — used by `;`, whose spec-named failure
// mode ("; without :") is distinct from a control word used outside
// compilation.
func (in *Interp) requireCompilingFor(word string) *compileState {
	if in.mode != ModeCompile || in.compiling == nil {
		fail(Errf(KindCompileOnly, "%v without :", word))
	}
	return in.compiling
}

// primColon enters compile mode: allocate a new Word, read the next token
// as its name, reject if the name already exists, reset the code-vector
// cursor, and clear the branch stack.
func primColon(in *Interp) {
	if in.mode == ModeCompile {
		fail(Errf(KindCompileOnly, ": cannot nest inside a definition"))
	}

	name, ok, terr := in.tz.nextToken()
	if terr != nil {
		in.logf("!", "%v", terr)
	}
	if !ok {
		fail(Errf(KindCompileOnly, ": requires a name"))
	}
	if _, exists := in.dict.Find(name); exists {
		fail(Errf(KindDuplicateWord, "%q already defined", name))
	}

	in.compiling = &compileState{name: name}
	in.mode = ModeCompile
	in.branch.clear()
}

// primSemicolon seals the code vector, adds the word to the dictionary, and
// returns to Interpreting. The branch stack must be empty; otherwise fails
// with UnclosedControlStructure and discards the partial definition.
func primSemicolon(in *Interp) {
	cs := in.requireCompilingFor(";")
	if !in.branch.empty() {
		fail(Errf(KindUnclosedControlStructure, "%q has an unclosed control structure", cs.name))
	}

	if _, err := in.dict.Add(Word{Name: cs.name, Kind: KindWordCompiled, Code: cs.code}); err != nil {
		fail(err.(Error))
	}

	in.compiling = nil
	in.mode = ModeInterpret
}
