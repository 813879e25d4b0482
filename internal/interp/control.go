package interp

// This file implements the control-flow protocol of spec §4.6: the rules
// linking compile-time branch-stack manipulation to runtime opcode
// semantics for if/else/then, begin/until/while/repeat, and do/loop. Every
// word here is immediate and compile-only.

func primIf(in *Interp) {
	in.requireCompiling("if")
	slot := in.emit(Op{Kind: OpZBranch})
	in.branch.push(branchRecord{slot: slot, kind: branchIf})
}

func primElse(in *Interp) {
	in.requireCompiling("else")
	top := in.branch.top()
	if top.kind != branchIf {
		fail(Errf(KindUnmatchedControlWord, "else without a matching if"))
	}
	in.branch.pop()
	slot := in.emit(Op{Kind: OpBranch})
	in.patchOffset(top.slot, in.here())
	in.branch.push(branchRecord{slot: slot, kind: branchElse})
}

func primThen(in *Interp) {
	in.requireCompiling("then")
	if in.branch.empty() {
		fail(Errf(KindUnmatchedControlWord, "then without a matching if/else"))
	}
	top := in.branch.top()
	if top.kind != branchIf && top.kind != branchElse {
		fail(Errf(KindUnmatchedControlWord, "then without a matching if/else"))
	}
	in.branch.pop()
	in.patchOffset(top.slot, in.here())
}

func primBegin(in *Interp) {
	in.requireCompiling("begin")
	in.branch.push(branchRecord{slot: in.here(), kind: branchBegin})
}

func primUntil(in *Interp) {
	in.requireCompiling("until")
	if in.branch.empty() {
		fail(Errf(KindUnmatchedControlWord, "until without a matching begin"))
	}
	top := in.branch.top()
	if top.kind != branchBegin {
		fail(Errf(KindUnmatchedControlWord, "until without a matching begin"))
	}
	in.branch.pop()
	slot := in.emit(Op{Kind: OpZBranch})
	in.patchOffset(slot, top.slot)
}

func primWhile(in *Interp) {
	in.requireCompiling("while")
	if in.branch.empty() {
		fail(Errf(KindUnmatchedControlWord, "while without a matching begin"))
	}
	top := in.branch.top()
	if top.kind != branchBegin {
		fail(Errf(KindUnmatchedControlWord, "while without a matching begin"))
	}
	slot := in.emit(Op{Kind: OpZBranch})
	in.branch.push(branchRecord{slot: slot, kind: branchWhile})
}

func primRepeat(in *Interp) {
	in.requireCompiling("repeat")
	if in.branch.empty() {
		fail(Errf(KindUnmatchedControlWord, "repeat without a matching while"))
	}
	whileRec := in.branch.pop()
	if whileRec.kind != branchWhile {
		fail(Errf(KindUnmatchedControlWord, "repeat without a matching while"))
	}
	if in.branch.empty() {
		fail(Errf(KindUnmatchedControlWord, "repeat without a matching begin"))
	}
	beginRec := in.branch.pop()
	if beginRec.kind != branchBegin {
		fail(Errf(KindUnmatchedControlWord, "repeat without a matching begin"))
	}
	slot := in.emit(Op{Kind: OpBranch})
	in.patchOffset(slot, beginRec.slot)
	in.patchOffset(whileRec.slot, in.here())
}

func primDo(in *Interp) {
	in.requireCompiling("do")
	in.emit(Op{Kind: OpDo})
	in.branch.push(branchRecord{slot: in.here(), kind: branchDo})
}

func primLoop(in *Interp) {
	in.requireCompiling("loop")
	if in.branch.empty() {
		fail(Errf(KindUnmatchedControlWord, "loop without a matching do"))
	}
	top := in.branch.pop()
	if top.kind != branchDo {
		fail(Errf(KindUnmatchedControlWord, "loop without a matching do"))
	}
	slot := in.emit(Op{Kind: OpLoop})
	in.patchOffset(slot, top.slot)
}
