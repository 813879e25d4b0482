package interp

// registerPrimitives installs the built-in word table into dict at startup.
func registerPrimitives(dict *Dictionary) {
	for _, p := range primitiveTable {
		dict.addPrimitive(p.name, p.immediate, p.handler)
	}
}

type primitiveEntry struct {
	name      string
	immediate bool
	handler   primHandler
}

var primitiveTable = []primitiveEntry{
	// Arithmetic
	{"+", false, primAdd},
	{"-", false, primSub},
	{"*", false, primMul},
	{"/", false, primDiv},
	{"mod", false, primMod},

	// Stack
	{"dup", false, primDup},
	{"drop", false, primDrop},
	{"swap", false, primSwap},
	{"over", false, primOver},
	{"rot", false, primRot},
	{"nip", false, primNip},
	{"tuck", false, primTuck},
	{"depth", false, primDepth},

	// Comparison
	{"=", false, primEq},
	{"<", false, primLt},
	{">", false, primGt},
	{"<=", false, primLe},
	{">=", false, primGe},
	{"<>", false, primNe},

	// Bitwise
	{"and", false, primAnd},
	{"or", false, primOr},
	{"not", false, primNot},

	// Memory
	{"!", false, primStore},
	{"@", false, primFetch},
	{"cells", false, primCells},
	{"allot", false, primAllot},

	// Defining words
	{"variable", false, primVariable},
	{"constant", false, primConstant},
	{"create", false, primCreate},

	// I/O
	{".", false, primDot},
	{".s", false, primDotS},
	{"cr", false, primCR},
	{"emit", false, primEmit},
	{"key", false, primKey},
	{`."`, true, primDotQuote},

	// Numeric base
	{"decimal", false, primDecimal},
	{"hex", false, primHex},
	{"base", false, primBaseWord},

	// Loop introspection
	{"i", false, primI},
	{"j", false, primJ},

	// Comments
	{"(", true, primParen},

	// Mode words
	{":", true, primColon},
	{";", true, primSemicolon},

	// Control flow (all immediate, compile-only)
	{"if", true, primIf},
	{"else", true, primElse},
	{"then", true, primThen},
	{"begin", true, primBegin},
	{"until", true, primUntil},
	{"while", true, primWhile},
	{"repeat", true, primRepeat},
	{"do", true, primDo},
	{"loop", true, primLoop},
}

//// Arithmetic

func primAdd(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(a + b) }
func primSub(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(a - b) }
func primMul(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(a * b) }

func primDiv(in *Interp) {
	b, a := in.data.pop(), in.data.pop()
	if b == 0 {
		fail(Errf(KindDivisionByZero, "%d / 0", a))
	}
	in.data.push(a / b)
}

func primMod(in *Interp) {
	b, a := in.data.pop(), in.data.pop()
	if b == 0 {
		fail(Errf(KindDivisionByZero, "%d mod 0", a))
	}
	in.data.push(a % b) // Go's % truncates toward zero
}

//// Stack

func primDup(in *Interp)  { v := in.data.peek(); in.data.push(v) }
func primDrop(in *Interp) { in.data.pop() }
func primSwap(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(b); in.data.push(a) }

func primOver(in *Interp) {
	b, a := in.data.pop(), in.data.pop()
	in.data.push(a)
	in.data.push(b)
	in.data.push(a)
}

func primRot(in *Interp) {
	c, b, a := in.data.pop(), in.data.pop(), in.data.pop()
	in.data.push(b)
	in.data.push(c)
	in.data.push(a)
}

func primNip(in *Interp) { b, a := in.data.pop(), in.data.pop(); _ = a; in.data.push(b) }

func primTuck(in *Interp) {
	b, a := in.data.pop(), in.data.pop()
	in.data.push(b)
	in.data.push(a)
	in.data.push(b)
}

func primDepth(in *Interp) { in.data.push(Cell(in.data.depth())) }

//// Comparison

func primEq(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(boolCell(a == b)) }
func primLt(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(boolCell(a < b)) }
func primGt(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(boolCell(a > b)) }
func primLe(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(boolCell(a <= b)) }
func primGe(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(boolCell(a >= b)) }
func primNe(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(boolCell(a != b)) }

//// Bitwise

func primAnd(in *Interp) { b, a := in.data.pop(), in.data.pop(); in.data.push(a & b) }
func primOr(in *Interp)  { b, a := in.data.pop(), in.data.pop(); in.data.push(a | b) }
func primNot(in *Interp) { a := in.data.pop(); in.data.push(^a) }

//// Memory

func primStore(in *Interp) {
	addr, val := in.data.pop(), in.data.pop()
	in.mem.store(addr, val)
}

func primFetch(in *Interp) {
	addr := in.data.pop()
	in.data.push(in.mem.load(addr))
}

func primCells(in *Interp) { n := in.data.pop(); in.data.push(n * cellSize) }
func primAllot(in *Interp) { n := in.data.pop(); in.mem.allot(n) }

//// Defining words

// parseDefName reads the next token as a defining word's name, failing if
// none is available or if it collides with an existing word.
func (in *Interp) parseDefName(word string) string {
	name, ok, terr := in.tz.nextToken()
	if terr != nil {
		in.logf("!", "%v", terr)
	}
	if !ok {
		fail(Errf(KindCompileOnly, "%v requires a name", word))
	}
	if _, exists := in.dict.Find(name); exists {
		fail(Errf(KindDuplicateWord, "%q already defined", name))
	}
	return name
}

func primVariable(in *Interp) {
	name := in.parseDefName("variable")
	addr := in.mem.reserve()
	if _, err := in.dict.Add(Word{Name: name, Kind: KindWordPrimitive, handler: pushConstHandler(addr)}); err != nil {
		fail(err.(Error))
	}
}

func primConstant(in *Interp) {
	name := in.parseDefName("constant")
	val := in.data.pop()
	if _, err := in.dict.Add(Word{Name: name, Kind: KindWordPrimitive, handler: pushConstHandler(val)}); err != nil {
		fail(err.(Error))
	}
}

func primCreate(in *Interp) {
	name := in.parseDefName("create")
	addr := in.mem.here() // does not advance the free cursor
	if _, err := in.dict.Add(Word{Name: name, Kind: KindWordPrimitive, handler: pushConstHandler(addr)}); err != nil {
		fail(err.(Error))
	}
}

// pushConstHandler builds a primitive handler that pushes a fixed value;
// used by variable/constant/create to define words that push an address or
// a value.
func pushConstHandler(v Cell) primHandler {
	return func(in *Interp) { in.data.push(v) }
}

//// I/O

func primDot(in *Interp) {
	v := in.data.pop()
	in.print(formatNumber(v, in.base) + " ")
}

func primDotS(in *Interp) {
	var sb []byte
	sb = append(sb, "< "...)
	for _, v := range in.data.snapshot() {
		sb = append(sb, formatNumber(v, in.base)...)
		sb = append(sb, ' ')
	}
	sb = append(sb, "> "...)
	in.print(string(sb))
}

func primCR(in *Interp) { in.print("\n") }

func primEmit(in *Interp) {
	v := in.data.pop()
	in.print(string(rune(v)))
}

func primKey(in *Interp) {
	// Raw input access is out of this core's scope (spec §1: the
	// line-reading front end is an external collaborator); without a
	// pending byte from the current line there is nothing to read, so key
	// reports end of input as 0, matching `key`'s classic "nothing
	// available" signal rather than blocking.
	in.data.push(0)
}

// primDotQuote implements `."`: it is immediate in both modes, but behaves
// differently depending on which one is active. In compile mode it records
// the string into the code vector under construction (OpPrintStr), to be
// printed when the containing word later runs; in interpret mode it prints
// straight away.
func primDotQuote(in *Interp) {
	s, err := in.tz.parseString()
	if err != nil {
		fail(err.(Error))
	}
	if in.mode == ModeCompile {
		in.emit(Op{Kind: OpPrintStr, Str: s})
		return
	}
	in.print(s)
}

//// Numeric base

func primDecimal(in *Interp) { in.base = 10 }
func primHex(in *Interp)     { in.base = 16 }

func primBaseWord(in *Interp) {
	n := in.data.pop()
	if n < 2 || n > 36 {
		fail(Errf(KindInvalidAddress, "invalid base %d", n))
	}
	in.base = int(n)
}

//// Loop introspection

func primI(in *Interp) { in.data.push(in.ret.at(0)) }
func primJ(in *Interp) { in.data.push(in.ret.at(2)) }
