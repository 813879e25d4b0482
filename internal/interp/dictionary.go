package interp

// WordKind distinguishes a built-in handler from a user-compiled
// definition.
type WordKind int

const (
	// KindWordPrimitive words invoke a built-in handler.
	KindWordPrimitive WordKind = iota
	// KindWordCompiled words walk a code vector.
	KindWordCompiled
)

// WordID is a stable index into the Dictionary. Code-vector Call entries
// reference words by WordID rather than by raw memory address, so a Call
// entry is never ambiguous with a literal number.
type WordID int

// primHandler is a built-in word's implementation. It receives the
// interpreter so it can manipulate the data/return stacks, memory, and (for
// defining words) the dictionary itself. Name-parsing words (variable,
// constant, create, :) additionally read from in.tz, the current input
// line's tokenizer, exactly like classic Forth's shared input-stream
// pointer.
type primHandler func(in *Interp)

// Word is a single dictionary record: a name, a kind tag, an immediate
// flag, and either a primitive handler identity or a compiled code vector.
type Word struct {
	Name      string
	Kind      WordKind
	Immediate bool

	// Primitive handler, valid when Kind == KindWordPrimitive.
	handler primHandler

	// Code, valid when Kind == KindWordCompiled. Immutable once sealed by
	// the compiler's closing ';'.
	Code []Op
}

// Dictionary is an append-only ordered collection of word records. Lookup
// is a linear scan, most-recently-added wins: deterministic and simple at
// this scale, with duplicate insertion rejected up front so the
// most-recent-wins scan is a defensive tie-break rather than the primary
// mechanism.
type Dictionary struct {
	words []Word
	cap   int
}

func newDictionary(capacity int) Dictionary {
	return Dictionary{words: make([]Word, 0, capacity), cap: capacity}
}

// Find looks up a word by exact name. Returns the WordID and true if found,
// scanning from most-recently-added to oldest.
func (d *Dictionary) Find(name string) (WordID, bool) {
	for i := len(d.words) - 1; i >= 0; i-- {
		if d.words[i].Name == name {
			return WordID(i), true
		}
	}
	return 0, false
}

// Get returns the word record for id.
func (d *Dictionary) Get(id WordID) *Word { return &d.words[id] }

// Add appends a new word record, rejecting duplicate names and enforcing
// the dictionary's capacity bound.
func (d *Dictionary) Add(w Word) (WordID, error) {
	if _, exists := d.Find(w.Name); exists {
		return 0, Errf(KindDuplicateWord, "%q already defined", w.Name)
	}
	if len(d.words) >= d.cap {
		return 0, Errf(KindDictionaryFull, "dictionary capacity %d exceeded", d.cap)
	}
	d.words = append(d.words, w)
	return WordID(len(d.words) - 1), nil
}

// addPrimitive registers a built-in at startup; it panics on failure since
// the startup table is a programmer error if it collides, never a runtime
// condition a session should recover from.
func (d *Dictionary) addPrimitive(name string, immediate bool, h primHandler) {
	if _, err := d.Add(Word{Name: name, Kind: KindWordPrimitive, Immediate: immediate, handler: h}); err != nil {
		panic("interp: duplicate primitive " + name)
	}
}

// Len reports how many words are currently defined.
func (d *Dictionary) Len() int { return len(d.words) }
