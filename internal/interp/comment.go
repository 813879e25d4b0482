package interp

// primParen implements the `(` comment convention recovered from
// original_source/forth.c's final snapshot (see SPEC_FULL.md §D.4): it
// consumes tokens up to and including a matching `)`, discarding them.
// Comments do not nest and do not span input lines, matching this
// interpreter's per-line EvalLine model.
func primParen(in *Interp) {
	for {
		tok, ok, terr := in.tz.nextToken()
		if terr != nil {
			in.logf("!", "%v", terr)
		}
		if !ok || tok == ")" {
			return
		}
	}
}
