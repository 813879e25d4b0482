package interp

import (
	"fmt"
	"strings"
)

// logging provides an optional leveled tracing sink: a column-aligned
// "mark message" line format, silently a no-op when logfn is nil.
type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) setLogf(f func(mess string, args ...interface{})) { log.logfn = f }

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
