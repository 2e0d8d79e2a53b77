package waveedit

import (
	"fmt"
	"log"
)

// invariant reports an unreachable state of the tool state machine. Built with
// the wavedebug tag it panics; otherwise the offending input is ignored.
func invariant(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if debugInvariants {
		panic("waveedit: " + msg)
	}
	log.Printf("waveedit: ignoring input: %s", msg)
}
