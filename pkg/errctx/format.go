package errctx

import (
	"fmt"
	"io"
	"strings"
)

// causedBy separates two links of the flat rendering.
const causedBy = "\n  caused by: "

// Error renders the chain outermost first, one "caused by" line per cause:
//
//	Failed to start the program
//	  caused by: Failed to load configuration
//	  caused by: open config.json: no such file or directory
func (e *ErrorMessage) Error() string {
	if e == nil {
		return "<nil>"
	}

	var sb strings.Builder
	e.writeChain(&sb)
	return sb.String()
}

func (e *ErrorMessage) writeChain(sb *strings.Builder) {
	sb.WriteString(e.message)

	switch {
	case e.next != nil:
		sb.WriteString(causedBy)
		e.next.writeChain(sb)
	case e.foreign != nil:
		// foreign errors are a leaf, they are never unwrapped further
		sb.WriteString(causedBy)
		sb.WriteString(foreignText(e.foreign))
	}
}

// Format implements fmt.Formatter. %s, %v and %q use the flat rendering;
// %+v uses the debug rendering selected at build time (see debugTree).
func (e *ErrorMessage) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && debugTree {
			_, _ = io.WriteString(s, e.verboseTree().String())
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// foreignText is the verbose form of an error from outside the chain.
func foreignText(err error) string {
	return fmt.Sprintf("%+v", err)
}
