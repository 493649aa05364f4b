package wire

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed direction code. Wire and Index are 1-based
// and zero when the position is unknown.
type ParseError struct {
	Wire   int
	Index  int
	Code   string
	Reason string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("invalid direction code")
	if e.Code != "" {
		fmt.Fprintf(&b, " %q", e.Code)
	}
	switch {
	case e.Wire > 0 && e.Index > 0:
		fmt.Fprintf(&b, " (wire %d, code %d)", e.Wire, e.Index)
	case e.Wire > 0:
		fmt.Fprintf(&b, " (wire %d)", e.Wire)
	case e.Index > 0:
		fmt.Fprintf(&b, " (code %d)", e.Index)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}
