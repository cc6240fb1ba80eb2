// An error implementation for broken coordinate records. It keeps
// the line number and the start of the offending line, so the user
// is told where to look without us printing a whole 80 column record
// into the middle of a message.

package pdbio

import (
	"strconv"
)

const maxMsgLen = 70

// A ParseError says which line of the input could not be read as a
// coordinate record and why.
type ParseError struct {
	N    int    // line number, 0 if no particular line is to blame
	Line string // the line that provoked the error
	Desc string // description of the problem
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

func (e *ParseError) Error() string {
	var errmsg string
	if e.N != 0 {
		errmsg = "Line: " + strconv.Itoa(e.N) + " "
	}
	errmsg += e.Desc
	if e.N != 0 {
		errmsg += "\nLine starting with\n" + firstPart(e.Line)
	}
	return errmsg
}
