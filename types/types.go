package types

import (
	"fmt"
)

//go:generate sh -c "cd ../tool && go run . ../types/token_type.enum ../types/token_type.go types"

// CodePosition is a span of source text. Lines and columns are 1-based,
// ColumnTo is exclusive.
type CodePosition struct {
	LineFrom   int
	LineTo     int
	ColumnFrom int
	ColumnTo   int
}

// EmptyPosition marks values that do not come from source text.
var EmptyPosition = CodePosition{-1, -1, -1, -1}

func NewCodePosition(lineFrom, lineTo, columnFrom, columnTo int) CodePosition {
	return CodePosition{
		LineFrom:   lineFrom,
		LineTo:     lineTo,
		ColumnFrom: columnFrom,
		ColumnTo:   columnTo,
	}
}

func (p CodePosition) IsEmpty() bool {
	return p == EmptyPosition
}

// Combine returns the smallest span covering p and o. EmptyPosition is
// the identity element.
func (p CodePosition) Combine(o CodePosition) CodePosition {
	if p.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return p
	}

	return CodePosition{
		LineFrom:   min(p.LineFrom, o.LineFrom),
		LineTo:     max(p.LineTo, o.LineTo),
		ColumnFrom: min(p.ColumnFrom, o.ColumnFrom),
		ColumnTo:   max(p.ColumnTo, o.ColumnTo),
	}
}

func (p CodePosition) String() string {
	if p.IsEmpty() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d-%d:%d", p.LineFrom, p.ColumnFrom, p.LineTo, p.ColumnTo)
}

type Token struct {
	Kind     TokenType
	Location CodePosition
	// Text is the source text of the token, or the diagnostic for LEXER_ERROR.
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Location, t.Kind, t.Text)
}

// IsCode reports whether the token starts code on its line, that is
// whether it is anything but layout, comments or line ends.
func (t Token) IsCode() bool {
	switch t.Kind {
	case WHITESPACE, EOL, EOF, START_COMMENT, START_DOC_COMMENT, END_COMMENT, LEXER_ERROR:
		return false
	}
	return true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
