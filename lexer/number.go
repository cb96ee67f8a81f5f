package lexer

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

type NumberKind int

const (
	IntNumber NumberKind = iota
	LongNumber
	FloatNumber
	DoubleNumber
)

func (k NumberKind) String() string {
	switch k {
	case IntNumber:
		return "INT"
	case LongNumber:
		return "LONG"
	case FloatNumber:
		return "FLOAT"
	case DoubleNumber:
		return "DOUBLE"
	}
	return "NumberKind(" + strconv.Itoa(int(k)) + ")"
}

// Number is a parsed numeric literal. Only the field matching Kind is set.
type Number struct {
	Kind   NumberKind
	Int    int32
	Long   int64
	Float  float32
	Double float64
}

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
	exponentStart  = regexp.MustCompile(`^([0-9]+\.?[0-9]*|\.[0-9]+)[eE]$`)
)

// ParseInt accepts decimal integer syntax only: no surrounding whitespace,
// no hex, no suffix.
func ParseInt(text string) (int32, bool) {
	if !integerPattern.MatchString(text) {
		return 0, false
	}
	i, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(i), true
}

func ParseLong(text string) (int64, bool) {
	if !integerPattern.MatchString(text) {
		return 0, false
	}
	l, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return l, true
}

// ParseFloat accepts decimal syntax with an optional f, F, d or D suffix.
// NaN, Infinity and hex floats are rejected; out of range values overflow
// to an infinity.
func ParseFloat(text string) (float32, bool) {
	f, ok := parseDecimal(text, 32)
	return float32(f), ok
}

func ParseDouble(text string) (float64, bool) {
	return parseDecimal(text, 64)
}

func parseDecimal(text string, bitSize int) (float64, bool) {
	if n := len(text); n > 0 && strings.ContainsAny(text[n-1:], "fFdD") {
		text = text[:n-1]
	}
	if !decimalPattern.MatchString(text) {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// ParseNumber tries INT, then LONG (with an optional l or L suffix), then
// FLOAT (only for an f or F suffix), then DOUBLE. The first valid form wins.
func ParseNumber(text string) (Number, bool) {
	if i, ok := ParseInt(text); ok {
		return Number{Kind: IntNumber, Int: i}, true
	}

	longText := text
	if strings.HasSuffix(text, "l") || strings.HasSuffix(text, "L") {
		longText = text[:len(text)-1]
	}
	if l, ok := ParseLong(longText); ok {
		return Number{Kind: LongNumber, Long: l}, true
	}

	if strings.HasSuffix(text, "f") || strings.HasSuffix(text, "F") {
		if f, ok := ParseFloat(text); ok {
			return Number{Kind: FloatNumber, Float: f}, true
		}
		return Number{}, false
	}

	if d, ok := ParseDouble(text); ok {
		return Number{Kind: DoubleNumber, Double: d}, true
	}
	return Number{}, false
}
