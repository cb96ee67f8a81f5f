package errors

import (
	"fmt"
	"strings"

	"github.com/pontaoski/lang/types"
)

// LexerError is a LEXER_ERROR token lifted out of a token stream.
type LexerError struct {
	File     string
	Message  string
	Location types.CodePosition
}

func (e LexerError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Location)
	}
	return fmt.Sprintf("%s. %s:%s", e.Message, e.File, e.Location)
}

// FromTokens collects the LEXER_ERROR tokens of a stream.
func FromTokens(file string, tokens []types.Token) []LexerError {
	var errs []LexerError
	for _, tok := range tokens {
		if tok.Kind == types.LEXER_ERROR {
			errs = append(errs, LexerError{
				File:     file,
				Message:  tok.Text,
				Location: tok.Location,
			})
		}
	}
	return errs
}

type ConstraintViolation struct {
	Name       string
	Got        string
	Constraint string
}

func (e ConstraintViolation) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("type %s does not satisfy constraint %s", e.Got, e.Constraint)
	}
	return fmt.Sprintf("%s: type %s does not satisfy constraint %s", e.Name, e.Got, e.Constraint)
}

type DuplicateVarArgs struct {
	First  int
	Second int
}

func (e DuplicateVarArgs) Error() string {
	return fmt.Sprintf("parameters %d and %d are both var args, only one is allowed", e.First, e.Second)
}

type NoMatchingSignature struct {
	Function  string
	Arguments []string
}

func (e NoMatchingSignature) Error() string {
	name := e.Function
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("no signature of %s matches arguments (%s)", name, strings.Join(e.Arguments, ", "))
}

type ArgumentCount struct {
	Expected int
	Got      int
	VarArgs  bool
}

func (e ArgumentCount) Error() string {
	if e.VarArgs {
		return fmt.Sprintf("got %d arguments, expected at least %d", e.Got, e.Expected)
	}
	return fmt.Sprintf("got %d arguments, expected %d", e.Got, e.Expected)
}

type ArgumentConversion struct {
	Parameter  string
	Annotation string
	Got        string
}

func (e ArgumentConversion) Error() string {
	return fmt.Sprintf("argument %s of type %s can not be converted for %s parameter", e.Parameter, e.Got, e.Annotation)
}
