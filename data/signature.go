package data

import (
	"strings"

	"github.com/pontaoski/lang/errors"
)

type Parameter struct {
	Name       string
	Constraint Constraint
	Annotation ParameterAnnotation
}

// Signature describes the parameters of one overload. It is immutable once
// built and may be shared between call sites.
type Signature struct {
	params           []Parameter
	varArgsIndex     int
	rawVarArgs       bool
	returnConstraint Constraint
}

// NewSignature derives the var args index from the parameter annotations.
// At most one parameter may be VAR_ARGS or RAW_VAR_ARGS.
func NewSignature(params []Parameter, returns Constraint) (*Signature, error) {
	s := &Signature{
		params:           append([]Parameter(nil), params...),
		varArgsIndex:     -1,
		returnConstraint: returns,
	}

	for i, p := range params {
		if p.Annotation != VAR_ARGS && p.Annotation != RAW_VAR_ARGS {
			continue
		}
		if s.varArgsIndex != -1 {
			return nil, errors.DuplicateVarArgs{First: s.varArgsIndex, Second: i}
		}
		s.varArgsIndex = i
		s.rawVarArgs = p.Annotation == RAW_VAR_ARGS
	}

	return s, nil
}

// MustSignature is NewSignature for static signature tables.
func MustSignature(returns Constraint, params ...Parameter) *Signature {
	s, err := NewSignature(params, returns)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Signature) Parameters() []Parameter {
	return append([]Parameter(nil), s.params...)
}

func (s *Signature) Parameter(i int) Parameter {
	return s.params[i]
}

func (s *Signature) ParameterCount() int {
	return len(s.params)
}

// VarArgsIndex is -1 if the signature takes a fixed number of arguments.
func (s *Signature) VarArgsIndex() int {
	return s.varArgsIndex
}

func (s *Signature) IsVarArgs() bool {
	return s.varArgsIndex != -1
}

// IsRawVarArgs reports whether the var args parameter receives its
// arguments uncombined.
func (s *Signature) IsRawVarArgs() bool {
	return s.rawVarArgs
}

func (s *Signature) ReturnConstraint() Constraint {
	return s.returnConstraint
}

// Equal compares var args index and parameter constraints. Names,
// annotations and the return constraint are ignored.
func (s *Signature) Equal(o *Signature) bool {
	if s.varArgsIndex != o.varArgsIndex || len(s.params) != len(o.params) {
		return false
	}
	for i := range s.params {
		if !s.params[i].Constraint.Equal(o.params[i].Constraint) {
			return false
		}
	}
	return true
}

func (s *Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range s.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if !p.Constraint.IsUnconstrained() {
			b.WriteString(p.Constraint.String())
		}
		if i == s.varArgsIndex {
			b.WriteString("...")
		}
	}
	b.WriteByte(')')
	if !s.returnConstraint.IsUnconstrained() {
		b.WriteByte(':')
		b.WriteString(s.returnConstraint.String())
	}
	return b.String()
}
