package data

import (
	"strings"
)

var allTypesMask = uint32(1)<<uint(len(TypeValues)) - 1

// Constraint is a predicate over value kinds. The zero value allows every
// kind.
type Constraint struct {
	excluded  uint32
	allowList bool
}

var (
	Unconstrained         = Constraint{}
	Composite             = AllowOnly(ARRAY, LIST, STRUCT, OBJECT, NULL)
	FunctionPointerOrNull = AllowOnly(FUNCTION_POINTER, NULL)
	Numeric               = AllowOnly(INT, LONG, FLOAT, DOUBLE)
)

func typeBit(t Type) uint32 {
	return uint32(1) << uint(t)
}

// AllowOnly builds a constraint allowing exactly the given kinds.
func AllowOnly(allowed ...Type) Constraint {
	var mask uint32
	for _, t := range allowed {
		mask |= typeBit(t)
	}
	return Constraint{excluded: allTypesMask &^ mask, allowList: true}
}

// AllowAllExcept builds a constraint allowing every kind but the given ones.
func AllowAllExcept(denied ...Type) Constraint {
	var mask uint32
	for _, t := range denied {
		mask |= typeBit(t)
	}
	return Constraint{excluded: mask & allTypesMask}
}

func (c Constraint) Allows(t Type) bool {
	return c.excluded&typeBit(t) == 0
}

func (c Constraint) AllowedTypes() []Type {
	var ret []Type
	for _, t := range TypeValues {
		if c.Allows(t) {
			ret = append(ret, t)
		}
	}
	return ret
}

func (c Constraint) AllowedCount() int {
	n := 0
	for _, t := range TypeValues {
		if c.Allows(t) {
			n++
		}
	}
	return n
}

func (c Constraint) IsUnconstrained() bool {
	return c.excluded == 0
}

// Equal compares the allowed sets, regardless of how they were declared.
func (c Constraint) Equal(o Constraint) bool {
	return c.excluded == o.excluded
}

func (c Constraint) String() string {
	if c.IsUnconstrained() {
		return "{*}"
	}

	var names []string
	if c.allowList {
		for _, t := range c.AllowedTypes() {
			names = append(names, t.String())
		}
		return "{" + strings.Join(names, "|") + "}"
	}
	for _, t := range TypeValues {
		if !c.Allows(t) {
			names = append(names, t.String())
		}
	}
	return "{!" + strings.Join(names, "|") + "}"
}
