package data

import (
	"github.com/pontaoski/lang/errors"
)

// Struct is either a definition (member names and constraints only) or an
// instance of one.
type Struct struct {
	definition  bool
	memberNames []string
	constraints []Constraint
	members     []*Value
}

// NewStructDefinition declares a struct. A nil constraints slice leaves all
// members unconstrained.
func NewStructDefinition(memberNames []string, constraints []Constraint) *Struct {
	if constraints == nil {
		constraints = make([]Constraint, len(memberNames))
	}
	return &Struct{
		definition:  true,
		memberNames: memberNames,
		constraints: constraints,
	}
}

// NewStructInstance fills the members of def in declared order.
func NewStructInstance(def *Struct, values []*Value) (*Struct, error) {
	if len(values) != len(def.memberNames) {
		return nil, errors.ArgumentCount{Expected: len(def.memberNames), Got: len(values)}
	}

	members := make([]*Value, len(values))
	for i, val := range values {
		member := &Value{kind: NULL, name: def.memberNames[i], constraint: def.constraints[i]}
		if err := member.Set(val); err != nil {
			return nil, err
		}
		members[i] = member
	}

	return &Struct{
		memberNames: def.memberNames,
		constraints: def.constraints,
		members:     members,
	}, nil
}

func (s *Struct) IsDefinition() bool {
	return s.definition
}

func (s *Struct) MemberNames() []string {
	return s.memberNames
}

func (s *Struct) MemberConstraint(i int) Constraint {
	return s.constraints[i]
}

// Members is nil for definitions.
func (s *Struct) Members() []*Value {
	return s.members
}

func (s *Struct) Len() int {
	return len(s.memberNames)
}

// Function is one member of an overload set. Impl belongs to the host
// evaluator.
type Function struct {
	Signature *Signature
	Impl      interface{}
}

// FunctionPointer is a callable: a named, ordered overload set.
type FunctionPointer struct {
	Name      string
	Functions []*Function
}

func NewFunctionPointerOf(name string, functions ...*Function) *FunctionPointer {
	return &FunctionPointer{Name: name, Functions: functions}
}

func (fp *FunctionPointer) Signatures() []*Signature {
	ret := make([]*Signature, len(fp.Functions))
	for i, fn := range fp.Functions {
		ret[i] = fn.Signature
	}
	return ret
}

// Object is a class or an instance of one. Instances share the method table
// of their class.
type Object struct {
	class     bool
	className string
	methods   map[string]*FunctionPointer
}

func NewClass(name string, methods map[string]*FunctionPointer) *Object {
	if methods == nil {
		methods = map[string]*FunctionPointer{}
	}
	return &Object{class: true, className: name, methods: methods}
}

func (o *Object) NewInstance() *Object {
	return &Object{className: o.className, methods: o.methods}
}

func (o *Object) IsClass() bool {
	return o.class
}

func (o *Object) ClassName() string {
	return o.className
}

// Method looks up a method by its full name, e.g. "to:text" or "op:add".
func (o *Object) Method(name string) (*FunctionPointer, bool) {
	fp, ok := o.methods[name]
	return fp, ok
}
