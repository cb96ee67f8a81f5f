package data

import (
	"github.com/pontaoski/lang/errors"
)

//go:generate sh -c "cd ../tool && go run . ../data/enums.enum ../data/enums.go data"

// Value is a runtime value of the language. Only the payload matching Kind
// is meaningful.
type Value struct {
	kind Type

	text        string
	char        rune
	intValue    int32
	longValue   int64
	floatValue  float32
	doubleValue float64
	bytes       []byte
	elements    []*Value
	structValue *Struct
	object      *Object
	function    *FunctionPointer
	pointee     *Value
	err         *Error
	typeValue   Type

	name       string
	constraint Constraint
}

// Error is the payload of an ERROR value.
type Error struct {
	Code    int32
	Name    string
	Message string
}

func NewText(s string) *Value {
	return &Value{kind: TEXT, text: s}
}

func NewChar(r rune) *Value {
	return &Value{kind: CHAR, char: r}
}

func NewInt(i int32) *Value {
	return &Value{kind: INT, intValue: i}
}

func NewLong(l int64) *Value {
	return &Value{kind: LONG, longValue: l}
}

func NewFloat(f float32) *Value {
	return &Value{kind: FLOAT, floatValue: f}
}

func NewDouble(d float64) *Value {
	return &Value{kind: DOUBLE, doubleValue: d}
}

func NewByteBuffer(b []byte) *Value {
	return &Value{kind: BYTE_BUFFER, bytes: b}
}

func NewArray(elements ...*Value) *Value {
	if elements == nil {
		elements = []*Value{}
	}
	return &Value{kind: ARRAY, elements: elements}
}

func NewList(elements ...*Value) *Value {
	if elements == nil {
		elements = []*Value{}
	}
	return &Value{kind: LIST, elements: elements}
}

func NewStruct(s *Struct) *Value {
	return &Value{kind: STRUCT, structValue: s}
}

func NewObject(o *Object) *Value {
	return &Value{kind: OBJECT, object: o}
}

func NewFunctionPointer(fp *FunctionPointer) *Value {
	return &Value{kind: FUNCTION_POINTER, function: fp}
}

// NewVarPointer references the variable slot v without owning it.
func NewVarPointer(v *Value) *Value {
	return &Value{kind: VAR_POINTER, pointee: v}
}

func NewError(e *Error) *Value {
	return &Value{kind: ERROR, err: e}
}

func NewType(t Type) *Value {
	return &Value{kind: TYPE, typeValue: t}
}

func Null() *Value {
	return &Value{kind: NULL}
}

func Void() *Value {
	return &Value{kind: VOID}
}

// NewArgumentSeparator keeps the separator's source text, e.g. ", ".
func NewArgumentSeparator(text string) *Value {
	return &Value{kind: ARGUMENT_SEPARATOR, text: text}
}

// NewVariable creates a named NULL slot guarded by c.
func NewVariable(name string, c Constraint) (*Value, error) {
	v := &Value{kind: NULL, name: name}
	if err := v.SetConstraint(c); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Value) Kind() Type {
	return v.kind
}

func (v *Value) Name() string {
	return v.name
}

// WithName sets the display name and returns v.
func (v *Value) WithName(name string) *Value {
	v.name = name
	return v
}

func (v *Value) Constraint() Constraint {
	return v.constraint
}

// SetConstraint fails if the current kind would violate c.
func (v *Value) SetConstraint(c Constraint) error {
	if !c.Allows(v.kind) {
		return errors.ConstraintViolation{
			Name:       v.name,
			Got:        v.kind.String(),
			Constraint: c.String(),
		}
	}
	v.constraint = c
	return nil
}

// Set copies the payload of o into v. Name and constraint of v are kept.
func (v *Value) Set(o *Value) error {
	if !v.constraint.Allows(o.kind) {
		return errors.ConstraintViolation{
			Name:       v.name,
			Got:        o.kind.String(),
			Constraint: v.constraint.String(),
		}
	}

	name, constraint := v.name, v.constraint
	*v = *o
	v.name, v.constraint = name, constraint
	return nil
}

// Copy returns an unnamed, unconstrained value with the same payload.
func (v *Value) Copy() *Value {
	c := *v
	c.name = ""
	c.constraint = Unconstrained
	return &c
}

func (v *Value) Text() string {
	return v.text
}

func (v *Value) Char() rune {
	return v.char
}

func (v *Value) Int() int32 {
	return v.intValue
}

func (v *Value) Long() int64 {
	return v.longValue
}

func (v *Value) Float() float32 {
	return v.floatValue
}

func (v *Value) Double() float64 {
	return v.doubleValue
}

func (v *Value) ByteBuffer() []byte {
	return v.bytes
}

// Elements returns the elements of an ARRAY or LIST.
func (v *Value) Elements() []*Value {
	return v.elements
}

func (v *Value) Struct() *Struct {
	return v.structValue
}

func (v *Value) Object() *Object {
	return v.object
}

func (v *Value) FunctionPointer() *FunctionPointer {
	return v.function
}

func (v *Value) Pointee() *Value {
	return v.pointee
}

func (v *Value) ErrorValue() *Error {
	return v.err
}

func (v *Value) TypeValue() Type {
	return v.typeValue
}

// Kinds lists the kinds of vs, in order.
func Kinds(vs []*Value) []Type {
	ret := make([]Type, len(vs))
	for i, v := range vs {
		ret[i] = v.kind
	}
	return ret
}
