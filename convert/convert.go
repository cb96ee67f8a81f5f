package convert

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lang/data"
	"github.com/pontaoski/lang/lexer"
	"github.com/pontaoski/lang/overload"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lang", "convert")

const DefaultMaxTextDepth = 10

var _ overload.Coercer = (*Converter)(nil)

// MethodInvoker calls a resolved method of an object instance on behalf of
// the converter. A nil result stands for a method that returned nothing.
type MethodInvoker interface {
	CallMethod(obj *data.Object, fn *data.Function, args []*data.Value) *data.Value
}

type Settings struct {
	// Invoker runs to:<target> conversion methods. Without one, objects are
	// converted by the built-in rules only.
	Invoker MethodInvoker
	// MaxTextDepth bounds how deep ToText descends into containers. Zero
	// selects DefaultMaxTextDepth.
	MaxTextDepth int
}

// Converter coerces values between kinds. It is stateless apart from its
// settings and may be shared.
type Converter struct {
	invoker      MethodInvoker
	maxTextDepth int
}

func New(s Settings) *Converter {
	if s.MaxTextDepth <= 0 {
		s.MaxTextDepth = DefaultMaxTextDepth
	}
	return &Converter{
		invoker:      s.Invoker,
		maxTextDepth: s.MaxTextDepth,
	}
}

// hook replaces an object instance by the result of its to:<target> method,
// if it has one that accepts no arguments.
func (c *Converter) hook(v *data.Value, target string) *data.Value {
	if c.invoker == nil || v.Kind() != data.OBJECT || v.Object().IsClass() {
		return v
	}

	obj := v.Object()
	fp, ok := obj.Method("to:" + target)
	if !ok {
		return v
	}
	i, ok := overload.Resolve(fp.Signatures(), nil)
	if !ok {
		return v
	}

	plog.Tracef("invoking to:%s of %s", target, obj.ClassName())
	ret := c.invoker.CallMethod(obj, fp.Functions[i], nil)
	if ret == nil {
		return data.Void()
	}
	return ret
}

// To converts v to a value of kind t. TYPE, VOID and the other kinds
// without a conversion target report false.
func (c *Converter) To(v *data.Value, t data.Type) (*data.Value, bool) {
	switch t {
	case data.TEXT:
		return data.NewText(c.ToText(v)), true
	case data.CHAR:
		r, ok := c.ToChar(v)
		return data.NewChar(r), ok
	case data.INT:
		i, ok := c.ToInt(v)
		return data.NewInt(i), ok
	case data.LONG:
		l, ok := c.ToLong(v)
		return data.NewLong(l), ok
	case data.FLOAT:
		f, ok := c.ToFloat(v)
		return data.NewFloat(f), ok
	case data.DOUBLE:
		d, ok := c.ToDouble(v)
		return data.NewDouble(d), ok
	case data.BYTE_BUFFER:
		b, ok := c.ToByteBuffer(v)
		return data.NewByteBuffer(b), ok
	case data.ARRAY:
		elements, ok := c.ToArray(v)
		return data.NewArray(elements...), ok
	case data.LIST:
		elements, ok := c.ToList(v)
		return data.NewList(elements...), ok
	}
	return nil, false
}

func (c *Converter) ToText(v *data.Value) string {
	return c.ToTextDepth(v, c.maxTextDepth)
}

// ToTextDepth renders v, descending at most depth levels into containers.
func (c *Converter) ToTextDepth(v *data.Value, depth int) string {
	v = c.hook(v, "text")

	switch v.Kind() {
	case data.TEXT, data.ARGUMENT_SEPARATOR:
		return v.Text()
	case data.CHAR:
		return string(v.Char())
	case data.INT:
		return strconv.FormatInt(int64(v.Int()), 10)
	case data.LONG:
		return strconv.FormatInt(v.Long(), 10)
	case data.FLOAT:
		return formatFloat(float64(v.Float()), 32)
	case data.DOUBLE:
		return formatFloat(v.Double(), 64)
	case data.BYTE_BUFFER:
		if len(v.ByteBuffer()) == 0 {
			return "<Empty ByteBuffer>"
		}
		return "0x" + strings.ToUpper(hex.EncodeToString(v.ByteBuffer()))
	case data.ARRAY:
		return c.elementsText("Array", v.Elements(), depth)
	case data.LIST:
		return c.elementsText("List", v.Elements(), depth)
	case data.STRUCT:
		return c.structText(v.Struct(), depth)
	case data.VAR_POINTER:
		if depth < 1 {
			return "-->{...}"
		}
		return "-->{" + c.ToTextDepth(v.Pointee(), depth-1) + "}"
	case data.FUNCTION_POINTER:
		return functionText(v.FunctionPointer())
	case data.OBJECT:
		if v.Object().IsClass() {
			return "<Class>"
		}
		return "<Object>"
	case data.ERROR:
		return v.ErrorValue().Name
	case data.TYPE:
		return v.TypeValue().String()
	case data.NULL:
		return "null"
	}
	return ""
}

func (c *Converter) elementsText(kind string, elements []*data.Value, depth int) string {
	if depth < 1 {
		return "<" + kind + "[" + strconv.Itoa(len(elements)) + "]>"
	}

	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = c.ToTextDepth(e, depth-1)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (c *Converter) structText(s *data.Struct, depth int) string {
	if depth < 1 {
		return "<Struct[" + strconv.Itoa(s.Len()) + "]>"
	}
	if s.IsDefinition() {
		return "{" + strings.Join(s.MemberNames(), ", ") + "}"
	}

	parts := make([]string, s.Len())
	for i, member := range s.Members() {
		parts[i] = s.MemberNames()[i] + ": " + c.ToTextDepth(member, depth-1)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func functionText(fp *data.FunctionPointer) string {
	if fp.Name != "" {
		return fp.Name
	}
	sigs := make([]string, len(fp.Functions))
	for i, sig := range fp.Signatures() {
		sigs[i] = sig.String()
	}
	return "<Function(" + strings.Join(sigs, "|") + ")>"
}

// formatFloat renders like the language's number printer: plain notation
// with at least one fractional digit for magnitudes in [1e-3, 1e7),
// otherwise a mantissa and an unpadded exponent such as 1.0E10.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(f); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, bitSize), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, _ := strconv.Atoi(exponent)
	return mantissa + "E" + strconv.Itoa(e)
}

// number is a numeric reading of a non-text value.
type number struct {
	integer bool
	i       int64
	f       float64
}

// numericSource reads scalars natively and containers as their size.
func numericSource(v *data.Value) (number, bool) {
	switch v.Kind() {
	case data.CHAR:
		return number{integer: true, i: int64(v.Char())}, true
	case data.INT:
		return number{integer: true, i: int64(v.Int())}, true
	case data.LONG:
		return number{integer: true, i: v.Long()}, true
	case data.FLOAT:
		return number{f: float64(v.Float())}, true
	case data.DOUBLE:
		return number{f: v.Double()}, true
	case data.BYTE_BUFFER:
		return number{integer: true, i: int64(len(v.ByteBuffer()))}, true
	case data.ARRAY, data.LIST:
		return number{integer: true, i: int64(len(v.Elements()))}, true
	case data.STRUCT:
		return number{integer: true, i: int64(v.Struct().Len())}, true
	case data.ERROR:
		return number{integer: true, i: int64(v.ErrorValue().Code)}, true
	}
	return number{}, false
}

func (n number) asInt32() int32 {
	if n.integer {
		return int32(n.i)
	}
	return int32(saturate(n.f, math.MinInt32, math.MaxInt32))
}

func (n number) asInt64() int64 {
	if n.integer {
		return n.i
	}
	return saturate(n.f, math.MinInt64, math.MaxInt64)
}

func (n number) asFloat64() float64 {
	if n.integer {
		return float64(n.i)
	}
	return n.f
}

// saturate truncates f toward zero, clamped to [lo, hi]. NaN becomes 0.
func saturate(f float64, lo, hi int64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(hi):
		return hi
	case f <= float64(lo):
		return lo
	}
	return int64(f)
}

// ToChar accepts CHAR, one character TEXT and the scalar numeric kinds.
func (c *Converter) ToChar(v *data.Value) (rune, bool) {
	v = c.hook(v, "char")

	switch v.Kind() {
	case data.TEXT:
		r, size := utf8.DecodeRuneInString(v.Text())
		if size == 0 || size != len(v.Text()) {
			return 0, false
		}
		return r, true
	case data.CHAR, data.INT, data.LONG, data.FLOAT, data.DOUBLE:
		n, _ := numericSource(v)
		return rune(n.asInt32()), true
	}
	return 0, false
}

func (c *Converter) ToInt(v *data.Value) (int32, bool) {
	v = c.hook(v, "int")

	if v.Kind() == data.TEXT {
		return lexer.ParseInt(v.Text())
	}
	n, ok := numericSource(v)
	if !ok {
		return 0, false
	}
	return n.asInt32(), true
}

func (c *Converter) ToLong(v *data.Value) (int64, bool) {
	v = c.hook(v, "long")

	if v.Kind() == data.TEXT {
		return lexer.ParseLong(v.Text())
	}
	n, ok := numericSource(v)
	if !ok {
		return 0, false
	}
	return n.asInt64(), true
}

func (c *Converter) ToFloat(v *data.Value) (float32, bool) {
	v = c.hook(v, "float")

	if v.Kind() == data.TEXT {
		return lexer.ParseFloat(v.Text())
	}
	n, ok := numericSource(v)
	if !ok {
		return 0, false
	}
	return float32(n.asFloat64()), true
}

func (c *Converter) ToDouble(v *data.Value) (float64, bool) {
	v = c.hook(v, "double")

	if v.Kind() == data.TEXT {
		return lexer.ParseDouble(v.Text())
	}
	n, ok := numericSource(v)
	if !ok {
		return 0, false
	}
	return n.asFloat64(), true
}

// ToByteBuffer copies a byte buffer, or encodes TEXT as UTF-8.
func (c *Converter) ToByteBuffer(v *data.Value) ([]byte, bool) {
	v = c.hook(v, "byteBuffer")

	switch v.Kind() {
	case data.BYTE_BUFFER:
		return append([]byte{}, v.ByteBuffer()...), true
	case data.TEXT:
		return []byte(v.Text()), true
	}
	return nil, false
}

func (c *Converter) ToArray(v *data.Value) ([]*data.Value, bool) {
	return c.elements(c.hook(v, "array"))
}

func (c *Converter) ToList(v *data.Value) ([]*data.Value, bool) {
	return c.elements(c.hook(v, "list"))
}

func (c *Converter) elements(v *data.Value) ([]*data.Value, bool) {
	switch v.Kind() {
	case data.ARRAY, data.LIST:
		ret := make([]*data.Value, len(v.Elements()))
		for i, e := range v.Elements() {
			ret[i] = e.Copy()
		}
		return ret, true
	case data.STRUCT:
		return expandStruct(v.Struct())
	}
	return nil, false
}

// expandStruct turns the members into fresh values named after them and
// guarded by their constraints. Definitions expand to NULL members.
func expandStruct(s *data.Struct) ([]*data.Value, bool) {
	ret := make([]*data.Value, s.Len())
	for i, name := range s.MemberNames() {
		member := data.Null().WithName(name)
		if !s.IsDefinition() {
			if err := member.Set(s.Members()[i]); err != nil {
				return nil, false
			}
		}
		if err := member.SetConstraint(s.MemberConstraint(i)); err != nil {
			plog.Tracef("struct expansion: %v", err)
			return nil, false
		}
		ret[i] = member
	}
	return ret, true
}

// ToBool never fails.
func (c *Converter) ToBool(v *data.Value) bool {
	v = c.hook(v, "bool")

	switch v.Kind() {
	case data.TEXT:
		return v.Text() != ""
	case data.CHAR:
		return v.Char() != 0
	case data.INT:
		return v.Int() != 0
	case data.LONG:
		return v.Long() != 0
	case data.FLOAT:
		return v.Float() != 0
	case data.DOUBLE:
		return v.Double() != 0
	case data.BYTE_BUFFER:
		return len(v.ByteBuffer()) > 0
	case data.ARRAY, data.LIST:
		return len(v.Elements()) > 0
	case data.STRUCT:
		return v.Struct().Len() > 0
	case data.ERROR:
		return v.ErrorValue().Code != 0
	case data.VAR_POINTER, data.FUNCTION_POINTER, data.TYPE, data.OBJECT:
		return true
	}
	return false
}

// ToNumber returns an INT, LONG, FLOAT or DOUBLE value. TEXT is parsed with
// the number literal grammar; CHAR, sizes and error codes become INT.
func (c *Converter) ToNumber(v *data.Value) (*data.Value, bool) {
	v = c.hook(v, "number")

	switch v.Kind() {
	case data.TEXT:
		n, ok := lexer.ParseNumber(v.Text())
		if !ok {
			return nil, false
		}
		switch n.Kind {
		case lexer.IntNumber:
			return data.NewInt(n.Int), true
		case lexer.LongNumber:
			return data.NewLong(n.Long), true
		case lexer.FloatNumber:
			return data.NewFloat(n.Float), true
		default:
			return data.NewDouble(n.Double), true
		}
	case data.INT, data.LONG, data.FLOAT, data.DOUBLE:
		return v.Copy(), true
	}

	n, ok := numericSource(v)
	if !ok {
		return nil, false
	}
	return data.NewInt(n.asInt32()), true
}
