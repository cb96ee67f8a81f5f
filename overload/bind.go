package overload

import (
	"strings"

	"github.com/pontaoski/lang/data"
	"github.com/pontaoski/lang/errors"
)

// Coercer is the part of the conversion engine that argument handling
// needs.
type Coercer interface {
	ToText(v *data.Value) string
	ToNumber(v *data.Value) (*data.Value, bool)
	ToBool(v *data.Value) bool
}

// CombineArguments splits a raw argument list at ARGUMENT_SEPARATOR values.
// A segment holding one value is kept as is, an empty segment becomes VOID,
// and a longer segment is joined into one TEXT value.
func CombineArguments(raw []*data.Value, conv Coercer) []*data.Value {
	if len(raw) == 0 {
		return nil
	}

	var (
		ret     []*data.Value
		segment []*data.Value
	)
	flush := func() {
		switch len(segment) {
		case 0:
			ret = append(ret, data.Void())
		case 1:
			ret = append(ret, segment[0])
		default:
			var b strings.Builder
			for _, v := range segment {
				b.WriteString(conv.ToText(v))
			}
			ret = append(ret, data.NewText(b.String()))
		}
		segment = segment[:0]
	}

	for _, v := range raw {
		if v.Kind() == data.ARGUMENT_SEPARATOR {
			flush()
			continue
		}
		segment = append(segment, v)
	}
	flush()

	return ret
}

// Bind maps args onto the parameters of sig, applying the parameter
// annotations. The returned values carry the parameter names and
// constraints.
func Bind(sig *data.Signature, args []*data.Value, conv Coercer) ([]*data.Value, error) {
	paramCount, argCount := sig.ParameterCount(), len(args)
	if !sig.IsVarArgs() && argCount != paramCount {
		return nil, errors.ArgumentCount{Expected: paramCount, Got: argCount}
	}
	if sig.IsVarArgs() && argCount < paramCount-1 {
		return nil, errors.ArgumentCount{Expected: paramCount - 1, Got: argCount, VarArgs: true}
	}

	ret := make([]*data.Value, 0, paramCount)
	next := 0
	for i, p := range sig.Parameters() {
		if i == sig.VarArgsIndex() {
			absorbed := args[next : next+argCount-(paramCount-1)]
			next += len(absorbed)

			bound, err := bindVarArgs(p, absorbed)
			if err != nil {
				return nil, err
			}
			ret = append(ret, bound)
			continue
		}

		arg := args[next]
		next++

		var value *data.Value
		switch p.Annotation {
		case data.NUMBER:
			n, ok := conv.ToNumber(arg)
			if !ok {
				return nil, errors.ArgumentConversion{Parameter: p.Name, Annotation: p.Annotation.String(), Got: arg.Kind().String()}
			}
			value = n
		case data.BOOLEAN:
			value = data.NewInt(0)
			if conv.ToBool(arg) {
				value = data.NewInt(1)
			}
		case data.CALL_BY_POINTER:
			value = data.NewVarPointer(arg)
		default:
			value = arg
		}

		slot := data.Null().WithName(p.Name)
		if err := slot.Set(value); err != nil {
			return nil, err
		}
		if err := slot.SetConstraint(p.Constraint); err != nil {
			return nil, err
		}
		ret = append(ret, slot)
	}

	return ret, nil
}

// bindVarArgs packs the absorbed arguments: copies into an ARRAY, or the
// arguments themselves into a LIST for RAW_VAR_ARGS. The parameter
// constraint applies to each element.
func bindVarArgs(p data.Parameter, absorbed []*data.Value) (*data.Value, error) {
	elements := make([]*data.Value, len(absorbed))
	for i, arg := range absorbed {
		if !p.Constraint.Allows(arg.Kind()) {
			return nil, errors.ConstraintViolation{
				Name:       p.Name,
				Got:        arg.Kind().String(),
				Constraint: p.Constraint.String(),
			}
		}
		if p.Annotation == data.RAW_VAR_ARGS {
			elements[i] = arg
		} else {
			elements[i] = arg.Copy()
		}
	}

	if p.Annotation == data.RAW_VAR_ARGS {
		return data.NewList(elements...).WithName(p.Name), nil
	}
	return data.NewArray(elements...).WithName(p.Name), nil
}
