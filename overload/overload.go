package overload

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lang/data"
	"github.com/pontaoski/lang/errors"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lang", "overload")

// candidate is what ranking looks at of an eligible signature.
type candidate struct {
	allowedSum     int
	varArgsIndex   int
	varArgsAllowed int
	paramCount     int
}

func newCandidate(sig *data.Signature) candidate {
	c := candidate{
		varArgsIndex: sig.VarArgsIndex(),
		paramCount:   sig.ParameterCount(),
	}
	for _, p := range sig.Parameters() {
		c.allowedSum += p.Constraint.AllowedCount()
	}
	if c.varArgsIndex != -1 {
		c.varArgsAllowed = sig.Parameter(c.varArgsIndex).Constraint.AllowedCount()
	}
	return c
}

func (c candidate) isVarArgs() bool {
	return c.varArgsIndex != -1
}

// better reports whether c is strictly more restrictive than best.
func better(c, best candidate) bool {
	switch {
	case !c.isVarArgs() && best.isVarArgs():
		return true
	case c.isVarArgs() && !best.isVarArgs():
		return false
	case !c.isVarArgs():
		return c.allowedSum < best.allowedSum
	case c.paramCount == best.paramCount:
		return c.varArgsAllowed < best.varArgsAllowed
	}

	// The shorter signature absorbs the difference in its var args slot.
	cSum, bestSum := c.allowedSum, best.allowedSum
	if c.paramCount < best.paramCount {
		cSum += (best.paramCount - c.paramCount) * c.varArgsAllowed
	} else {
		bestSum += (c.paramCount - best.paramCount) * best.varArgsAllowed
	}
	return cSum < bestSum
}

// Eligible reports whether sig accepts args by count and by the kinds the
// parameter constraints allow.
func Eligible(sig *data.Signature, args []*data.Value) bool {
	paramCount, argCount := sig.ParameterCount(), len(args)
	varArgs := sig.VarArgsIndex()

	if varArgs == -1 {
		if paramCount != argCount {
			return false
		}
		for i, arg := range args {
			if !sig.Parameter(i).Constraint.Allows(arg.Kind()) {
				return false
			}
		}
		return true
	}

	if paramCount-1 > argCount {
		return false
	}
	absorbed := argCount - (paramCount - 1)
	for i, arg := range args {
		param := i
		switch {
		case i >= varArgs+absorbed:
			param = i - absorbed + 1
		case i >= varArgs:
			param = varArgs
		}
		if !sig.Parameter(param).Constraint.Allows(arg.Kind()) {
			return false
		}
	}
	return true
}

// Resolve picks the most restrictive signature accepting args. The earliest
// declared signature wins ties.
func Resolve(signatures []*data.Signature, args []*data.Value) (int, bool) {
	index := -1
	var best candidate

	for i, sig := range signatures {
		if !Eligible(sig, args) {
			continue
		}
		c := newCandidate(sig)
		if index == -1 || better(c, best) {
			index, best = i, c
		}
	}

	if index == -1 {
		plog.Tracef("no signature of %d accepts %v", len(signatures), data.Kinds(args))
		return -1, false
	}
	plog.Tracef("resolved %v to %s", data.Kinds(args), signatures[index])
	return index, true
}

// Select resolves args against the overload set of fp.
func Select(fp *data.FunctionPointer, args []*data.Value) (*data.Function, error) {
	i, ok := Resolve(fp.Signatures(), args)
	if !ok {
		kinds := make([]string, len(args))
		for i, arg := range args {
			kinds[i] = arg.Kind().String()
		}
		return nil, errors.NoMatchingSignature{Function: fp.Name, Arguments: kinds}
	}
	return fp.Functions[i], nil
}
