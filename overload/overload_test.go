package overload

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pontaoski/lang/data"
	"github.com/pontaoski/lang/errors"
)

func param(name string, c data.Constraint) data.Parameter {
	return data.Parameter{Name: name, Constraint: c}
}

func varArgs(name string, c data.Constraint) data.Parameter {
	return data.Parameter{Name: name, Constraint: c, Annotation: data.VAR_ARGS}
}

func sig(params ...data.Parameter) *data.Signature {
	return data.MustSignature(data.Unconstrained, params...)
}

var (
	intOnly   = data.AllowOnly(data.INT)
	textOnly  = data.AllowOnly(data.TEXT)
	intOrText = data.AllowOnly(data.INT, data.TEXT)
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		sigs   []*data.Signature
		args   []*data.Value
		want   int
		wantOk bool
	}{
		{
			name:   "narrow first",
			sigs:   []*data.Signature{sig(param("$a", intOnly)), sig(param("$a", data.Unconstrained))},
			args:   []*data.Value{data.NewInt(1)},
			want:   0,
			wantOk: true,
		},
		{
			name:   "narrow last",
			sigs:   []*data.Signature{sig(param("$a", data.Unconstrained)), sig(param("$a", intOrText)), sig(param("$a", intOnly))},
			args:   []*data.Value{data.NewInt(1)},
			want:   2,
			wantOk: true,
		},
		{
			name:   "ineligible narrow",
			sigs:   []*data.Signature{sig(param("$a", textOnly)), sig(param("$a", intOrText))},
			args:   []*data.Value{data.NewInt(1)},
			want:   1,
			wantOk: true,
		},
		{
			name:   "fixed beats var args",
			sigs:   []*data.Signature{sig(varArgs("&a", intOnly)), sig(param("$a", data.Unconstrained))},
			args:   []*data.Value{data.NewInt(1)},
			want:   1,
			wantOk: true,
		},
		{
			name:   "var args of equal length",
			sigs:   []*data.Signature{sig(varArgs("&a", intOrText)), sig(varArgs("&a", intOnly))},
			args:   []*data.Value{data.NewInt(1), data.NewInt(2)},
			want:   1,
			wantOk: true,
		},
		{
			name: "var args of different length",
			// The shorter one pays its var args count for the missing slot:
			// 19+18 against 20.
			sigs: []*data.Signature{
				sig(varArgs("&a", data.Unconstrained), param("$b", intOnly)),
				sig(varArgs("&a", data.Unconstrained), param("$b", intOnly), param("$c", intOnly)),
			},
			args:   []*data.Value{data.NewInt(1), data.NewInt(2)},
			want:   1,
			wantOk: true,
		},
		{
			name:   "tie keeps earliest",
			sigs:   []*data.Signature{sig(param("$a", intOrText)), sig(param("$b", intOrText))},
			args:   []*data.Value{data.NewText("x")},
			want:   0,
			wantOk: true,
		},
		{
			name:   "zero arguments",
			sigs:   []*data.Signature{sig(param("$a", data.Unconstrained)), sig()},
			args:   nil,
			want:   1,
			wantOk: true,
		},
		{
			name:   "no match",
			sigs:   []*data.Signature{sig(param("$a", textOnly)), sig()},
			args:   []*data.Value{data.NewInt(1)},
			want:   -1,
			wantOk: false,
		},
		{
			name:   "empty overload set",
			sigs:   nil,
			args:   nil,
			want:   -1,
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.sigs, tt.args)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("Resolve() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestEligibleVarArgs(t *testing.T) {
	s := sig(param("$text", textOnly), varArgs("&numbers", data.Numeric))

	tests := []struct {
		name string
		args []*data.Value
		want bool
	}{
		{"empty", nil, false},
		{"text only", []*data.Value{data.NewText("a")}, true},
		{"numbers", []*data.Value{data.NewText("a"), data.NewInt(1), data.NewDouble(2), data.NewLong(3)}, true},
		{"number first", []*data.Value{data.NewInt(1), data.NewInt(1)}, false},
		{"text after", []*data.Value{data.NewText("a"), data.NewInt(1), data.NewText("b")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eligible(s, tt.args); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}

	middle := sig(param("$a", intOnly), varArgs("&b", textOnly), param("$c", intOnly))
	if !Eligible(middle, []*data.Value{data.NewInt(1), data.NewInt(2)}) {
		t.Error("var args in the middle did not accept an empty span")
	}
	if !Eligible(middle, []*data.Value{data.NewInt(1), data.NewText("x"), data.NewText("y"), data.NewInt(2)}) {
		t.Error("var args in the middle did not accept a span")
	}
	if Eligible(middle, []*data.Value{data.NewInt(1), data.NewText("x"), data.NewText("y")}) {
		t.Error("trailing fixed parameter matched a var args argument")
	}
}

var constraintPool = []data.Constraint{
	data.Unconstrained,
	data.Numeric,
	intOnly,
	textOnly,
	intOrText,
	data.AllowAllExcept(data.NULL),
	data.AllowOnly(data.INT, data.LONG),
}

func randomSignature(r *rand.Rand) *data.Signature {
	n := r.Intn(4)
	params := make([]data.Parameter, n)
	for i := range params {
		params[i] = param("$p", constraintPool[r.Intn(len(constraintPool))])
	}
	if n > 0 && r.Intn(3) == 0 {
		params[r.Intn(n)].Annotation = data.VAR_ARGS
	}
	return sig(params...)
}

func TestResolveRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	kinds := []data.Type{data.INT, data.TEXT, data.LONG, data.NULL}

	for round := 0; round < 500; round++ {
		sigs := make([]*data.Signature, 1+r.Intn(6))
		for i := range sigs {
			sigs[i] = randomSignature(r)
		}
		args := make([]*data.Value, r.Intn(4))
		for i := range args {
			switch kinds[r.Intn(len(kinds))] {
			case data.INT:
				args[i] = data.NewInt(1)
			case data.TEXT:
				args[i] = data.NewText("a")
			case data.LONG:
				args[i] = data.NewLong(1)
			default:
				args[i] = data.Null()
			}
		}

		got, ok := Resolve(sigs, args)
		if !ok {
			for _, s := range sigs {
				if Eligible(s, args) {
					t.Fatalf("round %d: %s is eligible for %v but nothing resolved", round, s, data.Kinds(args))
				}
			}
			continue
		}
		if !Eligible(sigs[got], args) {
			t.Fatalf("round %d: resolved to ineligible %s", round, sigs[got])
		}

		// A strict winner stays the winner in any declaration order.
		winner := newCandidate(sigs[got])
		strict := true
		for i, s := range sigs {
			if i != got && Eligible(s, args) && !better(winner, newCandidate(s)) {
				strict = false
			}
		}
		if !strict {
			continue
		}
		perm := r.Perm(len(sigs))
		shuffled := make([]*data.Signature, len(sigs))
		for i, j := range perm {
			shuffled[i] = sigs[j]
		}
		again, _ := Resolve(shuffled, args)
		if shuffled[again] != sigs[got] {
			t.Fatalf("round %d: strict winner %s lost after reordering to %s", round, sigs[got], shuffled[again])
		}
	}
}

func TestSelect(t *testing.T) {
	first := &data.Function{Signature: sig(param("$a", intOnly)), Impl: "int"}
	second := &data.Function{Signature: sig(param("$a", textOnly)), Impl: "text"}
	fp := data.NewFunctionPointerOf("func.print", first, second)

	got, err := Select(fp, []*data.Value{data.NewText("x")})
	if err != nil {
		t.Fatal(err)
	}
	if got != second {
		t.Errorf("Select() = %v, want the TEXT overload", got.Impl)
	}

	_, err = Select(fp, []*data.Value{data.Null()})
	want := errors.NoMatchingSignature{Function: "func.print", Arguments: []string{"NULL"}}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
}
