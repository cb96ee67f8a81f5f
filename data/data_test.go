package data

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pontaoski/lang/errors"
)

func TestConstraint(t *testing.T) {
	tests := []struct {
		name    string
		c       Constraint
		allowed []Type
		str     string
	}{
		{"allow only", AllowOnly(INT, LONG), []Type{INT, LONG}, "{INT|LONG}"},
		{"numeric", Numeric, []Type{INT, LONG, FLOAT, DOUBLE}, "{INT|LONG|FLOAT|DOUBLE}"},
		{"function pointer", FunctionPointerOrNull, []Type{FUNCTION_POINTER, NULL}, "{FUNCTION_POINTER|NULL}"},
		{"unconstrained", Unconstrained, TypeValues, "{*}"},
		{"allow all except", AllowAllExcept(NULL, VOID), nil, "{!NULL|VOID}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.allowed != nil {
				if diff := cmp.Diff(tt.allowed, tt.c.AllowedTypes()); diff != "" {
					t.Errorf("(-want, +got)\n%s", diff)
				}
			}
			if got := tt.c.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}

	except := AllowAllExcept(NULL, VOID)
	if except.AllowedCount() != len(TypeValues)-2 || except.Allows(NULL) || !except.Allows(TEXT) {
		t.Errorf("AllowAllExcept allows %v", except.AllowedTypes())
	}
	if !AllowAllExcept(NULL).Equal(AllowOnly(TypeValues[:NULL]...).union(AllowOnly(TypeValues[NULL+1:]...))) {
		t.Error("equal sets declared differently are not Equal")
	}
	if AllowOnly(INT).Equal(AllowOnly(LONG)) {
		t.Error("different sets are Equal")
	}
}

// union is only needed to build test fixtures.
func (c Constraint) union(o Constraint) Constraint {
	return Constraint{excluded: c.excluded & o.excluded, allowList: true}
}

func TestSignature(t *testing.T) {
	_, err := NewSignature([]Parameter{
		{Name: "&a", Annotation: VAR_ARGS},
		{Name: "$b"},
		{Name: "&c", Annotation: RAW_VAR_ARGS},
	}, Unconstrained)
	if diff := cmp.Diff(errors.DuplicateVarArgs{First: 0, Second: 2}, err); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}

	s := MustSignature(AllowOnly(INT),
		Parameter{Name: "$a", Constraint: AllowOnly(INT)},
		Parameter{Name: "&rest", Annotation: RAW_VAR_ARGS},
	)
	if s.VarArgsIndex() != 1 || !s.IsRawVarArgs() {
		t.Errorf("var args index %d, raw %v", s.VarArgsIndex(), s.IsRawVarArgs())
	}
	if got, want := s.String(), "($a{INT}, &rest...):{INT}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	renamed := MustSignature(Unconstrained,
		Parameter{Name: "$x", Constraint: AllowOnly(INT)},
		Parameter{Name: "&y", Annotation: VAR_ARGS},
	)
	if !s.Equal(renamed) {
		t.Error("signatures differing in names only are not Equal")
	}
	if s.Equal(MustSignature(Unconstrained, Parameter{Name: "$a", Constraint: AllowOnly(INT)}, Parameter{Name: "$b"})) {
		t.Error("signatures with different var args index are Equal")
	}
}

func TestValueConstraint(t *testing.T) {
	v, err := NewVariable("$a", AllowOnly(INT, NULL))
	if err != nil {
		t.Fatal(err)
	}

	if err := v.Set(NewInt(3)); err != nil {
		t.Fatal(err)
	}
	if v.Kind() != INT || v.Int() != 3 || v.Name() != "$a" {
		t.Errorf("after Set: %s %d %q", v.Kind(), v.Int(), v.Name())
	}

	err = v.Set(NewText("x"))
	want := errors.ConstraintViolation{Name: "$a", Got: "TEXT", Constraint: "{INT|NULL}"}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
	if v.Kind() != INT {
		t.Error("failed Set changed the value")
	}

	if _, err := NewVariable("$b", AllowOnly(TEXT)); err == nil {
		t.Error("NULL variable accepted a constraint without NULL")
	}

	c := v.Copy()
	if c.Name() != "" || !c.Constraint().IsUnconstrained() || c.Int() != 3 {
		t.Errorf("Copy() kept name %q, constraint %s", c.Name(), c.Constraint())
	}
}

func TestStruct(t *testing.T) {
	def := NewStructDefinition([]string{"$x", "$y"}, []Constraint{AllowOnly(INT), Unconstrained})

	inst, err := NewStructInstance(def, []*Value{NewInt(1), NewText("a")})
	if err != nil {
		t.Fatal(err)
	}
	if inst.IsDefinition() || inst.Members()[0].Name() != "$x" {
		t.Errorf("instance %v", inst)
	}

	if _, err := NewStructInstance(def, []*Value{NewText("a"), NewText("b")}); err == nil {
		t.Error("instance violated a member constraint")
	}

	_, err = NewStructInstance(def, nil)
	if diff := cmp.Diff(errors.ArgumentCount{Expected: 2, Got: 0}, err); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
}

func TestObject(t *testing.T) {
	fp := NewFunctionPointerOf("mp.to:text", &Function{Signature: MustSignature(Unconstrained)})
	class := NewClass("Point", map[string]*FunctionPointer{"to:text": fp})
	obj := class.NewInstance()

	if !class.IsClass() || obj.IsClass() || obj.ClassName() != "Point" {
		t.Errorf("class %v, instance %v", class, obj)
	}
	if got, ok := obj.Method("to:text"); !ok || got != fp {
		t.Error("instance does not share the method table")
	}
	if _, ok := obj.Method("to:int"); ok {
		t.Error("found an undeclared method")
	}
}
