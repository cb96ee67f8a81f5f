package lexer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   Number
		wantOk bool
	}{
		{"123", Number{Kind: IntNumber, Int: 123}, true},
		{"-7", Number{Kind: IntNumber, Int: -7}, true},
		{"2147483648", Number{Kind: LongNumber, Long: 2147483648}, true},
		{"42L", Number{Kind: LongNumber, Long: 42}, true},
		{"42l", Number{Kind: LongNumber, Long: 42}, true},
		{"1.5f", Number{Kind: FloatNumber, Float: 1.5}, true},
		{"1.5F", Number{Kind: FloatNumber, Float: 1.5}, true},
		{"1.5", Number{Kind: DoubleNumber, Double: 1.5}, true},
		{"1.5d", Number{Kind: DoubleNumber, Double: 1.5}, true},
		{".5", Number{Kind: DoubleNumber, Double: .5}, true},
		{"1e-5", Number{Kind: DoubleNumber, Double: 1e-5}, true},
		{"1e400", Number{Kind: DoubleNumber, Double: math.Inf(1)}, true},
		{"-1e400", Number{Kind: DoubleNumber, Double: math.Inf(-1)}, true},
		{"1e40f", Number{Kind: FloatNumber, Float: float32(math.Inf(1))}, true},
		{"0x1A", Number{}, false},
		{"NaN", Number{}, false},
		{"Infinity", Number{}, false},
		{" 1", Number{}, false},
		{"", Number{}, false},
		{"L", Number{}, false},
		{"1.5L", Number{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			if ok != tt.wantOk {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.in, ok, tt.wantOk)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want, +got)\n%s", diff)
			}
		})
	}
}

func TestParseIntRejectsLong(t *testing.T) {
	if _, ok := ParseInt("2147483648"); ok {
		t.Error("ParseInt accepted a value outside of the INT range")
	}
	if i, ok := ParseInt("-2147483648"); !ok || i != -2147483648 {
		t.Errorf("ParseInt(min) = %d, %v", i, ok)
	}
}
