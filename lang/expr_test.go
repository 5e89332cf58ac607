package lang

import (
	"math/big"
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Expression
		want bool
	}{
		{
			name: "same atom",
			a:    NewAtom("x"),
			b:    NewAtom("x"),
			want: true,
		},
		{
			name: "different atom",
			a:    NewAtom("x"),
			b:    NewAtom("y"),
			want: false,
		},
		{
			name: "kind mismatch",
			a:    NewAtom("x"),
			b:    NewText("x"),
			want: false,
		},
		{
			name: "integers compare by value",
			a:    NewIntegerFromInt64(42),
			b:    NewInteger(big.NewInt(42)),
			want: true,
		},
		{
			name: "ratios compare as written",
			a:    NewRatio(big.NewInt(1), big.NewInt(2)),
			b:    NewRatio(big.NewInt(2), big.NewInt(4)),
			want: false,
		},
		{
			name: "equal lists",
			a:    NewList(NewAtom("a"), NewIntegerFromInt64(1)),
			b:    NewList(NewAtom("a"), NewIntegerFromInt64(1)),
			want: true,
		},
		{
			name: "list length mismatch",
			a:    NewList(NewAtom("a")),
			b:    NewList(NewAtom("a"), NewAtom("b")),
			want: false,
		},
		{
			name: "dotted pair tail mismatch",
			a: NewDottedPair(
				[]*Expression{NewAtom("a")}, NewAtom("b"),
			),
			b: NewDottedPair(
				[]*Expression{NewAtom("a")}, NewAtom("c"),
			),
			want: false,
		},
		{
			name: "equal complex",
			a:    NewComplex(1.5, 2.5),
			b:    NewComplex(1.5, 2.5),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v",
					tt.a, tt.b, got, tt.want)
			}

			// Equality is symmetric.
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v",
					tt.b, tt.a, got, tt.want)
			}
		})
	}
}
