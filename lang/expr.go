package lang

import (
	"math/big"
)

// Kind indicates which variant an [Expression] holds.
type Kind int

const (
	// KindAtom represents a bare identifier/symbol token.
	KindAtom Kind = iota

	// KindList represents a proper list of expressions.
	KindList

	// KindDottedPair represents an improper list: one or more leading
	// expressions and a tail expression.
	KindDottedPair

	// KindInteger represents an arbitrary-precision signed integer.
	KindInteger

	// KindText represents an escape-decoded string literal.
	KindText

	// KindBoolean represents #t or #f.
	KindBoolean

	// KindCharacter represents a single Unicode scalar, e.g. #\a.
	KindCharacter

	// KindFloat represents a 64-bit IEEE double.
	KindFloat

	// KindRatio represents an unreduced numerator/denominator pair.
	KindRatio

	// KindComplex represents a complex number with double components.
	KindComplex
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "Atom"
	case KindList:
		return "List"
	case KindDottedPair:
		return "DottedPair"
	case KindInteger:
		return "Integer"
	case KindText:
		return "Text"
	case KindBoolean:
		return "Boolean"
	case KindCharacter:
		return "Character"
	case KindFloat:
		return "Float"
	case KindRatio:
		return "Ratio"
	case KindComplex:
		return "Complex"
	default:
		return "Unknown"
	}
}

// Expression is the recursive sum type produced by the parser.
//
// Exactly the fields relevant to Kind are set. Expressions are immutable
// once constructed: the parser builds them bottom-up and never mutates or
// shares children, so a tree can be cached and read concurrently.
type Expression struct {
	Kind Kind

	Name  string        // KindAtom
	Items []*Expression // KindList, KindDottedPair
	Tail  *Expression   // KindDottedPair

	Int        *big.Int // KindInteger
	Text       string   // KindText
	Bool       bool     // KindBoolean
	Char       rune     // KindCharacter
	Float      float64  // KindFloat
	Num, Den   *big.Int // KindRatio (Den is never zero)
	Real, Imag float64  // KindComplex
}

// NewAtom creates an atom expression with the given symbol name.
func NewAtom(name string) *Expression {
	return &Expression{Kind: KindAtom, Name: name}
}

// NewList creates a proper list from the given items.
func NewList(items ...*Expression) *Expression {
	return &Expression{Kind: KindList, Items: items}
}

// NewDottedPair creates an improper list from the leading items and tail.
func NewDottedPair(items []*Expression, tail *Expression) *Expression {
	return &Expression{Kind: KindDottedPair, Items: items, Tail: tail}
}

// NewInteger creates an integer expression. The value is not copied; the
// caller must not mutate it afterward.
func NewInteger(v *big.Int) *Expression {
	return &Expression{Kind: KindInteger, Int: v}
}

// NewIntegerFromInt64 creates an integer expression from a native int64.
func NewIntegerFromInt64(v int64) *Expression {
	return NewInteger(big.NewInt(v))
}

// NewText creates a string expression holding already-decoded text.
func NewText(s string) *Expression {
	return &Expression{Kind: KindText, Text: s}
}

// NewBoolean creates a boolean expression.
func NewBoolean(v bool) *Expression {
	return &Expression{Kind: KindBoolean, Bool: v}
}

// NewCharacter creates a character expression.
func NewCharacter(r rune) *Expression {
	return &Expression{Kind: KindCharacter, Char: r}
}

// NewFloat creates a float expression.
func NewFloat(v float64) *Expression {
	return &Expression{Kind: KindFloat, Float: v}
}

// NewRatio creates a ratio expression. The pair is stored as written, not
// reduced. The denominator must be nonzero.
func NewRatio(num, den *big.Int) *Expression {
	return &Expression{Kind: KindRatio, Num: num, Den: den}
}

// NewComplex creates a complex expression.
func NewComplex(re, im float64) *Expression {
	return &Expression{Kind: KindComplex, Real: re, Imag: im}
}

// Equal reports whether two expressions are structurally identical.
// Integer and ratio components compare by numeric value; ratios are
// compared as written (3/6 and 1/2 are not equal).
func (e *Expression) Equal(o *Expression) bool {
	if e == nil || o == nil {
		return e == o
	}

	if e.Kind != o.Kind {
		return false
	}

	switch e.Kind {
	case KindAtom:
		return e.Name == o.Name

	case KindList, KindDottedPair:
		if len(e.Items) != len(o.Items) {
			return false
		}

		for i := range e.Items {
			if !e.Items[i].Equal(o.Items[i]) {
				return false
			}
		}

		if e.Kind == KindDottedPair {
			return e.Tail.Equal(o.Tail)
		}

		return true

	case KindInteger:
		return e.Int.Cmp(o.Int) == 0

	case KindText:
		return e.Text == o.Text

	case KindBoolean:
		return e.Bool == o.Bool

	case KindCharacter:
		return e.Char == o.Char

	case KindFloat:
		return e.Float == o.Float

	case KindRatio:
		return e.Num.Cmp(o.Num) == 0 && e.Den.Cmp(o.Den) == 0

	case KindComplex:
		return e.Real == o.Real && e.Imag == o.Imag

	default:
		return false
	}
}
