package lang

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/Mwandia/schemer/log"
)

func TestParseString_Atoms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "letters",
			input: "abc",
			want:  "abc",
		},
		{
			name:  "single symbol",
			input: "+",
			want:  "+",
		},
		{
			name:  "symbol prefix",
			input: "<=?",
			want:  "<=?",
		},
		{
			name:  "digits after first character",
			input: "x42",
			want:  "x42",
		},
		{
			name:  "hash after first character",
			input: "vec#3",
			want:  "vec#3",
		},
		{
			name:  "stops at whitespace",
			input: "abc def",
			want:  "abc",
		},
		{
			name:  "stops at double quote",
			input: `abc"tail`,
			want:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != KindAtom {
				t.Fatalf("expected atom, got %s", expr.Kind)
			}

			if expr.Name != tt.want {
				t.Errorf("expected atom %q, got %q", tt.want, expr.Name)
			}
		})
	}
}

func TestParseString_Text(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain",
			input: `"hello"`,
			want:  "hello",
		},
		{
			name:  "empty",
			input: `""`,
			want:  "",
		},
		{
			name:  "newline escape",
			input: `"a\nb"`,
			want:  "a\nb",
		},
		{
			name:  "tab and return escapes",
			input: `"a\tb\rc"`,
			want:  "a\tb\rc",
		},
		{
			name:  "escaped quote",
			input: `"say \"hi\""`,
			want:  `say "hi"`,
		},
		{
			name:  "escaped backslash",
			input: `"a\\b"`,
			want:  `a\b`,
		},
		{
			name:  "unknown escape is identity",
			input: `"a\qb"`,
			want:  "aqb",
		},
		{
			name:  "embedded spaces and parens",
			input: `"(not a list)"`,
			want:  "(not a list)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != KindText {
				t.Fatalf("expected string, got %s", expr.Kind)
			}

			if expr.Text != tt.want {
				t.Errorf("expected text %q, got %q", tt.want, expr.Text)
			}
		})
	}
}

func TestParseString_UnterminatedText(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "missing closing quote",
			input: `"abc`,
		},
		{
			name:  "input ends mid escape",
			input: `"abc\`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected parse error")
			}

			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected SyntaxError, got %T", err)
			}

			if se.Reason != "unterminated string literal" {
				t.Errorf("unexpected reason %q", se.Reason)
			}

			if se.Offset != len(tt.input) {
				t.Errorf("expected failure at end of input, got offset %d",
					se.Offset)
			}

			if !strings.Contains(se.Error(), "end of input") {
				t.Errorf("expected end-of-input rendering, got %q", se.Error())
			}
		})
	}
}

func TestParseString_Characters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  rune
	}{
		{
			name:  "named space",
			input: `#\space`,
			want:  ' ',
		},
		{
			name:  "named newline",
			input: `#\newline`,
			want:  '\n',
		},
		{
			name:  "lowercase letter",
			input: `#\a`,
			want:  'a',
		},
		{
			name:  "uppercase letter",
			input: `#\A`,
			want:  'A',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != KindCharacter {
				t.Fatalf("expected character, got %s", expr.Kind)
			}

			if expr.Char != tt.want {
				t.Errorf("expected char %q, got %q", tt.want, expr.Char)
			}
		})
	}
}

func TestParseString_UnknownCharacterName(t *testing.T) {
	// A multi-letter run that is neither "space" nor "newline" matches no
	// alternative at all.
	_, err := ParseString(context.Background(), `#\tab`)
	if err == nil {
		t.Fatal("expected parse error")
	}

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %T", err)
	}
}

func TestParseString_Booleans(t *testing.T) {
	expr, err := ParseString(context.Background(), "#t")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if expr.Kind != KindBoolean || !expr.Bool {
		t.Errorf("expected #t, got %s", expr)
	}

	expr, err = ParseString(context.Background(), "#f")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if expr.Kind != KindBoolean || expr.Bool {
		t.Errorf("expected #f, got %s", expr)
	}
}

func TestParseString_Integers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{
			name:  "plain decimal",
			input: "42",
			want:  42,
		},
		{
			name:  "zero",
			input: "0",
			want:  0,
		},
		{
			name:  "tagged decimal",
			input: "#d42",
			want:  42,
		},
		{
			name:  "binary",
			input: "#b1011",
			want:  11,
		},
		{
			name:  "octal decodes base eight",
			input: "#o17",
			want:  15,
		},
		{
			name:  "hex lowercase",
			input: "#x1f",
			want:  31,
		},
		{
			name:  "hex uppercase",
			input: "#x1F",
			want:  31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != KindInteger {
				t.Fatalf("expected integer, got %s", expr.Kind)
			}

			if expr.Int.Int64() != tt.want {
				t.Errorf("expected %d, got %s", tt.want, expr.Int)
			}
		})
	}
}

func TestParseString_BigInteger(t *testing.T) {
	const digits = "123456789012345678901234567890"

	expr, err := ParseString(context.Background(), digits)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want, _ := new(big.Int).SetString(digits, 10)
	if expr.Int.Cmp(want) != 0 {
		t.Errorf("expected %s, got %s", want, expr.Int)
	}
}

func TestParseString_RadixRequiresDigits(t *testing.T) {
	// A bare radix tag with no digits matches no alternative.
	for _, input := range []string{"#b", "#o", "#d", "#x"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseString(context.Background(), input)
			if err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestParseString_Floats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{
			name:  "simple",
			input: "3.14",
			want:  3.14,
		},
		{
			name:  "leading zero",
			input: "0.5",
			want:  0.5,
		},
		{
			name:  "trailing zero fraction",
			input: "2.0",
			want:  2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != KindFloat {
				t.Fatalf("expected float, got %s", expr.Kind)
			}

			if expr.Float != tt.want {
				t.Errorf("expected %g, got %g", tt.want, expr.Float)
			}
		})
	}
}

func TestParseString_Ratios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		num, den int64
	}{
		{
			name:  "simple",
			input: "3/4",
			num:   3,
			den:   4,
		},
		{
			name:  "not reduced",
			input: "6/8",
			num:   6,
			den:   8,
		},
		{
			name:  "zero numerator",
			input: "0/5",
			num:   0,
			den:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != KindRatio {
				t.Fatalf("expected ratio, got %s", expr.Kind)
			}

			if expr.Num.Int64() != tt.num || expr.Den.Int64() != tt.den {
				t.Errorf("expected %d/%d, got %s/%s",
					tt.num, tt.den, expr.Num, expr.Den)
			}
		})
	}
}

func TestParseString_ZeroDenominator(t *testing.T) {
	// The ratio recognizer declines 1/0, so the integer recognizer wins
	// with the prefix "1".
	expr, n, err := ParsePrefix(context.Background(), "1/0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if expr.Kind != KindInteger || expr.Int.Int64() != 1 {
		t.Errorf("expected integer 1, got %s", expr)
	}

	if n != 1 {
		t.Errorf("expected 1 byte consumed, got %d", n)
	}
}

func TestParseString_Complex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		re, im   float64
	}{
		{
			name:  "integer parts",
			input: "3+4i",
			re:    3,
			im:    4,
		},
		{
			name:  "float parts",
			input: "2.5+0.5i",
			re:    2.5,
			im:    0.5,
		},
		{
			name:  "mixed parts",
			input: "3+4.5i",
			re:    3,
			im:    4.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != KindComplex {
				t.Fatalf("expected complex, got %s", expr.Kind)
			}

			if expr.Real != tt.re || expr.Imag != tt.im {
				t.Errorf("expected %g+%gi, got %g+%gi",
					tt.re, tt.im, expr.Real, expr.Imag)
			}
		})
	}
}

func TestParseString_DispatchPriority(t *testing.T) {
	// Inputs where several recognizers share a prefix. The winner is fixed
	// by dispatch order, not match length.
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{
			name:  "symbol atom beats ratio slash",
			input: "/",
			want:  KindAtom,
		},
		{
			name:  "complex beats float and integer",
			input: "3+4i",
			want:  KindComplex,
		},
		{
			name:  "float beats integer",
			input: "3.14",
			want:  KindFloat,
		},
		{
			name:  "ratio beats integer",
			input: "3/4",
			want:  KindRatio,
		},
		{
			name:  "radix integer beats boolean tag",
			input: "#b1",
			want:  KindInteger,
		},
		{
			name:  "character beats boolean tag",
			input: `#\t`,
			want:  KindCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != tt.want {
				t.Errorf("expected %s, got %s", tt.want, expr.Kind)
			}
		})
	}
}

func TestParsePrefix_TrailingInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Kind
		consumed int
	}{
		{
			name:     "integer before letters",
			input:    "42xyz",
			want:     KindInteger,
			consumed: 2,
		},
		{
			name:     "atom before space",
			input:    "abc def",
			want:     KindAtom,
			consumed: 3,
		},
		{
			name:     "boolean before garbage",
			input:    "#t)",
			want:     KindBoolean,
			consumed: 2,
		},
		{
			name:     "float stops at second dot",
			input:    "1.2.3",
			want:     KindFloat,
			consumed: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, n, err := ParsePrefix(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != tt.want {
				t.Errorf("expected %s, got %s", tt.want, expr.Kind)
			}

			if n != tt.consumed {
				t.Errorf("expected %d bytes consumed, got %d", tt.consumed, n)
			}
		})
	}
}

func TestParseString_NoMatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "open paren",
			input: "(foo)",
		},
		{
			name:  "leading whitespace",
			input: " abc",
		},
		{
			name:  "bare hash",
			input: "#",
		},
		{
			name:  "unknown hash tag",
			input: "#z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected parse error")
			}

			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected SyntaxError, got %T", err)
			}

			if se.Line != 1 || se.Column != 1 {
				t.Errorf("expected failure at 1:1, got %d:%d",
					se.Line, se.Column)
			}

			if len(se.Expected) == 0 {
				t.Error("expected non-empty alternative set")
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	expr, err := ParseReader(context.Background(), strings.NewReader("#x2a"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if expr.Kind != KindInteger || expr.Int.Int64() != 42 {
		t.Errorf("expected integer 42, got %s", expr)
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "three elements",
			input: "a b 42",
			want:  3,
		},
		{
			name:  "single element",
			input: "#t",
			want:  1,
		},
		{
			name:  "empty input",
			input: "",
			want:  0,
		},
		{
			name:  "mixed literals",
			input: `abc "str" #\a 3/4 2.5`,
			want:  5,
		},
		{
			name:  "multiple separating spaces",
			input: "a  \t b",
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseList(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != KindList {
				t.Fatalf("expected list, got %s", expr.Kind)
			}

			if len(expr.Items) != tt.want {
				t.Errorf("expected %d items, got %d", tt.want, len(expr.Items))
			}
		})
	}
}

func TestParseList_CommittedFailure(t *testing.T) {
	// An unterminated string inside the sequence is a hard failure, not an
	// early end of the list.
	_, err := ParseList(context.Background(), `a "unterminated`)
	if err == nil {
		t.Fatal("expected parse error")
	}

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %T", err)
	}

	if se.Reason != "unterminated string literal" {
		t.Errorf("unexpected reason %q", se.Reason)
	}
}

func TestParseDottedPair(t *testing.T) {
	tests := []struct {
		name  string
		input string
		items int
		tail  string
	}{
		{
			name:  "single head",
			input: "a . b",
			items: 1,
			tail:  "b",
		},
		{
			name:  "multiple heads",
			input: "a b c . d",
			items: 3,
			tail:  "d",
		},
		{
			name:  "empty head sequence",
			input: ". x",
			items: 0,
			tail:  "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseDottedPair(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.Kind != KindDottedPair {
				t.Fatalf("expected dotted pair, got %s", expr.Kind)
			}

			if len(expr.Items) != tt.items {
				t.Errorf("expected %d items, got %d",
					tt.items, len(expr.Items))
			}

			if expr.Tail == nil || expr.Tail.String() != tt.tail {
				t.Errorf("expected tail %q, got %v", tt.tail, expr.Tail)
			}
		})
	}
}

func TestParseDottedPair_NoDot(t *testing.T) {
	_, err := ParseDottedPair(context.Background(), "a b c")
	if err == nil {
		t.Fatal("expected parse error")
	}

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %T", err)
	}
}

func TestParseQuoted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "quoted atom",
			input: "'foo",
			want:  "(quote foo)",
		},
		{
			name:  "quoted integer",
			input: "'42",
			want:  "(quote 42)",
		},
		{
			name:  "quoted boolean",
			input: "'#t",
			want:  "(quote #t)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseQuoted(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if expr.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, expr.String())
			}
		})
	}
}

func TestParseQuoted_NoMarker(t *testing.T) {
	_, err := ParseQuoted(context.Background(), "foo")
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseQuoted_DanglingMarker(t *testing.T) {
	_, err := ParseQuoted(context.Background(), "'")
	if err == nil {
		t.Fatal("expected parse error")
	}

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %T", err)
	}
}

func TestParseString_MultilinePosition(t *testing.T) {
	// ParseList tracks line and column across newline separators, so a
	// failure on a later line reports that line.
	_, err := ParseList(context.Background(), "a\nb\n\"oops")
	if err == nil {
		t.Fatal("expected parse error")
	}

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %T", err)
	}

	if se.Line != 3 {
		t.Errorf("expected failure on line 3, got %d", se.Line)
	}
}

func BenchmarkParseString(b *testing.B) {
	input := `#x7fffffffffffffff`

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _, err := ParsePrefix(context.Background(), input,
			WithLogger(log.Logger{}))
		if err != nil {
			b.Fatal(err)
		}
	}
}
