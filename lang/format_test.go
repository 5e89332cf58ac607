package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestString_Canonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "atom",
			input: "foo-bar",
			want:  "foo-bar",
		},
		{
			name:  "string escapes restored",
			input: `"a\n\"b\""`,
			want:  `"a\n\"b\""`,
		},
		{
			name:  "true",
			input: "#t",
			want:  "#t",
		},
		{
			name:  "named character",
			input: `#\space`,
			want:  `#\space`,
		},
		{
			name:  "letter character",
			input: `#\x`,
			want:  `#\x`,
		},
		{
			name:  "radix integer renders decimal",
			input: "#xff",
			want:  "255",
		},
		{
			name:  "float keeps fraction point",
			input: "2.0",
			want:  "2.0",
		},
		{
			name:  "ratio as written",
			input: "6/8",
			want:  "6/8",
		},
		{
			name:  "complex",
			input: "3+4i",
			want:  "3.0+4.0i",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if got := expr.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	// Rendering a parsed leaf and parsing the rendering yields an equal
	// value.
	inputs := []string{
		"abc", `"a\tb"`, "#t", "#f", `#\newline`, "42", "3.25", "7/2",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := ParseString(context.Background(), input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			second, err := ParseString(context.Background(), first.String())
			if err != nil {
				t.Fatalf("reparse error: %v", err)
			}

			if !first.Equal(second) {
				t.Errorf("round trip changed value: %s -> %s",
					first, second)
			}
		})
	}
}

func TestString_Composites(t *testing.T) {
	list := NewList(NewAtom("a"), NewIntegerFromInt64(2), NewBoolean(true))
	if got := list.String(); got != "(a 2 #t)" {
		t.Errorf("expected (a 2 #t), got %q", got)
	}

	pair := NewDottedPair(
		[]*Expression{NewAtom("a"), NewAtom("b")},
		NewAtom("c"),
	)
	if got := pair.String(); got != "(a b . c)" {
		t.Errorf("expected (a b . c), got %q", got)
	}

	empty := NewList()
	if got := empty.String(); got != "()" {
		t.Errorf("expected (), got %q", got)
	}
}

func TestFormat_Flat(t *testing.T) {
	list := NewList(NewAtom("a"), NewAtom("b"))

	var buf bytes.Buffer
	if err := list.Format(&buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	if got := buf.String(); got != "(a b)\n" {
		t.Errorf("expected flat rendering, got %q", got)
	}
}

func TestFormat_Nested(t *testing.T) {
	inner := NewList(NewAtom("b"), NewAtom("c"))
	outer := NewList(NewAtom("a"), inner)

	var buf bytes.Buffer
	if err := outer.Format(&buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	want := "(\n  a\n  (b c)\n)\n"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatJSON(t *testing.T) {
	expr, err := ParseString(context.Background(), "3/4")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var buf bytes.Buffer
	if err := expr.FormatJSON(&buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	var decoded map[string]map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	ratio := decoded["ratio"]
	if ratio["numerator"] != "3" || ratio["denominator"] != "4" {
		t.Errorf("unexpected ratio encoding: %v", decoded)
	}
}

func TestFormatYAML(t *testing.T) {
	expr := NewList(NewAtom("a"), NewIntegerFromInt64(7))

	var buf bytes.Buffer
	if err := expr.FormatYAML(&buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "atom: a") {
		t.Errorf("expected atom entry in YAML, got %q", out)
	}

	if !strings.Contains(out, `integer: "7"`) {
		t.Errorf("expected integer entry in YAML, got %q", out)
	}
}

func TestNative_Tags(t *testing.T) {
	tests := []struct {
		name string
		expr *Expression
		key  string
	}{
		{"atom", NewAtom("x"), "atom"},
		{"integer", NewIntegerFromInt64(1), "integer"},
		{"string", NewText("s"), "string"},
		{"boolean", NewBoolean(true), "boolean"},
		{"character", NewCharacter('q'), "character"},
		{"float", NewFloat(1.5), "float"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			native, ok := tt.expr.Native().(map[string]any)
			if !ok {
				t.Fatalf("expected tagged map, got %T", tt.expr.Native())
			}

			if _, ok := native[tt.key]; !ok {
				t.Errorf("expected key %q in %v", tt.key, native)
			}
		})
	}
}

func TestPrint_Tree(t *testing.T) {
	pair := NewDottedPair(
		[]*Expression{NewAtom("a")},
		NewIntegerFromInt64(5),
	)

	var buf bytes.Buffer
	if err := pair.Print(&buf); err != nil {
		t.Fatalf("print error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"DottedPair", "Tail:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in dump, got %q", want, out)
		}
	}
}
