package lang

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestSyntaxError_Rendering(t *testing.T) {
	se := &SyntaxError{
		Offset:   4,
		Line:     1,
		Column:   5,
		Expected: []string{"integer", "atom"},
		Source:   "abc (def",
	}

	msg := se.Error()

	if !strings.Contains(msg, "parse error at line 1, column 5") {
		t.Errorf("missing position in %q", msg)
	}

	// Snippet shows the line with a caret under column 5.
	if !strings.Contains(msg, "  1 | abc (def") {
		t.Errorf("missing source snippet in %q", msg)
	}

	caretLine := "      " + "    ^"
	if !strings.Contains(msg, caretLine) {
		t.Errorf("missing caret marker in %q", msg)
	}

	// Expected alternatives are sorted and quoted.
	idx := strings.Index(msg, `"atom"`)
	jdx := strings.Index(msg, `"integer"`)

	if idx < 0 || jdx < 0 || idx > jdx {
		t.Errorf("expected sorted quoted alternatives in %q", msg)
	}
}

func TestSyntaxError_EndOfInput(t *testing.T) {
	_, err := ParseString(context.Background(), `"abc`)
	if err == nil {
		t.Fatal("expected parse error")
	}

	if !strings.Contains(err.Error(), "(end of input)") {
		t.Errorf("missing end-of-input marker in %q", err.Error())
	}
}

func TestError_Wrapping(t *testing.T) {
	cause := errors.New("boom")
	err := ErrReadInput.Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}

	if got := err.Error(); got != "failed to read input: boom" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestError_LogValue(t *testing.T) {
	err := NewError("nope").
		Wrap(errors.New("cause")).
		With(slog.String("key", "val"))

	group := err.LogValue().Group()
	if len(group) != 3 {
		t.Fatalf("expected 3 attrs, got %d", len(group))
	}
}

func TestWrapError_Passthrough(t *testing.T) {
	orig := NewError("original")

	if got := WrapError(orig); got != orig {
		t.Error("WrapError should return an existing *Error unchanged")
	}
}
