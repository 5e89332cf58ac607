package lang

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// String renders the expression in its canonical literal syntax. For every
// leaf variant the rendering re-parses to an equal value (negative numeric
// components excepted, since the grammar has no sign support).
func (e *Expression) String() string {
	var sb strings.Builder

	e.render(&sb)

	return sb.String()
}

func (e *Expression) render(sb *strings.Builder) {
	switch e.Kind {
	case KindAtom:
		sb.WriteString(e.Name)

	case KindList:
		sb.WriteByte('(')

		for i, item := range e.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}

			item.render(sb)
		}

		sb.WriteByte(')')

	case KindDottedPair:
		sb.WriteByte('(')

		for _, item := range e.Items {
			item.render(sb)
			sb.WriteByte(' ')
		}

		sb.WriteString(". ")
		e.Tail.render(sb)
		sb.WriteByte(')')

	case KindInteger:
		sb.WriteString(e.Int.String())

	case KindText:
		sb.WriteString(quoteText(e.Text))

	case KindBoolean:
		if e.Bool {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}

	case KindCharacter:
		sb.WriteString(characterName(e.Char))

	case KindFloat:
		sb.WriteString(formatFloat(e.Float))

	case KindRatio:
		sb.WriteString(e.Num.String())
		sb.WriteByte('/')
		sb.WriteString(e.Den.String())

	case KindComplex:
		sb.WriteString(formatFloat(e.Real))
		sb.WriteByte('+')
		sb.WriteString(formatFloat(e.Imag))
		sb.WriteByte('i')
	}
}

// quoteText renders decoded text as a string literal using only the
// grammar's escape set.
func quoteText(s string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

// characterName renders a character literal, preferring the named forms.
func characterName(r rune) string {
	switch r {
	case ' ':
		return `#\space`
	case '\n':
		return `#\newline`
	default:
		return `#\` + string(r)
	}
}

// formatFloat renders a float so it re-parses as a float: the shortest
// decimal text, forced to contain a fraction point (the grammar has no
// exponent form and an integer rendering would reclassify).
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// Native converts the expression tree to plain Go values suitable for
// structured encoders. Every non-list variant becomes a single-key map
// tagged with its variant name; lists become slices. Integers and ratio
// components are rendered as decimal strings so arbitrary precision
// survives the encoding.
func (e *Expression) Native() any {
	switch e.Kind {
	case KindAtom:
		return map[string]any{"atom": e.Name}

	case KindList:
		items := make([]any, len(e.Items))
		for i, item := range e.Items {
			items[i] = item.Native()
		}

		return items

	case KindDottedPair:
		items := make([]any, len(e.Items))
		for i, item := range e.Items {
			items[i] = item.Native()
		}

		return map[string]any{
			"items": items,
			"tail":  e.Tail.Native(),
		}

	case KindInteger:
		return map[string]any{"integer": e.Int.String()}

	case KindText:
		return map[string]any{"string": e.Text}

	case KindBoolean:
		return map[string]any{"boolean": e.Bool}

	case KindCharacter:
		return map[string]any{"character": string(e.Char)}

	case KindFloat:
		return map[string]any{"float": e.Float}

	case KindRatio:
		return map[string]any{
			"ratio": map[string]any{
				"numerator":   e.Num.String(),
				"denominator": e.Den.String(),
			},
		}

	case KindComplex:
		return map[string]any{
			"complex": map[string]any{
				"real":      e.Real,
				"imaginary": e.Imag,
			},
		}

	default:
		return nil
	}
}

// Format writes the expression in canonical literal syntax. Leaf values and
// flat composites render on a single line. Composites that contain nested
// composites break across lines, indented by the given width.
func (e *Expression) Format(w io.Writer, indent int) error {
	err := e.formatIndent(w, indent, 0)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, "\n")

	return err
}

func (e *Expression) formatIndent(w io.Writer, width, depth int) error {
	if !e.hasNestedComposite() {
		_, err := io.WriteString(w, e.String())

		return err
	}

	pad := strings.Repeat(" ", width*(depth+1))

	_, err := io.WriteString(w, "(")
	if err != nil {
		return err
	}

	for _, item := range e.Items {
		_, err = io.WriteString(w, "\n"+pad)
		if err != nil {
			return err
		}

		err = item.formatIndent(w, width, depth+1)
		if err != nil {
			return err
		}
	}

	if e.Kind == KindDottedPair {
		_, err = io.WriteString(w, "\n"+pad+".\n"+pad)
		if err != nil {
			return err
		}

		err = e.Tail.formatIndent(w, width, depth+1)
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "\n"+strings.Repeat(" ", width*depth)+")")

	return err
}

func (e *Expression) hasNestedComposite() bool {
	if e.Kind != KindList && e.Kind != KindDottedPair {
		return false
	}

	for _, item := range e.Items {
		if item.Kind == KindList || item.Kind == KindDottedPair {
			return true
		}
	}

	if e.Kind == KindDottedPair && e.Tail != nil {
		if e.Tail.Kind == KindList || e.Tail.Kind == KindDottedPair {
			return true
		}
	}

	return false
}

// FormatJSON writes the expression as indented JSON.
func (e *Expression) FormatJSON(w io.Writer, indent int) error {
	data, err := json.MarshalIndent(e.Native(), "", strings.Repeat(" ", indent))
	if err != nil {
		return WrapError(err)
	}

	_, err = w.Write(append(data, '\n'))

	return err
}

// FormatYAML writes the expression as YAML.
func (e *Expression) FormatYAML(w io.Writer, indent int) error {
	data, err := yaml.MarshalWithOptions(e.Native(), yaml.Indent(indent))
	if err != nil {
		return WrapError(err)
	}

	_, err = w.Write(data)

	return err
}

// Print writes an indented structural dump of the expression tree.
func (e *Expression) Print(w io.Writer) error {
	return e.printIndent(w, 0)
}

func (e *Expression) printIndent(w io.Writer, indent int) error {
	prefix := strings.Repeat("  ", indent)

	switch e.Kind {
	case KindList, KindDottedPair:
		_, err := io.WriteString(w, prefix+e.Kind.String()+":\n")
		if err != nil {
			return err
		}

		for _, item := range e.Items {
			err = item.printIndent(w, indent+1)
			if err != nil {
				return err
			}
		}

		if e.Kind == KindDottedPair {
			_, err = io.WriteString(w, prefix+"Tail:\n")
			if err != nil {
				return err
			}

			return e.Tail.printIndent(w, indent+1)
		}

		return nil

	default:
		_, err := io.WriteString(
			w, prefix+e.Kind.String()+": "+e.String()+"\n")

		return err
	}
}
