package lang

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/klauspost/readahead"

	"github.com/Mwandia/schemer/log"
)

// Option configures a parse operation.
type Option func(*parser)

// WithLogger sets the structured logger used for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}

// ParseString parses one expression from the start of the input string.
//
// Matching is non-strict: trailing input after a valid expression is not
// rejected. Use [ParsePrefix] to learn how much input was consumed.
// Results of default-option parses are memoized; see cache.go.
func ParseString(
	ctx context.Context,
	input string,
	opts ...Option,
) (*Expression, error) {
	expr, _, err := ParsePrefix(ctx, input, opts...)

	return expr, err
}

// ParsePrefix parses one expression from the start of the input string and
// returns the number of bytes consumed.
func ParsePrefix(
	ctx context.Context,
	input string,
	opts ...Option,
) (*Expression, int, error) {
	if len(opts) == 0 {
		if expr, n, ok := cachedParse(input); ok {
			return expr, n, nil
		}
	}

	p := newParser(input, opts...)

	p.logger.TraceContext(ctx, "parse start",
		slog.Int("source_length", len(input)))

	expr, err := p.parseExpr()
	if err != nil {
		p.logger.TraceContext(ctx, "parse failed",
			slog.Any("error", WrapError(err)))

		return nil, 0, err
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.String("kind", expr.Kind.String()),
		slog.Int("consumed", p.pos),
		slog.Int("trailing", len(input)-p.pos))

	if len(opts) == 0 {
		storeParse(input, expr, p.pos)
	}

	return expr, p.pos, nil
}

// ParseReader parses one expression from an io.Reader.
// The reader is drained through an asynchronous read-ahead buffer before
// parsing begins.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Expression, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseList parses zero or more expressions separated by whitespace.
// It consumes no surrounding delimiters; callers are responsible for any
// enclosing parentheses. It is not reachable from the top-level dispatcher.
func ParseList(
	ctx context.Context,
	input string,
	opts ...Option,
) (*Expression, error) {
	p := newParser(input, opts...)

	expr, err := p.parseList()
	if err != nil {
		return nil, err
	}

	p.logger.TraceContext(ctx, "list parsed",
		slog.Int("items", len(expr.Items)))

	return expr, nil
}

// ParseDottedPair parses zero or more whitespace-terminated expressions,
// a literal dot, whitespace, and one trailing expression. An empty leading
// sequence is accepted by the grammar. It is not reachable from the
// top-level dispatcher.
func ParseDottedPair(
	ctx context.Context,
	input string,
	opts ...Option,
) (*Expression, error) {
	p := newParser(input, opts...)

	expr, err := p.parseDottedPair()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.syntaxError("dotted pair")
		}

		return nil, err
	}

	p.logger.TraceContext(ctx, "dotted pair parsed",
		slog.Int("items", len(expr.Items)))

	return expr, nil
}

// ParseQuoted parses a quote marker followed by one expression, expanding
// the sugar to (quote <expr>) eagerly. It is not reachable from the
// top-level dispatcher.
func ParseQuoted(
	ctx context.Context,
	input string,
	opts ...Option,
) (*Expression, error) {
	p := newParser(input, opts...)

	expr, err := p.parseQuoted()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.syntaxError("quoted expression")
		}

		return nil, err
	}

	p.logger.TraceContext(ctx, "quoted form parsed")

	return expr, nil
}

// parser holds the cursor state for one parse over an immutable input.
type parser struct {
	input  string
	pos    int
	line   int
	col    int
	logger log.Logger
}

func newParser(input string, opts ...Option) *parser {
	p := &parser{
		input: input,
		pos:   0,
		line:  1,
		col:   1,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// mark captures the cursor so a recognizer can restore it on no-match.
type mark struct {
	pos, line, col int
}

func (p *parser) mark() mark {
	return mark{pos: p.pos, line: p.line, col: p.col}
}

func (p *parser) reset(m mark) {
	p.pos, p.line, p.col = m.pos, m.line, m.col
}

// alternative pairs a recognizer with the description reported when no
// alternative matches.
type alternative struct {
	name string
	scan func() (*Expression, error)
}

// parseExpr is the top-level dispatcher. It tries each literal recognizer
// in fixed priority order, resetting the cursor between attempts. The
// order matters: several recognizers share input prefixes (a bare digit
// sequence could begin an integer, float, ratio, or complex number).
func (p *parser) parseExpr() (*Expression, error) {
	m := p.mark()

	for _, alt := range []alternative{
		{"atom", p.parseAtom},
		{"string", p.parseText},
		{"character", p.parseCharacter},
		{"complex number", p.parseComplex},
		{"float", p.parseFloat},
		{"ratio", p.parseRatio},
		{"integer", p.parseInteger},
		{"boolean", p.parseBoolean},
	} {
		expr, err := alt.scan()
		if err == nil {
			p.logger.Trace("matched",
				slog.String("alternative", alt.name),
				slog.Int("offset", m.pos))

			return expr, nil
		}

		if !errors.Is(err, errNoMatch) {
			return nil, err
		}

		p.reset(m)
	}

	return nil, p.syntaxError(
		"atom", "string", "character", "complex number",
		"float", "ratio", "integer", "boolean",
	)
}

// committed reports whether an error represents a failure after input was
// consumed past the given mark. Committed failures must propagate; they
// cannot end an alternation the way a no-match does.
func committed(err error, m mark) bool {
	var se *SyntaxError

	return errors.As(err, &se) && se.Offset > m.pos
}

// syntaxError builds a SyntaxError at the current cursor position carrying
// the expected-alternative descriptions.
func (p *parser) syntaxError(expected ...string) *SyntaxError {
	return &SyntaxError{
		Offset:   p.pos,
		Line:     p.line,
		Column:   p.col,
		Expected: expected,
		Source:   p.input,
	}
}

// atomSymbols are the non-letter characters that may begin an atom.
// The hash sign is deliberately absent: it introduces booleans, radix
// integers, and character literals, which sit after the atom recognizer in
// dispatch order. It remains valid inside an atom.
const atomSymbols = "!$%&*|+-/:<=>?@^_~"

func isAtomStart(r rune) bool {
	return unicode.IsLetter(r) || strings.ContainsRune(atomSymbols, r)
}

func isAtomPart(r rune) bool {
	return isAtomStart(r) || unicode.IsDigit(r) || r == '#'
}

// parseAtom recognizes a bare identifier/symbol token.
func (p *parser) parseAtom() (*Expression, error) {
	m := p.mark()

	if p.eof() || !isAtomStart(p.peek()) {
		return nil, errNoMatch
	}

	p.advance()

	for !p.eof() && isAtomPart(p.peek()) {
		p.advance()
	}

	return NewAtom(p.input[m.pos:p.pos]), nil
}

// parseText recognizes a double-quoted string literal with escape
// decoding. Once the opening quote is consumed the recognizer is
// committed: a missing closing quote is a hard SyntaxError, not a
// backtrack, so the failure reports end-of-input instead of an unhelpful
// "no alternative matched" at the opening quote.
func (p *parser) parseText() (*Expression, error) {
	if p.eof() || p.peek() != '"' {
		return nil, errNoMatch
	}

	p.advance()

	var sb strings.Builder

	for {
		if p.eof() {
			se := p.syntaxError(`"`)
			se.Reason = "unterminated string literal"

			return nil, se
		}

		r := p.peek()

		switch r {
		case '"':
			p.advance()

			return NewText(sb.String()), nil

		case '\\':
			p.advance()

			if p.eof() {
				se := p.syntaxError(`"`)
				se.Reason = "unterminated string literal"

				return nil, se
			}

			c := p.peek()
			p.advance()

			switch c {
			case 'n':
				sb.WriteRune('\n')
			case 'r':
				sb.WriteRune('\r')
			case 't':
				sb.WriteRune('\t')
			default:
				sb.WriteRune(c)
			}

		default:
			sb.WriteRune(r)
			p.advance()
		}
	}
}

// parseCharacter recognizes #\<letters>: the named characters "space" and
// "newline", or a single letter used as-is. Any other multi-letter run is
// a no-match.
func (p *parser) parseCharacter() (*Expression, error) {
	m := p.mark()

	if !p.consume('#') || !p.consume('\\') {
		p.reset(m)

		return nil, errNoMatch
	}

	start := p.pos

	for !p.eof() && unicode.IsLetter(p.peek()) {
		p.advance()
	}

	run := p.input[start:p.pos]

	switch {
	case run == "space":
		return NewCharacter(' '), nil

	case run == "newline":
		return NewCharacter('\n'), nil

	case utf8.RuneCountInString(run) == 1:
		r, _ := utf8.DecodeRuneInString(run)

		return NewCharacter(r), nil

	default:
		p.reset(m)

		return nil, errNoMatch
	}
}

// parseBoolean recognizes #t and #f.
func (p *parser) parseBoolean() (*Expression, error) {
	m := p.mark()

	if !p.consume('#') {
		return nil, errNoMatch
	}

	switch {
	case p.consume('t'):
		return NewBoolean(true), nil

	case p.consume('f'):
		return NewBoolean(false), nil

	default:
		p.reset(m)

		return nil, errNoMatch
	}
}

// parseInteger recognizes a plain decimal integer or a radix-tagged form
// (#b, #o, #d, #x). Every radix requires at least one digit: an empty
// digit string is a no-match, never a silent zero. Octal decodes as true
// base 8.
func (p *parser) parseInteger() (*Expression, error) {
	m := p.mark()

	if p.consume('#') {
		var base int

		var digit func(rune) bool

		switch {
		case p.consume('d'):
			base, digit = 10, isDecimalDigit
		case p.consume('b'):
			base, digit = 2, isBinaryDigit
		case p.consume('o'):
			base, digit = 8, isOctalDigit
		case p.consume('x'):
			base, digit = 16, isHexDigit
		default:
			p.reset(m)

			return nil, errNoMatch
		}

		digits := p.scanDigits(digit)
		if digits == "" {
			p.reset(m)

			return nil, errNoMatch
		}

		v, ok := new(big.Int).SetString(digits, base)
		if !ok {
			p.reset(m)

			return nil, errNoMatch
		}

		return NewInteger(v), nil
	}

	digits := p.scanDigits(isDecimalDigit)
	if digits == "" {
		return nil, errNoMatch
	}

	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		p.reset(m)

		return nil, errNoMatch
	}

	return NewInteger(v), nil
}

// parseFloat recognizes digits '.' digits, decoded by standard decimal
// parsing of the concatenated text. No exponent or sign support.
func (p *parser) parseFloat() (*Expression, error) {
	v, ok := p.scanFloat()
	if !ok {
		return nil, errNoMatch
	}

	return NewFloat(v), nil
}

// parseRatio recognizes digits '/' digits, stored as written without GCD
// reduction. A zero denominator is a no-match so the invariant den ≠ 0
// holds by construction.
func (p *parser) parseRatio() (*Expression, error) {
	m := p.mark()

	numText := p.scanDigits(isDecimalDigit)
	if numText == "" || !p.consume('/') {
		p.reset(m)

		return nil, errNoMatch
	}

	denText := p.scanDigits(isDecimalDigit)
	if denText == "" {
		p.reset(m)

		return nil, errNoMatch
	}

	num, _ := new(big.Int).SetString(numText, 10)
	den, _ := new(big.Int).SetString(denText, 10)

	if den == nil || den.Sign() == 0 {
		p.reset(m)

		return nil, errNoMatch
	}

	return NewRatio(num, den), nil
}

// parseComplex recognizes <real>+<imag>i where each part is a float or a
// decimal integer, float tried first, both coerced to float64. Only the
// plus-joined form is recognized.
func (p *parser) parseComplex() (*Expression, error) {
	m := p.mark()

	re, ok := p.scanRealPart()
	if !ok || !p.consume('+') {
		p.reset(m)

		return nil, errNoMatch
	}

	im, ok := p.scanRealPart()
	if !ok || !p.consume('i') {
		p.reset(m)

		return nil, errNoMatch
	}

	return NewComplex(re, im), nil
}

// parseList recognizes zero or more expressions separated by one-or-more
// whitespace characters. It consumes no delimiters itself.
func (p *parser) parseList() (*Expression, error) {
	items := make([]*Expression, 0)

	for {
		m := p.mark()

		expr, err := p.parseExpr()
		if err != nil {
			if committed(err, m) {
				return nil, err
			}

			p.reset(m)

			break
		}

		items = append(items, expr)

		sep := p.mark()
		if !p.skipSpaces1() {
			p.reset(sep)

			break
		}
	}

	return NewList(items...), nil
}

// parseDottedPair recognizes (expr whitespace)* '.' whitespace expr. The
// leading sequence uses endBy semantics: every element must be followed by
// whitespace, and the sequence may be empty.
func (p *parser) parseDottedPair() (*Expression, error) {
	start := p.mark()
	items := make([]*Expression, 0)

	for {
		m := p.mark()

		expr, err := p.parseExpr()
		if err != nil {
			if committed(err, m) {
				return nil, err
			}

			p.reset(m)

			break
		}

		if !p.skipSpaces1() {
			p.reset(m)

			break
		}

		items = append(items, expr)
	}

	if !p.consume('.') || !p.skipSpaces1() {
		p.reset(start)

		return nil, errNoMatch
	}

	tail, err := p.parseExpr()
	if err != nil {
		if committed(err, start) {
			return nil, err
		}

		p.reset(start)

		return nil, errNoMatch
	}

	return NewDottedPair(items, tail), nil
}

// parseQuoted recognizes the quote marker followed by one expression and
// expands it to (quote <expr>) at parse time.
func (p *parser) parseQuoted() (*Expression, error) {
	start := p.mark()

	if !p.consume('\'') {
		return nil, errNoMatch
	}

	expr, err := p.parseExpr()
	if err != nil {
		if committed(err, start) {
			return nil, err
		}

		p.reset(start)

		return nil, errNoMatch
	}

	return NewList(NewAtom("quote"), expr), nil
}

// Scanning helpers

// scanFloat reads digits '.' digits and returns the decoded double.
func (p *parser) scanFloat() (float64, bool) {
	m := p.mark()

	whole := p.scanDigits(isDecimalDigit)
	if whole == "" || !p.consume('.') {
		p.reset(m)

		return 0, false
	}

	frac := p.scanDigits(isDecimalDigit)
	if frac == "" {
		p.reset(m)

		return 0, false
	}

	v, err := strconv.ParseFloat(whole+"."+frac, 64)
	if err != nil {
		p.reset(m)

		return 0, false
	}

	return v, true
}

// scanRealPart reads a float (tried first) or a decimal integer and
// coerces it to float64.
func (p *parser) scanRealPart() (float64, bool) {
	if v, ok := p.scanFloat(); ok {
		return v, true
	}

	digits := p.scanDigits(isDecimalDigit)
	if digits == "" {
		return 0, false
	}

	// ParseFloat returns the nearest double even on range overflow.
	v, _ := strconv.ParseFloat(digits, 64)

	return v, true
}

// scanDigits consumes the longest run of digits accepted by the given
// classifier and returns its text.
func (p *parser) scanDigits(digit func(rune) bool) string {
	start := p.pos

	for !p.eof() && digit(p.peek()) {
		p.advance()
	}

	return p.input[start:p.pos]
}

func isDecimalDigit(r rune) bool { return r >= '0' && r <= '9' }

func isBinaryDigit(r rune) bool { return r == '0' || r == '1' }

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

func isHexDigit(r rune) bool {
	return isDecimalDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Cursor helpers

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])

	return r
}

func (p *parser) advance() {
	if p.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(p.input[p.pos:])

	p.pos += size
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
}

// consume advances past the given rune if it is next, reporting whether it
// did.
func (p *parser) consume(r rune) bool {
	if !p.eof() && p.peek() == r {
		p.advance()

		return true
	}

	return false
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

// skipSpaces1 consumes one or more whitespace characters, reporting
// whether any were present.
func (p *parser) skipSpaces1() bool {
	n := 0

	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
		n++
	}

	return n > 0
}
