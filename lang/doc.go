// Package lang implements the schemer expression language: a tagged value
// tree ([Expression]) and a backtracking recursive-descent parser that
// recognizes Scheme-style literal and composite forms.
//
// The parser is a pure function over an immutable input string. Each
// recognizer either matches a prefix of the remaining input, fails without
// consuming anything (so the dispatcher may try the next alternative from
// the same position), or raises a hard [SyntaxError] after committing to a
// form (for example, a string literal missing its closing quote).
//
// [ParseString] applies the top-level dispatcher at position zero and
// accepts any input that begins with a valid expression; trailing input is
// not rejected. [ParsePrefix] additionally reports how many bytes were
// consumed. The composite recognizers [ParseList], [ParseDottedPair], and
// [ParseQuoted] are exported standalone entry points; they are not wired
// into the top-level dispatcher.
package lang
