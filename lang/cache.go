package lang

import (
	"sync"

	"github.com/zeebo/xxh3"
)

// globalCache memoizes successful default-option parses, keyed by an
// xxh3 hash of the input text. Expressions are immutable once built, so a
// cached tree can be handed to every caller without copying.
//
// Parses made with options bypass the cache: an attached logger must
// observe every dispatch, not just the first.
//
// Entries are never evicted. The cache lives for the process and grows
// with the number of distinct inputs parsed, which for the CLI and REPL
// is bounded by what the user types.
var globalCache sync.Map // uint64 → cacheEntry

// cacheEntry records a parsed expression and how many input bytes it
// consumed.
type cacheEntry struct {
	expr     *Expression
	consumed int
	input    string
}

// cachedParse returns the memoized result for input, if any.
func cachedParse(input string) (*Expression, int, bool) {
	value, ok := globalCache.Load(xxh3.HashString(input))
	if !ok {
		return nil, 0, false
	}

	entry := value.(cacheEntry)

	// Guard against hash collisions before trusting the entry.
	if entry.input != input {
		return nil, 0, false
	}

	return entry.expr, entry.consumed, true
}

// storeParse memoizes a successful parse of input.
func storeParse(input string, expr *Expression, consumed int) {
	globalCache.Store(xxh3.HashString(input), cacheEntry{
		expr:     expr,
		consumed: consumed,
		input:    input,
	})
}
