package indicator

// CacheMode selects how much an indicator memoizes.
type CacheMode int

const (
	// CacheNone computes on every call, not even the last served value is kept.
	CacheNone CacheMode = iota

	// CacheSingleSlot keeps only the last served (index, value) pair, valid
	// while the series is not mutated.
	CacheSingleSlot

	// CacheFullMemo keeps the single slot plus a memo table mirroring the
	// series window.
	CacheFullMemo

	// CacheRecursive is CacheFullMemo with a sequential warm-up before every
	// lookup, so calculate(index) may read Value(index-1) of itself without
	// recursing through the whole history.
	CacheRecursive
)

func (m CacheMode) String() string {
	switch m {
	case CacheNone:
		return "none"
	case CacheSingleSlot:
		return "single-slot"
	case CacheFullMemo:
		return "full-memo"
	case CacheRecursive:
		return "recursive"
	}
	return "unknown"
}

type Option func(c *config)

type config struct {
	name   string
	mode   CacheMode
	locked bool
}

func defaultConfig() config {
	return config{mode: CacheSingleSlot}
}

// WithName labels the indicator in logs and metrics.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Cacheless permanently disables the memo table. For pass-through accessors
// that are cheaper to recompute than to store.
func Cacheless() Option {
	return func(c *config) {
		c.mode = CacheSingleSlot
		c.locked = true
	}
}

// Uncached disables every cache, including the single slot.
func Uncached() Option {
	return func(c *config) {
		c.mode = CacheNone
		c.locked = true
	}
}

// Caching enables the memo table from construction. For values that can not
// be recomputed consistently, e.g. wall clock reads.
func Caching() Option {
	return func(c *config) {
		c.mode = CacheFullMemo
		c.locked = false
	}
}

// Recursive forces the memo table and the sequential warm-up on.
func Recursive() Option {
	return func(c *config) {
		c.mode = CacheRecursive
		c.locked = true
	}
}
