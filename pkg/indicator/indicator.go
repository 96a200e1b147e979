// Package indicator implements lazily evaluated, memoized functions over the
// absolute index space of a series.
//
// An Indicator wraps a calculate function. Value(index) resolves an index in
// this order:
//
//  1. index after the series end, or any index of an empty series:
//     calculate(index), never cached
//  2. index before the series start: calculate(0), never cached
//  3. index equal to the last served index and the series unchanged since:
//     the single slot value
//  4. otherwise calculate, or the memo table when the cache mode has one
//
// The memo table never trusts the value of the series end index once the
// series was mutated after that value was stored, so a bar that is still
// forming is recomputed on every revision.
//
// Indicators form a DAG. Cycles are not detected and recurse until the stack
// is exhausted. Neither Indicator nor its series is safe for concurrent use.
package indicator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/c9s/indicators/pkg/series"
)

var log = logrus.WithField("component", "indicator")

// CalculateFunc computes the value at an absolute index. It must be
// deterministic given the upstream state at index and earlier and must not
// assume increasing call order, unless the indicator is Recursive.
type CalculateFunc[T any] func(index int64) T

// Interface is what downstream formulas depend on.
type Interface[T any] interface {
	Value(index int64) T
	Source() series.Source
	MinimumStableIndex() int

	// EnableCaching turns the memo table on for indicators created without a
	// fixed cache mode. Consumers that read random history call it.
	EnableCaching()
}

// Stats counts how Value calls were resolved.
type Stats struct {
	Calculations   int64
	SingleSlotHits int64
	MemoHits       int64
	Speculative    int64
	Clamped        int64
}

type Indicator[T any] struct {
	name               string
	source             series.Source
	minimumStableIndex int
	calculate          CalculateFunc[T]

	mode   CacheMode
	locked bool
	memo   *cacheSeries[T]

	cachedIndex        int64
	cachedValue        T
	cachedAddCallCount int64

	stats Stats
}

var _ Interface[int] = (*Indicator[int])(nil)

// New binds calculate to source. minimumStableIndex is the first index whose
// value is fully warmed up, see StableIndex.
func New[T any](source series.Source, minimumStableIndex int, calculate CalculateFunc[T], opts ...Option) *Indicator[T] {
	if source == nil {
		panic("indicator: source can not be nil")
	}

	if calculate == nil {
		panic("indicator: calculate function can not be nil")
	}

	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	ind := &Indicator[T]{
		name:               c.name,
		source:             source,
		minimumStableIndex: minimumStableIndex,
		calculate:          calculate,
		mode:               c.mode,
		locked:             c.locked,
		cachedIndex:        -1,
		cachedAddCallCount: -1,
	}

	if ind.mode >= CacheFullMemo {
		ind.memo = newCacheSeries[T](source.MaximumLength())
	}

	return ind
}

// Value returns the value at the absolute index.
func (ind *Indicator[T]) Value(index int64) T {
	if ind.mode == CacheRecursive {
		ind.warmUp(index)
	}

	return ind.resolve(index)
}

// Last returns the value at the series end index.
func (ind *Indicator[T]) Last() T {
	return ind.Value(ind.source.EndIndex())
}

// warmUp resolves every index between the highest memoized index and index
// in increasing order, so that calculate(index) finds index-1 memoized.
func (ind *Indicator[T]) warmUp(index int64) {
	last := min(index-1, ind.source.EndIndex())
	first := max(ind.source.StartIndex(), ind.memo.highest+1)
	for i := first; i <= last; i++ {
		ind.resolve(i)
	}
}

func (ind *Indicator[T]) resolve(index int64) T {
	if index > ind.source.EndIndex() || ind.source.Length() == 0 {
		ind.stats.Speculative++
		if log.Logger.IsLevelEnabled(logrus.TraceLevel) {
			log.Tracef("%s: index %d is not stored yet, end index %d, calculating without cache", ind, index, ind.source.EndIndex())
		}
		return ind.compute(index)
	}

	if index < ind.source.StartIndex() {
		ind.stats.Clamped++
		if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
			log.Debugf("%s: index %d is before start index %d, calculating index 0", ind, index, ind.source.StartIndex())
		}
		return ind.compute(0)
	}

	addCallCount := ind.source.AddCallCount()
	if ind.mode != CacheNone && index == ind.cachedIndex && addCallCount == ind.cachedAddCallCount {
		ind.stats.SingleSlotHits++
		return ind.cachedValue
	}

	var value T
	if ind.memo != nil {
		value = ind.resolveMemo(index, addCallCount)
	} else {
		value = ind.compute(index)
	}

	if ind.mode != CacheNone {
		ind.cachedIndex = index
		ind.cachedValue = value
		ind.cachedAddCallCount = addCallCount
	}

	return value
}

func (ind *Indicator[T]) resolveMemo(index, addCallCount int64) T {
	endIndex := ind.source.EndIndex()
	ind.memo.sync(ind.source)

	if index == endIndex && !ind.memo.isEndCurrent(index, addCallCount) {
		value := ind.compute(index)
		ind.memo.store(index, value, ind.source.AddCallCount())
		return value
	}

	if value, ok := ind.memo.get(index); ok {
		ind.stats.MemoHits++
		return value
	}

	value := ind.compute(index)
	ind.memo.store(index, value, ind.source.AddCallCount())
	return value
}

func (ind *Indicator[T]) compute(index int64) T {
	ind.stats.Calculations++
	return ind.calculate(index)
}

// EnableCaching turns on the memo table. It is a no-op for indicators whose
// cache mode was fixed at construction and for indicators already caching.
func (ind *Indicator[T]) EnableCaching() {
	if ind.locked || ind.mode != CacheSingleSlot {
		return
	}

	log.Debugf("%s: enabling caching", ind)
	ind.mode = CacheFullMemo
	ind.memo = newCacheSeries[T](ind.source.MaximumLength())
}

func (ind *Indicator[T]) IsCaching() bool {
	return ind.memo != nil
}

func (ind *Indicator[T]) Mode() CacheMode {
	return ind.mode
}

func (ind *Indicator[T]) Name() string {
	return ind.name
}

func (ind *Indicator[T]) Source() series.Source {
	return ind.source
}

func (ind *Indicator[T]) MinimumStableIndex() int {
	return ind.minimumStableIndex
}

// IsStable reports whether the series holds enough values for the latest
// value to be fully warmed up.
func (ind *Indicator[T]) IsStable() bool {
	return ind.source.Length() > ind.minimumStableIndex
}

// IsStableAt reports whether the value at index is fully warmed up.
func (ind *Indicator[T]) IsStableAt(index int64) bool {
	return index >= int64(ind.minimumStableIndex)
}

func (ind *Indicator[T]) Stats() Stats {
	return ind.stats
}

func (ind *Indicator[T]) ResetStats() {
	ind.stats = Stats{}
}

func (ind *Indicator[T]) String() string {
	name := ind.name
	if name == "" {
		name = "indicator"
	}
	return fmt.Sprintf("%s(%s, mode=%s)", name, ind.source.Name(), ind.mode)
}

// Constant returns an indicator that yields v at every index.
func Constant[T any](source series.Source, v T) *Indicator[T] {
	return New(source, 0, func(int64) T { return v }, Cacheless(), WithName("constant"))
}

// StableIndexer is anything with a minimum stable index.
type StableIndexer interface {
	MinimumStableIndex() int
}

// StableIndex returns the largest stable index of upstream plus the warm-up
// this indicator adds on top.
func StableIndex(warmUp int, upstream ...StableIndexer) int {
	highest := 0
	for _, u := range upstream {
		highest = max(highest, u.MinimumStableIndex())
	}
	return highest + warmUp
}
