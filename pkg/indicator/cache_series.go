package indicator

import (
	"github.com/c9s/indicators/pkg/ringbuf"
	"github.com/c9s/indicators/pkg/series"
)

type slot[T any] struct {
	value T
	ok    bool
}

// cacheSeries is the memo table of an indicator. It has the capacity of the
// root series and is padded with empty slots so that its index window always
// matches the series window.
type cacheSeries[T any] struct {
	slots *ringbuf.Ring[slot[T]]

	startIndex int64
	endIndex   int64

	// highest stored index, the recursive warm-up continues after it
	highest int64

	// the slot stored while its index was the series end, and the add call
	// count of the series at that time
	endStoredIndex int64
	endStoredCount int64
}

func newCacheSeries[T any](capacity int) *cacheSeries[T] {
	return &cacheSeries[T]{
		slots:          ringbuf.New[slot[T]](capacity),
		startIndex:     -1,
		endIndex:       -1,
		highest:        -1,
		endStoredIndex: -1,
		endStoredCount: -1,
	}
}

// sync pads the table until its end index equals the series end index.
func (c *cacheSeries[T]) sync(source series.Source) {
	endIndex := source.EndIndex()
	if c.endIndex >= endIndex {
		return
	}

	// The previous end value was stored while its bar was still forming. It
	// is final unless the bar was revised after the value was stored.
	if c.endStoredIndex >= 0 && c.endStoredIndex == c.endIndex {
		if c.endStoredCount < source.LastMutation(c.endStoredIndex) {
			c.invalidate(c.endStoredIndex)
		}
	}
	c.endStoredIndex = -1
	c.endStoredCount = -1

	capacity := int64(c.slots.Cap())
	if endIndex-c.endIndex >= capacity {
		c.slots.Reset()
		c.startIndex = max(0, endIndex-capacity+1)
		c.endIndex = c.startIndex - 1
		c.highest = -1
	}

	for c.endIndex < endIndex {
		if c.startIndex == -1 {
			c.startIndex = 0
		}
		c.endIndex++
		if c.slots.Push(slot[T]{}) {
			c.startIndex++
		}
	}
}

func (c *cacheSeries[T]) get(index int64) (T, bool) {
	s := c.slots.At(int(index - c.startIndex))
	return s.value, s.ok
}

func (c *cacheSeries[T]) store(index int64, value T, addCallCount int64) {
	c.slots.Set(int(index-c.startIndex), slot[T]{value: value, ok: true})

	if index > c.highest {
		c.highest = index
	}

	if index == c.endIndex {
		c.endStoredIndex = index
		c.endStoredCount = addCallCount
	}
}

// isEndCurrent reports whether the end slot was stored after the latest
// mutation of the series.
func (c *cacheSeries[T]) isEndCurrent(index, addCallCount int64) bool {
	return c.endStoredIndex == index && c.endStoredCount == addCallCount
}

func (c *cacheSeries[T]) invalidate(index int64) {
	if index < c.startIndex || index > c.endIndex {
		return
	}

	c.slots.Set(int(index-c.startIndex), slot[T]{})
	if c.highest >= index {
		c.highest = index - 1
	}
}
