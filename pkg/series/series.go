// Package series implements bounded, append-only storage addressed by
// absolute index. Once the maximum length is reached every Add evicts the
// oldest value and advances the start index, so an absolute index always
// refers to the same value for as long as that value is retained.
//
// A Series is not safe for concurrent use.
package series

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/ringbuf"
)

// ErrInvalidMaximumLength is returned when a series is created with a
// non-positive maximum length.
var ErrInvalidMaximumLength = errors.New("maximum length must be greater than zero")

// IndexOutOfBoundsError is raised when an index after the end of the series
// is read. Reaching it means the caller has a bug.
type IndexOutOfBoundsError struct {
	Index      int64
	StartIndex int64
	EndIndex   int64
	Length     int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: length=%d, startIndex=%d, endIndex=%d, index=%d",
		e.Length, e.StartIndex, e.EndIndex, e.Index)
}

// Source is the type independent view of a series that indicators bind to.
type Source interface {
	Name() string
	MaximumLength() int
	StartIndex() int64
	EndIndex() int64
	Length() int
	AddCallCount() int64
	LastMutation(index int64) int64
	NumFactory() num.Factory
	Epsilon() num.Num
}

type Option func(o *options)

type options struct {
	name       string
	numFactory num.Factory
	epsilon    num.Num
}

func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithNum sets the numeric factory and comparison epsilon that formulas over
// this series use. epsilon may be nil.
func WithNum(factory num.Factory, epsilon num.Num) Option {
	return func(o *options) {
		o.numFactory = factory
		o.epsilon = epsilon
	}
}

// Series stores values of an immutable type T.
type Series[T any] struct {
	name          string
	maximumLength int
	values        *ringbuf.Ring[T]

	// add call count of the latest mutation of each retained value
	mutations *ringbuf.Ring[int64]

	startIndex   int64
	endIndex     int64
	addCallCount int64
	modified     bool

	numFactory num.Factory
	epsilon    num.Num
}

var _ Source = (*Series[int])(nil)

// New creates a series holding at most maximumLength values. When more
// initial values than that are given, the oldest are dropped.
func New[T any](maximumLength int, initialValues []T, opts ...Option) (*Series[T], error) {
	if maximumLength <= 0 {
		return nil, errors.Wrapf(ErrInvalidMaximumLength, "maximumLength=%d", maximumLength)
	}

	o := options{
		numFactory: num.DecimalFactory(num.DefaultPrecision),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Series[T]{
		name:          o.name,
		maximumLength: maximumLength,
		values:        ringbuf.New[T](maximumLength),
		mutations:     ringbuf.New[int64](maximumLength),
		startIndex:    -1,
		endIndex:      -1,
		numFactory:    o.numFactory,
		epsilon:       o.epsilon,
	}

	if excess := len(initialValues) - maximumLength; excess > 0 {
		initialValues = initialValues[excess:]
	}

	for _, v := range initialValues {
		s.values.Push(v)
		s.mutations.Push(0)
	}

	if len(initialValues) > 0 {
		s.startIndex = 0
		s.endIndex = int64(len(initialValues) - 1)
	}

	return s, nil
}

// MustNew is New that panics on an invalid maximum length.
func MustNew[T any](maximumLength int, initialValues []T, opts ...Option) *Series[T] {
	s, err := New(maximumLength, initialValues, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Add appends v, evicting the oldest value when the series is full.
func (s *Series[T]) Add(v T) {
	s.addCallCount++
	s.modified = true

	if s.startIndex == -1 {
		s.startIndex = 0
	}
	s.endIndex++

	if s.values.Push(v) {
		s.startIndex++
	}
	s.mutations.Push(s.addCallCount)
}

// ReplaceLast overwrites the newest value in place, e.g. a bar that is still
// forming. Indices and length are unchanged. On an empty series it adds v.
func (s *Series[T]) ReplaceLast(v T) {
	if s.IsEmpty() {
		s.Add(v)
		return
	}

	s.addCallCount++
	s.modified = true
	s.values.SetLast(v)
	s.mutations.SetLast(s.addCallCount)
}

// Get returns the value at the absolute index. Indices below the start index
// are clamped to it. An index after the end index panics with
// *IndexOutOfBoundsError.
func (s *Series[T]) Get(index int64) T {
	v, err := s.Lookup(index)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup is Get returning the out of bounds error instead of panicking.
func (s *Series[T]) Lookup(index int64) (T, error) {
	var zero T
	if index > s.endIndex || s.IsEmpty() {
		return zero, &IndexOutOfBoundsError{
			Index:      index,
			StartIndex: s.startIndex,
			EndIndex:   s.endIndex,
			Length:     s.Length(),
		}
	}

	offset := index - s.startIndex
	if offset < 0 {
		offset = 0
	}

	return s.values.At(int(offset)), nil
}

func (s *Series[T]) First() T {
	return s.Get(s.startIndex)
}

func (s *Series[T]) Last() T {
	return s.Get(s.endIndex)
}

func (s *Series[T]) Length() int {
	if s.endIndex < 0 {
		return 0
	}
	return int(s.endIndex - s.startIndex + 1)
}

func (s *Series[T]) IsEmpty() bool {
	return s.Length() == 0
}

// Values copies the retained values, oldest first.
func (s *Series[T]) Values() []T {
	return s.values.Slice()
}

// LastMutation returns the add call count of the Add or ReplaceLast that last
// wrote the value at index, or -1 when index is not retained. Initial values
// report 0.
func (s *Series[T]) LastMutation(index int64) int64 {
	if s.IsEmpty() || index < s.startIndex || index > s.endIndex {
		return -1
	}
	return s.mutations.At(int(index - s.startIndex))
}

func (s *Series[T]) Name() string            { return s.name }
func (s *Series[T]) MaximumLength() int      { return s.maximumLength }
func (s *Series[T]) StartIndex() int64       { return s.startIndex }
func (s *Series[T]) EndIndex() int64         { return s.endIndex }
func (s *Series[T]) AddCallCount() int64     { return s.addCallCount }
func (s *Series[T]) NumFactory() num.Factory { return s.numFactory }
func (s *Series[T]) Epsilon() num.Num        { return s.epsilon }

// Modified reports whether the series was mutated since creation or since the
// last ResetModified.
func (s *Series[T]) Modified() bool {
	return s.modified
}

func (s *Series[T]) ResetModified() {
	s.modified = false
}

func (s *Series[T]) String() string {
	return fmt.Sprintf("Series{name: %q, length: %d/%d, startIndex: %d, endIndex: %d}",
		s.name, s.Length(), s.maximumLength, s.startIndex, s.endIndex)
}
