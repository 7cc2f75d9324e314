package rrblist

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/npillmayer/rrblist/rrb"
)

// List is a persistent sequence of values of type T.
//
// An immutable list (the default) is never modified; operations return new
// lists instead. A mutable list, obtained by AsMutable, is modified in place
// and its operations return the receiver. The zero value is not usable;
// create lists with Empty, Of or FromSeq.
type List[T any] struct {
	state *rrb.State[T]
}

// Option configures a new list.
type Option func(*rrb.Config) error

// WithBranchBits sets the binary logarithm of the tree's branch factor.
// The default is 5, i.e. nodes with up to 32 children.
func WithBranchBits(bits uint) Option {
	return func(cfg *rrb.Config) error {
		if bits == 0 || bits > rrb.MaxBranchBits {
			return fmt.Errorf("%w: branch bits %d not in 1…%d", ErrInvalidArgument,
				bits, rrb.MaxBranchBits)
		}
		cfg.BranchBits = bits
		return nil
	}
}

func configure(opts []Option) (rrb.Config, error) {
	cfg := rrb.DefaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return rrb.DefaultConfig(), err
		}
	}
	return cfg, nil
}

func emptyState[T any](opts []Option) (*rrb.State[T], error) {
	cfg, err := configure(opts)
	if err != nil {
		return nil, err
	}
	return rrb.Empty[T](cfg)
}

// Empty returns an empty immutable list. All empty lists of an element type
// and branch factor share their state. Invalid options are reported to the
// tracer and replaced by defaults.
func Empty[T any](opts ...Option) *List[T] {
	s, err := emptyState[T](opts)
	if err != nil {
		traceError(err)
		s, _ = rrb.Empty[T](rrb.DefaultConfig())
	}
	return &List[T]{state: s}
}

// traceError is needed by generic functions, where T denotes a type.
func traceError(err error) {
	T().Errorf("rrblist: %v", err)
}

// Of creates an immutable list holding a copy of values.
func Of[T any](values []T, opts ...Option) (*List[T], error) {
	s, err := emptyState[T](opts)
	if err != nil {
		return nil, err
	}
	l := &List[T]{state: s}
	if len(values) > 0 {
		m := s.ToMutable()
		m.Append(values...)
		l = &List[T]{state: m.ToImmutable(true)}
	}
	publish(EventCreated, l.Len())
	return l, nil
}

// FromSeq creates an immutable list from the values of an iterator.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) (*List[T], error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: nil sequence", ErrInvalidArgument)
	}
	s, err := emptyState[T](opts)
	if err != nil {
		return nil, err
	}
	m := s.ToMutable()
	chunk := make([]T, 0, 256)
	for v := range seq {
		chunk = append(chunk, v)
		if len(chunk) == cap(chunk) {
			m.Append(chunk...)
			chunk = chunk[:0]
		}
	}
	m.Append(chunk...)
	l := &List[T]{state: m.ToImmutable(true)}
	publish(EventCreated, l.Len())
	return l, nil
}

// --- Read access -----------------------------------------------------------

// Len returns the number of values in l.
func (l *List[T]) Len() int {
	return l.state.Len()
}

// IsEmpty is true for a list without values.
func (l *List[T]) IsEmpty() bool {
	return l.state.Len() == 0
}

// Get returns the value at index i. If i is out of range, Get returns the
// zero value and false.
func (l *List[T]) Get(i int) (T, bool) {
	return l.state.Get(i)
}

// First returns the first value of l, if any.
func (l *List[T]) First() (T, bool) {
	return l.state.Get(0)
}

// Last returns the last value of l, if any.
func (l *List[T]) Last() (T, bool) {
	return l.state.Get(l.state.Len() - 1)
}

// All iterates over indices and values of l, in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return l.state.All()
}

// Values iterates over the values of l, in order.
func (l *List[T]) Values() iter.Seq[T] {
	return l.state.Values()
}

// ToSlice copies the values of l into a new slice.
func (l *List[T]) ToSlice() []T {
	return l.state.ToSlice()
}

// String renders the values of l in the way fmt prints slices.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

// --- Updates ---------------------------------------------------------------

// exec applies fn to the state of l. A mutable list is edited in place,
// for an immutable one a new list is derived. fn has to validate its
// arguments before it touches the state, so a failing fn leaves l
// unchanged.
func (l *List[T]) exec(fn func(s *rrb.State[T]) error) (*List[T], error) {
	if l.state.IsMutable() {
		return l, fn(l.state)
	}
	s := l.state.ToMutable()
	if err := fn(s); err != nil {
		return l, err
	}
	return &List[T]{state: s.ToImmutable(true)}, nil
}

// Set replaces the value at index i.
func (l *List[T]) Set(i int, value T) (*List[T], error) {
	return l.exec(func(s *rrb.State[T]) error {
		return s.Set(i, value)
	})
}

// Append adds values to the end of l.
func (l *List[T]) Append(values ...T) *List[T] {
	if len(values) == 0 {
		return l
	}
	r, _ := l.exec(func(s *rrb.State[T]) error {
		s.Append(values...)
		return nil
	})
	return r
}

// Prepend adds values to the front of l. The values keep their order.
func (l *List[T]) Prepend(values ...T) *List[T] {
	if len(values) == 0 {
		return l
	}
	r, _ := l.exec(func(s *rrb.State[T]) error {
		s.Prepend(values...)
		return nil
	})
	return r
}

// Insert inserts values before index i. i may equal l.Len().
func (l *List[T]) Insert(i int, values ...T) (*List[T], error) {
	return l.exec(func(s *rrb.State[T]) error {
		return s.Insert(i, values...)
	})
}

// Delete removes the value at index i.
func (l *List[T]) Delete(i int) (*List[T], error) {
	if i < 0 || i >= l.Len() {
		return l, fmt.Errorf("%w: delete at %d, size %d", ErrIndexOutOfRange, i, l.Len())
	}
	return l.DeleteRange(i, i+1)
}

// DeleteRange removes the values in [start, end).
func (l *List[T]) DeleteRange(start, end int) (*List[T], error) {
	return l.exec(func(s *rrb.State[T]) error {
		return s.Delete(start, end)
	})
}

// Concat appends the values of all others to l, from left to right. The
// others are not modified.
func (l *List[T]) Concat(others ...*List[T]) (*List[T], error) {
	for _, o := range others {
		if o == nil {
			return l, fmt.Errorf("%w: concat with nil list", ErrInvalidArgument)
		}
		if o.state.Config() != l.state.Config() {
			return l, fmt.Errorf("%w: concat of lists with branch factors %d and %d",
				ErrIncompatibleConfig, l.state.Config().Branching(), o.state.Config().Branching())
		}
	}
	r, err := l.exec(func(s *rrb.State[T]) error {
		for _, o := range others {
			if err := s.Concat(o.state); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		publish(EventConcat, r.Len())
	}
	return r, err
}

// Slice returns the values in [start, end).
func (l *List[T]) Slice(start, end int) (*List[T], error) {
	r, err := l.exec(func(s *rrb.State[T]) error {
		return s.Slice(start, end)
	})
	if err == nil {
		publish(EventSlice, r.Len())
	}
	return r, err
}

// Skip drops the first n values. n is clamped to the size of l.
func (l *List[T]) Skip(n int) *List[T] {
	n = min(max(n, 0), l.Len())
	r, _ := l.Slice(n, l.Len())
	return r
}

// Take keeps the first n values. n is clamped to the size of l.
func (l *List[T]) Take(n int) *List[T] {
	n = min(max(n, 0), l.Len())
	r, _ := l.Slice(0, n)
	return r
}

// Pop drops the last value. An empty list is returned unchanged.
func (l *List[T]) Pop() *List[T] {
	if l.IsEmpty() {
		return l
	}
	r, _ := l.DeleteRange(l.Len()-1, l.Len())
	return r
}

// PopFront drops the first value. An empty list is returned unchanged.
func (l *List[T]) PopFront() *List[T] {
	if l.IsEmpty() {
		return l
	}
	r, _ := l.DeleteRange(0, 1)
	return r
}

// --- Diagnostics -----------------------------------------------------------

// Check verifies the internal structure of l.
func (l *List[T]) Check() error {
	return l.state.Check()
}

// Stats reports the shape of the tree holding the values of l.
func (l *List[T]) Stats() rrb.Stats {
	return l.state.Stats()
}

// Levels describes the nodes of the tree holding the values of l, level by
// level from the root down.
func (l *List[T]) Levels() [][]rrb.NodeInfo {
	return l.state.Levels()
}

// WriteDot outputs the internal tree of l in Graphviz DOT format.
func (l *List[T]) WriteDot(w io.Writer) error {
	return l.state.ToDot(w)
}

// SharedNodes counts the tree nodes two lists have in common.
func SharedNodes[T any](a, b *List[T]) int {
	return rrb.SharedNodes(a.state, b.state)
}
