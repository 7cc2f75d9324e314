package rrblist

// IsMutable tells whether l is part of an edit session, i.e. whether its
// operations modify l in place.
func (l *List[T]) IsMutable() bool {
	return l.state.IsMutable()
}

// AsMutable starts an edit session. It returns a mutable list sharing all
// values with l; l itself is not affected. A mutable l is returned as is.
func (l *List[T]) AsMutable() *List[T] {
	if l.state.IsMutable() {
		return l
	}
	return &List[T]{state: l.state.ToMutable()}
}

// AsImmutable ends or interrupts an edit session. If finished is set, l is
// frozen in place and returned. Otherwise an immutable snapshot of l is
// returned and l stays mutable; later edits of l do not show in the
// snapshot. An immutable l is returned as is.
func (l *List[T]) AsImmutable(finished bool) *List[T] {
	if !l.state.IsMutable() {
		return l
	}
	if finished {
		l.state = l.state.ToImmutable(true)
		publish(EventFrozen, l.Len())
		return l
	}
	snapshot := &List[T]{state: l.state.ToImmutable(false)}
	publish(EventFrozen, snapshot.Len())
	return snapshot
}

// Batch runs fn with a mutable version of l and returns the result as an
// immutable list. The result is frozen even if fn panics. If l is mutable
// already, fn edits l directly and l stays mutable.
func (l *List[T]) Batch(fn func(*List[T])) *List[T] {
	if l.state.IsMutable() {
		fn(l)
		return l
	}
	m := l.AsMutable()
	defer m.AsImmutable(true)
	fn(m)
	return m
}
