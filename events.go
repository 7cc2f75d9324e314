package rrblist

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
)

// EventKind classifies list events.
type EventKind int

// Kinds of events published to subscribers.
const (
	EventCreated EventKind = iota // a list has been built from values
	EventFrozen                   // an edit session has been frozen or snapshotted
	EventConcat                   // lists have been concatenated
	EventSlice                    // a list has been sliced
)

func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventFrozen:
		return "frozen"
	case EventConcat:
		return "concat"
	case EventSlice:
		return "slice"
	}
	return "unknown"
}

// Event is published for structural list operations. Len is the size of
// the resulting list.
type Event struct {
	Kind EventKind
	Len  int
}

var events struct {
	once   sync.Once
	cast   *caster.Caster
	active atomic.Bool
}

func broadcaster() *caster.Caster {
	events.once.Do(func() {
		events.cast = caster.New(nil)
	})
	return events.cast
}

// Subscribe registers for list events. Events are delivered as values of
// type Event on the returned channel, which has room for capacity pending
// events. The subscription ends when ctx is done or with Unsubscribe.
//
// Publishing waits for slow subscribers; clients have to drain their
// channels.
func Subscribe(ctx context.Context, capacity uint) (chan interface{}, bool) {
	ch, ok := broadcaster().Sub(ctx, capacity)
	if ok {
		events.active.Store(true)
	}
	return ch, ok
}

// Unsubscribe ends a subscription created by Subscribe.
func Unsubscribe(ch chan interface{}) {
	broadcaster().Unsub(ch)
}

func publish(kind EventKind, n int) {
	if !events.active.Load() {
		return
	}
	broadcaster().Pub(Event{Kind: kind, Len: n})
}
