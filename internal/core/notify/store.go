package notify

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Subscriber is invoked with the new list whenever a command changes it.
type Subscriber func([]Notification)

// Store holds the ordered list of active notifications for one UI session.
// All mutation goes through Dispatch. A Store is created empty and lives
// until the program that owns it exits.
type Store struct {
	mu          sync.Mutex
	list        []Notification
	ids         *IDGenerator
	now         func() time.Time
	log         zerolog.Logger
	subscribers map[int]Subscriber
	nextSub     int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for command tracing.
func WithLogger(l zerolog.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// WithClock overrides the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(g *IDGenerator) StoreOption {
	return func(s *Store) { s.ids = g }
}

// NewStore returns an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		list:        []Notification{},
		ids:         NewIDGenerator(),
		now:         time.Now,
		log:         zerolog.Nop(),
		subscribers: make(map[int]Subscriber),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies cmd. For Add it returns the created notification;
// otherwise it returns the zero Notification. Subscribers are called only
// when the list actually changed.
func (s *Store) Dispatch(cmd Command) Notification {
	s.mu.Lock()
	prev := s.list
	next := Reduce(prev, cmd, s.ids, s.now())
	changed := !sameList(prev, next)
	s.list = next

	var added Notification
	if _, ok := cmd.(Add); ok {
		added = next[len(next)-1]
	}

	var subs []Subscriber
	if changed {
		subs = make([]Subscriber, 0, len(s.subscribers))
		for _, k := range sortedKeys(s.subscribers) {
			subs = append(subs, s.subscribers[k])
		}
	}
	s.mu.Unlock()

	s.trace(cmd, added, len(prev), len(next))

	for _, fn := range subs {
		fn(next)
	}
	return added
}

func (s *Store) trace(cmd Command, added Notification, before, after int) {
	switch c := cmd.(type) {
	case Add:
		s.log.Debug().
			Stringer("id", added.ID).
			Str("category", string(c.Category)).
			Stringer("content", c.Content.Kind()).
			Int("len", after).
			Msg("notification added")
	case RemoveOne:
		s.log.Debug().
			Stringer("id", c.ID).
			Bool("found", after < before).
			Int("len", after).
			Msg("notification removed")
	case RemoveAll:
		s.log.Debug().Int("cleared", before).Msg("notifications cleared")
	case Unknown:
		s.log.Debug().Str("kind", c.Kind).Msg("ignoring unrecognized command")
	default:
		s.log.Debug().Str("command", fmt.Sprintf("%T", cmd)).Msg("ignoring unrecognized command")
	}
}

// Add dispatches an Add command and returns the new id.
func (s *Store) Add(content Content, category Category) ID {
	return s.Dispatch(Add{Content: content, Category: category}).ID
}

// RemoveOne dispatches a RemoveOne command.
func (s *Store) RemoveOne(id ID) {
	s.Dispatch(RemoveOne{ID: id})
}

// RemoveAll dispatches a RemoveAll command.
func (s *Store) RemoveAll() {
	s.Dispatch(RemoveAll{})
}

// Notifications returns a copy of the current list in insertion order.
func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.list)
}

// Len returns the number of active notifications.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list)
}

// Get returns the notification with the given id.
func (s *Store) Get(id ID) (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.list {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// Subscribe registers fn to be called after every change. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.nextSub
	s.nextSub++
	s.subscribers[key] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, key)
	}
}

// sameList reports whether a and b are the same slice, which is how Reduce
// signals "no change".
func sameList(a, b []Notification) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

func sortedKeys(m map[int]Subscriber) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
