// Package store holds single-value stores that broadcast every change to
// their subscribers, and the auth, theme and language stores built on them.
package store

import "sync"

// Store holds one value of type V. Subscribers are called synchronously,
// in subscription order, after each change. Safe for concurrent use.
type Store[V any] struct {
	mu     sync.Mutex
	value  V
	equal  func(a, b V) bool
	nextID int
	subs   []subscriber[V]
}

type subscriber[V any] struct {
	id int
	fn func(V)
}

type Option[V any] func(*Store[V])

// WithEqual suppresses notification when Set is called with a value equal
// to the current one.
func WithEqual[V any](equal func(a, b V) bool) Option[V] {
	return func(s *Store[V]) { s.equal = equal }
}

func New[V any](initial V, opts ...Option[V]) *Store[V] {
	s := &Store[V]{value: initial}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store[V]) Get() V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *Store[V]) Set(v V) {
	s.Update(func(V) V { return v })
}

// Update replaces the value with fn(current) atomically and notifies.
func (s *Store[V]) Update(fn func(V) V) {
	s.mu.Lock()
	prev := s.value
	next := fn(prev)
	if s.equal != nil && s.equal(prev, next) {
		s.mu.Unlock()
		return
	}
	s.value = next
	subs := make([]subscriber[V], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
}

// Subscribe registers fn and returns a function that removes it. Calling
// the returned function more than once is harmless.
func (s *Store[V]) Subscribe(fn func(V)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[V]{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Store[V]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
