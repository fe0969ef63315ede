package store

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"go.uber.org/fx"
)

// Listener observes every transition. It runs after the state was committed,
// outside the dispatch lock, so it may dispatch again.
type Listener func(prev, next State, action Action)

type subscription struct {
	id       uint64
	listener Listener
}

// Store serializes dispatches over the root reducer.
type Store struct {
	mu            sync.Mutex
	state         State
	subscriptions []subscription
	nextID        uint64
	fetchSeq      atomic.Uint64
	logger        *slog.Logger
}

// Params defines the dependencies of the store.
type Params struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// New creates a store in the initial state.
func New(params Params) *Store {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		state:  InitialState(),
		logger: logger,
	}
}

// State returns the current snapshot. Reducers never mutate a committed
// snapshot, so callers may keep it.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Dispatch reduces action into the state and notifies listeners.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action)
	s.state = next
	subscriptions := s.subscriptions
	s.mu.Unlock()

	s.logger.Debug("Action dispatched", slog.String("action", actionName(action)))

	for _, sub := range subscriptions {
		sub.listener(prev, next, action)
	}
}

// Subscribe registers listener and returns the function that removes it.
func (s *Store) Subscribe(listener Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	// copy on write: Dispatch iterates a snapshot of the slice
	s.subscriptions = append(s.subscriptions[:len(s.subscriptions):len(s.subscriptions)], subscription{id: id, listener: listener})

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			kept := make([]subscription, 0, len(s.subscriptions))
			for _, sub := range s.subscriptions {
				if sub.id != id {
					kept = append(kept, sub)
				}
			}
			s.subscriptions = kept
		})
	}
}

// NextFetchSeq returns a new, strictly increasing proximity fetch number.
func (s *Store) NextFetchSeq() uint64 {
	return s.fetchSeq.Add(1)
}
