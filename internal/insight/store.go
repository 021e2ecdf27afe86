// Package insight coordinates agent-generated analysis across the
// dashboard: a keyed session store shared by every view of a domain, and
// the orchestrator that fills it asynchronously.
package insight

import (
	"sync"

	"lynq/internal/core"
)

// Session is the shared per-domain record of the latest agent fetch.
// A failed refresh keeps the previous Text so views never lose
// last-known-good content.
type Session struct {
	Text    string `json:"text"`
	Loading bool   `json:"isLoading"`
	Err     string `json:"error"`
}

type entry struct {
	mu    sync.Mutex
	state Session
	subs  map[int]chan struct{}
	next  int
}

// Store holds one session per domain key. Sessions are created lazily on
// first access and live for the process lifetime. The map itself has its
// own lock; each session carries a separate one, so activity on one domain
// never blocks readers of another.
type Store struct {
	mu       sync.RWMutex
	sessions map[core.Domain]*entry
}

func NewStore() *Store {
	return &Store{sessions: make(map[core.Domain]*entry)}
}

func (s *Store) session(d core.Domain) *entry {
	s.mu.RLock()
	e, ok := s.sessions[d]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.sessions[d]; ok {
		return e
	}
	e = &entry{subs: make(map[int]chan struct{})}
	s.sessions[d] = e
	return e
}

// Snapshot returns the current session state for a domain.
func (s *Store) Snapshot(d core.Domain) Session {
	e := s.session(d)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// BeginLoad atomically moves the session into its loading state. It
// returns false when a fetch is already in flight, which is the duplicate
// suppression contract: the caller must not issue another agent call.
// Prior error text is cleared; prior output is kept.
func (s *Store) BeginLoad(d core.Domain) bool {
	e := s.session(d)
	e.mu.Lock()
	if e.state.Loading {
		e.mu.Unlock()
		return false
	}
	e.state.Loading = true
	e.state.Err = ""
	e.notifyLocked()
	e.mu.Unlock()
	return true
}

// Complete records a successful fetch.
func (s *Store) Complete(d core.Domain, text string) {
	e := s.session(d)
	e.mu.Lock()
	e.state = Session{Text: text}
	e.notifyLocked()
	e.mu.Unlock()
}

// Fail records a failed fetch. Text is left untouched.
func (s *Store) Fail(d core.Domain, msg string) {
	e := s.session(d)
	e.mu.Lock()
	e.state.Loading = false
	e.state.Err = msg
	e.notifyLocked()
	e.mu.Unlock()
}

// Subscribe registers for change notifications on a domain's session. The
// returned channel receives a signal after every transition; the second
// return value unsubscribes. Signals coalesce: a slow receiver sees at
// least one pending signal, not necessarily one per transition.
func (s *Store) Subscribe(d core.Domain) (<-chan struct{}, func()) {
	e := s.session(d)
	e.mu.Lock()
	id := e.next
	e.next++
	ch := make(chan struct{}, 1)
	e.subs[id] = ch
	e.mu.Unlock()

	cancel := func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
	return ch, cancel
}

func (e *entry) notifyLocked() {
	for _, ch := range e.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
