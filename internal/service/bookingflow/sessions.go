package bookingflow

import (
	"sync"
	"time"
)

// SessionStore keeps one dialog per (user, package). The UI model allows a
// single dialog per package detail page, so the key is the pair.
type SessionStore struct {
	mu      sync.Mutex
	dialogs map[string]*Dialog
	now     func() time.Time
}

func NewSessionStore(now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{dialogs: make(map[string]*Dialog), now: now}
}

// Open returns the dialog for the pair, creating and opening it if needed.
func (s *SessionStore) Open(userID, packageID string) *Dialog {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userID + "|" + packageID
	d, ok := s.dialogs[key]
	if !ok {
		d = NewDialog(s.now)
		s.dialogs[key] = d
	}
	d.Open()
	return d
}

func (s *SessionStore) Get(userID, packageID string) (*Dialog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dialogs[userID+"|"+packageID]
	return d, ok
}

// Close drops the dialog entirely; nothing about it is persisted.
func (s *SessionStore) Close(userID, packageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dialogs, userID+"|"+packageID)
}
