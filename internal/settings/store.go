package settings

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"friday-assistant/internal/semparser"
)

// Store holds the parser settings. Reads are lock-free; a write is visible to
// calls that start after it returns.
type Store struct {
	mu    sync.Mutex // serialises writers
	value atomic.Pointer[Snapshot]
	now   func() time.Time
}

var _ Updater = (*Store)(nil)

// NewStore creates a Store seeded with initial.
func NewStore(initial semparser.Settings) *Store {
	s := &Store{now: time.Now}
	s.value.Store(&Snapshot{Settings: initial, UpdatedAt: s.now()})
	return s
}

// Current returns the settings for one call.
func (s *Store) Current() semparser.Settings {
	return s.value.Load().Settings
}

func (s *Store) Snapshot() Snapshot {
	return *s.value.Load()
}

// Update applies u and returns the new snapshot.
func (s *Store) Update(u Update) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.value.Load()
	if u.Credential != nil {
		next.Settings.Credential = strings.TrimSpace(*u.Credential)
	}
	if u.Enabled != nil {
		next.Settings.Enabled = *u.Enabled
	}
	next.UpdatedAt = s.now()
	s.value.Store(&next)
	return next
}

// Mask hides all but the last four characters of a credential.
func Mask(credential string) string {
	if credential == "" {
		return ""
	}
	if len(credential) <= 4 {
		return "****"
	}
	return "****" + credential[len(credential)-4:]
}
