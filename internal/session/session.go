// Package session holds the live headline configuration and persists it on
// every change.
package session

import (
	"sync"

	"github.com/alexisbeaulieu97/headliner/internal/logger"
	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/store"
)

// Key is the store key of the live configuration.
const Key = "headline-settings"

// Session is the single owner of the current snapshot. Every mutation
// replaces the snapshot and writes it through to the store.
type Session struct {
	mu      sync.RWMutex
	store   store.Store
	log     *logger.Logger
	current settings.HeadlineSettings
}

// Open loads the persisted snapshot. A missing document starts from the
// defaults; an unreadable one is logged and replaced by the defaults.
func Open(st store.Store, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	s := &Session{store: st, log: log, current: settings.Default()}

	loaded := settings.Default()
	found, err := st.Get(Key, &loaded)
	switch {
	case err != nil:
		log.Error(err, "Failed to load saved settings, starting from defaults")
	case found:
		s.current = loaded
		log.Debug("Loaded saved settings")
	}
	return s
}

// Current returns a copy of the live snapshot.
func (s *Session) Current() settings.HeadlineSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update replaces the snapshot with fn's result and persists it. The
// in-memory snapshot changes even if persisting fails.
func (s *Session) Update(fn func(settings.HeadlineSettings) settings.HeadlineSettings) (settings.HeadlineSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = fn(s.current.Clone()).Clone()
	return s.current.Clone(), s.persist()
}

// Apply merges a JSON patch into the snapshot. A malformed patch leaves the
// snapshot unchanged and is not persisted.
func (s *Session) Apply(patch []byte) (settings.HeadlineSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := settings.ApplyPatch(s.current, patch)
	if err != nil {
		return s.current.Clone(), err
	}
	s.current = next
	return s.current.Clone(), s.persist()
}

// Replace swaps in next wholesale, e.g. when a saved headline is loaded.
func (s *Session) Replace(next settings.HeadlineSettings) (settings.HeadlineSettings, error) {
	return s.Update(func(settings.HeadlineSettings) settings.HeadlineSettings {
		return next
	})
}

// Reset restores the default snapshot.
func (s *Session) Reset() (settings.HeadlineSettings, error) {
	return s.Replace(settings.Default())
}

func (s *Session) persist() error {
	if err := s.store.Put(Key, s.current); err != nil {
		s.log.Error(err, "Failed to persist settings")
		return err
	}
	return nil
}
