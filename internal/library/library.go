// Package library keeps named snapshots of headline configurations.
package library

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/store"
)

// Key is the store key of the saved snapshot list.
const Key = "saved-headlines"

// Entry is a saved snapshot. It serialises as the full configuration with
// id and name added alongside the configuration fields.
type Entry struct {
	ID       string
	Name     string
	Settings settings.HeadlineSettings
}

// MarshalJSON flattens the entry into one object.
func (e Entry) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.Settings)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields["id"], err = json.Marshal(e.ID); err != nil {
		return nil, err
	}
	if fields["name"], err = json.Marshal(e.Name); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// UnmarshalJSON reads a flattened entry. Missing configuration fields keep
// their defaults.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var meta struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return err
	}
	s := settings.Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	e.ID = meta.ID
	e.Name = meta.Name
	e.Settings = s
	return nil
}

// Library is the ordered list of saved entries, persisted on every change.
type Library struct {
	mu      sync.RWMutex
	store   store.Store
	entries []Entry
	now     func() time.Time
}

// Option configures a Library.
type Option func(*Library)

// WithClock replaces time.Now as the source of entry ids.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		l.now = now
	}
}

// Open loads the saved entries from st.
func Open(st store.Store, opts ...Option) (*Library, error) {
	l := &Library{store: st, entries: []Entry{}, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}

	var entries []Entry
	found, err := st.Get(Key, &entries)
	if err != nil {
		return nil, err
	}
	if found && entries != nil {
		l.entries = entries
	}
	return l, nil
}

// List returns the entries in save order.
func (l *Library) List() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		result[i] = e.clone()
	}
	return result
}

// Len returns the number of saved entries.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Get retrieves an entry by id.
func (l *Library) Get(id string) (Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, e := range l.entries {
		if e.ID == id {
			return e.clone(), nil
		}
	}
	return Entry{}, fmt.Errorf("saved headline not found: %s", id)
}

// Save appends a deep copy of s. The id is the save timestamp, suffixed when
// it collides with an existing id; the name is "Headline N" where N is the
// new entry count.
func (l *Library) Save(s settings.HeadlineSettings) (Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		ID:       l.uniqueID(l.now().UTC().Format(time.RFC3339Nano)),
		Name:     "Headline " + strconv.Itoa(len(l.entries)+1),
		Settings: s.Clone(),
	}

	next := append(append([]Entry{}, l.entries...), entry)
	if err := l.store.Put(Key, next); err != nil {
		return Entry{}, err
	}
	l.entries = next
	return entry.clone(), nil
}

// Rename changes an entry's display name.
func (l *Library) Rename(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.ID != id {
			continue
		}
		next := append([]Entry{}, l.entries...)
		next[i].Name = name
		if err := l.store.Put(Key, next); err != nil {
			return err
		}
		l.entries = next
		return nil
	}
	return fmt.Errorf("saved headline not found: %s", id)
}

// Remove deletes an entry by id.
func (l *Library) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.ID != id {
			continue
		}
		next := append(append([]Entry{}, l.entries[:i]...), l.entries[i+1:]...)
		if err := l.store.Put(Key, next); err != nil {
			return err
		}
		l.entries = next
		return nil
	}
	return fmt.Errorf("saved headline not found: %s", id)
}

func (l *Library) uniqueID(base string) string {
	taken := make(map[string]bool, len(l.entries))
	for _, e := range l.entries {
		taken[e.ID] = true
	}
	if !taken[base] {
		return base
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !taken[candidate] {
			return candidate
		}
	}
}

func (e Entry) clone() Entry {
	e.Settings = e.Settings.Clone()
	return e
}
