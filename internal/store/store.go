// Package store persists collections as pretty-printed JSON files, one file
// per collection, in a single data directory. Every operation is a whole-file
// read or write; a per-collection mutex lets the repos layer serialize its
// load-mutate-save cycles so concurrent writers cannot drop each other's
// updates.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"apotheka/internal/domain"
	applog "apotheka/internal/log"
)

type Store struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir, locks: map[string]*sync.Mutex{}}
}

// Lock acquires the named collection's mutex and returns its unlock func.
func (s *Store) Lock(name string) func() {
	s.mu.Lock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// LoadList reads the named collection. A missing file is not an error: it
// returns (nil, false, nil). Read or parse failures are logged and returned
// alongside ok=false; callers degrade them to an absent collection, which
// keeps corrupt indistinguishable from empty at the API surface while still
// letting the distinction reach the log.
func (s *Store) LoadList(name string) ([]domain.Record, bool, error) {
	raw, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		applog.Error(nil, "store.read.fail", err, map[string]any{"file": s.path(name)})
		return nil, false, err
	}
	var recs []domain.Record
	if err := json.Unmarshal(raw, &recs); err != nil {
		applog.Error(nil, "store.parse.fail", err, map[string]any{"file": s.path(name)})
		return nil, false, err
	}
	return recs, true, nil
}

// SaveList rewrites the named collection wholesale.
func (s *Store) SaveList(name string, recs []domain.Record) error {
	return s.write(name, recs)
}

// LoadObject reads a singleton object file (settings). Same absent/failure
// contract as LoadList.
func (s *Store) LoadObject(name string) (domain.Record, bool, error) {
	raw, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		applog.Error(nil, "store.read.fail", err, map[string]any{"file": s.path(name)})
		return nil, false, err
	}
	var obj domain.Record
	if err := json.Unmarshal(raw, &obj); err != nil {
		applog.Error(nil, "store.parse.fail", err, map[string]any{"file": s.path(name)})
		return nil, false, err
	}
	return obj, true, nil
}

func (s *Store) SaveObject(name string, obj domain.Record) error {
	return s.write(name, obj)
}

func (s *Store) write(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		applog.Error(nil, "store.mkdir.fail", err, map[string]any{"dir": s.dir})
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		applog.Error(nil, "store.write.fail", err, map[string]any{"file": s.path(name)})
		return err
	}
	return nil
}
