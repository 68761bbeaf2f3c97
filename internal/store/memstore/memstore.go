// Package memstore is an in-memory store.Store for tests and throwaway sessions.
package memstore

// Store keeps values in a map. Not safe for concurrent use.
type Store struct {
	data map[string]string
}

func New() *Store {
	return &Store{data: map[string]string{}}
}

func (s *Store) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.data[key] = value
	return nil
}

func (s *Store) Close() error { return nil }
