// Package store defines the key-value persistence surface the portal writes to.
// One Store plays the role of a browser origin: every list and preference the
// portal keeps lives under a string key inside it.
package store

// Store is a synchronous get/set-by-key text store.
//
// Get reports ok=false when the key has never been written. Implementations
// return an error only for I/O failures, never for absent keys.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// CorruptError reports a backing file that exists but cannot be decoded.
// Nothing is written over it until it is repaired or moved aside.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string { return "corrupt data file " + e.Path + ": " + e.Err.Error() }

func (e *CorruptError) Unwrap() error { return e.Err }
