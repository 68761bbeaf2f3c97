// Package listmgr keeps an ordered list of records persisted under one store
// key and a rendered view of it in step.
//
// Every mutation loads the current sequence, changes it, and writes the whole
// sequence back. Callers re-render from the returned sequence, so the view and
// the stored value agree after each call.
package listmgr

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/idilsaglam/teacherhub/internal/store"
)

// Record is an item with a stable identifier assigned when it was appended.
// Records written before ids existed report "".
type Record interface {
	RecordID() string
}

// Row is one rendered line of a list.
type Row struct {
	ID     string // record id, "" for legacy records
	Index  int    // position in the sequence the row was rendered from
	Title  string
	Detail string
}

// Container is a render target. Render always calls Clear before adding rows.
type Container interface {
	Clear()
	AddRow(Row)
}

// RowFunc maps an item to its row. Index and ID are filled in by Render.
type RowFunc[T Record] func(item T) Row

// List manages the sequence stored under one key.
type List[T Record] struct {
	store  store.Store
	key    string
	row    RowFunc[T]
	logger *slog.Logger
}

// New returns a List for key. A nil logger falls back to slog.Default.
func New[T Record](s store.Store, key string, row RowFunc[T], logger *slog.Logger) *List[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &List[T]{
		store:  s,
		key:    key,
		row:    row,
		logger: logger.With("component", "listmgr", "key", key),
	}
}

func (l *List[T]) Key() string { return l.key }

// Decode parses stored text into a sequence. A missing value or text that is
// not a JSON array of T yields (empty, false); it never fails.
func Decode[T any](raw string, present bool) ([]T, bool) {
	if !present {
		return []T{}, false
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []T{}, false
	}
	return items, true
}

// Load returns the stored sequence. Absent or unparseable values load as an
// empty sequence; only store failures are returned as errors.
func (l *List[T]) Load() ([]T, error) {
	raw, ok, err := l.store.Get(l.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", l.key, err)
	}
	items, decoded := Decode[T](raw, ok)
	if ok && !decoded {
		l.logger.Debug("stored value unreadable, using empty list")
	}
	return items, nil
}

// Save overwrites the stored value with the full sequence.
func (l *List[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := l.store.Set(l.key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", l.key, err)
	}
	return nil
}

// Append adds item at the end and returns the saved sequence.
func (l *List[T]) Append(item T) ([]T, error) {
	items, err := l.Load()
	if err != nil {
		return nil, err
	}
	items = append(items, item)
	if err := l.Save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveAt drops the item at index. An index outside [0, len) leaves the
// stored value untouched and returns the current sequence.
func (l *List[T]) RemoveAt(index int) ([]T, error) {
	items, err := l.Load()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return items, nil
	}
	items = append(items[:index], items[index+1:]...)
	if err := l.Save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove drops the first item whose id is id. Unknown or empty ids are a no-op.
func (l *List[T]) Remove(id string) ([]T, error) {
	items, err := l.Load()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return items, nil
	}
	for i, it := range items {
		if it.RecordID() == id {
			items = append(items[:i], items[i+1:]...)
			if err := l.Save(items); err != nil {
				return nil, err
			}
			return items, nil
		}
	}
	return items, nil
}

// Render rebuilds c from items, one row per item in order.
func (l *List[T]) Render(items []T, c Container) {
	c.Clear()
	for i, it := range items {
		r := l.row(it)
		r.ID = it.RecordID()
		r.Index = i
		c.AddRow(r)
	}
}

// Refresh loads the stored sequence and renders it into c.
func (l *List[T]) Refresh(c Container) ([]T, error) {
	items, err := l.Load()
	if err != nil {
		return nil, err
	}
	l.Render(items, c)
	return items, nil
}

// Rows is a Container that collects rows in memory.
type Rows []Row

func (r *Rows) Clear()         { *r = (*r)[:0] }
func (r *Rows) AddRow(row Row) { *r = append(*r, row) }
