package catalog

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Collection holds the records of a single kind. Records keep the position
// of their first insertion; replacing a record by id does not move it.
//
// All methods are safe for concurrent use. A single RWMutex guards the
// collection; records handed out are copies.
type Collection[T Record] struct {
	kind   Kind
	logger *zap.Logger

	mu    sync.RWMutex
	order []int
	items map[int]T
}

func newCollection[T Record](kind Kind, logger *zap.Logger) *Collection[T] {
	return &Collection[T]{
		kind:   kind,
		logger: logger.With(zap.String("kind", string(kind))),
		items:  make(map[int]T),
	}
}

// Kind returns the kind of records held by the collection.
func (c *Collection[T]) Kind() Kind { return c.kind }

// Upsert inserts rec, or replaces the record with the same id.
func (c *Collection[T]) Upsert(rec T) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	replaced := c.put(rec)
	c.mu.Unlock()

	c.logger.Debug("upserted record", zap.Int("id", rec.RecordID()), zap.Bool("replaced", replaced))
	return nil
}

// UpsertAll validates every record before applying any of them, so an
// invalid batch leaves the collection unchanged. Later duplicates of an id
// replace earlier ones.
func (c *Collection[T]) UpsertAll(recs []T) error {
	for i, rec := range recs {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("%s at index %d: %w", c.kind, i, err)
		}
	}

	c.mu.Lock()
	for _, rec := range recs {
		c.put(rec)
	}
	c.mu.Unlock()

	c.logger.Debug("upserted batch", zap.Int("count", len(recs)))
	return nil
}

// put stores rec and reports whether an existing record was replaced.
// Caller holds c.mu.
func (c *Collection[T]) put(rec T) bool {
	id := rec.RecordID()
	_, exists := c.items[id]
	if !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = rec
	return exists
}

// Remove deletes the record with the given id. Removing an absent id is a no-op.
func (c *Collection[T]) Remove(id int) {
	c.mu.Lock()
	_, exists := c.items[id]
	if exists {
		delete(c.items, id)
		c.order = slices.DeleteFunc(c.order, func(v int) bool { return v == id })
	}
	c.mu.Unlock()

	if exists {
		c.logger.Debug("removed record", zap.Int("id", id))
	}
}

// Get returns the record with the given id, or a *NotFoundError.
func (c *Collection[T]) Get(id int) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.items[id]
	if !ok {
		var zero T
		return zero, &NotFoundError{Kind: c.kind, ID: id}
	}
	return rec, nil
}

// GetMany resolves ids in order. It fails on the first absent id and returns
// no partial result.
func (c *Collection[T]) GetMany(ids []int) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		rec, ok := c.items[id]
		if !ok {
			return nil, &NotFoundError{Kind: c.kind, ID: id}
		}
		out = append(out, rec)
	}
	return out, nil
}

// Has reports whether a record with the given id exists.
func (c *Collection[T]) Has(id int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[id]
	return ok
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// List returns the records in insertion order. The sequence is lazy: each
// iteration takes a fresh snapshot, so ranging over it again after a
// mutation reflects the new state. Yielding happens outside the lock, and
// the loop body may modify the collection.
func (c *Collection[T]) List() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, rec := range c.All() {
			if !yield(rec) {
				return
			}
		}
	}
}

// All returns a snapshot of the records in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}
