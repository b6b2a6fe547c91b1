// SPDX-License-Identifier: MIT

// Package repository owns the live shape collection.
//
// A Repository is the only place shapes are added or removed. Every
// mutation notifies the attached observers synchronously, in attachment
// order, before the mutating call returns; a shape is therefore visible to
// FindByID and its observer-side state (e.g. a warehouse.MetricsStore
// entry) is present as soon as Add returns.
//
// Concurrency:
//   - All methods are safe for concurrent use (sync.RWMutex).
//   - Observers run inline while the write lock is held: an observer must
//     not call back into the same Repository.
//
// Ids are not checked for uniqueness. Adding a second shape with an
// existing id appends it; observers see both Adds, so a keyed observer ends
// up holding the later shape's data.
package repository

import (
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvshape/geom"
)

// ErrNilShape is returned by Add for a nil shape.
var ErrNilShape = errors.New("repository: shape is nil")

// Observer receives collection changes.
type Observer interface {
	// Update is called after shape has been appended.
	Update(shape geom.Shape)
	// UpdateRemove is called after the shape with id has been removed.
	UpdateRemove(id string)
}

// Specification is a predicate over shapes; see package query.
type Specification interface {
	IsSatisfiedBy(shape geom.Shape) bool
}

// Comparator orders two shapes: negative if a < b, zero if equal,
// positive if a > b. See package query.
type Comparator interface {
	Compare(a, b geom.Shape) float64
}

// Option configures a Repository.
type Option func(*Repository)

// WithObserver attaches o at construction time.
func WithObserver(o Observer) Option {
	return func(r *Repository) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// WithLogger sets the debug logger for collection changes.
func WithLogger(l *zap.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.log = l
		}
	}
}

// Repository is an ordered, in-memory shape collection.
type Repository struct {
	mu        sync.RWMutex
	shapes    []geom.Shape
	observers []Observer
	log       *zap.Logger
}

// New returns an empty Repository.
func New(opts ...Option) *Repository {
	r := &Repository{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Attach appends o to the observer list. Attaching the same observer twice
// makes it receive every notification twice.
func (r *Repository) Attach(o Observer) {
	if o == nil {
		return
	}
	r.mu.Lock()
	r.observers = append(r.observers, o)
	r.mu.Unlock()
}

// Detach removes every registration of o.
func (r *Repository) Detach(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.observers[:0]
	for _, obs := range r.observers {
		if obs != o {
			kept = append(kept, obs)
		}
	}
	// Clear the tail so detached observers can be collected.
	for i := len(kept); i < len(r.observers); i++ {
		r.observers[i] = nil
	}
	r.observers = kept
}

// Add appends shape and notifies observers before returning.
func (r *Repository) Add(shape geom.Shape) error {
	if shape == nil {
		return ErrNilShape
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.shapes = append(r.shapes, shape)
	for _, o := range r.observers {
		o.Update(shape)
	}
	r.log.Debug("shape added", zap.String("id", shape.ID()), zap.Int("size", len(r.shapes)))

	return nil
}

// AddAll adds shapes in order, skipping nils.
func (r *Repository) AddAll(shapes ...geom.Shape) {
	for _, s := range shapes {
		_ = r.Add(s)
	}
}

// Remove deletes the first shape with id and notifies observers.
// It reports whether a shape was removed; observers are not notified
// when nothing matched.
func (r *Repository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, s := range r.shapes {
		if s.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	copy(r.shapes[idx:], r.shapes[idx+1:])
	r.shapes[len(r.shapes)-1] = nil
	r.shapes = r.shapes[:len(r.shapes)-1]

	for _, o := range r.observers {
		o.UpdateRemove(id)
	}
	r.log.Debug("shape removed", zap.String("id", id), zap.Int("size", len(r.shapes)))

	return true
}

// FindByID returns the first shape with id.
func (r *Repository) FindByID(id string) (geom.Shape, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.shapes {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// FindBySpecification returns, in insertion order, every shape satisfying spec.
func (r *Repository) FindBySpecification(spec Specification) []geom.Shape {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []geom.Shape
	for _, s := range r.shapes {
		if spec.IsSatisfiedBy(s) {
			out = append(out, s)
		}
	}
	return out
}

// GetAll returns a copy of the collection in insertion order.
func (r *Repository) GetAll() []geom.Shape {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]geom.Shape, len(r.shapes))
	copy(out, r.shapes)
	return out
}

// Sort returns a new slice ordered by cmp. The sort is stable, so shapes
// that compare equal keep their insertion order. The collection itself is
// not reordered.
func (r *Repository) Sort(cmp Comparator) []geom.Shape {
	out := r.GetAll()
	sort.SliceStable(out, func(i, j int) bool {
		return cmp.Compare(out[i], out[j]) < 0
	})
	return out
}

// Len returns the number of shapes.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shapes)
}
