// SPDX-License-Identifier: MIT

// Package warehouse keeps derived metrics for live shapes, keyed by id.
//
// A MetricsStore is an explicitly constructed dependency: build one with
// New, attach it to a repository, and hand the same instance to the
// metric-range specifications in package query. There is no global store.
//
// Entries are derived, never authoritative; each one can be recomputed from
// the shape it describes. The store implements repository.Observer
// (Update/UpdateRemove) so a repository keeps it in sync synchronously.
//
// Concurrency: all methods are safe for concurrent use (sync.RWMutex).
package warehouse

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvshape/calc"
	"github.com/katalvlaran/lvshape/geom"
)

// Metrics are the cached quantities for one shape. A nil field means the
// metric does not apply to that shape kind.
//
//	Triangle: Area, Perimeter
//	Pyramid:  Volume, Area (total surface area)
type Metrics struct {
	ID        string
	Area      *float64
	Perimeter *float64
	Volume    *float64
}

// AreaValue returns Area and whether it is set.
func (m Metrics) AreaValue() (float64, bool) { return deref(m.Area) }

// PerimeterValue returns Perimeter and whether it is set.
func (m Metrics) PerimeterValue() (float64, bool) { return deref(m.Perimeter) }

// VolumeValue returns Volume and whether it is set.
func (m Metrics) VolumeValue() (float64, bool) { return deref(m.Volume) }

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func ptr(v float64) *float64 { return &v }

// Compute derives Metrics for s. It does not touch any store.
func Compute(s geom.Shape) Metrics {
	m := Metrics{ID: s.ID()}
	switch v := s.(type) {
	case *geom.Triangle:
		m.Area = ptr(calc.Area(v))
		m.Perimeter = ptr(calc.Perimeter(v))
	case *geom.Pyramid:
		m.Volume = ptr(calc.Volume(v))
		m.Area = ptr(calc.SurfaceArea(v))
	}
	return m
}

// Option configures a MetricsStore.
type Option func(*MetricsStore)

// WithLogger sets the debug logger for cache updates.
func WithLogger(l *zap.Logger) Option {
	return func(s *MetricsStore) {
		if l != nil {
			s.log = l
		}
	}
}

// MetricsStore maps shape id → Metrics.
type MetricsStore struct {
	mu      sync.RWMutex
	metrics map[string]Metrics
	log     *zap.Logger
}

// New returns an empty store.
func New(opts ...Option) *MetricsStore {
	s := &MetricsStore{
		metrics: make(map[string]Metrics),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update computes metrics for shape and stores them, replacing any prior
// entry with the same id. A nil shape is ignored.
func (s *MetricsStore) Update(shape geom.Shape) {
	if shape == nil {
		return
	}
	m := Compute(shape)

	s.mu.Lock()
	_, replaced := s.metrics[m.ID]
	s.metrics[m.ID] = m
	s.mu.Unlock()

	s.log.Debug("metrics updated",
		zap.String("id", m.ID),
		zap.Stringer("kind", shape.Kind()),
		zap.Bool("replaced", replaced))
}

// UpdateRemove evicts the entry for id, if any.
func (s *MetricsStore) UpdateRemove(id string) {
	s.mu.Lock()
	_, ok := s.metrics[id]
	delete(s.metrics, id)
	s.mu.Unlock()

	if ok {
		s.log.Debug("metrics evicted", zap.String("id", id))
	}
}

// Metrics returns the entry for id.
func (s *MetricsStore) Metrics(id string) (Metrics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.metrics[id]
	return m, ok
}

// All returns every entry sorted by id.
func (s *MetricsStore) All() []Metrics {
	s.mu.RLock()
	out := make([]Metrics, 0, len(s.metrics))
	for _, m := range s.metrics {
		out = append(out, m)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of entries.
func (s *MetricsStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.metrics)
}

// Reset drops every entry.
func (s *MetricsStore) Reset() {
	s.mu.Lock()
	s.metrics = make(map[string]Metrics)
	s.mu.Unlock()
}
