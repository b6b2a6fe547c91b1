// SPDX-License-Identifier: MIT
// Package repository_test locks in collection ordering, observer
// notification and the store-consistency guarantees of Add/Remove.

package repository_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvshape/geom"
	"github.com/katalvlaran/lvshape/query"
	"github.com/katalvlaran/lvshape/repository"
	"github.com/katalvlaran/lvshape/warehouse"
)

func tri(id string, x, y float64) *geom.Triangle {
	return geom.NewTriangle(id, geom.Point{X: x, Y: y}, geom.Point{X: x + 1, Y: y}, geom.Point{X: x, Y: y + 1})
}

func ids(shapes []geom.Shape) []string {
	out := make([]string, len(shapes))
	for i, s := range shapes {
		out[i] = s.ID()
	}
	return out
}

// recorder logs every notification in order.
type recorder struct {
	name   string
	events *[]string
}

func (r *recorder) Update(s geom.Shape)     { *r.events = append(*r.events, r.name+":add:"+s.ID()) }
func (r *recorder) UpdateRemove(id string) { *r.events = append(*r.events, r.name+":remove:"+id) }

func TestRepository_AddRemoveKeepsStoreInSync(t *testing.T) {
	store := warehouse.New()
	repo := repository.New(repository.WithObserver(store))

	require.NoError(t, repo.Add(tri("t1", 0, 0)))
	_, ok := store.Metrics("t1")
	require.True(t, ok, "entry present as soon as Add returns")

	assert.True(t, repo.Remove("t1"))
	assert.Empty(t, repo.GetAll())
	_, ok = store.Metrics("t1")
	assert.False(t, ok, "entry evicted as soon as Remove returns")
	assert.Zero(t, store.Len())
}

func TestRepository_AddNil(t *testing.T) {
	repo := repository.New()
	assert.ErrorIs(t, repo.Add(nil), repository.ErrNilShape)
	assert.Zero(t, repo.Len())
}

func TestRepository_RemoveMissingDoesNotNotify(t *testing.T) {
	var events []string
	repo := repository.New(repository.WithObserver(&recorder{name: "a", events: &events}))
	assert.False(t, repo.Remove("ghost"))
	assert.Empty(t, events)
}

func TestRepository_NotificationOrder(t *testing.T) {
	var events []string
	a := &recorder{name: "a", events: &events}
	b := &recorder{name: "b", events: &events}

	repo := repository.New()
	repo.Attach(a)
	repo.Attach(b)

	require.NoError(t, repo.Add(tri("t1", 0, 0)))
	repo.Remove("t1")

	want := []string{"a:add:t1", "b:add:t1", "a:remove:t1", "b:remove:t1"}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}

	repo.Detach(a)
	events = events[:0]
	require.NoError(t, repo.Add(tri("t2", 0, 0)))
	assert.Equal(t, []string{"b:add:t2"}, events)
}

// TestRepository_DuplicateIDs documents append semantics for reused ids.
func TestRepository_DuplicateIDs(t *testing.T) {
	store := warehouse.New()
	repo := repository.New(repository.WithObserver(store))

	first := tri("dup", 0, 0)
	second := geom.NewTriangle("dup", geom.Point{}, geom.Point{X: 10}, geom.Point{Y: 10})
	repo.AddAll(first, second)

	assert.Equal(t, 2, repo.Len())
	found, ok := repo.FindByID("dup")
	require.True(t, ok)
	assert.Same(t, first, found, "FindByID returns the first match")

	m, ok := store.Metrics("dup")
	require.True(t, ok)
	area, _ := m.AreaValue()
	assert.InDelta(t, 50.0, area, 1e-12, "store holds the later shape's metrics")

	// Removing drops the first match only, but evicts the shared entry.
	repo.Remove("dup")
	assert.Equal(t, 1, repo.Len())
	_, ok = store.Metrics("dup")
	assert.False(t, ok)
}

func TestRepository_FindBySpecificationReadsStore(t *testing.T) {
	store := warehouse.New()
	repo := repository.New(repository.WithObserver(store))

	repo.AddAll(
		tri("small", 1, 1), // area 0.5
		geom.NewTriangle("big", geom.Point{X: 1, Y: 1}, geom.Point{X: 5, Y: 1}, geom.Point{X: 1, Y: 5}), // area 8
	)

	spec := query.AreaInRange{Source: store, Range: query.Range{Min: 1, Max: 10}}
	assert.Equal(t, []string{"big"}, ids(repo.FindBySpecification(spec)))

	// Without the store attached, the same query finds nothing.
	bare := repository.New()
	bare.AddAll(tri("x", 1, 1))
	assert.Empty(t, bare.FindBySpecification(query.AreaInRange{Source: warehouse.New(), Range: query.Range{Min: 0, Max: 100}}))
}

func TestRepository_SortReturnsCopy(t *testing.T) {
	repo := repository.New()
	repo.AddAll(tri("c", 3, 0), tri("a", 1, 0), tri("b", 2, 0))

	sorted := repo.Sort(query.ByIDOrder)
	assert.Equal(t, []string{"a", "b", "c"}, ids(sorted))
	assert.Equal(t, []string{"c", "a", "b"}, ids(repo.GetAll()), "collection order untouched")

	assert.Equal(t, []string{"c", "b", "a"}, ids(repo.Sort(query.Reverse(query.ByFirstX))))
}

func TestRepository_GetAllIsCopy(t *testing.T) {
	repo := repository.New()
	repo.AddAll(tri("a", 0, 0))
	all := repo.GetAll()
	all[0] = nil
	s, ok := repo.FindByID("a")
	require.True(t, ok)
	assert.NotNil(t, s)
}
