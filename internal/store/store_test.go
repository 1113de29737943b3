package store_test

import (
	"testing"

	"facet/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestPutGetRoundTrip(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Put("/data/pets.csv", "animal", `["dog","cat"]`))

	encoded, ok, err := st.Get("/data/pets.csv", "animal")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["dog","cat"]`, encoded)
}

func TestGetMiss(t *testing.T) {
	st := openTestStore(t)

	_, ok, err := st.Get("/data/pets.csv", "animal")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutUpserts(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Put("/d.csv", "col", `["a"]`))
	require.NoError(t, st.Put("/d.csv", "col", `["b"]`))

	encoded, ok, err := st.Get("/d.csv", "col")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["b"]`, encoded)

	saved, err := st.List()
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestDelete(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Put("/d.csv", "col", `["a"]`))
	require.NoError(t, st.Delete("/d.csv", "col"))

	_, ok, err := st.Get("/d.csv", "col")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearAndList(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Put("/a.csv", "x", `[]`))
	require.NoError(t, st.Put("/b.csv", "y", `["v"]`))

	saved, err := st.List()
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].Source)
	assert.False(t, saved[0].UpdatedAt.IsZero())

	n, err := st.Clear()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	saved, err = st.List()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	st, err := store.Open(dir)
	require.NoError(t, err)
	require.NoError(t, st.Put("/d.csv", "col", `["kept"]`))
	require.NoError(t, st.Close())

	st, err = store.Open(dir)
	require.NoError(t, err)
	defer st.Close()

	encoded, ok, err := st.Get("/d.csv", "col")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["kept"]`, encoded)
}
