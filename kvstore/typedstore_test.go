package kvstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/intervals/interval"
	"github.com/iotaledger/intervals/kvstore"
	"github.com/iotaledger/intervals/kvstore/mapdb"
)

func newIntervalStore() *kvstore.TypedStore[string, *interval.Interval] {
	return kvstore.NewTypedStore[string, *interval.Interval](
		mapdb.NewMapDB().WithRealm([]byte("intervals/")),
		kvstore.StringToBytes,
		kvstore.BytesToString,
		func(i *interval.Interval) ([]byte, error) { return i.Bytes(), nil },
		interval.FromBytes,
	)
}

func TestTypedStore(t *testing.T) {
	store := newIntervalStore()

	week := interval.Closed(interval.NewDateValue(2000, 2, 2), interval.NewDateValue(2000, 2, 6))
	require.NoError(t, store.Set("week", week))
	require.NoError(t, store.Set("all", interval.All()))

	loaded, err := store.Get("week")
	require.NoError(t, err)
	require.True(t, week.Equal(loaded))

	has, err := store.Has("all")
	require.NoError(t, err)
	require.True(t, has)

	_, err = store.Get("missing")
	require.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	names := make([]string, 0)
	require.NoError(t, store.Iterate(kvstore.EmptyPrefix, func(name string, i *interval.Interval) bool {
		names = append(names, name+"="+i.String())

		return true
	}))
	require.Equal(t, []string{"all=(-inf, inf)", "week=[2000-02-02, 2000-02-06]"}, names)

	require.NoError(t, store.Delete("week"))
	has, err = store.Has("week")
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, store.Clear())
	has, err = store.Has("all")
	require.NoError(t, err)
	require.False(t, has)
}

func TestTypedStore_DecodeError(t *testing.T) {
	store := newIntervalStore()
	require.NoError(t, store.KVStore().Set([]byte("broken"), []byte{0b01}))

	_, err := store.Get("broken")
	require.ErrorIs(t, err, interval.ErrParseBytesFailed)

	require.ErrorIs(t, store.Iterate(kvstore.EmptyPrefix, func(string, *interval.Interval) bool { return true }), interval.ErrParseBytesFailed)
}
