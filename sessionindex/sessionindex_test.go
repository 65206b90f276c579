package sessionindex

import (
	"hash"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/blake3"

	"github.com/datatrails-labs/ucf-core/digest"
)

func newBlake3() hash.Hash {
	return blake3.New(digest.Size, nil)
}

func fixedDigest(b byte) digest.Digest {
	var d digest.Digest
	for i := range d {
		d[i] = b
	}
	return d
}

func TestBuildAndLookup(t *testing.T) {
	entries := []Entry{
		{Key: 0, Value: fixedDigest(1)},
		{Key: 1, Value: fixedDigest(2)},
		{Key: 2, Value: fixedDigest(3)},
	}
	idx, err := Build(newBlake3, entries)
	require.NoError(t, err)

	v, ok := idx.Lookup(1)
	require.True(t, ok)
	require.Equal(t, fixedDigest(2), v)

	_, ok = idx.Lookup(99)
	require.False(t, ok)
}

func TestRootIsDeterministic(t *testing.T) {
	entries := []Entry{
		{Key: 0, Value: fixedDigest(1)},
		{Key: 5, Value: fixedDigest(2)},
	}
	a, err := Build(newBlake3, entries)
	require.NoError(t, err)
	b, err := Build(newBlake3, entries)
	require.NoError(t, err)
	require.Equal(t, a.Root(), b.Root())
}

func TestRootChangesWithValue(t *testing.T) {
	base := []Entry{{Key: 0, Value: fixedDigest(1)}}
	changed := []Entry{{Key: 0, Value: fixedDigest(2)}}

	a, err := Build(newBlake3, base)
	require.NoError(t, err)
	b, err := Build(newBlake3, changed)
	require.NoError(t, err)
	require.NotEqual(t, a.Root(), b.Root())
}

func TestEmptyIndexRootIsZero(t *testing.T) {
	idx, err := Build(newBlake3, nil)
	require.NoError(t, err)
	require.Equal(t, digest.Zero, idx.Root())
}
