package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails-labs/ucf-core/digest"
)

func TestFilterInsertAndMaybeContains(t *testing.T) {
	f, err := NewFilter(1000, 10, 4)
	require.NoError(t, err)

	present := digest.Compute(digest.DomainCore, "ucf.v1.ToolRegistryProfile", "1", []byte("tool-a"))
	absent := digest.Compute(digest.DomainCore, "ucf.v1.ToolRegistryProfile", "1", []byte("tool-b"))

	require.NoError(t, f.Insert(0, present))

	ok, err := f.MaybeContains(0, present)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = f.MaybeContains(0, absent)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFilterSlotsAreIndependent(t *testing.T) {
	f, err := NewFilter(1000, 10, 4)
	require.NoError(t, err)

	d := digest.Compute(digest.DomainCore, "ucf.v1.ToolRegistryProfile", "1", []byte("tool-a"))
	require.NoError(t, f.Insert(0, d))

	ok, err := f.MaybeContains(1, d)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFilterBytesRoundTrip(t *testing.T) {
	f, err := NewFilter(1000, 10, 4)
	require.NoError(t, err)
	d := digest.Compute(digest.DomainCore, "ucf.v1.ToolRegistryProfile", "1", []byte("tool-a"))
	require.NoError(t, f.Insert(0, d))

	reloaded, err := FromBytes(f.Bytes())
	require.NoError(t, err)
	ok, err := reloaded.MaybeContains(0, d)
	require.NoError(t, err)
	require.True(t, ok)
}
