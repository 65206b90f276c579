package epoch

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	return key
}

func TestSealVerifyRoundTrip(t *testing.T) {
	key := generateKey(t)
	sealed, err := Seal(3, "attest-key-3", []byte{0x01, 0x02}, []byte{0x03, 0x04}, key)
	require.NoError(t, err)
	require.NotNil(t, sealed.EpochSignature)

	err = Verify(sealed, &key.PublicKey)
	require.NoError(t, err)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	key := generateKey(t)
	wrongKey := generateKey(t)
	sealed, err := Seal(3, "attest-key-3", []byte{0x01}, []byte{0x02}, key)
	require.NoError(t, err)

	err = Verify(sealed, &wrongKey.PublicKey)
	require.Error(t, err)
}

func TestManagerWithEpochLookup(t *testing.T) {
	key := generateKey(t)
	sealed, err := Seal(9, "attest-key-9", []byte{0x01}, []byte{0x02}, key)
	require.NoError(t, err)

	mgr := NewManager(WithEpoch(sealed))
	got, ok := mgr.Lookup(9)
	require.True(t, ok)
	require.Equal(t, sealed, got)

	_, ok = mgr.Lookup(10)
	require.False(t, ok)
}

func TestCheckEpochConsistency(t *testing.T) {
	require.NoError(t, CheckEpochConsistency(5, 5, 5))
	require.ErrorIs(t, CheckEpochConsistency(5, 6, 5), ErrEpochMismatch)
	require.ErrorIs(t, CheckEpochConsistency(5, 5, 6), ErrEpochMismatch)
}
