package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails-labs/ucf-core/digest"
)

func fixedDigest(b byte) digest.Digest {
	var d digest.Digest
	for i := range d {
		d[i] = b
	}
	return d
}

// TestChainSensitivity covers P5 and scenario 5: changing prev,
// verified-fields digest, or commit_id must change record_digest.
func TestChainSensitivity(t *testing.T) {
	verifiedFields := fixedDigest(3)
	prev := Genesis
	base := RecordDigest(verifiedFields, prev, []byte("commit-abc123"))

	withDifferentCommit := RecordDigest(verifiedFields, prev, []byte("commit-xyz789"))
	require.NotEqual(t, base, withDifferentCommit)

	withDifferentPrev := RecordDigest(verifiedFields, fixedDigest(9), []byte("commit-abc123"))
	require.NotEqual(t, base, withDifferentPrev)

	withDifferentFields := RecordDigest(fixedDigest(4), prev, []byte("commit-abc123"))
	require.NotEqual(t, base, withDifferentFields)
}

func TestGenesisIsAllZero(t *testing.T) {
	require.True(t, IsGenesis(Genesis))
	require.Equal(t, digest.Zero, Genesis)
}

func TestVerifyChainDetectsTamperedLink(t *testing.T) {
	verifiedFields := fixedDigest(1)
	l0Digest := RecordDigest(verifiedFields, Genesis, []byte("commit-0"))
	l1Digest := RecordDigest(fixedDigest(2), l0Digest, []byte("commit-1"))

	links := []Link{
		{VerifiedFieldsDigest: verifiedFields, Prev: Genesis, CommitID: []byte("commit-0"), Digest: l0Digest},
		{VerifiedFieldsDigest: fixedDigest(2), Prev: l0Digest, CommitID: []byte("commit-1"), Digest: l1Digest},
	}
	require.Equal(t, -1, VerifyChain(links))

	links[1].Digest = fixedDigest(0xFF)
	require.Equal(t, 1, VerifyChain(links))
}
