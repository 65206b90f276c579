package receipt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails-labs/ucf-core/chain"
	"github.com/datatrails-labs/ucf-core/digest"
	"github.com/datatrails-labs/ucf-core/schema"
	"github.com/datatrails-labs/ucf-core/vrf"
)

func fixedDigest(b byte) digest.Digest {
	var d digest.Digest
	for i := range d {
		d[i] = b
	}
	return d
}

func sampleValidator() *schema.Signature {
	signer := make([]byte, 32)
	sig := make([]byte, 64)
	for i := range signer {
		signer[i] = 0xAA
	}
	for i := range sig {
		sig[i] = 0xBB
	}
	return &schema.Signature{Algorithm: "ed25519", Signer: signer, Signature: sig}
}

// TestIssueProofReceiptCarriesVRFDigest covers P8 and scenario 4.
func TestIssueProofReceiptCarriesVRFDigest(t *testing.T) {
	vrfEngine, err := vrf.NewDevEngine(5)
	require.NoError(t, err)
	issuer := NewIssuer(vrfEngine)

	verifiedFields := fixedDigest(3)
	prev := chain.Genesis
	commitID := []byte("commit-abc123")

	out, err := issuer.IssueProofReceipt(Inputs{
		Status:               schema.ReceiptStatusAccepted,
		ReceiptDigest:         fixedDigest(9),
		VerifiedFieldsDigest: verifiedFields,
		PrevRecordDigest:     prev,
		CharterDigest:        "charter-digest",
		ProfileDigest:        fixedDigest(2),
		CommitID:             commitID,
		EpochID:              vrfEngine.CurrentEpoch(),
		Validator:            sampleValidator(),
	})
	require.NoError(t, err)

	gotVRF, err := digest.FromBytes(out.VrfDigest.Value)
	require.NoError(t, err)
	require.False(t, gotVRF.IsZero())

	expectedRecordDigest := chain.RecordDigest(verifiedFields, prev, commitID)
	expectedVRF, err := vrfEngine.EvalRecordVRF(prev, expectedRecordDigest, "charter-digest", fixedDigest(2), vrfEngine.CurrentEpoch())
	require.NoError(t, err)
	require.Equal(t, expectedVRF, gotVRF)
}

func TestIssueProofReceiptRejectsEpochMismatch(t *testing.T) {
	vrfEngine, err := vrf.NewDevEngine(5)
	require.NoError(t, err)
	issuer := NewIssuer(vrfEngine)

	_, err = issuer.IssueProofReceipt(Inputs{
		Status:               schema.ReceiptStatusAccepted,
		VerifiedFieldsDigest: fixedDigest(3),
		EpochID:              999,
		Validator:            sampleValidator(),
	})
	require.ErrorIs(t, err, ErrEpochMismatch)
}

func TestIssueProofReceiptRejectsZeroVerifiedFieldsDigest(t *testing.T) {
	vrfEngine, err := vrf.NewDevEngine(5)
	require.NoError(t, err)
	issuer := NewIssuer(vrfEngine)

	_, err = issuer.IssueProofReceipt(Inputs{
		Status:    schema.ReceiptStatusAccepted,
		EpochID:   vrfEngine.CurrentEpoch(),
		Validator: sampleValidator(),
	})
	require.ErrorIs(t, err, ErrInvalidVerifiedFieldsDigest)
}

// TestRejectedIsFirstClassOutcome covers the spec's "rejection is
// auditable" design note: a rejected status still produces a fully
// formed, VRF-tagged receipt rather than an error.
func TestRejectedIsFirstClassOutcome(t *testing.T) {
	vrfEngine, err := vrf.NewDevEngine(5)
	require.NoError(t, err)
	issuer := NewIssuer(vrfEngine)

	out, err := issuer.IssueProofReceipt(Inputs{
		Status:               schema.ReceiptStatusRejected,
		VerifiedFieldsDigest: fixedDigest(3),
		PrevRecordDigest:     chain.Genesis,
		CharterDigest:        "charter-digest",
		ProfileDigest:        fixedDigest(2),
		CommitID:             []byte("commit-rejected"),
		EpochID:              vrfEngine.CurrentEpoch(),
		Validator:            sampleValidator(),
	})
	require.NoError(t, err)
	require.Equal(t, schema.ReceiptStatusRejected, out.Status)
	require.NotNil(t, out.VrfDigest)
}
