package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails-labs/ucf-core/wire"
)

func TestPolicyDecisionRoundTrip(t *testing.T) {
	decision := &PolicyDecision{
		Decision:    DecisionFormAllow,
		ReasonCodes: &ReasonCodes{Codes: []string{"low-risk", "routine"}},
		Constraints: &ConstraintsDelta{ConstraintsAdded: []string{"rate-limit"}},
	}
	canonicalBytes, err := wire.CanonicalBytes(decision)
	require.NoError(t, err)
	fields, err := wire.Decode(canonicalBytes)
	require.NoError(t, err)
	decoded, err := DecodePolicyDecision(fields)
	require.NoError(t, err)
	require.Equal(t, decision, decoded)
}

func TestApprovalPackageApproversRoundTrip(t *testing.T) {
	pkg := &ApprovalPackage{
		ApprovalID:     "approval-1",
		Subject:        &Ref{URI: "did:example:subject"},
		DecisionDigest: &Digest32{Value: []byte{0x01}},
		Approvers: []*Signature{
			{Algorithm: "ed25519", Signer: []byte{0x01}, Signature: []byte{0x02}},
			{Algorithm: "ed25519", Signer: []byte{0x03}, Signature: []byte{0x04}},
		},
		Status:      DecisionFormAllow,
		ReasonCodes: &ReasonCodes{Codes: []string{"quorum-met"}},
	}
	canonicalBytes, err := wire.CanonicalBytes(pkg)
	require.NoError(t, err)
	fields, err := wire.Decode(canonicalBytes)
	require.NoError(t, err)
	decoded, err := DecodeApprovalPackage(fields)
	require.NoError(t, err)
	require.Equal(t, pkg, decoded)
	require.Len(t, decoded.Approvers, 2)
}
