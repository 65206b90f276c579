package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails-labs/ucf-core/wire"
)

// TestReplayPlanStepsAreOrderSignificant covers P2: Steps is a sequence, not
// a set, so reordering it must change the canonical bytes.
func TestReplayPlanStepsAreOrderSignificant(t *testing.T) {
	forward := &ReplayPlan{
		PlanID: "plan-1",
		Steps: []*Ref{
			{URI: "urn:step:1"},
			{URI: "urn:step:2"},
		},
	}
	reversed := &ReplayPlan{
		PlanID: "plan-1",
		Steps: []*Ref{
			{URI: "urn:step:2"},
			{URI: "urn:step:1"},
		},
	}
	forwardBytes, err := wire.CanonicalBytes(forward)
	require.NoError(t, err)
	reversedBytes, err := wire.CanonicalBytes(reversed)
	require.NoError(t, err)
	require.NotEqual(t, forwardBytes, reversedBytes)
}

func TestRunEvidenceRecordDigestsRoundTrip(t *testing.T) {
	evidence := &RunEvidence{
		RunID:   "run-1",
		PlanRef: &Ref{URI: "urn:plan:1"},
		RecordDigests: []*Digest32{
			{Value: []byte{0x01}},
			{Value: []byte{0x02}},
		},
		EvidenceLogRoot: &Digest32{Value: []byte{0x03}},
	}
	canonicalBytes, err := wire.CanonicalBytes(evidence)
	require.NoError(t, err)
	fields, err := wire.Decode(canonicalBytes)
	require.NoError(t, err)
	decoded, err := DecodeRunEvidence(fields)
	require.NoError(t, err)
	require.Equal(t, evidence, decoded)
}
