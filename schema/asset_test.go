package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails-labs/ucf-core/digest"
	"github.com/datatrails-labs/ucf-core/wire"
)

// TestMicrocircuitConfigHPAScenario is scenario 2 of the suite, checked in
// memory: with every optional field absent, decode then re-encode
// reproduces the canonical bytes exactly, and the digest under the
// declared domain is reproducible. No side-car file is written or read.
func TestMicrocircuitConfigHPAScenario(t *testing.T) {
	configDigest := make([]byte, 32)
	for i := range configDigest {
		configDigest[i] = 0x44
	}

	evidence := &MicrocircuitConfigEvidence{
		Module:        MicrocircuitModuleHPA,
		ConfigVersion: 1,
		ConfigDigest:  &Digest32{Value: configDigest},
		CreatedAtMs:   1_700_125_000,
		// PrevConfigDigest, ProofReceiptRef, AttestationSig, AttestationKeyID: all none.
	}

	canonicalBytes, err := wire.CanonicalBytes(evidence)
	require.NoError(t, err)

	decodedFields, err := wire.Decode(canonicalBytes)
	require.NoError(t, err)
	decoded, err := DecodeMicrocircuitConfigEvidence(decodedFields)
	require.NoError(t, err)

	require.Equal(t, MicrocircuitModuleHPA, decoded.Module)
	require.Equal(t, uint64(1), decoded.ConfigVersion)
	require.Equal(t, configDigest, decoded.ConfigDigest.Value)
	require.Equal(t, uint64(1_700_125_000), decoded.CreatedAtMs)
	require.Nil(t, decoded.PrevConfigDigest)
	require.Nil(t, decoded.ProofReceiptRef)
	require.Nil(t, decoded.AttestationSig)
	require.Equal(t, "", decoded.AttestationKeyID)

	reencoded, err := wire.CanonicalBytes(decoded)
	require.NoError(t, err)
	require.Equal(t, canonicalBytes, reencoded)

	d1 := digest.Compute(digest.DomainHashMicrocircuit, SchemaMicrocircuitConfigEvidence.SchemaID, Version, canonicalBytes)
	d2 := digest.Compute(digest.DomainHashMicrocircuit, SchemaMicrocircuitConfigEvidence.SchemaID, Version, canonicalBytes)
	require.Equal(t, d1, d2)
}

func TestAssetManifestSetOrdering(t *testing.T) {
	manifest := &AssetManifest{
		ManifestID: "manifest-1",
		Assets: []*Ref{
			{URI: "urn:asset:a"},
			{URI: "urn:asset:b"},
		},
	}
	fields, err := manifest.CanonicalFields()
	require.NoError(t, err)

	assetFields := wire.LookupAll(fields, 2)
	require.Len(t, assetFields, 2)

	first, err := wire.Decode(assetFields[0].Bytes)
	require.NoError(t, err)
	require.Equal(t, "urn:asset:a", wire.GetString(first, 1))
}

func TestConnectivityGraphEdgeRoundTrip(t *testing.T) {
	payload := &ConnectivityGraphPayload{
		Edges: []*ConnEdge{
			{Source: 1, Target: 2, WeightDigest: &Digest32{Value: []byte{0x01, 0x02}}},
		},
	}
	canonicalBytes, err := wire.CanonicalBytes(payload)
	require.NoError(t, err)

	fields, err := wire.Decode(canonicalBytes)
	require.NoError(t, err)
	decoded, err := DecodeConnectivityGraphPayload(fields)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}
