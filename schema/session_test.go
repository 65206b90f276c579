package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails-labs/ucf-core/wire"
)

// TestSessionEventRecordGenesisPrevIsExplicit covers invariant 4: a genesis
// record still carries its zero-digest Prev on the wire rather than omitting
// the field.
func TestSessionEventRecordGenesisPrevIsExplicit(t *testing.T) {
	record := &SessionEventRecord{
		SessionID:        "session-1",
		Ordinal:          0,
		EventType:        "start",
		PayloadDigest:    &Digest32{Value: []byte{0x01}},
		PrevRecordDigest: &Digest32{Value: make([]byte, 32)},
		RecordDigest:     &Digest32{Value: []byte{0x02}},
	}
	fields, err := record.CanonicalFields()
	require.NoError(t, err)
	_, ok := wire.Lookup(fields, 5)
	require.True(t, ok, "PrevRecordDigest must be present on the wire even at genesis")

	canonicalBytes, err := wire.CanonicalBytes(record)
	require.NoError(t, err)
	decodedFields, err := wire.Decode(canonicalBytes)
	require.NoError(t, err)
	decoded, err := DecodeSessionEventRecord(decodedFields)
	require.NoError(t, err)
	require.Equal(t, record, decoded)
}

func TestNewRecordIDIsUniqueAndNonEmpty(t *testing.T) {
	a := NewRecordID()
	b := NewRecordID()
	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
}
