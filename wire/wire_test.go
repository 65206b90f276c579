package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stringRecord struct {
	value string
}

func (r stringRecord) CanonicalFields() ([]Field, error) {
	b := &FieldBuilder{}
	b.String(1, r.value, false)
	return b.Build(), nil
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	fields := []Field{
		{Number: 1, Type: Varint, Varint: 42},
		{Number: 2, Type: LengthDelimited, Bytes: []byte("hello")},
	}
	encoded, err := Encode(fields)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, fields, decoded)
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	fields := []Field{{Number: 1, Type: Varint, Varint: 1}}
	encoded, err := Encode(fields)
	require.NoError(t, err)

	_, err = Decode(append(encoded, 0xFF, 0xFF, 0xFF))
	require.Error(t, err)
}

func TestUnknownFieldsPreservedOnRoundTrip(t *testing.T) {
	// A decoder given fields it doesn't recognize (field number 99) must
	// still carry them through re-encoding unchanged.
	fields := []Field{
		{Number: 1, Type: Varint, Varint: 1},
		{Number: 99, Type: LengthDelimited, Bytes: []byte{0xDE, 0xAD}},
	}
	encoded, err := Encode(fields)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	reencoded, err := Encode(decoded)
	require.NoError(t, err)
	require.Equal(t, encoded, reencoded)
}

func TestCanonicalBytesUsesRecordFields(t *testing.T) {
	r := stringRecord{value: "abc"}
	b, err := CanonicalBytes(r)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	decoded, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, "abc", GetString(decoded, 1))
}

func TestLookupAndLookupAll(t *testing.T) {
	fields := []Field{
		{Number: 3, Type: LengthDelimited, Bytes: []byte("a")},
		{Number: 3, Type: LengthDelimited, Bytes: []byte("b")},
	}
	all := LookupAll(fields, 3)
	require.Len(t, all, 2)

	first, ok := Lookup(fields, 3)
	require.True(t, ok)
	require.Equal(t, []byte("a"), first.Bytes)

	_, ok = Lookup(fields, 7)
	require.False(t, ok)
}
