package determinism

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails-labs/ucf-core/digest"
	"github.com/datatrails-labs/ucf-core/fixture"
	"github.com/datatrails-labs/ucf-core/logging"
	"github.com/datatrails-labs/ucf-core/schema"
	"github.com/datatrails-labs/ucf-core/wire"
)

func intentEntry() fixture.Entry {
	return fixture.Entry{
		Name:   "canonical_intent",
		Schema: schema.SchemaCanonicalIntent,
		Verify: func(canonicalBytes []byte) (wire.Record, error) {
			fields, err := wire.Decode(canonicalBytes)
			if err != nil {
				return nil, err
			}
			return schema.DecodeCanonicalIntent(fields)
		},
	}
}

// readBinSidecar loads a fixture's `.bin` side-car, in the shape
// VerifyRegistry expects of its loader.
func readBinSidecar(dir, name string) ([]byte, error) {
	return fixture.ReadBin(fixture.BinPath(dir, name))
}

func TestVerifyFixtureAcceptsMatchingDigest(t *testing.T) {
	entry := intentEntry()
	intent := &schema.CanonicalIntent{IntentID: "det-1", Channel: schema.ChannelRealtime}
	canonicalBytes, err := wire.CanonicalBytes(intent)
	require.NoError(t, err)
	d := digest.Compute(entry.Schema.Domain, entry.Schema.SchemaID, schema.Version, canonicalBytes)

	record, err := VerifyFixture(entry, canonicalBytes, d, schema.Version)
	require.NoError(t, err)
	require.Equal(t, intent, record)
}

func TestVerifyFixtureRejectsDigestMismatch(t *testing.T) {
	entry := intentEntry()
	intent := &schema.CanonicalIntent{IntentID: "det-2"}
	canonicalBytes, err := wire.CanonicalBytes(intent)
	require.NoError(t, err)

	_, err = VerifyFixture(entry, canonicalBytes, digest.Zero, schema.Version)
	require.Error(t, err)
	var mismatch *Mismatch
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "digest-equality", mismatch.Check)
}

func TestVerifyFixtureRejectsDecodeFailure(t *testing.T) {
	entry := intentEntry()
	_, err := VerifyFixture(entry, []byte{0xFF, 0xFF, 0xFF}, digest.Zero, schema.Version)
	require.Error(t, err)
	var mismatch *Mismatch
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "decode", mismatch.Check)
}

func TestVerifyLiteralRejectsByteMismatch(t *testing.T) {
	literal := &schema.CanonicalIntent{IntentID: "det-3"}
	err := VerifyLiteral("canonical_intent", literal, []byte{0x00, 0x01})
	require.Error(t, err)
}

func TestVerifyRegistryReportsPerFixtureErrors(t *testing.T) {
	dir := t.TempDir()
	entry := intentEntry()
	intent := &schema.CanonicalIntent{IntentID: "det-4"}
	canonicalBytes, err := wire.CanonicalBytes(intent)
	require.NoError(t, err)
	require.NoError(t, fixture.WriteBin(fixture.BinPath(dir, entry.Name), canonicalBytes))
	require.NoError(t, fixture.WriteDigest(fixture.DigestPath(dir, entry.Name), digest.Zero))

	reg := fixture.NewRegistry([]fixture.Entry{entry}, nil)
	errs := VerifyRegistry(reg, dir, schema.Version, readBinSidecar, logging.Noop())
	require.Len(t, errs, 1)
	var mismatch *Mismatch
	require.ErrorAs(t, errs[0], &mismatch)
	require.Equal(t, "digest-equality", mismatch.Check)
}

func TestVerifyRegistrySucceedsWhenFixturesMatch(t *testing.T) {
	dir := t.TempDir()
	entry := intentEntry()
	intent := &schema.CanonicalIntent{IntentID: "det-5"}
	canonicalBytes, err := wire.CanonicalBytes(intent)
	require.NoError(t, err)
	d := digest.Compute(entry.Schema.Domain, entry.Schema.SchemaID, schema.Version, canonicalBytes)
	require.NoError(t, fixture.WriteBin(fixture.BinPath(dir, entry.Name), canonicalBytes))
	require.NoError(t, fixture.WriteDigest(fixture.DigestPath(dir, entry.Name), d))

	reg := fixture.NewRegistry([]fixture.Entry{entry}, nil)
	errs := VerifyRegistry(reg, dir, schema.Version, fixture.ReadBin, logging.Noop())
	require.Empty(t, errs)
}
