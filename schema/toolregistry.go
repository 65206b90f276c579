package schema

import "github.com/datatrails-labs/ucf-core/wire"

// ToolRegistryProfile declares a tool's identity, version, and
// capabilities to the governance pipeline. ProfileDigest is the digest a
// package registry membership filter (C11) is built over.
type ToolRegistryProfile struct {
	ToolID        string
	ToolVersion   string
	Capabilities  []string // set — sorted by caller before encoding
	ProfileDigest *Digest32
}

func (t *ToolRegistryProfile) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, t.ToolID, false)
	b.String(2, t.ToolVersion, false)
	b.RepeatedString(3, t.Capabilities)
	if err := b.Message(4, t.ProfileDigest, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeToolRegistryProfile(fields []wire.Field) (*ToolRegistryProfile, error) {
	t := &ToolRegistryProfile{
		ToolID:       wire.GetString(fields, 1),
		ToolVersion:  wire.GetString(fields, 2),
		Capabilities: wire.GetRepeatedStrings(fields, 3),
	}
	if inner, ok, err := decodeNested(fields, 4); err != nil {
		return nil, err
	} else if ok {
		t.ProfileDigest = DecodeDigest32(inner)
	}
	return t, nil
}
