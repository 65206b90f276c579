// Package schema holds the concrete UCF record types exercised by this
// repository's core (§3). In production these would be supplied by an
// external schema catalog; here they are defined directly so the canonical
// encoder, digest binder, hash-chain and receipt issuer all have real,
// versioned record shapes to operate on.
package schema

import (
	"github.com/datatrails-labs/ucf-core/wire"
)

// Digest32 carries a 32-byte digest value as a record field (distinct from
// package digest's Digest, which is the in-memory form used by the core
// components; Digest32 is the wire-level record wrapping it).
type Digest32 struct {
	Value []byte
}

func (d *Digest32) CanonicalFields() ([]wire.Field, error) {
	if d == nil {
		return nil, nil
	}
	b := &wire.FieldBuilder{}
	b.Bytes(1, d.Value, false)
	return b.Build(), nil
}

func DecodeDigest32(fields []wire.Field) *Digest32 {
	if fields == nil {
		return nil
	}
	return &Digest32{Value: wire.GetBytes(fields, 1)}
}

// Ref is an opaque pointer to another record's digest-addressable
// location. The core treats it as byte-transparent.
type Ref struct {
	URI   string
	Label string
}

func (r *Ref) CanonicalFields() ([]wire.Field, error) {
	if r == nil {
		return nil, nil
	}
	b := &wire.FieldBuilder{}
	b.String(1, r.URI, false)
	b.String(2, r.Label, false)
	return b.Build(), nil
}

func DecodeRef(fields []wire.Field) *Ref {
	if fields == nil {
		return nil
	}
	return &Ref{URI: wire.GetString(fields, 1), Label: wire.GetString(fields, 2)}
}

// Signature covers either a record digest or a receipt digest — which one
// is always fixed per call site, never ambiguous within a single record.
type Signature struct {
	Algorithm string
	Signer    []byte
	Signature []byte
}

func (s *Signature) CanonicalFields() ([]wire.Field, error) {
	if s == nil {
		return nil, nil
	}
	b := &wire.FieldBuilder{}
	b.String(1, s.Algorithm, false)
	b.Bytes(2, s.Signer, false)
	b.Bytes(3, s.Signature, false)
	return b.Build(), nil
}

func DecodeSignature(fields []wire.Field) *Signature {
	if fields == nil {
		return nil
	}
	return &Signature{
		Algorithm: wire.GetString(fields, 1),
		Signer:    wire.GetBytes(fields, 2),
		Signature: wire.GetBytes(fields, 3),
	}
}

// ReasonCodes is a set-typed repeated field wrapper: Codes MUST be sorted
// ascending by the producer before CanonicalFields is called (§4.1's set
// discipline — the encoder trusts the caller).
type ReasonCodes struct {
	Codes []string
}

func (r *ReasonCodes) CanonicalFields() ([]wire.Field, error) {
	if r == nil {
		return nil, nil
	}
	b := &wire.FieldBuilder{}
	b.RepeatedString(1, r.Codes)
	return b.Build(), nil
}

func DecodeReasonCodes(fields []wire.Field) *ReasonCodes {
	if fields == nil {
		return nil
	}
	return &ReasonCodes{Codes: wire.GetRepeatedStrings(fields, 1)}
}

// ConstraintsDelta describes the set of constraint labels added and
// removed by a PolicyDecision. Both fields are sets.
type ConstraintsDelta struct {
	ConstraintsAdded   []string
	ConstraintsRemoved []string
}

func (c *ConstraintsDelta) CanonicalFields() ([]wire.Field, error) {
	if c == nil {
		return nil, nil
	}
	b := &wire.FieldBuilder{}
	b.RepeatedString(1, c.ConstraintsAdded)
	b.RepeatedString(2, c.ConstraintsRemoved)
	return b.Build(), nil
}

func DecodeConstraintsDelta(fields []wire.Field) *ConstraintsDelta {
	if fields == nil {
		return nil
	}
	return &ConstraintsDelta{
		ConstraintsAdded:   wire.GetRepeatedStrings(fields, 1),
		ConstraintsRemoved: wire.GetRepeatedStrings(fields, 2),
	}
}

// decodeNested is a small shared helper: look up field `number`, and if
// present, hand its raw bytes to wire.Decode so a caller can project a
// nested message's fields.
func decodeNested(fields []wire.Field, number uint32) ([]wire.Field, bool, error) {
	f, ok := wire.Lookup(fields, number)
	if !ok {
		return nil, false, nil
	}
	inner, err := wire.Decode(f.Bytes)
	if err != nil {
		return nil, true, err
	}
	return inner, true, nil
}
