package schema

import "github.com/datatrails-labs/ucf-core/wire"

// FinalizationHeader seals an ExperienceRecord: it fixes the record into
// the hash-chain (invariant 4) and cross-references the VRF tag and
// proof-receipt issued for it (invariants 2, 5).
type FinalizationHeader struct {
	ExperienceID         string
	TimestampMs          uint64
	PrevRecordDigest     *Digest32
	RecordDigest         *Digest32
	VrfDigestRef         *Ref
	ProofReceiptRef      *Ref
	CharterVersionDigest string
}

func (h *FinalizationHeader) CanonicalFields() ([]wire.Field, error) {
	if h == nil {
		return nil, nil
	}
	b := &wire.FieldBuilder{}
	b.String(1, h.ExperienceID, false)
	b.Uint64(2, h.TimestampMs, false)
	if err := b.Message(3, h.PrevRecordDigest, true); err != nil {
		return nil, err
	}
	if err := b.Message(4, h.RecordDigest, false); err != nil {
		return nil, err
	}
	if err := b.Message(5, h.VrfDigestRef, false); err != nil {
		return nil, err
	}
	if err := b.Message(6, h.ProofReceiptRef, false); err != nil {
		return nil, err
	}
	b.String(7, h.CharterVersionDigest, false)
	return b.Build(), nil
}

func DecodeFinalizationHeader(fields []wire.Field) (*FinalizationHeader, error) {
	h := &FinalizationHeader{
		ExperienceID:         wire.GetString(fields, 1),
		TimestampMs:          wire.GetUint64(fields, 2),
		CharterVersionDigest: wire.GetString(fields, 7),
	}
	if inner, ok, err := decodeNested(fields, 3); err != nil {
		return nil, err
	} else if ok {
		h.PrevRecordDigest = DecodeDigest32(inner)
	}
	if inner, ok, err := decodeNested(fields, 4); err != nil {
		return nil, err
	} else if ok {
		h.RecordDigest = DecodeDigest32(inner)
	}
	if inner, ok, err := decodeNested(fields, 5); err != nil {
		return nil, err
	} else if ok {
		h.VrfDigestRef = DecodeRef(inner)
	}
	if inner, ok, err := decodeNested(fields, 6); err != nil {
		return nil, err
	} else if ok {
		h.ProofReceiptRef = DecodeRef(inner)
	}
	return h, nil
}

// ExperienceRecord is the top-level sealed unit of the governance
// pipeline: it binds together the perception, action, and output frames
// for one governed step and carries the header that chains and attests it.
type ExperienceRecord struct {
	RecordType         RecordType
	CoreFrameRef       *Ref
	MetabolicFrameRef  *Ref
	GovernanceFrameRef *Ref
	FinalizationHeader *FinalizationHeader
}

func (r *ExperienceRecord) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.Int64(1, int64(r.RecordType), false)
	if err := b.Message(2, r.CoreFrameRef, false); err != nil {
		return nil, err
	}
	if err := b.Message(3, r.MetabolicFrameRef, false); err != nil {
		return nil, err
	}
	if err := b.Message(4, r.GovernanceFrameRef, false); err != nil {
		return nil, err
	}
	if err := b.Message(5, r.FinalizationHeader, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeExperienceRecord(fields []wire.Field) (*ExperienceRecord, error) {
	r := &ExperienceRecord{RecordType: RecordType(wire.GetUint64(fields, 1))}
	if inner, ok, err := decodeNested(fields, 2); err != nil {
		return nil, err
	} else if ok {
		r.CoreFrameRef = DecodeRef(inner)
	}
	if inner, ok, err := decodeNested(fields, 3); err != nil {
		return nil, err
	} else if ok {
		r.MetabolicFrameRef = DecodeRef(inner)
	}
	if inner, ok, err := decodeNested(fields, 4); err != nil {
		return nil, err
	} else if ok {
		r.GovernanceFrameRef = DecodeRef(inner)
	}
	if inner, ok, err := decodeNested(fields, 5); err != nil {
		return nil, err
	} else if ok {
		h, err := DecodeFinalizationHeader(inner)
		if err != nil {
			return nil, err
		}
		r.FinalizationHeader = h
	}
	return r, nil
}
