package schema

import "github.com/datatrails-labs/ucf-core/wire"

// SessionEventRecord is one link in a session-event-protocol chain: a
// chained record (invariant 4, §3) whose Ordinal also indexes it in
// package sessionindex for verifiable lookup.
type SessionEventRecord struct {
	SessionID        string
	Ordinal          uint64
	EventType        string
	PayloadDigest    *Digest32
	PrevRecordDigest *Digest32
	RecordDigest     *Digest32
}

func (s *SessionEventRecord) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, s.SessionID, false)
	b.Uint64(2, s.Ordinal, false)
	b.String(3, s.EventType, false)
	if err := b.Message(4, s.PayloadDigest, false); err != nil {
		return nil, err
	}
	if err := b.Message(5, s.PrevRecordDigest, true); err != nil {
		return nil, err
	}
	if err := b.Message(6, s.RecordDigest, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeSessionEventRecord(fields []wire.Field) (*SessionEventRecord, error) {
	s := &SessionEventRecord{
		SessionID: wire.GetString(fields, 1),
		Ordinal:   wire.GetUint64(fields, 2),
		EventType: wire.GetString(fields, 3),
	}
	if inner, ok, err := decodeNested(fields, 4); err != nil {
		return nil, err
	} else if ok {
		s.PayloadDigest = DecodeDigest32(inner)
	}
	if inner, ok, err := decodeNested(fields, 5); err != nil {
		return nil, err
	} else if ok {
		s.PrevRecordDigest = DecodeDigest32(inner)
	}
	if inner, ok, err := decodeNested(fields, 6); err != nil {
		return nil, err
	} else if ok {
		s.RecordDigest = DecodeDigest32(inner)
	}
	return s, nil
}
