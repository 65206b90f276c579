package schema

import "github.com/datatrails-labs/ucf-core/wire"

// SignalFrame is the richer, later shape referenced by spec.md's Open
// Question (i): earlier fixture generators in the original material used a
// narrower shape without ObservedChannels; this repository implements the
// richer one throughout.
type SignalFrame struct {
	FrameID          string
	Channel          Channel
	ObservedChannels []string // set — sorted by caller before encoding
	PayloadDigest    *Digest32
	TimestampMs      uint64
}

func (s *SignalFrame) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, s.FrameID, false)
	b.Int64(2, int64(s.Channel), false)
	b.RepeatedString(3, s.ObservedChannels)
	if err := b.Message(4, s.PayloadDigest, false); err != nil {
		return nil, err
	}
	b.Uint64(5, s.TimestampMs, false)
	return b.Build(), nil
}

func DecodeSignalFrame(fields []wire.Field) (*SignalFrame, error) {
	s := &SignalFrame{
		FrameID:          wire.GetString(fields, 1),
		Channel:          Channel(wire.GetUint64(fields, 2)),
		ObservedChannels: wire.GetRepeatedStrings(fields, 3),
		TimestampMs:      wire.GetUint64(fields, 5),
	}
	if inner, ok, err := decodeNested(fields, 4); err != nil {
		return nil, err
	} else if ok {
		s.PayloadDigest = DecodeDigest32(inner)
	}
	return s, nil
}

// ControlFrame issues a directive to a target referenced elsewhere in the
// record graph.
type ControlFrame struct {
	FrameID     string
	TargetRef   *Ref
	Directive   string
	Params      []string // set — sorted by caller before encoding
	TimestampMs uint64
}

func (c *ControlFrame) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, c.FrameID, false)
	if err := b.Message(2, c.TargetRef, false); err != nil {
		return nil, err
	}
	b.String(3, c.Directive, false)
	b.RepeatedString(4, c.Params)
	b.Uint64(5, c.TimestampMs, false)
	return b.Build(), nil
}

func DecodeControlFrame(fields []wire.Field) (*ControlFrame, error) {
	c := &ControlFrame{
		FrameID:     wire.GetString(fields, 1),
		Directive:   wire.GetString(fields, 3),
		Params:      wire.GetRepeatedStrings(fields, 4),
		TimestampMs: wire.GetUint64(fields, 5),
	}
	if inner, ok, err := decodeNested(fields, 2); err != nil {
		return nil, err
	} else if ok {
		c.TargetRef = DecodeRef(inner)
	}
	return c, nil
}
