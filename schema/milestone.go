package schema

import "github.com/datatrails-labs/ucf-core/wire"

// Milestone is a node in a hierarchical milestone tree: ParentMilestoneRef
// points up, ChildRefs point down. ChildRefs is a set — the producer sorts
// it (by URI) before encoding.
type Milestone struct {
	MilestoneID        string
	ParentMilestoneRef *Ref
	ChildRefs          []*Ref // set — sorted by caller before encoding
	Status             MilestoneStatus
	Digest             *Digest32
}

func (m *Milestone) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, m.MilestoneID, false)
	if err := b.Message(2, m.ParentMilestoneRef, false); err != nil {
		return nil, err
	}
	children := make([]wire.Record, len(m.ChildRefs))
	for i, r := range m.ChildRefs {
		children[i] = r
	}
	if err := b.RepeatedMessage(3, children); err != nil {
		return nil, err
	}
	b.Int64(4, int64(m.Status), false)
	if err := b.Message(5, m.Digest, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeMilestone(fields []wire.Field) (*Milestone, error) {
	m := &Milestone{
		MilestoneID: wire.GetString(fields, 1),
		Status:      MilestoneStatus(wire.GetUint64(fields, 4)),
	}
	if inner, ok, err := decodeNested(fields, 2); err != nil {
		return nil, err
	} else if ok {
		m.ParentMilestoneRef = DecodeRef(inner)
	}
	for _, f := range wire.LookupAll(fields, 3) {
		inner, err := wire.Decode(f.Bytes)
		if err != nil {
			return nil, err
		}
		m.ChildRefs = append(m.ChildRefs, DecodeRef(inner))
	}
	if inner, ok, err := decodeNested(fields, 5); err != nil {
		return nil, err
	} else if ok {
		m.Digest = DecodeDigest32(inner)
	}
	return m, nil
}
