package schema

import "github.com/datatrails-labs/ucf-core/wire"

// ReplayPlan enumerates the ordered steps (a sequence, NOT a set — order is
// significant) a replay must execute to reproduce a run.
type ReplayPlan struct {
	PlanID          string
	Steps           []*Ref // order-significant sequence
	EvidenceLogRoot *Digest32
}

func (p *ReplayPlan) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, p.PlanID, false)
	steps := make([]wire.Record, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = s
	}
	if err := b.RepeatedMessage(2, steps); err != nil {
		return nil, err
	}
	if err := b.Message(3, p.EvidenceLogRoot, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeReplayPlan(fields []wire.Field) (*ReplayPlan, error) {
	p := &ReplayPlan{PlanID: wire.GetString(fields, 1)}
	for _, f := range wire.LookupAll(fields, 2) {
		inner, err := wire.Decode(f.Bytes)
		if err != nil {
			return nil, err
		}
		p.Steps = append(p.Steps, DecodeRef(inner))
	}
	if inner, ok, err := decodeNested(fields, 3); err != nil {
		return nil, err
	} else if ok {
		p.EvidenceLogRoot = DecodeDigest32(inner)
	}
	return p, nil
}

// RunEvidence is the sealed outcome of executing a ReplayPlan (or of an
// original run): the ordered digests of every record sealed during the
// run, plus the evidence-log root covering them (see package evidencelog).
type RunEvidence struct {
	RunID           string
	PlanRef         *Ref
	RecordDigests   []*Digest32 // order-significant sequence
	EvidenceLogRoot *Digest32
}

func (e *RunEvidence) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, e.RunID, false)
	if err := b.Message(2, e.PlanRef, false); err != nil {
		return nil, err
	}
	digests := make([]wire.Record, len(e.RecordDigests))
	for i, d := range e.RecordDigests {
		digests[i] = d
	}
	if err := b.RepeatedMessage(3, digests); err != nil {
		return nil, err
	}
	if err := b.Message(4, e.EvidenceLogRoot, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeRunEvidence(fields []wire.Field) (*RunEvidence, error) {
	e := &RunEvidence{RunID: wire.GetString(fields, 1)}
	if inner, ok, err := decodeNested(fields, 2); err != nil {
		return nil, err
	} else if ok {
		e.PlanRef = DecodeRef(inner)
	}
	for _, f := range wire.LookupAll(fields, 3) {
		inner, err := wire.Decode(f.Bytes)
		if err != nil {
			return nil, err
		}
		e.RecordDigests = append(e.RecordDigests, DecodeDigest32(inner))
	}
	if inner, ok, err := decodeNested(fields, 4); err != nil {
		return nil, err
	} else if ok {
		e.EvidenceLogRoot = DecodeDigest32(inner)
	}
	return e, nil
}
