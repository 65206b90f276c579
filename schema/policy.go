package schema

import "github.com/datatrails-labs/ucf-core/wire"

// PolicyDecision records a governance verdict over a CanonicalIntent.
type PolicyDecision struct {
	Decision    DecisionForm
	ReasonCodes *ReasonCodes
	Constraints *ConstraintsDelta
}

func (p *PolicyDecision) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.Int64(1, int64(p.Decision), false)
	if err := b.Message(2, p.ReasonCodes, false); err != nil {
		return nil, err
	}
	if err := b.Message(3, p.Constraints, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodePolicyDecision(fields []wire.Field) (*PolicyDecision, error) {
	p := &PolicyDecision{Decision: DecisionForm(wire.GetUint64(fields, 1))}
	if inner, ok, err := decodeNested(fields, 2); err != nil {
		return nil, err
	} else if ok {
		p.ReasonCodes = DecodeReasonCodes(inner)
	}
	if inner, ok, err := decodeNested(fields, 3); err != nil {
		return nil, err
	} else if ok {
		p.Constraints = DecodeConstraintsDelta(inner)
	}
	return p, nil
}

// ApprovalPackage bundles an intent, the decision made about it, and the
// approvers who attested to that decision.
type ApprovalPackage struct {
	ApprovalID     string
	Subject        *Ref
	DecisionDigest *Digest32
	Approvers      []*Signature
	Status         DecisionForm
	ReasonCodes    *ReasonCodes
}

func (a *ApprovalPackage) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, a.ApprovalID, false)
	if err := b.Message(2, a.Subject, false); err != nil {
		return nil, err
	}
	if err := b.Message(3, a.DecisionDigest, false); err != nil {
		return nil, err
	}
	approvers := make([]wire.Record, len(a.Approvers))
	for i, s := range a.Approvers {
		approvers[i] = s
	}
	if err := b.RepeatedMessage(4, approvers); err != nil {
		return nil, err
	}
	b.Int64(5, int64(a.Status), false)
	if err := b.Message(6, a.ReasonCodes, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeApprovalPackage(fields []wire.Field) (*ApprovalPackage, error) {
	a := &ApprovalPackage{
		ApprovalID: wire.GetString(fields, 1),
		Status:     DecisionForm(wire.GetUint64(fields, 5)),
	}
	if inner, ok, err := decodeNested(fields, 2); err != nil {
		return nil, err
	} else if ok {
		a.Subject = DecodeRef(inner)
	}
	if inner, ok, err := decodeNested(fields, 3); err != nil {
		return nil, err
	} else if ok {
		a.DecisionDigest = DecodeDigest32(inner)
	}
	for _, f := range wire.LookupAll(fields, 4) {
		inner, err := wire.Decode(f.Bytes)
		if err != nil {
			return nil, err
		}
		a.Approvers = append(a.Approvers, DecodeSignature(inner))
	}
	if inner, ok, err := decodeNested(fields, 6); err != nil {
		return nil, err
	} else if ok {
		a.ReasonCodes = DecodeReasonCodes(inner)
	}
	return a, nil
}
