package schema

import "github.com/datatrails-labs/ucf-core/wire"

// MicrocircuitConfigEvidence attests that a named biophysical module was
// configured to a specific, digested configuration at a point in time.
// This is scenario 2 of spec.md §8 verbatim.
type MicrocircuitConfigEvidence struct {
	Module            MicrocircuitModule
	ConfigVersion     uint64
	ConfigDigest      *Digest32
	CreatedAtMs       uint64
	PrevConfigDigest  *Digest32 // optional presence: nil means genesis, not zero
	ProofReceiptRef   *Ref
	AttestationSig    *Signature
	AttestationKeyID  string
}

func (m *MicrocircuitConfigEvidence) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.Int64(1, int64(m.Module), false)
	b.Uint64(2, m.ConfigVersion, false)
	if err := b.Message(3, m.ConfigDigest, false); err != nil {
		return nil, err
	}
	b.Uint64(4, m.CreatedAtMs, false)
	if err := b.Message(5, m.PrevConfigDigest, false); err != nil {
		return nil, err
	}
	if err := b.Message(6, m.ProofReceiptRef, false); err != nil {
		return nil, err
	}
	if err := b.Message(7, m.AttestationSig, false); err != nil {
		return nil, err
	}
	b.String(8, m.AttestationKeyID, false)
	return b.Build(), nil
}

func DecodeMicrocircuitConfigEvidence(fields []wire.Field) (*MicrocircuitConfigEvidence, error) {
	m := &MicrocircuitConfigEvidence{
		Module:           MicrocircuitModule(wire.GetUint64(fields, 1)),
		ConfigVersion:    wire.GetUint64(fields, 2),
		CreatedAtMs:      wire.GetUint64(fields, 4),
		AttestationKeyID: wire.GetString(fields, 8),
	}
	if inner, ok, err := decodeNested(fields, 3); err != nil {
		return nil, err
	} else if ok {
		m.ConfigDigest = DecodeDigest32(inner)
	}
	if inner, ok, err := decodeNested(fields, 5); err != nil {
		return nil, err
	} else if ok {
		m.PrevConfigDigest = DecodeDigest32(inner)
	}
	if inner, ok, err := decodeNested(fields, 6); err != nil {
		return nil, err
	} else if ok {
		m.ProofReceiptRef = DecodeRef(inner)
	}
	if inner, ok, err := decodeNested(fields, 7); err != nil {
		return nil, err
	} else if ok {
		m.AttestationSig = DecodeSignature(inner)
	}
	return m, nil
}

// AssetManifest enumerates the asset references comprising one biophysical
// bundle. Assets is a set, sorted by the producer before encoding.
type AssetManifest struct {
	ManifestID     string
	Assets         []*Ref // set
	ManifestDigest *Digest32
}

func (a *AssetManifest) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, a.ManifestID, false)
	assets := make([]wire.Record, len(a.Assets))
	for i, r := range a.Assets {
		assets[i] = r
	}
	if err := b.RepeatedMessage(2, assets); err != nil {
		return nil, err
	}
	if err := b.Message(3, a.ManifestDigest, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeAssetManifest(fields []wire.Field) (*AssetManifest, error) {
	a := &AssetManifest{ManifestID: wire.GetString(fields, 1)}
	for _, f := range wire.LookupAll(fields, 2) {
		inner, err := wire.Decode(f.Bytes)
		if err != nil {
			return nil, err
		}
		a.Assets = append(a.Assets, DecodeRef(inner))
	}
	if inner, ok, err := decodeNested(fields, 3); err != nil {
		return nil, err
	} else if ok {
		a.ManifestDigest = DecodeDigest32(inner)
	}
	return a, nil
}

// Compartment names one morphological compartment of a neuron.
type Compartment struct {
	ID    uint64
	Kind  CompartmentKind
	Label string
}

func (c *Compartment) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.Uint64(1, c.ID, false)
	b.Int64(2, int64(c.Kind), false)
	b.String(3, c.Label, false)
	return b.Build(), nil
}

func DecodeCompartment(fields []wire.Field) *Compartment {
	return &Compartment{
		ID:    wire.GetUint64(fields, 1),
		Kind:  CompartmentKind(wire.GetUint64(fields, 2)),
		Label: wire.GetString(fields, 3),
	}
}

// MorphNeuron is one neuron's morphology: an ordered sequence of
// compartments (order is structurally significant — a tree walk order —
// so this is NOT a set field).
type MorphNeuron struct {
	NeuronID     uint64
	Compartments []*Compartment
}

func (m *MorphNeuron) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.Uint64(1, m.NeuronID, false)
	comps := make([]wire.Record, len(m.Compartments))
	for i, c := range m.Compartments {
		comps[i] = c
	}
	if err := b.RepeatedMessage(2, comps); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeMorphNeuron(fields []wire.Field) (*MorphNeuron, error) {
	m := &MorphNeuron{NeuronID: wire.GetUint64(fields, 1)}
	for _, f := range wire.LookupAll(fields, 2) {
		inner, err := wire.Decode(f.Bytes)
		if err != nil {
			return nil, err
		}
		m.Compartments = append(m.Compartments, DecodeCompartment(inner))
	}
	return m, nil
}

// MorphologySetPayload carries the set of neuron morphologies for one
// asset bundle. Neurons is a set, keyed and sorted by NeuronID.
type MorphologySetPayload struct {
	Neurons []*MorphNeuron // set
}

func (p *MorphologySetPayload) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	neurons := make([]wire.Record, len(p.Neurons))
	for i, n := range p.Neurons {
		neurons[i] = n
	}
	if err := b.RepeatedMessage(1, neurons); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeMorphologySetPayload(fields []wire.Field) (*MorphologySetPayload, error) {
	p := &MorphologySetPayload{}
	for _, f := range wire.LookupAll(fields, 1) {
		inner, err := wire.Decode(f.Bytes)
		if err != nil {
			return nil, err
		}
		n, err := DecodeMorphNeuron(inner)
		if err != nil {
			return nil, err
		}
		p.Neurons = append(p.Neurons, n)
	}
	return p, nil
}

// ModChannel names one ion-channel modulation entry.
type ModChannel struct {
	ChannelID   string
	Kind        int32
	ValueDigest *Digest32
}

func (m *ModChannel) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, m.ChannelID, false)
	b.Int64(2, int64(m.Kind), false)
	if err := b.Message(3, m.ValueDigest, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeModChannel(fields []wire.Field) (*ModChannel, error) {
	m := &ModChannel{
		ChannelID: wire.GetString(fields, 1),
		Kind:      int32(wire.GetUint64(fields, 2)),
	}
	if inner, ok, err := decodeNested(fields, 3); err != nil {
		return nil, err
	} else if ok {
		m.ValueDigest = DecodeDigest32(inner)
	}
	return m, nil
}

// ChannelParamsSetPayload carries a set of channel modulation parameters,
// sorted by ChannelID before encoding.
type ChannelParamsSetPayload struct {
	Channels []*ModChannel // set
}

func (p *ChannelParamsSetPayload) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	chans := make([]wire.Record, len(p.Channels))
	for i, c := range p.Channels {
		chans[i] = c
	}
	if err := b.RepeatedMessage(1, chans); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeChannelParamsSetPayload(fields []wire.Field) (*ChannelParamsSetPayload, error) {
	p := &ChannelParamsSetPayload{}
	for _, f := range wire.LookupAll(fields, 1) {
		inner, err := wire.Decode(f.Bytes)
		if err != nil {
			return nil, err
		}
		c, err := DecodeModChannel(inner)
		if err != nil {
			return nil, err
		}
		p.Channels = append(p.Channels, c)
	}
	return p, nil
}

// SynapseParams names one synaptic connection's parameter digest.
type SynapseParams struct {
	Pre         uint64
	Post        uint64
	Kind        SynKind
	WeightDigest *Digest32
}

func (s *SynapseParams) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.Uint64(1, s.Pre, false)
	b.Uint64(2, s.Post, false)
	b.Int64(3, int64(s.Kind), false)
	if err := b.Message(4, s.WeightDigest, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeSynapseParams(fields []wire.Field) (*SynapseParams, error) {
	s := &SynapseParams{
		Pre:  wire.GetUint64(fields, 1),
		Post: wire.GetUint64(fields, 2),
		Kind: SynKind(wire.GetUint64(fields, 3)),
	}
	if inner, ok, err := decodeNested(fields, 4); err != nil {
		return nil, err
	} else if ok {
		s.WeightDigest = DecodeDigest32(inner)
	}
	return s, nil
}

// SynapseParamsSetPayload carries a set of synapse parameters, sorted by
// (Pre, Post) before encoding.
type SynapseParamsSetPayload struct {
	Synapses []*SynapseParams // set
}

func (p *SynapseParamsSetPayload) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	syns := make([]wire.Record, len(p.Synapses))
	for i, s := range p.Synapses {
		syns[i] = s
	}
	if err := b.RepeatedMessage(1, syns); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeSynapseParamsSetPayload(fields []wire.Field) (*SynapseParamsSetPayload, error) {
	p := &SynapseParamsSetPayload{}
	for _, f := range wire.LookupAll(fields, 1) {
		inner, err := wire.Decode(f.Bytes)
		if err != nil {
			return nil, err
		}
		s, err := DecodeSynapseParams(inner)
		if err != nil {
			return nil, err
		}
		p.Synapses = append(p.Synapses, s)
	}
	return p, nil
}

// ConnEdge names one directed connectivity-graph edge.
type ConnEdge struct {
	Source       uint64
	Target       uint64
	WeightDigest *Digest32
}

func (e *ConnEdge) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.Uint64(1, e.Source, false)
	b.Uint64(2, e.Target, false)
	if err := b.Message(3, e.WeightDigest, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeConnEdge(fields []wire.Field) (*ConnEdge, error) {
	e := &ConnEdge{
		Source: wire.GetUint64(fields, 1),
		Target: wire.GetUint64(fields, 2),
	}
	if inner, ok, err := decodeNested(fields, 3); err != nil {
		return nil, err
	} else if ok {
		e.WeightDigest = DecodeDigest32(inner)
	}
	return e, nil
}

// ConnectivityGraphPayload carries a set of connectivity edges, sorted by
// (Source, Target) before encoding.
type ConnectivityGraphPayload struct {
	Edges []*ConnEdge // set
}

func (p *ConnectivityGraphPayload) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	edges := make([]wire.Record, len(p.Edges))
	for i, e := range p.Edges {
		edges[i] = e
	}
	if err := b.RepeatedMessage(1, edges); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeConnectivityGraphPayload(fields []wire.Field) (*ConnectivityGraphPayload, error) {
	p := &ConnectivityGraphPayload{}
	for _, f := range wire.LookupAll(fields, 1) {
		inner, err := wire.Decode(f.Bytes)
		if err != nil {
			return nil, err
		}
		e, err := DecodeConnEdge(inner)
		if err != nil {
			return nil, err
		}
		p.Edges = append(p.Edges, e)
	}
	return p, nil
}
