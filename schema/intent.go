package schema

import "github.com/datatrails-labs/ucf-core/wire"

// QueryParams is one of CanonicalIntent's oneof variants.
type QueryParams struct {
	Query     string
	Selectors []string // set — sorted by caller before encoding
}

func (q *QueryParams) CanonicalFields() ([]wire.Field, error) {
	if q == nil {
		return nil, nil
	}
	b := &wire.FieldBuilder{}
	b.String(1, q.Query, false)
	b.RepeatedString(2, q.Selectors)
	return b.Build(), nil
}

// ActionParams is CanonicalIntent's other oneof variant, for intents that
// request an action be taken rather than data queried.
type ActionParams struct {
	Action string
	Args   []string // set — sorted by caller before encoding
}

func (a *ActionParams) CanonicalFields() ([]wire.Field, error) {
	if a == nil {
		return nil, nil
	}
	b := &wire.FieldBuilder{}
	b.String(1, a.Action, false)
	b.RepeatedString(2, a.Args)
	return b.Build(), nil
}

// CanonicalIntent is the record archetype an agentic caller emits to
// request governance review of an action. Params is a oneof: exactly one
// of Query/Action must be set (§4.1 "Oneof groups emit exactly one variant
// field").
type CanonicalIntent struct {
	IntentID    string
	Channel     Channel
	RiskLevel   RiskLevel
	DataClass   DataClass
	Subject     *Ref
	ReasonCodes *ReasonCodes
	Query       *QueryParams  // oneof variant (field 7)
	Action      *ActionParams // oneof variant (field 8)
}

func (c *CanonicalIntent) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.String(1, c.IntentID, false)
	b.Int64(2, int64(c.Channel), false)
	b.Int64(3, int64(c.RiskLevel), false)
	b.Int64(4, int64(c.DataClass), false)
	if err := b.Message(5, c.Subject, false); err != nil {
		return nil, err
	}
	if err := b.Message(6, c.ReasonCodes, false); err != nil {
		return nil, err
	}
	switch {
	case c.Query != nil && c.Action != nil:
		return nil, &wire.DecodeError{Kind: wire.FieldTypeMismatch, Msg: "CanonicalIntent.params oneof has two variants set"}
	case c.Query != nil:
		if err := b.Message(7, c.Query, true); err != nil {
			return nil, err
		}
	case c.Action != nil:
		if err := b.Message(8, c.Action, true); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// DecodeCanonicalIntent projects a generic field list (from wire.Decode)
// back into a typed CanonicalIntent.
func DecodeCanonicalIntent(fields []wire.Field) (*CanonicalIntent, error) {
	c := &CanonicalIntent{
		IntentID:  wire.GetString(fields, 1),
		Channel:   Channel(wire.GetUint64(fields, 2)),
		RiskLevel: RiskLevel(wire.GetUint64(fields, 3)),
		DataClass: DataClass(wire.GetUint64(fields, 4)),
	}
	if inner, ok, err := decodeNested(fields, 5); err != nil {
		return nil, err
	} else if ok {
		c.Subject = DecodeRef(inner)
	}
	if inner, ok, err := decodeNested(fields, 6); err != nil {
		return nil, err
	} else if ok {
		c.ReasonCodes = DecodeReasonCodes(inner)
	}
	if inner, ok, err := decodeNested(fields, 7); err != nil {
		return nil, err
	} else if ok {
		c.Query = &QueryParams{Query: wire.GetString(inner, 1), Selectors: wire.GetRepeatedStrings(inner, 2)}
	}
	if inner, ok, err := decodeNested(fields, 8); err != nil {
		return nil, err
	} else if ok {
		c.Action = &ActionParams{Action: wire.GetString(inner, 1), Args: wire.GetRepeatedStrings(inner, 2)}
	}
	return c, nil
}
