package schema

import "github.com/datatrails-labs/ucf-core/wire"

// ProofReceipt is the sealed outcome of the C5 issuer: a status, the
// digest of the fields that were actually verified, the VRF tag that was
// mixed into the decision, and a validator signature supplied by the
// caller (the issuer never signs its own output).
type ProofReceipt struct {
	Status           ReceiptStatus
	ReceiptDigest    *Digest32
	Validator        *Signature
	VrfDigest        *Digest32
}

func (r *ProofReceipt) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.Int64(1, int64(r.Status), false)
	if err := b.Message(2, r.ReceiptDigest, false); err != nil {
		return nil, err
	}
	if err := b.Message(3, r.Validator, false); err != nil {
		return nil, err
	}
	if err := b.Message(4, r.VrfDigest, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeProofReceipt(fields []wire.Field) (*ProofReceipt, error) {
	r := &ProofReceipt{Status: ReceiptStatus(wire.GetUint64(fields, 1))}
	if inner, ok, err := decodeNested(fields, 2); err != nil {
		return nil, err
	} else if ok {
		r.ReceiptDigest = DecodeDigest32(inner)
	}
	if inner, ok, err := decodeNested(fields, 3); err != nil {
		return nil, err
	} else if ok {
		r.Validator = DecodeSignature(inner)
	}
	if inner, ok, err := decodeNested(fields, 4); err != nil {
		return nil, err
	} else if ok {
		r.VrfDigest = DecodeDigest32(inner)
	}
	return r, nil
}
