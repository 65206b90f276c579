package schema

import "github.com/datatrails-labs/ucf-core/wire"

// KeyEpoch declares the attestation and VRF public keys active for one
// epoch, itself signed to let a verifier establish a chain of custody
// across epoch rotations (see package epoch).
type KeyEpoch struct {
	EpochID          uint64
	AttestationKeyID string
	AttestationPK    []byte
	VrfPK            []byte
	EpochSignature   *Signature
}

func (k *KeyEpoch) CanonicalFields() ([]wire.Field, error) {
	b := &wire.FieldBuilder{}
	b.Uint64(1, k.EpochID, false)
	b.String(2, k.AttestationKeyID, false)
	b.Bytes(3, k.AttestationPK, false)
	b.Bytes(4, k.VrfPK, false)
	if err := b.Message(5, k.EpochSignature, false); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func DecodeKeyEpoch(fields []wire.Field) (*KeyEpoch, error) {
	k := &KeyEpoch{
		EpochID:          wire.GetUint64(fields, 1),
		AttestationKeyID: wire.GetString(fields, 2),
		AttestationPK:    wire.GetBytes(fields, 3),
		VrfPK:            wire.GetBytes(fields, 4),
	}
	if inner, ok, err := decodeNested(fields, 5); err != nil {
		return nil, err
	} else if ok {
		k.EpochSignature = DecodeSignature(inner)
	}
	return k, nil
}
