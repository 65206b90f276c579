// Package epoch manages key epoch rotation (C8): announcing the
// attestation and VRF public keys active for an epoch, sealing that
// announcement with a COSE_Sign1 signature, and giving the rest of the
// module a single place to check that a record's declared epoch matches
// the epoch its VRF tag and attestation signature were issued under
// (invariant: epoch consistency, §3).
package epoch

import (
	"crypto/ecdsa"
	"errors"

	"github.com/datatrails-labs/ucf-core/cose"
	"github.com/datatrails-labs/ucf-core/schema"
	"github.com/datatrails-labs/ucf-core/wire"
)

// ErrEpochMismatch is returned when a record's declared epoch_id does not
// match the epoch a VRF tag or attestation signature was issued under.
var ErrEpochMismatch = errors.New("epoch: record epoch does not match issuing epoch")

// Manager holds key epochs keyed by epoch id and answers epoch-consistency
// checks against them. Implementations wanting different storage (a
// database-backed registry, say) can satisfy the same check by
// constructing the same schema.KeyEpoch values.
type Manager struct {
	epochs map[uint64]*schema.KeyEpoch
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithEpoch registers a pre-sealed key epoch with the manager.
func WithEpoch(e *schema.KeyEpoch) Option {
	return func(m *Manager) {
		m.epochs[e.EpochID] = e
	}
}

// NewManager constructs a Manager, applying opts in order.
func NewManager(opts ...Option) *Manager {
	m := &Manager{epochs: make(map[uint64]*schema.KeyEpoch)}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Seal signs a KeyEpoch announcement with privateKey and attaches the
// resulting COSE_Sign1 bytes as its Signature.
func Seal(epochID uint64, attestationKeyID string, attestationPK, vrfPK []byte, privateKey *ecdsa.PrivateKey) (*schema.KeyEpoch, error) {
	announcement := &schema.KeyEpoch{
		EpochID:          epochID,
		AttestationKeyID: attestationKeyID,
		AttestationPK:    attestationPK,
		VrfPK:            vrfPK,
	}
	fields, err := announcement.CanonicalFields()
	if err != nil {
		return nil, err
	}
	payload, err := wire.Encode(fields)
	if err != nil {
		return nil, err
	}
	sig, err := cose.SignES256(privateKey, attestationKeyID, payload, nil)
	if err != nil {
		return nil, err
	}
	announcement.EpochSignature = &schema.Signature{
		Algorithm: "ES256",
		Signer:    []byte(attestationKeyID),
		Signature: sig,
	}
	return announcement, nil
}

// Verify checks a sealed KeyEpoch's signature against publicKey and that
// the signed payload reproduces the announced key material.
func Verify(e *schema.KeyEpoch, publicKey *ecdsa.PublicKey) error {
	unsigned := &schema.KeyEpoch{
		EpochID:          e.EpochID,
		AttestationKeyID: e.AttestationKeyID,
		AttestationPK:    e.AttestationPK,
		VrfPK:            e.VrfPK,
	}
	fields, err := unsigned.CanonicalFields()
	if err != nil {
		return err
	}
	payload, err := wire.Encode(fields)
	if err != nil {
		return err
	}
	_, err = cose.VerifyES256(publicKey, e.EpochSignature.Signature, nil)
	if err != nil {
		return err
	}
	signedPayload, err := cose.FromCBOR(e.EpochSignature.Signature)
	if err != nil {
		return err
	}
	if string(signedPayload.Payload) != string(payload) {
		return errors.New("epoch: signed payload does not match announced key material")
	}
	return nil
}

// CheckEpochConsistency verifies that vrfEpoch and attestationEpoch (the
// epochs a record's VRF tag and attestation signature were actually
// issued under) both equal declaredEpoch (the epoch_id the record itself
// carries).
func CheckEpochConsistency(declaredEpoch, vrfEpoch, attestationEpoch uint64) error {
	if declaredEpoch != vrfEpoch || declaredEpoch != attestationEpoch {
		return ErrEpochMismatch
	}
	return nil
}

// Lookup returns the registered key epoch for id, if any.
func (m *Manager) Lookup(id uint64) (*schema.KeyEpoch, bool) {
	e, ok := m.epochs[id]
	return e, ok
}
