// Package cose implements the attestation signing layer (C8): epoch key
// announcements and validator signatures are sealed as COSE_Sign1
// messages (RFC 8152) over an ECDSA P-256 key, using the deterministic
// CBOR encoding options the rest of the module relies on for reproducible
// bytes.
package cose

import (
	"crypto/ecdsa"
	"crypto/rand"

	"github.com/fxamacker/cbor/v2"
	gocose "github.com/veraison/go-cose"
)

// DeterministicEncOptions returns the canonical CBOR encoding options
// used throughout this module: sorted map keys, no indefinite-length
// items, no duplicate map keys — the same determinism contract the
// canonical wire encoder (package wire) upholds for its own format.
func DeterministicEncOptions() cbor.EncOptions {
	return cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
}

func deterministicDecOptions() cbor.DecOptions {
	return cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
		TagsMd:      cbor.TagsForbidden,
	}
}

// Sign1Message wraps a go-cose Sign1Message with the encode/decode modes
// this module standardizes on.
type Sign1Message struct {
	*gocose.Sign1Message
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func newModes() (cbor.EncMode, cbor.DecMode, error) {
	encOpts := DeterministicEncOptions()
	encMode, err := encOpts.EncMode()
	if err != nil {
		return nil, nil, err
	}
	decOpts := deterministicDecOptions()
	decMode, err := decOpts.DecMode()
	if err != nil {
		return nil, nil, err
	}
	return encMode, decMode, nil
}

// NewSign1Message wraps msg with this module's canonical encode/decode modes.
func NewSign1Message(msg *gocose.Sign1Message) (*Sign1Message, error) {
	encMode, decMode, err := newModes()
	if err != nil {
		return nil, err
	}
	return &Sign1Message{Sign1Message: msg, encMode: encMode, decMode: decMode}, nil
}

// FromCBOR decodes a COSE_Sign1 message previously produced by SignES256.
func FromCBOR(b []byte) (*Sign1Message, error) {
	var msg gocose.Sign1Message
	if err := msg.UnmarshalCBOR(b); err != nil {
		return nil, err
	}
	return NewSign1Message(&msg)
}

// SignES256 signs payload under keyID with privateKey, embedding the key
// identifier in the protected header, and returns the CBOR-encoded
// COSE_Sign1 message.
func SignES256(privateKey *ecdsa.PrivateKey, keyID string, payload []byte, external []byte) ([]byte, error) {
	signer, err := gocose.NewSigner(gocose.AlgorithmES256, privateKey)
	if err != nil {
		return nil, err
	}

	msg := gocose.Sign1Message{
		Headers: gocose.Headers{
			Protected: gocose.ProtectedHeader{
				gocose.HeaderLabelAlgorithm: gocose.AlgorithmES256,
				gocose.HeaderLabelKeyID:     []byte(keyID),
			},
		},
		Payload: payload,
	}
	if err := msg.Sign(rand.Reader, external, signer); err != nil {
		return nil, err
	}

	wrapped, err := NewSign1Message(&msg)
	if err != nil {
		return nil, err
	}
	return wrapped.Sign1Message.MarshalCBOR()
}

// VerifyES256 verifies a COSE_Sign1 message produced by SignES256 against
// publicKey, returning the signed payload on success.
func VerifyES256(publicKey *ecdsa.PublicKey, coseBytes []byte, external []byte) ([]byte, error) {
	wrapped, err := FromCBOR(coseBytes)
	if err != nil {
		return nil, err
	}
	verifier, err := gocose.NewVerifier(gocose.AlgorithmES256, publicKey)
	if err != nil {
		return nil, err
	}
	if err := wrapped.Verify(external, verifier); err != nil {
		return nil, err
	}
	return wrapped.Payload, nil
}

// KeyID extracts the key identifier from a COSE_Sign1 message's protected
// header, as written by SignES256.
func (m *Sign1Message) KeyID() (string, error) {
	v, ok := m.Headers.Protected[gocose.HeaderLabelKeyID]
	if !ok {
		return "", &ErrNoProtectedHeaderValue{Label: gocose.HeaderLabelKeyID}
	}
	kid, ok := v.([]byte)
	if !ok {
		return "", &ErrUnexpectedProtectedHeaderType{Label: gocose.HeaderLabelKeyID, Expected: "[]byte"}
	}
	return string(kid), nil
}
