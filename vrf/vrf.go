// Package vrf implements the TEMPORARY_VRF engine (C4): a deterministic
// stand-in for a standards-compliant ECVRF-ED25519-SHA512-TAI that signs
// a preimage with Ed25519, hashes the signature with SHA-512, and
// compresses the result with BLAKE3 to a 32-byte digest. It is marked
// TEMPORARY_VRF throughout so a future swap to a real ECVRF is a drop-in
// replacement of this package alone.
package vrf

import (
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/datatrails-labs/ucf-core/digest"
	"lukechampine.com/blake3"
)

const (
	recordDomain     = "UCF:VRF:EXPERIENCE_RECORD"
	devSeedLabel     = "UCF:VRF:DEV"
	temporaryVRFName = "TEMPORARY_VRF"
)

// ErrNoActiveEpochKey is returned when an engine is asked to evaluate or
// report a key for an epoch it was not constructed for.
var ErrNoActiveEpochKey = errors.New("vrf: no active key for epoch")

// ErrKeyDerivationFailed wraps a lower-level failure deriving key material.
var ErrKeyDerivationFailed = errors.New("vrf: key derivation failed")

// Keypair is the key material an Engine holds for one epoch.
type Keypair struct {
	KeyID  string
	EpochID uint64
	VrfPK  []byte
	vrfSK  []byte
}

// Engine evaluates VRF digests for experience records under a single
// epoch's key material. It is not safe to reuse across epochs — construct
// a new Engine per epoch via NewDevEngine.
type Engine struct {
	signingKey ed25519.PrivateKey
	current    Keypair
}

// NewDevEngine derives a deterministic development keypair for epochID.
// The seed is BLAKE3("UCF:VRF:DEV" || epochID as little-endian u64), so
// the same epoch always yields the same key — this is a dev/test
// convenience, not a secret-management story.
func NewDevEngine(epochID uint64) (*Engine, error) {
	h := blake3.New(32, nil)
	h.Write([]byte(devSeedLabel))
	var epochBuf [8]byte
	binary.LittleEndian.PutUint64(epochBuf[:], epochID)
	h.Write(epochBuf[:])
	seed := h.Sum(nil)

	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed size %d", ErrKeyDerivationFailed, len(seed))
	}
	signingKey := ed25519.NewKeyFromSeed(seed)
	pk := signingKey.Public().(ed25519.PublicKey)

	keyID := fmt.Sprintf("%s:%s", temporaryVRFName, hex.EncodeToString(pk[:8]))
	return &Engine{
		signingKey: signingKey,
		current: Keypair{
			KeyID:   keyID,
			EpochID: epochID,
			VrfPK:   append([]byte(nil), pk...),
			vrfSK:   append([]byte(nil), signingKey...),
		},
	}, nil
}

// CurrentEpoch returns the epoch this engine's key material belongs to.
func (e *Engine) CurrentEpoch() uint64 {
	return e.current.EpochID
}

// VrfPublicKey returns the public key this engine signs under.
func (e *Engine) VrfPublicKey() []byte {
	return e.current.VrfPK
}

// KeyID returns the TEMPORARY_VRF-prefixed identifier for this engine's key.
func (e *Engine) KeyID() string {
	return e.current.KeyID
}

// EvalRecordVRF evaluates the VRF digest for one experience record
// commitment. epochID must equal the epoch this engine was constructed
// for (invariant: epoch consistency, §3) — callers are responsible for
// that check before calling, since the engine itself holds only one
// epoch's key.
func (e *Engine) EvalRecordVRF(prevRecordDigest, recordDigest digest.Digest, charterDigest string, profileDigest digest.Digest, epochID uint64) (digest.Digest, error) {
	if epochID != e.current.EpochID {
		return digest.Digest{}, ErrNoActiveEpochKey
	}
	message := buildMessage(prevRecordDigest, recordDigest, charterDigest, profileDigest, epochID)
	signature := ed25519.Sign(e.signingKey, message)
	return digestSignature(signature), nil
}

func buildMessage(prevRecordDigest, recordDigest digest.Digest, charterDigest string, profileDigest digest.Digest, epochID uint64) []byte {
	msg := make([]byte, 0, len(recordDomain)+digest.Size+digest.Size+len(charterDigest)+digest.Size+8)
	msg = append(msg, recordDomain...)
	msg = append(msg, prevRecordDigest.Bytes()...)
	msg = append(msg, recordDigest.Bytes()...)
	msg = append(msg, charterDigest...)
	msg = append(msg, profileDigest.Bytes()...)
	var epochBuf [8]byte
	binary.LittleEndian.PutUint64(epochBuf[:], epochID)
	msg = append(msg, epochBuf[:]...)
	return msg
}

func digestSignature(signature []byte) digest.Digest {
	sigHash := sha512.Sum512(signature)
	h := blake3.New(digest.Size, nil)
	h.Write(sigHash[:])
	var out digest.Digest
	copy(out[:], h.Sum(nil))
	return out
}
