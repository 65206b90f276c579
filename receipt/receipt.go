// Package receipt implements the Proof-Receipt Issuer (C5): it seals a
// verification outcome into a schema.ProofReceipt, computing the chained
// record digest and mixing in a VRF tag, but it never signs the receipt
// itself — validator signatures are supplied by the caller, keeping
// key-holding separate from receipt assembly.
package receipt

import (
	"errors"

	"github.com/datatrails-labs/ucf-core/chain"
	"github.com/datatrails-labs/ucf-core/digest"
	"github.com/datatrails-labs/ucf-core/schema"
	"github.com/datatrails-labs/ucf-core/vrf"
)

// ErrEpochMismatch is returned when Inputs.EpochID does not match the
// issuer's VRF engine epoch.
var ErrEpochMismatch = errors.New("receipt: epoch mismatch between inputs and vrf engine")

// ErrInvalidVerifiedFieldsDigest is returned when the verified-fields
// digest supplied is the zero digest, which can never be a legitimate
// content digest (§3, digest binder invariants).
var ErrInvalidVerifiedFieldsDigest = errors.New("receipt: verified fields digest must not be zero")

// ErrVrfUnavailable wraps a failure evaluating the VRF tag.
var ErrVrfUnavailable = errors.New("receipt: vrf evaluation unavailable")

// Inputs carries everything the issuer needs to seal one proof receipt.
type Inputs struct {
	Status               schema.ReceiptStatus
	ReceiptDigest        digest.Digest
	VerifiedFieldsDigest digest.Digest
	PrevRecordDigest     digest.Digest
	CharterDigest        string
	ProfileDigest        digest.Digest
	CommitID             []byte
	EpochID              uint64
	Validator            *schema.Signature
}

// Issuer seals ProofReceipt values using a single epoch's VRF engine.
type Issuer struct {
	vrfEngine *vrf.Engine
}

// NewIssuer constructs an Issuer bound to vrfEngine's epoch.
func NewIssuer(vrfEngine *vrf.Engine) *Issuer {
	return &Issuer{vrfEngine: vrfEngine}
}

// VrfPublicKey returns the public key the issuer's VRF tags verify under.
func (i *Issuer) VrfPublicKey() []byte {
	return i.vrfEngine.VrfPublicKey()
}

// IssueProofReceipt seals inputs into a ProofReceipt. Rejected is a
// first-class, non-error outcome: callers set inputs.Status to
// ReceiptStatusRejected and still receive a fully-formed receipt back.
func (i *Issuer) IssueProofReceipt(inputs Inputs) (*schema.ProofReceipt, error) {
	if inputs.EpochID != i.vrfEngine.CurrentEpoch() {
		return nil, ErrEpochMismatch
	}
	if inputs.VerifiedFieldsDigest.IsZero() {
		return nil, ErrInvalidVerifiedFieldsDigest
	}

	recordDigest := chain.RecordDigest(inputs.VerifiedFieldsDigest, inputs.PrevRecordDigest, inputs.CommitID)
	vrfDigest, err := i.vrfEngine.EvalRecordVRF(inputs.PrevRecordDigest, recordDigest, inputs.CharterDigest, inputs.ProfileDigest, inputs.EpochID)
	if err != nil {
		return nil, errors.Join(ErrVrfUnavailable, err)
	}

	receiptDigest := inputs.ReceiptDigest
	return &schema.ProofReceipt{
		Status:        inputs.Status,
		ReceiptDigest: &schema.Digest32{Value: receiptDigest.Bytes()},
		Validator:     inputs.Validator,
		VrfDigest:     &schema.Digest32{Value: vrfDigest.Bytes()},
	}, nil
}
