// Package digest computes domain-separated content digests for UCF records.
package digest

import (
	"encoding/hex"
	"errors"
	"strings"

	"lukechampine.com/blake3"
)

// Size is the fixed width of every digest this package produces.
const Size = 32

// Digest is an opaque 32-byte content-address. Equality implies
// byte-identity of the source inputs plus the domain triple that produced
// it.
type Digest [Size]byte

// Zero is the all-zero digest used as the genesis predecessor in a record
// chain (see chain.Genesis). It is never confused with "absent": callers
// that mean "no predecessor" must encode this value explicitly.
var Zero Digest

// ErrWrongLength is raised when an externally supplied digest is not
// exactly Size bytes.
var ErrWrongLength = errors.New("digest: value must be exactly 32 bytes")

// FromBytes copies b into a Digest, failing if b is not exactly Size bytes.
func FromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != Size {
		return d, ErrWrongLength
	}
	copy(d[:], b)
	return d, nil
}

// FromHex decodes a lowercase-hex encoded digest, such as the contents of a
// fixture's <name>.digest side-car file (trailing newline tolerated).
func FromHex(s string) (Digest, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return Digest{}, err
	}
	return FromBytes(b)
}

// Bytes returns a copy of the digest's raw bytes.
func (d Digest) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, d[:])
	return out
}

// Hex returns the lowercase hex encoding of the digest, no trailing newline.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether d is the all-zero genesis digest.
func (d Digest) IsZero() bool {
	return d == Zero
}

// Domain is a registered, fixed ASCII constant that separates one protocol
// concern's digests from another's. The registry below is the set of
// domains this repository knows about; it is intentionally non-exhaustive —
// new domains may be registered so long as no domain is a byte-prefix of
// any schema_id, which would make the unprefixed concatenation in Compute
// ambiguous.
type Domain string

// Registered domains (§4.2). Any deviation in spelling changes every
// digest computed under it.
const (
	DomainCore               Domain = "ucf-core"
	DomainHashMicrocircuit   Domain = "UCF:HASH:MC_CONFIG"
	DomainAssetMorphology    Domain = "UCF:ASSET:MORPH"
	DomainAssetChannelParams Domain = "UCF:ASSET:CHANNEL_PARAMS"
	DomainAssetSynapseParams Domain = "UCF:ASSET:SYN_PARAMS"
	DomainAssetConnectivity  Domain = "UCF:ASSET:CONNECTIVITY"
	DomainAssetManifest      Domain = "UCF:ASSET:MANIFEST"
	DomainVRFExperience      Domain = "UCF:VRF:EXPERIENCE_RECORD"
)

// Compute returns BLAKE3(domain || schemaID || schemaVersion || bytes),
// with || denoting raw concatenation. No length prefixes or separators are
// inserted: the registry above is a closed, previously agreed set of
// strings and none is a prefix of any schema_id, so the concatenation
// remains unambiguous.
func Compute(domain Domain, schemaID, schemaVersion string, bytes []byte) Digest {
	h := blake3.New(Size, nil)
	h.Write([]byte(domain))
	h.Write([]byte(schemaID))
	h.Write([]byte(schemaVersion))
	h.Write(bytes)

	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
