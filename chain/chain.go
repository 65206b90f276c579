// Package chain implements the record hash-chain (C3): each record's
// digest binds the digest of its own verified fields to the digest of
// the record before it and to the commit identifier under which it was
// sealed, so that altering any earlier record or reordering the chain
// changes every digest downstream of the alteration.
package chain

import (
	"github.com/datatrails-labs/ucf-core/digest"
	"lukechampine.com/blake3"
)

// Genesis is the all-zero digest used as PrevRecordDigest for the first
// record in a chain. It is carried on the wire explicitly (invariant 4,
// §3) — callers must never treat "absent" as equivalent to Genesis.
var Genesis = digest.Zero

// RecordDigest computes the chained digest for one record:
// BLAKE3(verifiedFieldsDigest || prevRecordDigest || commitID).
//
// This is a plain BLAKE3 hash, not a Compute call through package
// digest — the chain link has no schema_id of its own to domain-separate
// against; it binds three already-domain-separated digests together.
func RecordDigest(verifiedFieldsDigest, prevRecordDigest digest.Digest, commitID []byte) digest.Digest {
	h := blake3.New(digest.Size, nil)
	h.Write(verifiedFieldsDigest.Bytes())
	h.Write(prevRecordDigest.Bytes())
	h.Write(commitID)
	var out digest.Digest
	copy(out[:], h.Sum(nil))
	return out
}

// IsGenesis reports whether d is the all-zero digest marking chain start.
func IsGenesis(d digest.Digest) bool {
	return d.IsZero()
}

// Link is one position in a hash-chain: enough to verify that Digest was
// derived correctly from VerifiedFieldsDigest, Prev, and CommitID.
type Link struct {
	VerifiedFieldsDigest digest.Digest
	Prev                 digest.Digest
	CommitID             []byte
	Digest               digest.Digest
}

// Verify recomputes l.Digest from its inputs and reports whether it
// matches the digest the link claims.
func (l Link) Verify() bool {
	return RecordDigest(l.VerifiedFieldsDigest, l.Prev, l.CommitID) == l.Digest
}

// VerifyChain walks a chain of links in order, checking that link i's
// Digest recomputes correctly and that link i's Prev equals link i-1's
// Digest (Genesis for i == 0). It returns the index of the first invalid
// link, or -1 if the whole chain verifies.
func VerifyChain(links []Link) int {
	prev := Genesis
	for i, l := range links {
		if l.Prev != prev {
			return i
		}
		if !l.Verify() {
			return i
		}
		prev = l.Digest
	}
	return -1
}
