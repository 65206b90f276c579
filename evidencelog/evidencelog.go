// Package evidencelog implements the evidence log (C9): an append-only
// accumulator over record digests, used to seal the ordered sequence of
// records produced by a run (schema.RunEvidence.EvidenceLogRoot) into a
// single root. It is additive — no invariant in this module's core
// requires it — but original_source's replay/evidence tooling expects a
// run to be able to produce one root committing to everything it did.
//
// The accumulator keeps only the Merkle Mountain Range peaks (the roots
// of the maximal perfect subtrees seen so far), not a full positional
// node store: it supports append and root-bagging, not per-leaf
// inclusion proofs. That keeps the implementation small while still
// following the teacher's hashing idiom — a reset hash.Hash, a
// position-committing interior-node hash — from its mmr package.
package evidencelog

import (
	"encoding/binary"
	"hash"

	"github.com/datatrails-labs/ucf-core/digest"
)

// peak is one maximal perfect subtree accumulated so far.
type peak struct {
	height uint64
	value  digest.Digest
}

// Log accumulates leaf digests into a Merkle Mountain Range and can bag
// its current peaks into a single root digest.
type Log struct {
	newHash func() hash.Hash
	peaks   []peak
	size    uint64
}

// New constructs an empty Log using newHash to build fresh hash.Hash
// instances for each operation, matching this module's convention of
// passing a hasher constructor rather than a shared, stateful hasher.
func New(newHash func() hash.Hash) *Log {
	return &Log{newHash: newHash}
}

// Size returns the number of leaves appended so far.
func (l *Log) Size() uint64 {
	return l.size
}

// Append adds a leaf digest to the log, merging completed peaks exactly
// as a binary counter carries: two peaks of equal height combine into
// one peak one level higher, repeatedly, until no two adjacent peaks
// share a height.
func (l *Log) Append(leaf digest.Digest) {
	l.size++
	l.peaks = append(l.peaks, peak{height: 0, value: leaf})
	for len(l.peaks) >= 2 {
		last := l.peaks[len(l.peaks)-1]
		prev := l.peaks[len(l.peaks)-2]
		if last.height != prev.height {
			break
		}
		merged := l.hashPair(prev, last)
		l.peaks = l.peaks[:len(l.peaks)-2]
		l.peaks = append(l.peaks, peak{height: last.height + 1, value: merged})
	}
}

// hashPair computes the parent of two equal-height peaks as
// H(size || left || right), committing to the log size at merge time so
// that the same pair of peaks never hashes the same way at two different
// points in the log's growth.
func (l *Log) hashPair(left, right peak) digest.Digest {
	h := l.newHash()
	h.Reset()
	var posBuf [8]byte
	binary.BigEndian.PutUint64(posBuf[:], l.size)
	h.Write(posBuf[:])
	h.Write(left.value.Bytes())
	h.Write(right.value.Bytes())
	var out digest.Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Root bags the current peaks into a single root digest: peaks are
// folded right-to-left, oldest (tallest) peak last, so Root is stable
// under the same size regardless of how it was reached. It returns
// digest.Zero for an empty log.
func (l *Log) Root() digest.Digest {
	if len(l.peaks) == 0 {
		return digest.Zero
	}
	acc := l.peaks[len(l.peaks)-1].value
	for i := len(l.peaks) - 2; i >= 0; i-- {
		h := l.newHash()
		h.Reset()
		h.Write(l.peaks[i].value.Bytes())
		h.Write(acc.Bytes())
		var out digest.Digest
		copy(out[:], h.Sum(nil))
		acc = out
	}
	return acc
}

// Peaks returns a copy of the current peak digests, tallest (oldest)
// first — the packed accumulator for the log's current size.
func (l *Log) Peaks() []digest.Digest {
	out := make([]digest.Digest, len(l.peaks))
	for i, p := range l.peaks {
		out[i] = p.value
	}
	return out
}
