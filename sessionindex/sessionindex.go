// Package sessionindex implements the session index (C10): a keyed
// binary trie over session event ordinals, letting a verifier look up
// the record digest sealed at a given schema.SessionEventRecord.Ordinal,
// with the whole entry set committed to a single session root digest.
// Lookup returns the stored digest only; no inclusion path is produced.
//
// This is a from-scratch adaptation of the teacher's postorder keyed
// trie (package urkle): same domain-separated leaf/branch hashing (a
// 0x00 leaf tag and 0x01 branch tag distinguish the two node kinds so
// neither can be mistaken for the other), generalized to index
// digest.Digest values instead of opaque 32-byte log values, and built
// bottom-up from a fixed key width rather than urkle's full massif/MMR
// addressing scheme.
package sessionindex

import (
	"encoding/binary"
	"errors"
	"hash"

	"github.com/datatrails-labs/ucf-core/digest"
)

const (
	leafTag   = 0x00
	branchTag = 0x01
	// KeyBits is the trie depth: enough to index any uint64 ordinal.
	KeyBits = 64
)

// ErrKeyNotFound names a key that was never inserted. No function in
// this package returns it: Lookup reports absence through its boolean
// result.
var ErrKeyNotFound = errors.New("sessionindex: key not found")

// Entry is one (ordinal, digest) pair to be indexed.
type Entry struct {
	Key   uint64
	Value digest.Digest
}

// Index is a keyed binary trie built once over a fixed set of entries —
// append-only construction is not supported; build a new Index when the
// entry set changes.
type Index struct {
	newHash func() hash.Hash
	entries map[uint64]digest.Digest
	root    digest.Digest
}

// Build constructs an Index over entries.
func Build(newHash func() hash.Hash, entries []Entry) (*Index, error) {
	idx := &Index{
		newHash: newHash,
		entries: make(map[uint64]digest.Digest, len(entries)),
	}
	for _, e := range entries {
		idx.entries[e.Key] = e.Value
	}
	root, err := idx.subtreeRoot(0, 0, len(entries) == 0, entries)
	if err != nil {
		return nil, err
	}
	idx.root = root
	return idx, nil
}

// Root returns the trie's root digest.
func (idx *Index) Root() digest.Digest {
	return idx.root
}

// subtreeRoot recursively hashes the trie for the given bit depth,
// partitioning entries by their bit at that depth. An empty subtree
// hashes to digest.Zero so that absent branches are distinguishable from
// populated ones only by position, never by a colliding real value.
func (idx *Index) subtreeRoot(depth int, prefix uint64, empty bool, entries []Entry) (digest.Digest, error) {
	if empty || len(entries) == 0 {
		return digest.Zero, nil
	}
	if len(entries) == 1 && depth == KeyBits {
		return idx.leafHash(entries[0].Key, entries[0].Value), nil
	}
	if depth == KeyBits {
		// Multiple entries collapsed to the same key: last write wins,
		// matching map semantics used to build idx.entries.
		return idx.leafHash(entries[len(entries)-1].Key, entries[len(entries)-1].Value), nil
	}

	var left, right []Entry
	bitPos := KeyBits - 1 - depth
	for _, e := range entries {
		if (e.Key>>uint(bitPos))&1 == 0 {
			left = append(left, e)
		} else {
			right = append(right, e)
		}
	}
	leftRoot, err := idx.subtreeRoot(depth+1, prefix<<1, len(left) == 0, left)
	if err != nil {
		return digest.Digest{}, err
	}
	rightRoot, err := idx.subtreeRoot(depth+1, prefix<<1|1, len(right) == 0, right)
	if err != nil {
		return digest.Digest{}, err
	}
	return idx.branchHash(uint8(depth), leftRoot, rightRoot), nil
}

func (idx *Index) leafHash(key uint64, value digest.Digest) digest.Digest {
	h := idx.newHash()
	h.Reset()
	h.Write([]byte{leafTag})
	var keyBuf [8]byte
	binary.BigEndian.PutUint64(keyBuf[:], key)
	h.Write(keyBuf[:])
	h.Write(value.Bytes())
	var out digest.Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (idx *Index) branchHash(depth uint8, left, right digest.Digest) digest.Digest {
	h := idx.newHash()
	h.Reset()
	h.Write([]byte{branchTag, depth})
	h.Write(left.Bytes())
	h.Write(right.Bytes())
	var out digest.Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Lookup returns the value indexed at key, if present.
func (idx *Index) Lookup(key uint64) (digest.Digest, bool) {
	v, ok := idx.entries[key]
	return v, ok
}
