// Package registry implements the registry membership filter (C11): a
// 4-way blocked Bloom filter over 32-byte elements, fronting an
// authoritative tool/asset registry with an O(1) "definitely absent"
// check. See filter.go for the digest.Digest-typed wrapper API.
package registry

import "errors"

const (
	// ValueBytes is the fixed element width — exactly digest.Size, so
	// registry membership filters index content digests directly.
	ValueBytes = 32

	// Filters is the number of parallel Bloom filters in this format.
	Filters uint8 = 4

	// HeaderBytesV1 is the fixed header size for BloomHeaderV1.
	HeaderBytesV1 = 32

	MagicV1   = "BLM1"
	VersionV1 uint8 = 1

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0
)

var (
	ErrBadElemSize    = errors.New("registry: element must be 32 bytes")
	ErrBadFilterIndex = errors.New("registry: invalid filter index")
	ErrBadRegionSize  = errors.New("registry: region buffer too small")
	ErrNotInitialized = errors.New("registry: header not initialized")

	ErrBadMagic    = errors.New("registry: header magic invalid")
	ErrBadVersion  = errors.New("registry: header version invalid")
	ErrBadBitOrder = errors.New("registry: header bitOrder unsupported")
	ErrBadK        = errors.New("registry: header k invalid")
	ErrBadFilters  = errors.New("registry: header filters invalid")
	ErrBadMBits    = errors.New("registry: header mBits invalid")

	ErrMBitsOverflow = errors.New("registry: mBits overflows supported range")
	ErrSizeOverflow  = errors.New("registry: size computation overflow")
)

type HeaderV1 struct {
	BitOrder  uint8
	K         uint8
	MBits     uint32
	NInserted uint32
}


