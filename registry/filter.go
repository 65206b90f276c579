package registry

import (
	"fmt"

	"github.com/datatrails-labs/ucf-core/digest"
)

// Filter is a fast-path membership check over a fixed set of
// digest.Digest values (C11): it answers "definitely not registered" in
// O(1) without touching the backing registry, and "maybe registered" when
// a caller must fall through to an authoritative lookup (e.g. by
// schema.ToolRegistryProfile.ProfileDigest). digest.Size already equals
// ValueBytes, so digests are inserted with no padding or truncation.
type Filter struct {
	region []byte
	k      uint8
}

// NewFilter allocates and initializes a Filter sized for leafCount
// elements at bitsPerElement density, using k hash rounds per filter.
func NewFilter(leafCount uint64, bitsPerElement uint64, k uint8) (*Filter, error) {
	mBits := MBitsSafeCast(MBitsV1(leafCount, bitsPerElement))
	if mBits == 0 {
		return nil, ErrMBitsOverflow
	}
	region := make([]byte, RegionBytesV1(mBits))
	if err := InitV1(region, leafCount, bitsPerElement, k); err != nil {
		return nil, err
	}
	return &Filter{region: region, k: k}, nil
}

// Insert adds d to filter slot idx (0..Filters-1). Separate filter slots
// let callers partition digests by kind (e.g. one slot per schema) while
// sharing a single allocation.
func (f *Filter) Insert(idx uint8, d digest.Digest) error {
	return InsertV1(f.region, idx, d.Bytes())
}

// MaybeContains reports whether d might be registered in filter slot idx.
// A false result is authoritative; a true result requires confirmation
// against the backing registry.
func (f *Filter) MaybeContains(idx uint8, d digest.Digest) (bool, error) {
	return MaybeContainsV1(f.region, idx, d.Bytes())
}

// Bytes returns the serialized filter region, suitable for writing to a
// fixture sidecar file alongside the registry it fronts.
func (f *Filter) Bytes() []byte {
	return f.region
}

// FromBytes wraps a previously-serialized filter region for querying.
func FromBytes(region []byte) (*Filter, error) {
	h, ok, err := DecodeHeaderV1(region)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotInitialized
	}
	need := uint64(HeaderBytesV1) + uint64(Filters)*uint64(BitsetBytesV1(h.MBits))
	if uint64(len(region)) < need {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrBadRegionSize, need, len(region))
	}
	return &Filter{region: region, k: h.K}, nil
}
