// Package fixture implements Fixture I/O (C6): each registered record
// type persists to a pair of side-car files — canonical bytes (hex or
// raw binary) and the digest computed over them — and a sorted registry
// table names every fixture this module knows how to round-trip.
package fixture

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/datatrails-labs/ucf-core/digest"
	"github.com/datatrails-labs/ucf-core/schema"
	"github.com/datatrails-labs/ucf-core/wire"
)

// VerifyFunc decodes raw canonical bytes into a typed record, so callers
// can re-encode it and check round-tripping without the registry knowing
// each schema's concrete Go type.
type VerifyFunc func(canonicalBytes []byte) (wire.Record, error)

// Entry is one row of the fixture registry.
type Entry struct {
	Name       string
	Schema     schema.SchemaDescriptor
	ProtoFiles []string
	Verify     VerifyFunc
}

// Registry is a sorted-by-name table of fixture entries.
type Registry struct {
	entries []Entry
	log     logger.Logger
}

// NewRegistry builds a Registry from entries, sorting them by Name so
// iteration order is stable regardless of registration order. log may be
// nil, in which case registry operations do not log.
func NewRegistry(entries []Entry, log logger.Logger) *Registry {
	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	r := &Registry{entries: sorted, log: log}
	if r.log != nil {
		r.log.Debugf("fixture: registered %d entries", len(sorted))
	}
	return r
}

// Entries returns the registry's entries in sorted order.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Lookup finds a registry entry by name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// HexPath, BinPath, DigestPath name the three side-car files for a
// fixture registered under name, rooted at dir.
func HexPath(dir, name string) string    { return dir + "/" + name + ".hex" }
func BinPath(dir, name string) string    { return dir + "/" + name + ".bin" }
func DigestPath(dir, name string) string { return dir + "/" + name + ".digest" }

// WriteHex writes canonicalBytes as lowercase hex with a trailing
// newline, the §4.6 `.hex` side-car format.
func WriteHex(path string, canonicalBytes []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if _, err := w.WriteString(hex.EncodeToString(canonicalBytes)); err != nil {
		return err
	}
	if _, err := w.WriteString("\n"); err != nil {
		return err
	}
	return w.Flush()
}

// ReadHex reads a `.hex` side-car file and decodes its contents.
func ReadHex(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(strings.TrimSpace(string(raw)))
}

// WriteBin writes canonicalBytes verbatim, the §4.6 `.bin` side-car
// format: no length framing, no trailing newline.
func WriteBin(path string, canonicalBytes []byte) error {
	return os.WriteFile(path, canonicalBytes, 0o644)
}

// ReadBin reads a `.bin` side-car file.
func ReadBin(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteDigest writes d as lowercase hex with a trailing newline, the
// §4.6 `.digest` side-car format.
func WriteDigest(path string, d digest.Digest) error {
	return os.WriteFile(path, []byte(d.Hex()+"\n"), 0o644)
}

// ReadDigest reads and decodes a `.digest` side-car file.
func ReadDigest(path string) (digest.Digest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return digest.Digest{}, err
	}
	return digest.FromHex(strings.TrimSpace(string(raw)))
}

// ErrMissingSchema is returned by CoversSchemas when a schema file in
// the catalog has no corresponding fixture registry entry.
type ErrMissingSchema struct {
	SchemaID string
}

func (e *ErrMissingSchema) Error() string {
	return fmt.Sprintf("fixture: no registry entry covers schema %q", e.SchemaID)
}

// CoversSchemas asserts that every schema in schemaIDs has at least one
// fixture registry entry naming it, returning the first uncovered schema
// as an error otherwise.
func (r *Registry) CoversSchemas(schemaIDs []string) error {
	covered := make(map[string]bool, len(r.entries))
	for _, e := range r.entries {
		covered[e.Schema.SchemaID] = true
	}
	for _, id := range schemaIDs {
		if !covered[id] {
			if r.log != nil {
				r.log.Infof("fixture: schema %q has no covering registry entry", id)
			}
			return &ErrMissingSchema{SchemaID: id}
		}
	}
	return nil
}
