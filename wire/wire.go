// Package wire implements the UCF canonical encoder (§4.1): a deterministic,
// tag-ordered, length-delimited byte encoding that every producer and
// consumer must agree on bit-for-bit.
//
// The format is structurally the protobuf wire format (varint tags of
// field_number<<3|wire_type, the same four wire types) but is produced by a
// small hand-rolled writer rather than google.golang.org/protobuf's
// reflective runtime. See DESIGN.md for why: canonical presence-elision and
// unknown-field passthrough need per-field control that a generated
// descriptor pipeline (which this repository cannot invoke, since protoc is
// off-limits in this build) does not give us for free.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// WireType identifies how a field's payload is framed on the wire.
type WireType uint8

const (
	Varint         WireType = 0
	Fixed64        WireType = 1
	LengthDelimited WireType = 2
	Fixed32        WireType = 5
)

// Field is one entry in a record's canonical field list: either a value a
// schema understands (produced by a Record's CanonicalFields) or a raw,
// unrecognised tag preserved verbatim from a decode so that re-encoding
// reproduces the original bytes (§9 "Forward compatibility").
type Field struct {
	Number  uint32
	Type    WireType
	Varint  uint64 // valid when Type == Varint or Fixed64/Fixed32 (stored as raw bits)
	Bytes   []byte // valid when Type == LengthDelimited
}

// Record is implemented by every schema type in this repository. It must
// list its populated fields in strictly ascending Number order; the encoder
// trusts this ordering and does not sort (§4.1, §9).
type Record interface {
	CanonicalFields() ([]Field, error)
}

// DecodeErrorKind enumerates the ways Decode can fail (§7).
type DecodeErrorKind int

const (
	MalformedWire DecodeErrorKind = iota
	TrailingBytes
	FieldTypeMismatch
	UnknownRequiredField
)

func (k DecodeErrorKind) String() string {
	switch k {
	case MalformedWire:
		return "MalformedWire"
	case TrailingBytes:
		return "TrailingBytes"
	case FieldTypeMismatch:
		return "FieldTypeMismatch"
	case UnknownRequiredField:
		return "UnknownRequiredField"
	default:
		return "UnknownDecodeError"
	}
}

// DecodeError is returned by Decode and by schema-specific field mappers.
type DecodeError struct {
	Kind DecodeErrorKind
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Msg == "" {
		return "wire: decode error: " + e.Kind.String()
	}
	return fmt.Sprintf("wire: decode error: %s: %s", e.Kind, e.Msg)
}

func newDecodeError(kind DecodeErrorKind, msg string) *DecodeError {
	return &DecodeError{Kind: kind, Msg: msg}
}

// Uvarint/Varint helpers mirror protobuf's base-128 varint encoding.

func putUvarint(dst []byte, v uint64) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	return append(dst, buf[:n]...)
}

func tag(number uint32, wt WireType) uint64 {
	return uint64(number)<<3 | uint64(wt)
}

// Encode serializes fields in the order given — ascending field-number
// order and sortedness of any set-typed repeated field is the caller's
// contract (§4.1, §9); Encode performs no reordering. Field values equal to
// a declared-absent marker (an empty Field with no Bytes and Varint == 0
// for scalar-coded fields) must already have been elided by the caller:
// Encode is a total function over whatever field list it is given.
func Encode(fields []Field) ([]byte, error) {
	var out []byte
	for _, f := range fields {
		switch f.Type {
		case Varint:
			out = putUvarint(out, tag(f.Number, Varint))
			out = putUvarint(out, f.Varint)
		case Fixed64:
			out = putUvarint(out, tag(f.Number, Fixed64))
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], f.Varint)
			out = append(out, b[:]...)
		case Fixed32:
			out = putUvarint(out, tag(f.Number, Fixed32))
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], uint32(f.Varint))
			out = append(out, b[:]...)
		case LengthDelimited:
			out = putUvarint(out, tag(f.Number, LengthDelimited))
			out = putUvarint(out, uint64(len(f.Bytes)))
			out = append(out, f.Bytes...)
		default:
			return nil, &DecodeError{Kind: MalformedWire, Msg: "unknown wire type in field list"}
		}
	}
	return out, nil
}

// Decode parses bytes into the raw Field list, without reference to any
// particular schema. It preserves every tag it sees, known or not, so a
// schema-specific mapper can project the fields it recognises while
// keeping the rest for byte-identical re-encoding. Decode enforces
// strictly-ascending field numbers is NOT required of it (decoders must
// tolerate whatever order a conforming encoder emitted, which is always
// ascending, but Decode itself does not need to assume that to be total).
func Decode(b []byte) ([]Field, error) {
	var fields []Field
	for len(b) > 0 {
		t, n := binary.Uvarint(b)
		if n <= 0 {
			return nil, newDecodeError(MalformedWire, "truncated tag varint")
		}
		b = b[n:]

		number := uint32(t >> 3)
		wt := WireType(t & 0x7)
		if number == 0 {
			return nil, newDecodeError(MalformedWire, "field number zero is not valid")
		}

		switch wt {
		case Varint:
			v, n := binary.Uvarint(b)
			if n <= 0 {
				return nil, newDecodeError(MalformedWire, "truncated varint field value")
			}
			b = b[n:]
			fields = append(fields, Field{Number: number, Type: Varint, Varint: v})

		case Fixed64:
			if len(b) < 8 {
				return nil, newDecodeError(MalformedWire, "truncated fixed64 field value")
			}
			v := binary.LittleEndian.Uint64(b[:8])
			b = b[8:]
			fields = append(fields, Field{Number: number, Type: Fixed64, Varint: v})

		case Fixed32:
			if len(b) < 4 {
				return nil, newDecodeError(MalformedWire, "truncated fixed32 field value")
			}
			v := uint64(binary.LittleEndian.Uint32(b[:4]))
			b = b[4:]
			fields = append(fields, Field{Number: number, Type: Fixed32, Varint: v})

		case LengthDelimited:
			length, n := binary.Uvarint(b)
			if n <= 0 {
				return nil, newDecodeError(MalformedWire, "truncated length-delimited length varint")
			}
			b = b[n:]
			if uint64(len(b)) < length {
				return nil, newDecodeError(MalformedWire, "truncated length-delimited payload")
			}
			payload := make([]byte, length)
			copy(payload, b[:length])
			b = b[length:]
			fields = append(fields, Field{Number: number, Type: LengthDelimited, Bytes: payload})

		default:
			return nil, newDecodeError(MalformedWire, "reserved/unsupported wire type")
		}
	}
	return fields, nil
}

// CanonicalBytes is the public C1 entry point: encode(record) -> bytes.
// It never fails for a structurally valid record (EncodeError in spec.md's
// terms is unreachable for well-typed inputs and would indicate a
// programmer bug, so a non-nil error here is always a caller bug, not a
// recoverable condition).
func CanonicalBytes(r Record) ([]byte, error) {
	fields, err := r.CanonicalFields()
	if err != nil {
		return nil, err
	}
	return Encode(fields)
}

// ErrTrailingBytes names bytes left over after the last field. No function
// in this module returns it: Decode consumes its input to the end and
// reports an incomplete final field as a MalformedWire DecodeError.
var ErrTrailingBytes = errors.New("wire: trailing bytes after last field")

// Lookup returns the first field with the given number, mirroring how a
// schema-specific struct mapper projects a generic field list into typed
// values.
func Lookup(fields []Field, number uint32) (Field, bool) {
	for _, f := range fields {
		if f.Number == number {
			return f, true
		}
	}
	return Field{}, false
}

// LookupAll returns every field with the given number, in encounter order —
// used for repeated fields.
func LookupAll(fields []Field, number uint32) []Field {
	var out []Field
	for _, f := range fields {
		if f.Number == number {
			out = append(out, f)
		}
	}
	return out
}
