package wire

// FieldBuilder accumulates Fields in ascending-number order for a record's
// CanonicalFields implementation. It mirrors the "thin CanonicalBuilder per
// record" design note (§9): callers append fields unconditionally and the
// builder elides scalar defaults itself, so schema types read as a plain
// list of "append field N if set" statements.
type FieldBuilder struct {
	fields []Field
}

// Build returns the accumulated fields.
func (b *FieldBuilder) Build() []Field {
	return b.fields
}

// Uint64 appends an unsigned integer field, eliding the zero default
// unless present is true (optional-presence fields, §9).
func (b *FieldBuilder) Uint64(number uint32, v uint64, present bool) {
	if v == 0 && !present {
		return
	}
	b.fields = append(b.fields, Field{Number: number, Type: Varint, Varint: v})
}

// Int64 appends a signed integer field using zig-zag-free raw varint
// (records in this repository never need negative wire values).
func (b *FieldBuilder) Int64(number uint32, v int64, present bool) {
	b.Uint64(number, uint64(v), present)
}

// Bool appends a boolean field; false is always the elided default.
func (b *FieldBuilder) Bool(number uint32, v bool) {
	if !v {
		return
	}
	b.fields = append(b.fields, Field{Number: number, Type: Varint, Varint: 1})
}

// String appends a UTF-8 string field, eliding the empty default unless
// present is true.
func (b *FieldBuilder) String(number uint32, v string, present bool) {
	if v == "" && !present {
		return
	}
	b.fields = append(b.fields, Field{Number: number, Type: LengthDelimited, Bytes: []byte(v)})
}

// Bytes appends a raw byte-string field, eliding the empty default unless
// present is true.
func (b *FieldBuilder) Bytes(number uint32, v []byte, present bool) {
	if len(v) == 0 && !present {
		return
	}
	b.fields = append(b.fields, Field{Number: number, Type: LengthDelimited, Bytes: append([]byte(nil), v...)})
}

// Message appends a nested message field, length-delimited. An empty
// sub-message (no fields emitted) is elided unless present is true, per
// §4.1: "empty sub-messages are elided unless marked present."
func (b *FieldBuilder) Message(number uint32, msg Record, present bool) error {
	if msg == nil {
		return nil
	}
	inner, err := CanonicalBytes(msg)
	if err != nil {
		return err
	}
	if len(inner) == 0 && !present {
		return nil
	}
	b.fields = append(b.fields, Field{Number: number, Type: LengthDelimited, Bytes: inner})
	return nil
}

// RepeatedString appends one length-delimited field per string, in the
// order given. Set-typed fields must already be sorted by the caller
// (§4.1's set discipline) before reaching this method.
func (b *FieldBuilder) RepeatedString(number uint32, vs []string) {
	for _, v := range vs {
		b.fields = append(b.fields, Field{Number: number, Type: LengthDelimited, Bytes: []byte(v)})
	}
}

// RepeatedMessage appends one length-delimited field per nested message, in
// the order given.
func (b *FieldBuilder) RepeatedMessage(number uint32, msgs []Record) error {
	for _, m := range msgs {
		inner, err := CanonicalBytes(m)
		if err != nil {
			return err
		}
		b.fields = append(b.fields, Field{Number: number, Type: LengthDelimited, Bytes: inner})
	}
	return nil
}

// PackedUint64 appends a single length-delimited field containing the
// varint-packed encoding of vs, the canonical form for repeated numeric
// scalars (§4.1 "packed encoding for numeric types").
func (b *FieldBuilder) PackedUint64(number uint32, vs []uint64) {
	if len(vs) == 0 {
		return
	}
	var payload []byte
	for _, v := range vs {
		payload = putUvarint(payload, v)
	}
	b.fields = append(b.fields, Field{Number: number, Type: LengthDelimited, Bytes: payload})
}

// GetString projects a length-delimited field back into a string, or ""
// when absent.
func GetString(fields []Field, number uint32) string {
	f, ok := Lookup(fields, number)
	if !ok {
		return ""
	}
	return string(f.Bytes)
}

// GetBytes projects a length-delimited field back into a byte slice, or nil
// when absent.
func GetBytes(fields []Field, number uint32) []byte {
	f, ok := Lookup(fields, number)
	if !ok {
		return nil
	}
	return append([]byte(nil), f.Bytes...)
}

// GetUint64 projects a varint field back into a uint64, or 0 when absent.
func GetUint64(fields []Field, number uint32) uint64 {
	f, ok := Lookup(fields, number)
	if !ok {
		return 0
	}
	return f.Varint
}

// GetBool projects a varint field back into a bool, false when absent.
func GetBool(fields []Field, number uint32) bool {
	return GetUint64(fields, number) != 0
}

// GetRepeatedStrings projects every length-delimited field with the given
// number back into a string slice, in wire order.
func GetRepeatedStrings(fields []Field, number uint32) []string {
	fs := LookupAll(fields, number)
	if len(fs) == 0 {
		return nil
	}
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f.Bytes)
	}
	return out
}

// Has reports whether a field with the given number is present in fields.
func Has(fields []Field, number uint32) bool {
	_, ok := Lookup(fields, number)
	return ok
}
