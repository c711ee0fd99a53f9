package lazyuuid

import (
	"bytes"

	googleuuid "github.com/google/uuid"
)

// Compare returns an integer comparing two UUIDs lexicographically as
// unsigned bytes. The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// It has the signature slices.SortFunc expects.
func Compare(a, b UUID) int {
	return bytes.Compare(a[:], b[:])
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	return Compare(u, other)
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// operand resolves v to the bytes it stands for. Accepted shapes are UUID,
// non-nil *UUID, [16]byte, google/uuid's UUID, a 16-byte []byte (raw bytes),
// any other []byte (text) and string (text). Everything else, and text that
// does not parse, is reported as !ok.
func operand(v any) (UUID, bool) {
	switch v := v.(type) {
	case UUID:
		return v, true
	case *UUID:
		if v == nil {
			return UUID{}, false
		}
		return *v, true
	case [Size]byte:
		return UUID(v), true
	case googleuuid.UUID:
		return FromGoogle(v), true
	case []byte:
		if len(v) == Size {
			return UUID(v), true
		}
		return ParseBytes(v)
	case string:
		return Parse(v)
	}
	return UUID{}, false
}

// EqualTo reports whether v denotes the same 16 bytes as u. v may be any of
// the shapes CompareTo accepts; anything else is never equal.
func (u UUID) EqualTo(v any) bool {
	other, ok := operand(v)
	return ok && u == other
}

// CompareTo orders u against v, which may be a UUID, *UUID, [16]byte,
// google/uuid UUID, 16-byte []byte, or the canonical or compact text form
// as a string or []byte. ok is false when v is nil, of any other type, or
// text that does not parse; c is meaningless in that case.
func (u UUID) CompareTo(v any) (c int, ok bool) {
	other, ok := operand(v)
	if !ok {
		return 0, false
	}
	return Compare(u, other), true
}
