package lazyuuid

import (
	"fmt"
	"hash/fnv"
)

// Size is the length of a UUID in bytes.
const Size = 16

// UUID is a 128-bit identifier. It is a value type: assignment copies all 16
// bytes and no method mutates the receiver, so a UUID can be shared freely
// between goroutines.
type UUID [Size]byte

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Default returns the all-zero UUID.
func Default() UUID {
	return UUID{}
}

// FromBytes creates a UUID from a byte slice. The bytes are copied, so later
// changes to b do not affect the returned UUID.
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != Size {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(fmt.Sprintf("lazyuuid: FromBytes(%d bytes): %v", len(b), err))
	}
	return uuid
}

// Bytes returns a copy of the 16 bytes of u.
func (u UUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

// IsDefault reports whether u is the all-zero UUID.
func (u UUID) IsDefault() bool {
	return u == UUID{}
}

// IsNil is an alias for IsDefault.
func (u UUID) IsNil() bool {
	return u.IsDefault()
}

// Hash returns a 64-bit FNV-1a hash of the UUID bytes. Equal UUIDs always
// hash equal, across processes.
func (u UUID) Hash() uint64 {
	h := fnv.New64a()
	h.Write(u[:])
	return h.Sum64()
}

// Version returns the version nibble. Nothing in this package validates it.
func (u UUID) Version() byte {
	return u[6] >> 4
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}
