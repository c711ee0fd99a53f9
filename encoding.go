package lazyuuid

import (
	"database/sql/driver"
	"encoding/base64"
	"fmt"
)

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	buf := make([]byte, canonicalLen)
	encodeHex(buf, u)
	return buf, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Both the canonical and the compact form are accepted.
func (u *UUID) UnmarshalText(data []byte) error {
	id, ok := ParseBytes(data)
	if !ok {
		return ErrInvalidFormat
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// A NULL or empty column leaves u unchanged.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, ok := Parse(src)
		if !ok {
			return fmt.Errorf("lazyuuid: scan %q: %w", src, ErrInvalidFormat)
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		id, ok := operand(src)
		if !ok {
			return fmt.Errorf("lazyuuid: scan %q: %w", src, ErrInvalidFormat)
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("%w: cannot scan type %T into UUID", ErrTypeMismatch, src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// DecodeFromHex decodes the 32-digit compact form to a UUID
func DecodeFromHex(s string) (UUID, error) {
	if len(s) != compactLen {
		return UUID{}, ErrInvalidFormat
	}
	uuid, ok := Parse(s)
	if !ok {
		return UUID{}, ErrInvalidFormat
	}
	return uuid, nil
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	return decodeBase64(base64.RawURLEncoding, s)
}

// DecodeFromBase64Std decodes a standard base64 string to UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	return decodeBase64(base64.StdEncoding, s)
}

func decodeBase64(enc *base64.Encoding, s string) (UUID, error) {
	data, err := enc.DecodeString(s)
	if err != nil {
		return UUID{}, ErrInvalidFormat
	}
	return FromBytes(data)
}
