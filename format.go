package lazyuuid

import "encoding/hex"

// Format returns the lowercase hex form of u. With separators it is the
// 36-character canonical form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx;
// without, the 32-character compact form.
func Format(u UUID, separators bool) string {
	if !separators {
		var buf [compactLen]byte
		hex.Encode(buf[:], u[:])
		return string(buf[:])
	}
	var buf [canonicalLen]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex writes the canonical form of u into dst, which must be at least
// 36 bytes long.
func encodeHex(dst []byte, u UUID) {
	src, pos := 0, 0
	for g, n := range groupLengths {
		if g > 0 {
			dst[pos] = Separator
			pos++
		}
		hex.Encode(dst[pos:pos+n], u[src:src+n/2])
		pos += n
		src += n / 2
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	return Format(u, true)
}

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return Format(u, false)
}
