package lazyuuid

import "fmt"

// Separator is the character placed between groups in the canonical form.
const Separator = '-'

const (
	canonicalLen = 36
	compactLen   = 32
)

// groupLengths is the number of hex digits in each group of the 8-4-4-4-12
// layout.
var groupLengths = [5]int{8, 4, 4, 4, 12}

// isHexDigit reports whether c is one of 0-9, a-f or A-F.
func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// hexValue returns the value of a digit already accepted by isHexDigit.
func hexValue(c byte) byte {
	switch {
	case c <= '9':
		return c - '0'
	case c >= 'a':
		return c - 'a' + 10
	}
	return c - 'A' + 10
}

// separatorLayout decides from the length alone whether separators must
// appear at every group boundary or at none.
func separatorLayout(n int) (separators, ok bool) {
	switch n {
	case canonicalLen:
		return true, true
	case compactLen:
		return false, true
	}
	return false, false
}

type parseState int

const (
	stateHigh      parseState = iota // expecting the high nibble of a byte
	stateLow                         // expecting the low nibble of a byte
	stateSeparator                   // expecting Separator at a group boundary
)

// decode runs the grammar over s. It is generic over string and []byte so
// that ParseBytes avoids a conversion.
func decode[T string | []byte](s T) (UUID, bool) {
	var uuid UUID
	separators, ok := separatorLayout(len(s))
	if !ok {
		return UUID{}, false
	}

	state := stateHigh
	var (
		group  int
		digits int // hex digits consumed in the current group
		n      int // bytes written to uuid
		high   byte
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case stateSeparator:
			if c != Separator {
				return UUID{}, false
			}
			state = stateHigh
			continue
		case stateHigh:
			if !isHexDigit(c) {
				return UUID{}, false
			}
			high = hexValue(c)
			state = stateLow
		case stateLow:
			if !isHexDigit(c) {
				return UUID{}, false
			}
			uuid[n] = high<<4 | hexValue(c)
			n++
			state = stateHigh
		}

		digits++
		if digits == groupLengths[group] {
			group++
			digits = 0
			if separators && group < len(groupLengths) {
				state = stateSeparator
			}
		}
	}
	if n != Size {
		return UUID{}, false
	}
	return uuid, true
}

// Parse parses a UUID from its canonical (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx)
// or compact (32 hex digits) form. Hex digits may be upper or lower case.
// Any other input, including surrounding whitespace, reports ok == false.
// The version and variant digits are not checked.
func Parse(s string) (UUID, bool) {
	return decode(s)
}

// ParseBytes is like Parse but takes the text as a byte slice.
func ParseBytes(b []byte) (UUID, bool) {
	return decode(b)
}

// ParseText parses a string or []byte. Any other argument type is a caller
// error and yields an error wrapping ErrTypeMismatch; malformed text is not
// an error and reports ok == false.
func ParseText(v any) (UUID, bool, error) {
	switch v := v.(type) {
	case string:
		u, ok := Parse(v)
		return u, ok, nil
	case []byte:
		u, ok := ParseBytes(v)
		return u, ok, nil
	default:
		return UUID{}, false, fmt.Errorf("%w: %T", ErrTypeMismatch, v)
	}
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, ok := Parse(s)
	if !ok {
		panic(fmt.Sprintf("lazyuuid: Parse(%q): %v", s, ErrInvalidFormat))
	}
	return uuid
}
