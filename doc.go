// Package lazyuuid provides an immutable 128-bit UUID value type with
// parsing, formatting, equality and ordering.
//
// A UUID is a [16]byte. Its zero value, returned by Default, is the all-zero
// UUID.
//
// Basic Usage:
//
//	// Generate a random UUID
//	id, err := lazyuuid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id)                        // de305d54-75b4-431b-adb2-eb6b9e546014
//	fmt.Println(lazyuuid.Format(id, false)) // de305d5475b4431badb2eb6b9e546014
//
//	// Parse a UUID. Malformed text is not an error, it reports ok == false.
//	id, ok := lazyuuid.Parse("de305d54-75b4-431b-adb2-eb6b9e546014")
//	if !ok {
//	    // handle bad input
//	}
//
// Parsing:
//
// Parse accepts exactly two shapes: 32 hex digits, or 32 hex digits grouped
// 8-4-4-4-12 with a '-' at every group boundary. Hex digits are
// case-insensitive. Whitespace, braces, URN prefixes and partial separators
// are rejected. Version and variant digits are not validated, so any UUID
// formatted by this package parses back to the same bytes.
//
// Comparison:
//
// Equal and Compare work on two UUIDs. EqualTo and CompareTo additionally
// accept a raw 16-byte buffer or the textual form:
//
//	id.EqualTo("de305d54-75b4-431b-adb2-eb6b9e546014") // true
//	id.EqualTo("foobar")                               // false
//	c, ok := id.CompareTo(nil)                         // ok == false: incomparable
//
// Thread Safety:
//
// UUID values are immutable and may be shared between goroutines. The
// default generator reads crypto/rand without locking; generators created
// with NewGeneratorWithReader serialise access to their reader.
package lazyuuid
