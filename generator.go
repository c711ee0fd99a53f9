package lazyuuid

import (
	"crypto/rand"
	"io"
	"sync"
)

// Generator produces random UUIDs from an io.Reader.
type Generator struct {
	mu         *sync.Mutex // nil when randReader is safe for concurrent use
	randReader io.Reader
}

// NewGenerator creates a generator backed by crypto/rand. crypto/rand.Reader
// is safe for concurrent use, so New takes no lock.
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
	}
}

// NewGeneratorWithReader creates a generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
// Each UUID's 16 bytes are read from r while holding a lock, so r need not
// be safe for concurrent use and one UUID's bytes are never interleaved with
// another's.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		mu:         new(sync.Mutex),
		randReader: r,
	}
}

// New generates a random UUID. Bits 48-51 are set to version 4 and bits
// 64-65 to the RFC 4122 variant; the other 122 bits are read from the
// generator's source.
func (g *Generator) New() (UUID, error) {
	var uuid UUID
	if err := g.read(uuid[:]); err != nil {
		return UUID{}, err
	}
	uuid[6] = (uuid[6] & 0x0f) | 0x40 // Version 4
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // Variant is 10
	return uuid, nil
}

func (g *Generator) read(b []byte) error {
	if g.mu != nil {
		g.mu.Lock()
		defer g.mu.Unlock()
	}
	_, err := io.ReadFull(g.randReader, b)
	return err
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = lazyuuid.Must(lazyuuid.New())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by New and Generate
var defaultGenerator = NewGenerator()

// New generates a random UUID using the default generator.
func New() (UUID, error) {
	return defaultGenerator.New()
}

// Generate is an alias for New.
func Generate() (UUID, error) {
	return defaultGenerator.New()
}
