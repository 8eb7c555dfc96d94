package adapters

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/google/uuid"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxUnbiased is the largest multiple of len(codeAlphabet) that fits in a byte.
const maxUnbiased = 256 - 256%len(codeAlphabet)

// RandomCodeGenerator builds tracking codes as a fixed prefix followed by
// uniformly random characters from [0-9A-Z].
type RandomCodeGenerator struct {
	prefix string
	length int
	source io.Reader
}

// NewRandomCodeGenerator reads randomness from crypto/rand.
func NewRandomCodeGenerator(prefix string, length int) *RandomCodeGenerator {
	return &RandomCodeGenerator{prefix: prefix, length: length, source: rand.Reader}
}

// NewCode returns a fresh candidate code. Uniqueness is checked by the store.
func (g *RandomCodeGenerator) NewCode() (string, error) {
	out := make([]byte, 0, len(g.prefix)+g.length)
	out = append(out, g.prefix...)

	buf := make([]byte, g.length*2)
	for len(out) < len(g.prefix)+g.length {
		if _, err := io.ReadFull(g.source, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			out = append(out, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(out) == len(g.prefix)+g.length {
				break
			}
		}
	}
	return string(out), nil
}

// UUIDGenerator issues random v4 UUIDs as order ids.
type UUIDGenerator struct{}

// NewID implements ports.IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
