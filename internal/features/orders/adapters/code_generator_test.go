package adapters

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeGenerator_Format(t *testing.T) {
	g := NewRandomCodeGenerator("TR", 9)
	pattern := regexp.MustCompile(`^TR[0-9A-Z]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := g.NewCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "collision on %s", code)
		seen[code] = true
	}
}

func TestRandomCodeGenerator_RejectsBiasedBytes(t *testing.T) {
	// 252..255 are outside the unbiased range and must be skipped.
	src := bytes.NewReader([]byte{255, 252, 0, 35, 36, 253, 71, 1, 2, 3, 4, 5, 6})
	g := &RandomCodeGenerator{prefix: "PK", length: 3, source: src}

	code, err := g.NewCode()
	require.NoError(t, err)
	assert.Equal(t, "PK0Z0", code)
}

func TestRandomCodeGenerator_SourceError(t *testing.T) {
	g := &RandomCodeGenerator{prefix: "TR", length: 9, source: bytes.NewReader(nil)}

	_, err := g.NewCode()
	assert.Error(t, err)
}

func TestUUIDGenerator(t *testing.T) {
	id := UUIDGenerator{}.NewID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, id, UUIDGenerator{}.NewID())
}
