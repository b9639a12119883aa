package utils

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^FLQ-[A-Z0-9]{10}$`)

func TestRandomReferenceFormat(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		ref := randomReference(r)
		require.Regexp(t, referencePattern, ref)
	}
}

func TestRandomReferenceVaries(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[randomReference(r)] = true
	}
	assert.Greater(t, len(seen), 1)
}
