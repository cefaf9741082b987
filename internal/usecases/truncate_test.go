package usecases

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc", truncate("abcdef", 3))

	// "ü" is two bytes; a cut inside it backs up to the boundary
	cut := truncate("müller", 2)
	assert.Equal(t, "m", cut)
	assert.True(t, utf8.ValidString(cut))

	cut = truncate("判定結果は不明です", 7)
	assert.True(t, utf8.ValidString(cut))
	assert.LessOrEqual(t, len(cut), 7)
}
