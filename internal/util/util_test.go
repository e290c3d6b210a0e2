package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "long…", Truncate("longer", 5))
	assert.Equal(t, "…", Truncate("ab", 1))
	assert.Equal(t, "", Truncate("ab", 0))
	assert.Equal(t, "héll…", Truncate("héllo world", 5))
}
