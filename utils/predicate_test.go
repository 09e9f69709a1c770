package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange('a', 'a', 'z'))
	assert.True(t, IsInRange('a', 'z', 'z'))
	assert.False(t, IsInRange('a', 'A', 'z'))
	assert.True(t, IsInRange(0, 5, 10))
	assert.False(t, IsInRange("b", "a", "c"))
}
