package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandDigits(t *testing.T) {
	code, err := RandDigits(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.True(t, IsDigits(code))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("123456"))
	assert.True(t, IsDigits("000000"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a456"))
	assert.False(t, IsDigits("12 456"))
	assert.False(t, IsDigits("12345６")) // full-width digit
}
