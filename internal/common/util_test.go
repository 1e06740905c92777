package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.Empty(t, GenerateRandByteArray(0))
}

func TestMakeRandHexString(t *testing.T) {
	tests := []struct {
		size    int
		wantLen int
	}{
		{size: 0, wantLen: 0},
		{size: 1, wantLen: 2},
		{size: 16, wantLen: 32},
	}
	for _, tt := range tests {
		s, err := MakeRandHexString(tt.size)
		require.NoError(t, err)
		assert.Len(t, s, tt.wantLen)

		_, err = hex.DecodeString(s)
		assert.NoError(t, err)
	}
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	assert.Equal(t, make([]byte, 6), b)

	WipeByteArray(nil)
}
