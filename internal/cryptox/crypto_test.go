package cryptox

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/growlog/internal/common"
	"github.com/stretchr/testify/require"
)

func newSealer(t *testing.T) *Sealer {
	t.Helper()
	s, err := NewSealer(common.GenerateRandByteArray(KeySize))
	require.NoError(t, err)
	return s
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s := newSealer(t)

	sealed := s.Seal([]byte("secret token"), []byte("auth_token"))
	require.False(t, bytes.Contains(sealed, []byte("secret token")))

	plain, err := s.Open(sealed, []byte("auth_token"))
	require.NoError(t, err)
	require.Equal(t, "secret token", string(plain))
}

func TestSeal_FreshNonceEachTime(t *testing.T) {
	s := newSealer(t)
	a := s.Seal([]byte("x"), nil)
	b := s.Seal([]byte("x"), nil)
	require.NotEqual(t, a, b)
}

func TestOpen_Failures(t *testing.T) {
	s := newSealer(t)
	sealed := s.Seal([]byte("value"), []byte("k1"))

	_, err := s.Open(sealed, []byte("k2"))
	require.ErrorIs(t, err, ErrOpen, "different associated data")

	_, err = s.Open(sealed[:10], []byte("k1"))
	require.ErrorIs(t, err, ErrOpen, "truncated")

	flipped := append([]byte(nil), sealed...)
	flipped[len(flipped)-1] ^= 0xff
	_, err = s.Open(flipped, []byte("k1"))
	require.ErrorIs(t, err, ErrOpen, "modified")

	_, err = newSealer(t).Open(sealed, []byte("k1"))
	require.ErrorIs(t, err, ErrOpen, "other key")
}

func TestNewSealer_RejectsBadKey(t *testing.T) {
	_, err := NewSealer([]byte("short"))
	require.Error(t, err)
}
