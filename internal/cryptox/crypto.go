package cryptox

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/growlog/internal/common"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the length of a Sealer key.
const KeySize = chacha20poly1305.KeySize

// ErrOpen is returned when a sealed value is too short or fails
// authentication.
var ErrOpen = errors.New("sealed value failed authentication")

// Sealer encrypts small values with XChaCha20-Poly1305. Sealed output is
// nonce||ciphertext, so it can be stored as a single blob.
type Sealer struct {
	aead cipher.AEAD
}

func NewSealer(key []byte) (*Sealer, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plain with a fresh random nonce. ad is authenticated but
// not stored; Open must be given the same ad.
func (s *Sealer) Seal(plain, ad []byte) []byte {
	nonce := common.GenerateRandByteArray(s.aead.NonceSize())
	return s.aead.Seal(nonce, nonce, plain, ad)
}

func (s *Sealer) Open(sealed, ad []byte) ([]byte, error) {
	n := s.aead.NonceSize()
	if len(sealed) < n+s.aead.Overhead() {
		return nil, ErrOpen
	}
	plain, err := s.aead.Open(nil, sealed[:n], sealed[n:], ad)
	if err != nil {
		return nil, ErrOpen
	}
	return plain, nil
}
