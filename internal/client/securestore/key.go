package securestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/growlog/internal/common"
	"github.com/dmitrijs2005/growlog/internal/cryptox"
	"github.com/dmitrijs2005/growlog/internal/filex"
)

// ErrInvalidKey is returned when the device key file has the wrong size.
var ErrInvalidKey = errors.New("invalid device key")

// LoadOrCreateKey reads the device key at path, generating and writing a new
// random key (mode 0600) on first use.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != cryptox.KeySize {
			return nil, fmt.Errorf("%s: %w", path, ErrInvalidKey)
		}
		return key, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read device key: %w", err)
	}

	if err := filex.EnsureParentDir(path, 0o700); err != nil {
		return nil, fmt.Errorf("create key dir: %w", err)
	}

	key = common.GenerateRandByteArray(cryptox.KeySize)
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write device key: %w", err)
	}
	return key, nil
}
