// Package securestore is the device-local key/value storage holding the
// persisted credential record.
//
// Values are sealed with XChaCha20-Poly1305 under a per-device key before
// they reach the metadata table, and each ciphertext is bound to its key
// name so rows cannot be swapped between keys.
package securestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/growlog/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/growlog/internal/common"
	"github.com/dmitrijs2005/growlog/internal/cryptox"
	"github.com/dmitrijs2005/growlog/internal/dbx"
)

// ErrTampered is returned when a stored value fails authentication.
var ErrTampered = errors.New("stored value failed authentication")

// Store is a string key/value store.
//
// Get reports ok=false for an absent key. SetAll writes every pair or none.
// Delete ignores absent keys.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	SetAll(ctx context.Context, items map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

// SealedStore implements Store on top of the SQLite metadata table.
type SealedStore struct {
	db     *sql.DB
	sealer *cryptox.Sealer
	repo   func(dbx.DBTX) metadata.Repository
}

func sqliteRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// New returns a SealedStore over db using a cryptox.KeySize key.
func New(db *sql.DB, key []byte) (*SealedStore, error) {
	sealer, err := cryptox.NewSealer(key)
	if err != nil {
		return nil, err
	}
	return &SealedStore{db: db, sealer: sealer, repo: sqliteRepo}, nil
}

func (s *SealedStore) Get(ctx context.Context, key string) (string, bool, error) {
	raw, err := s.repo(s.db).Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if raw == nil {
		return "", false, nil
	}

	plain, err := s.open(key, raw)
	if err != nil {
		return "", false, fmt.Errorf("open %s: %w", key, err)
	}
	defer common.WipeByteArray(plain)
	return string(plain), true, nil
}

func (s *SealedStore) SetAll(ctx context.Context, items map[string]string) error {
	sealed := make(map[string][]byte, len(items))
	for k, v := range items {
		plain := []byte(v)
		sealed[k] = s.seal(k, plain)
		common.WipeByteArray(plain)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		for k, v := range sealed {
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SealedStore) Delete(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Delete(ctx, keys...)
	})
}

// The key name is the associated data, binding each value to its row.
func (s *SealedStore) seal(key string, plain []byte) []byte {
	return s.sealer.Seal(plain, []byte(key))
}

func (s *SealedStore) open(key string, raw []byte) ([]byte, error) {
	plain, err := s.sealer.Open(raw, []byte(key))
	if err != nil {
		return nil, ErrTampered
	}
	return plain, nil
}
