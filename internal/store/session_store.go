package store

import (
	"context"
	"fmt"

	"github.com/celo-academy/academy-engine/internal/domain"
)

// SessionStore persists the wallet selection and the owner -> smart-account
// address mapping so a session can be recovered without re-derivation
//
//go:generate mockgen -source=session_store.go -destination=../mocks/session_store.go -package=mocks -mock_names=SessionStore=MockSessionStore
type SessionStore interface {
	// SelectedWallet returns the persisted owner address, or "" if none
	SelectedWallet(ctx context.Context) (string, error)

	// SetSelectedWallet persists the owner address chosen for the session
	SetSelectedWallet(ctx context.Context, ownerAddress string) error

	// SmartAccountFor returns the persisted smart-account address for an
	// owner, or "" if none has been observed yet
	SmartAccountFor(ctx context.Context, ownerAddress string) (string, error)

	// RecordSmartAccount persists the smart-account address for an owner.
	// The mapping is write-once: an existing address is never overwritten,
	// and the persisted address is returned either way.
	RecordSmartAccount(ctx context.Context, ownerAddress, smartAccountAddress string) (string, error)

	// Clear removes the wallet selection and the owner's smart-account
	// mapping. Only the explicit reconnect flow calls this.
	Clear(ctx context.Context, ownerAddress string) error
}

type sessionStore struct {
	kv Store
}

// NewSessionStore creates a SessionStore backed by the key-value store
func NewSessionStore(kv Store) SessionStore {
	return &sessionStore{kv: kv}
}

func (s *sessionStore) SelectedWallet(ctx context.Context) (string, error) {
	return s.kv.GetValue(ctx, domain.SelectedWalletKey)
}

func (s *sessionStore) SetSelectedWallet(ctx context.Context, ownerAddress string) error {
	return s.kv.SetValue(ctx, domain.SelectedWalletKey, ownerAddress)
}

func (s *sessionStore) SmartAccountFor(ctx context.Context, ownerAddress string) (string, error) {
	return s.kv.GetValue(ctx, domain.SmartAccountKey(ownerAddress))
}

func (s *sessionStore) RecordSmartAccount(ctx context.Context, ownerAddress, smartAccountAddress string) (string, error) {
	persisted, err := s.kv.SetValueOnce(ctx, domain.SmartAccountKey(ownerAddress), smartAccountAddress)
	if err != nil {
		return "", fmt.Errorf("failed to record smart account for %s: %w", ownerAddress, err)
	}
	return persisted, nil
}

func (s *sessionStore) Clear(ctx context.Context, ownerAddress string) error {
	if err := s.kv.DeleteValue(ctx, domain.SelectedWalletKey); err != nil {
		return err
	}
	if ownerAddress == "" {
		return nil
	}
	return s.kv.DeleteValue(ctx, domain.SmartAccountKey(ownerAddress))
}
