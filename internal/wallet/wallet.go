// Package wallet defines the narrow interface to the wallet authentication
// collaborator: an authenticated primary address plus an EIP-1193-style
// provider handle for signing.
package wallet

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
)

// Wallet is one linked wallet reported by the authenticator
type Wallet struct {
	Address string
	// Embedded marks provider-managed wallets, preferred for smart-account
	// binding because they never prompt for chain switches
	Embedded bool
}

// Provider is an EIP-1193-style JSON-RPC provider handle
//
//go:generate mockgen -source=wallet.go -destination=../mocks/wallet.go -package=mocks -mock_names=Provider=MockProvider,Authenticator=MockAuthenticator
type Provider interface {
	// Request performs a JSON-RPC request through the wallet provider
	Request(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error)
}

// Authenticator is the wallet authentication collaborator. ready=false
// means "must wait", not "must fail".
type Authenticator interface {
	// Ready reports whether the authenticator finished loading
	Ready() bool

	// Authenticated reports whether a user is signed in
	Authenticated() bool

	// Wallets returns the user's linked wallets
	Wallets() []Wallet

	// Provider returns the signing provider for one of the linked wallets
	Provider(ctx context.Context, address string) (Provider, error)

	// Login starts the authentication flow
	Login(ctx context.Context) error

	// Logout signs the user out
	Logout(ctx context.Context) error
}

// SelectWallet picks the wallet to bind the smart-account session to.
// A previously persisted owner wins when still linked; otherwise embedded
// wallets come first, then lexicographic address order, so the choice is
// deterministic across reloads.
//
// The bool result is false when the persisted owner is not linked yet; the
// caller should wait for the wallet list to settle rather than rebind.
func SelectWallet(wallets []Wallet, persistedOwner string) (Wallet, bool) {
	if len(wallets) == 0 {
		return Wallet{}, false
	}

	if persistedOwner != "" {
		for _, w := range wallets {
			if strings.EqualFold(w.Address, persistedOwner) {
				return w, true
			}
		}
		return Wallet{}, false
	}

	sorted := make([]Wallet, len(wallets))
	copy(sorted, wallets)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Embedded != sorted[j].Embedded {
			return sorted[i].Embedded
		}
		return sorted[i].Address < sorted[j].Address
	})

	return sorted[0], true
}
