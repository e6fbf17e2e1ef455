// Package sponsorship decides whether a call may be submitted through the
// gas-sponsoring relay. Anything outside the per-chain allow-list of
// (contract, function selector) pairs is never sponsored.
package sponsorship

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/celo-academy/academy-engine/internal/domain"
)

// Registry defines the interface for sponsorship eligibility checks
//
//go:generate mockgen -source=registry.go -destination=../mocks/sponsorship_registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// CanSponsor checks whether the encoded call to contractAddress is on
	// the allow-list for the given chain. Unknown chains are never
	// sponsorable.
	CanSponsor(chain domain.Chain, contractAddress string, callData []byte) bool

	// SponsoredContracts returns the allow-listed contract addresses for a
	// chain (lowercased), for diagnostics
	SponsoredContracts(chain domain.Chain) []string
}

// AllowlistData is the on-disk structure of the sponsorship map file.
// Key format: chain id -> contract address -> list of 4-byte selectors.
type AllowlistData map[string]map[string][]string

type registry struct {
	// Fast lookup: "chain:contract:selector" -> true
	entries map[string]bool
	// contracts per chain, lowercased
	contracts map[domain.Chain][]string
}

// Load reads the sponsorship allow-list from a JSON file
func Load(filePath string) (Registry, error) {
	raw, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read sponsorship map file: %w", err)
	}

	var data AllowlistData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse sponsorship map JSON: %w", err)
	}

	return New(data), nil
}

// New builds a Registry from in-memory allow-list data
func New(data AllowlistData) Registry {
	r := &registry{
		entries:   make(map[string]bool),
		contracts: make(map[domain.Chain][]string),
	}

	for chainID, contracts := range data {
		chain := domain.Chain(strings.ToLower(chainID))
		for addr, selectors := range contracts {
			normalizedAddr := strings.ToLower(addr)
			r.contracts[chain] = append(r.contracts[chain], normalizedAddr)
			for _, sel := range selectors {
				key := entryKey(chain, normalizedAddr, strings.ToLower(sel))
				r.entries[key] = true
			}
		}
	}

	return r
}

// Default returns the built-in allow-list for the academy badge contracts:
// enroll, completeModule, claimBadge and the admin certificate mint.
func Default() Registry {
	selectors := []string{
		"0x6339fbaa", // enroll(uint256)
		"0x4e4bfa29", // completeModule(uint256,uint256)
		"0x7b8b9c8d", // claimBadge(uint256,address)
		"0xa0b8e5f3", // adminMint(address,uint256,uint256)
	}

	return New(AllowlistData{
		string(domain.ChainCeloMainnet): {
			"0xf8CA094fd88F259Df35e0B8a9f38Df8f4F28F336": selectors,
		},
		string(domain.ChainCeloAlfajores): {
			"0x4193D2f9Bf93495d4665C485A3B8AadAF78CDf29": selectors,
		},
	})
}

// CanSponsor checks whether the encoded call is on the allow-list
func (r *registry) CanSponsor(chain domain.Chain, contractAddress string, callData []byte) bool {
	if r == nil {
		return false
	}

	selector := domain.FunctionSelector(callData)
	if selector == "" {
		return false
	}

	key := entryKey(
		domain.Chain(strings.ToLower(string(chain))),
		strings.ToLower(contractAddress),
		selector,
	)
	return r.entries[key]
}

// SponsoredContracts returns the allow-listed contract addresses for a chain
func (r *registry) SponsoredContracts(chain domain.Chain) []string {
	if r == nil {
		return nil
	}
	return r.contracts[domain.Chain(strings.ToLower(string(chain)))]
}

func entryKey(chain domain.Chain, contract, selector string) string {
	return fmt.Sprintf("%s:%s:%s", chain, contract, selector)
}
