// Package oracle answers enrollment and module-completion questions
// against the course contract for users who may act through two on-chain
// identities at once: the wallet address and the derived smart account.
package oracle

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/celo-academy/academy-engine/internal/adapter"
	"github.com/celo-academy/academy-engine/internal/config"
	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/logger"
)

const courseABIJSON = `[
	{"name":"isEnrolled","type":"function","stateMutability":"view",
	 "inputs":[{"name":"account","type":"address"},{"name":"courseId","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"name":"hasCompletedModule","type":"function","stateMutability":"view",
	 "inputs":[{"name":"account","type":"address"},{"name":"courseId","type":"uint256"},
	           {"name":"moduleIndex","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`

var courseABI abi.ABI

func init() {
	var err error
	courseABI, err = abi.JSON(strings.NewReader(courseABIJSON))
	if err != nil {
		panic(err)
	}
}

// Identity names the pair of addresses a user may have acted through.
// Either side may be empty; empty addresses are skipped, not queried.
type Identity struct {
	WalletAddress       string
	SmartAccountAddress string
}

// Answer is a cached read result. Loading is true while a refresh for
// the key is in flight and no value has been observed yet.
type Answer struct {
	Value   bool
	Loading bool
}

//go:generate mockgen -source=oracle.go -destination=../mocks/oracle.go -package=mocks -mock_names=Oracle=MockOracle

// Oracle reads per-identity course state from the chain with a short TTL
// cache. A user counts as enrolled (or complete) when either identity
// does.
type Oracle interface {
	// IsEnrolled reports whether either identity is enrolled in the
	// course token.
	IsEnrolled(ctx context.Context, id Identity, tokenID *big.Int) (bool, error)

	// HasCompletedModule reports whether either identity completed the
	// module. moduleIndex is zero-based; the contract counts from one.
	HasCompletedModule(ctx context.Context, id Identity, tokenID *big.Int, moduleIndex uint64) (bool, error)

	// Snapshot answers from cache only, never touching the chain.
	Snapshot(id Identity, tokenID *big.Int, moduleIndex int64) Answer

	// Invalidate drops cached answers for both identity addresses so
	// the next read observes freshly-written chain state.
	Invalidate(id Identity)
}

type cacheEntry struct {
	value     bool
	fetchedAt time.Time
}

type oracle struct {
	caller   adapter.EthCaller
	clock    adapter.Clock
	contract common.Address
	ttl      time.Duration

	mu       sync.Mutex
	cache    map[string]cacheEntry
	inFlight map[string]struct{}
}

// New creates an oracle reading the configured course contract.
func New(caller adapter.EthCaller, clock adapter.Clock, cfg config.ChainConfig) (Oracle, error) {
	if !domain.IsValidAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid course contract address: %s", cfg.ContractAddress)
	}
	return &oracle{
		caller:   caller,
		clock:    clock,
		contract: common.HexToAddress(cfg.ContractAddress),
		ttl:      cfg.CacheTTL,
		cache:    make(map[string]cacheEntry),
		inFlight: make(map[string]struct{}),
	}, nil
}

func (o *oracle) IsEnrolled(ctx context.Context, id Identity, tokenID *big.Int) (bool, error) {
	return o.readEither(ctx, id, tokenID, -1)
}

func (o *oracle) HasCompletedModule(ctx context.Context, id Identity, tokenID *big.Int, moduleIndex uint64) (bool, error) {
	return o.readEither(ctx, id, tokenID, int64(moduleIndex))
}

// readEither queries both identity addresses concurrently and unifies
// them with OR. moduleIndex < 0 means an enrollment read. A partial
// failure is tolerated when the surviving read answers true; otherwise
// the first error wins.
func (o *oracle) readEither(ctx context.Context, id Identity, tokenID *big.Int, moduleIndex int64) (bool, error) {
	addresses := identityAddresses(id)
	if len(addresses) == 0 {
		return false, nil
	}

	type outcome struct {
		value bool
		err   error
	}

	results := make(chan outcome, len(addresses))
	var wg sync.WaitGroup
	for _, address := range addresses {
		wg.Add(1)
		go func(address string) {
			defer wg.Done()
			value, err := o.readOne(ctx, address, tokenID, moduleIndex)
			results <- outcome{value: value, err: err}
		}(address)
	}
	wg.Wait()
	close(results)

	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		if r.value {
			return true, nil
		}
	}
	if firstErr != nil {
		return false, firstErr
	}
	return false, nil
}

func (o *oracle) readOne(ctx context.Context, address string, tokenID *big.Int, moduleIndex int64) (bool, error) {
	key := cacheKey(address, tokenID, moduleIndex)

	o.mu.Lock()
	if entry, ok := o.cache[key]; ok && o.clock.Since(entry.fetchedAt) < o.ttl {
		o.mu.Unlock()
		return entry.value, nil
	}
	o.inFlight[key] = struct{}{}
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		delete(o.inFlight, key)
		o.mu.Unlock()
	}()

	value, err := o.callContract(ctx, address, tokenID, moduleIndex)
	if err != nil {
		logger.DebugCtx(ctx, "contract read failed",
			zap.String("address", address),
			zap.String("tokenID", tokenID.String()),
			zap.Int64("moduleIndex", moduleIndex),
			zap.Error(err))
		return false, err
	}

	o.mu.Lock()
	o.cache[key] = cacheEntry{value: value, fetchedAt: o.clock.Now()}
	o.mu.Unlock()
	return value, nil
}

func (o *oracle) callContract(ctx context.Context, address string, tokenID *big.Int, moduleIndex int64) (bool, error) {
	var (
		data []byte
		err  error
	)
	if moduleIndex < 0 {
		data, err = courseABI.Pack("isEnrolled", common.HexToAddress(address), tokenID)
	} else {
		// the contract numbers modules from one
		onChainIndex := new(big.Int).SetInt64(moduleIndex + 1)
		data, err = courseABI.Pack("hasCompletedModule", common.HexToAddress(address), tokenID, onChainIndex)
	}
	if err != nil {
		return false, err
	}

	raw, err := o.caller.CallContract(ctx, ethereum.CallMsg{To: &o.contract, Data: data}, nil)
	if err != nil {
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}
	return new(big.Int).SetBytes(raw).Sign() != 0, nil
}

func (o *oracle) Snapshot(id Identity, tokenID *big.Int, moduleIndex int64) Answer {
	o.mu.Lock()
	defer o.mu.Unlock()

	loading := false
	for _, address := range identityAddresses(id) {
		key := cacheKey(address, tokenID, moduleIndex)
		if entry, ok := o.cache[key]; ok && o.clock.Since(entry.fetchedAt) < o.ttl {
			if entry.value {
				return Answer{Value: true}
			}
			continue
		}
		if _, ok := o.inFlight[key]; ok {
			loading = true
		}
	}
	return Answer{Loading: loading}
}

func (o *oracle) Invalidate(id Identity) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, address := range identityAddresses(id) {
		prefix := domain.NormalizeAddress(address) + ":"
		for key := range o.cache {
			if strings.HasPrefix(key, prefix) {
				delete(o.cache, key)
			}
		}
	}
}

func identityAddresses(id Identity) []string {
	var addresses []string
	if domain.IsValidAddress(id.WalletAddress) {
		addresses = append(addresses, domain.NormalizeAddress(id.WalletAddress))
	}
	if domain.IsValidAddress(id.SmartAccountAddress) &&
		!strings.EqualFold(id.SmartAccountAddress, id.WalletAddress) {
		addresses = append(addresses, domain.NormalizeAddress(id.SmartAccountAddress))
	}
	return addresses
}

func cacheKey(address string, tokenID *big.Int, moduleIndex int64) string {
	return fmt.Sprintf("%s:%s:%d", domain.NormalizeAddress(address), tokenID.String(), moduleIndex)
}
