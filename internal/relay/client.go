package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/celo-academy/academy-engine/internal/adapter"
	"github.com/celo-academy/academy-engine/internal/config"
	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/logger"
)

// EntryPointAddress is the canonical v0.6 entry point deployed on Celo
const EntryPointAddress = "0x5FF137D4b0FDCD49DcA30c7CF57E578a026d2789"

//go:generate mockgen -source=client.go -destination=../mocks/relay.go -package=mocks -mock_names=Client=MockRelayClient

// Client talks to the bundler/paymaster relay for one project and chain.
type Client interface {
	// ChainID returns the numeric chain id this client is bound to.
	ChainID() uint64

	// Health verifies the relay route answers for this project and chain.
	Health(ctx context.Context) error

	// AccountNonce reads the entry point nonce for a smart account.
	AccountNonce(ctx context.Context, entryPoint, sender common.Address) (*big.Int, error)

	// SponsorUserOperation asks the paymaster to cover gas for op. The
	// sponsored route is tried first; when the relay has no bundler
	// configured for it, the request falls back to the shared route once.
	SponsorUserOperation(ctx context.Context, entryPoint common.Address, op *UserOperation) (*SponsorshipData, error)

	// SendUserOperation submits a signed op and returns the user
	// operation hash. Returning a hash means the bundler accepted the
	// op, not that it is included in a block.
	SendUserOperation(ctx context.Context, entryPoint common.Address, op *UserOperation) (string, error)
}

type client struct {
	http       adapter.HTTPClient
	chainID    uint64
	baseURL    string
	selfFunded string
}

// NewClient builds a relay client from config. The relay route embeds the
// project id and numeric chain id; the self-funded variant of the same
// route is preferred for sponsorship calls.
func NewClient(cfg config.RelayConfig, httpClient adapter.HTTPClient) (Client, error) {
	chainID, err := cfg.Chain.NumericID()
	if err != nil {
		return nil, err
	}
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("relay project id is required")
	}

	base := strings.TrimRight(cfg.BaseEndpoint, "/")
	if base == "" {
		base = domain.DefaultRelayBaseEndpoint
	}
	baseURL := fmt.Sprintf("%s/%s/chain/%d", base, cfg.ProjectID, chainID)

	return &client{
		http:       httpClient,
		chainID:    chainID,
		baseURL:    baseURL,
		selfFunded: baseURL + "?selfFunded=true",
	}, nil
}

func (c *client) ChainID() uint64 {
	return c.chainID
}

func (c *client) Health(ctx context.Context) error {
	var result string
	if err := c.call(ctx, c.baseURL, "eth_chainId", nil, &result); err != nil {
		return err
	}

	id, err := hexutil.DecodeUint64(result)
	if err != nil {
		return fmt.Errorf("malformed chain id %q: %w", result, err)
	}
	if id != c.chainID {
		return fmt.Errorf("relay answered for chain %d, want %d", id, c.chainID)
	}
	return nil
}

func (c *client) AccountNonce(ctx context.Context, entryPoint, sender common.Address) (*big.Int, error) {
	data, err := entryPointABI.Pack("getNonce", sender, big.NewInt(0))
	if err != nil {
		return nil, err
	}

	params := []interface{}{
		map[string]string{
			"to":   entryPoint.Hex(),
			"data": hexutil.Encode(data),
		},
		"latest",
	}

	var result string
	if err := c.call(ctx, c.baseURL, "eth_call", params, &result); err != nil {
		return nil, err
	}

	raw, err := hexutil.Decode(result)
	if err != nil {
		return nil, fmt.Errorf("malformed nonce %q: %w", result, err)
	}
	return new(big.Int).SetBytes(raw), nil
}

func (c *client) SponsorUserOperation(ctx context.Context, entryPoint common.Address, op *UserOperation) (*SponsorshipData, error) {
	params := []interface{}{op, entryPoint.Hex()}

	var sponsorship SponsorshipData
	err := c.call(ctx, c.selfFunded, "pm_sponsorUserOperation", params, &sponsorship)
	if err != nil && domain.IsNoBundlerRoute(err) {
		logger.WarnCtx(ctx, "self-funded relay route unavailable, falling back to shared route",
			zap.Uint64("chainID", c.chainID))
		err = c.call(ctx, c.baseURL, "pm_sponsorUserOperation", params, &sponsorship)
	}
	if err != nil {
		return nil, err
	}
	return &sponsorship, nil
}

func (c *client) SendUserOperation(ctx context.Context, entryPoint common.Address, op *UserOperation) (string, error) {
	params := []interface{}{op, entryPoint.Hex()}

	var hash string
	err := c.call(ctx, c.selfFunded, "eth_sendUserOperation", params, &hash)
	if err != nil && domain.IsNoBundlerRoute(err) {
		logger.WarnCtx(ctx, "self-funded relay route unavailable, falling back to shared route",
			zap.Uint64("chainID", c.chainID))
		err = c.call(ctx, c.baseURL, "eth_sendUserOperation", params, &hash)
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (c *client) call(ctx context.Context, url, method string, params []interface{}, result interface{}) error {
	if params == nil {
		params = []interface{}{}
	}

	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	}

	raw, err := c.http.PostJSON(ctx, url, req)
	if err != nil {
		return err
	}

	var resp rpcResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("malformed relay response for %s: %w", method, err)
	}
	if resp.Error != nil {
		return resp.Error
	}
	if result == nil {
		return nil
	}
	if len(resp.Result) == 0 {
		return fmt.Errorf("relay returned empty result for %s", method)
	}
	return json.Unmarshal(resp.Result, result)
}
