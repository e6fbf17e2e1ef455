package adapter

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthCaller defines the subset of an Ethereum JSON-RPC client the engine
// needs for contract reads, wrapped to enable mocking
//
//go:generate mockgen -source=ethcaller.go -destination=../mocks/ethcaller.go -package=mocks -mock_names=EthCaller=MockEthCaller
type EthCaller interface {
	// CallContract executes an eth_call against the given block (nil = latest)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

	// ChainID returns the chain id reported by the RPC endpoint
	ChainID(ctx context.Context) (*big.Int, error)

	// Close closes the underlying connection
	Close()
}

type realEthCaller struct {
	client *ethclient.Client
}

// DialEthCaller connects to an Ethereum RPC endpoint
func DialEthCaller(ctx context.Context, rpcURL string) (EthCaller, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial RPC endpoint: %w", err)
	}
	return &realEthCaller{client: client}, nil
}

func (c *realEthCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return c.client.CallContract(ctx, msg, blockNumber)
}

func (c *realEthCaller) ChainID(ctx context.Context) (*big.Int, error) {
	return c.client.ChainID(ctx)
}

func (c *realEthCaller) Close() {
	c.client.Close()
}
