package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/logger"
	"github.com/celo-academy/academy-engine/internal/wallet"
)

// KernelFactoryAddress is the kernel account factory used to derive
// counterfactual smart account addresses for wallet owners
const KernelFactoryAddress = "0x5de4839a76cf55d0c90e2061ef4386d962E15ae3"

const (
	entryPointABIJSON = `[
		{"name":"getNonce","type":"function","stateMutability":"view",
		 "inputs":[{"name":"sender","type":"address"},{"name":"key","type":"uint192"}],
		 "outputs":[{"name":"nonce","type":"uint256"}]}
	]`
	kernelABIJSON = `[
		{"name":"execute","type":"function","stateMutability":"payable",
		 "inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"},
		           {"name":"data","type":"bytes"},{"name":"operation","type":"uint8"}],
		 "outputs":[]}
	]`
)

var (
	entryPointABI abi.ABI
	kernelABI     abi.ABI
)

func init() {
	var err error
	entryPointABI, err = abi.JSON(strings.NewReader(entryPointABIJSON))
	if err != nil {
		panic(err)
	}
	kernelABI, err = abi.JSON(strings.NewReader(kernelABIJSON))
	if err != nil {
		panic(err)
	}
}

// DeriveAccountAddress computes the counterfactual kernel account address
// for an owner. The address is a CREATE2 derivation over the kernel
// factory, so it is stable whether or not the account is deployed yet.
func DeriveAccountAddress(ownerAddress string) (string, error) {
	if !domain.IsValidAddress(ownerAddress) {
		return "", fmt.Errorf("invalid owner address: %s", ownerAddress)
	}

	owner := common.HexToAddress(ownerAddress)
	factory := common.HexToAddress(KernelFactoryAddress)

	// salt = keccak256(owner || index), index fixed at zero so each owner
	// maps to exactly one account
	salt := crypto.Keccak256Hash(owner.Bytes(), common.BigToHash(big.NewInt(0)).Bytes())
	initCodeHash := crypto.Keccak256Hash(factory.Bytes(), owner.Bytes())

	raw := crypto.Keccak256(
		[]byte{0xff},
		factory.Bytes(),
		salt.Bytes(),
		initCodeHash.Bytes(),
	)
	return domain.NormalizeAddress(common.BytesToAddress(raw[12:]).Hex()), nil
}

//go:generate mockgen -source=kernel.go -destination=../mocks/kernel.go -package=mocks -mock_names=AccountClient=MockAccountClient,AccountFactory=MockAccountFactory

// AccountClient is a smart account bound to one owner wallet. Calls are
// wrapped in user operations, sponsored by the paymaster, signed by the
// owner, and submitted through the relay.
type AccountClient interface {
	// OwnerAddress returns the EOA that signs for this account.
	OwnerAddress() string

	// AccountAddress returns the smart account address.
	AccountAddress() string

	// SendTransaction wraps a call in a sponsored user operation and
	// submits it. The returned hash is the bundler's user operation
	// hash; inclusion in a block happens asynchronously.
	SendTransaction(ctx context.Context, to string, data []byte, value *big.Int) (string, error)
}

// AccountFactory constructs smart account clients for authenticated owners.
type AccountFactory interface {
	Build(ctx context.Context, ownerAddress string, provider wallet.Provider) (AccountClient, error)
}

type kernelFactory struct {
	relay Client
}

// NewAccountFactory returns a factory producing kernel account clients
// backed by the given relay.
func NewAccountFactory(relay Client) AccountFactory {
	return &kernelFactory{relay: relay}
}

// Build derives the counterfactual account address and verifies the relay
// route answers before handing the client out, so transient network
// failures surface here where the caller's retry policy can see them.
func (f *kernelFactory) Build(ctx context.Context, ownerAddress string, provider wallet.Provider) (AccountClient, error) {
	accountAddress, err := DeriveAccountAddress(ownerAddress)
	if err != nil {
		return nil, err
	}

	if err := f.relay.Health(ctx); err != nil {
		return nil, fmt.Errorf("relay health check failed: %w", err)
	}

	return &kernelAccount{
		relay:          f.relay,
		provider:       provider,
		ownerAddress:   domain.NormalizeAddress(ownerAddress),
		accountAddress: accountAddress,
		entryPoint:     common.HexToAddress(EntryPointAddress),
	}, nil
}

type kernelAccount struct {
	relay          Client
	provider       wallet.Provider
	ownerAddress   string
	accountAddress string
	entryPoint     common.Address
}

func (a *kernelAccount) OwnerAddress() string {
	return a.ownerAddress
}

func (a *kernelAccount) AccountAddress() string {
	return a.accountAddress
}

func (a *kernelAccount) SendTransaction(ctx context.Context, to string, data []byte, value *big.Int) (string, error) {
	if !domain.IsValidAddress(to) {
		return "", fmt.Errorf("invalid target address: %s", to)
	}
	if value == nil {
		value = big.NewInt(0)
	}

	callData, err := kernelABI.Pack("execute", common.HexToAddress(to), value, data, uint8(0))
	if err != nil {
		return "", fmt.Errorf("failed to encode execute call: %w", err)
	}

	sender := common.HexToAddress(a.accountAddress)
	nonce, err := a.relay.AccountNonce(ctx, a.entryPoint, sender)
	if err != nil {
		return "", fmt.Errorf("failed to read account nonce: %w", err)
	}

	op := &UserOperation{
		Sender:               sender,
		Nonce:                (*hexutil.Big)(nonce),
		CallData:             callData,
		CallGasLimit:         (*hexutil.Big)(big.NewInt(defaultCallGasLimit)),
		VerificationGasLimit: (*hexutil.Big)(big.NewInt(defaultVerificationGasLimit)),
		PreVerificationGas:   (*hexutil.Big)(big.NewInt(defaultPreVerificationGas)),
		MaxFeePerGas:         (*hexutil.Big)(big.NewInt(defaultMaxFeePerGas)),
		MaxPriorityFeePerGas: (*hexutil.Big)(big.NewInt(defaultMaxPriorityFeePerGas)),
	}

	sponsorship, err := a.relay.SponsorUserOperation(ctx, a.entryPoint, op)
	if err != nil {
		return "", fmt.Errorf("sponsorship request failed: %w", err)
	}
	applySponsorship(op, sponsorship)

	signature, err := a.signUserOperation(ctx, op)
	if err != nil {
		return "", fmt.Errorf("failed to sign user operation: %w", err)
	}
	op.Signature = signature

	hash, err := a.relay.SendUserOperation(ctx, a.entryPoint, op)
	if err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "user operation submitted",
		zap.String("owner", a.ownerAddress),
		zap.String("account", a.accountAddress),
		zap.String("to", domain.NormalizeAddress(to)),
		zap.String("userOpHash", hash))

	return hash, nil
}

func applySponsorship(op *UserOperation, s *SponsorshipData) {
	op.PaymasterAndData = s.PaymasterAndData
	if s.CallGasLimit != nil {
		op.CallGasLimit = s.CallGasLimit
	}
	if s.VerificationGasLimit != nil {
		op.VerificationGasLimit = s.VerificationGasLimit
	}
	if s.PreVerificationGas != nil {
		op.PreVerificationGas = s.PreVerificationGas
	}
}

func (a *kernelAccount) signUserOperation(ctx context.Context, op *UserOperation) (hexutil.Bytes, error) {
	hash := op.Hash(a.entryPoint, a.relay.ChainID())

	raw, err := a.provider.Request(ctx, "personal_sign", hexutil.Encode(hash.Bytes()), a.ownerAddress)
	if err != nil {
		return nil, err
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("malformed signature response: %w", err)
	}
	return hexutil.Decode(encoded)
}

// Conservative defaults used before the paymaster returns tuned estimates.
const (
	defaultCallGasLimit         = 500_000
	defaultVerificationGasLimit = 400_000
	defaultPreVerificationGas   = 100_000
	defaultMaxFeePerGas         = 25_000_000_000 // 25 gwei, Celo base fee headroom
	defaultMaxPriorityFeePerGas = 2_000_000_000
)
