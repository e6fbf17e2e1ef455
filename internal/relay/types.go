package relay

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// UserOperation is the account-abstraction operation shape accepted by the
// relay's bundler and paymaster endpoints
type UserOperation struct {
	Sender               common.Address `json:"sender"`
	Nonce                *hexutil.Big   `json:"nonce"`
	CallData             hexutil.Bytes  `json:"callData"`
	CallGasLimit         *hexutil.Big   `json:"callGasLimit"`
	VerificationGasLimit *hexutil.Big   `json:"verificationGasLimit"`
	PreVerificationGas   *hexutil.Big   `json:"preVerificationGas"`
	MaxFeePerGas         *hexutil.Big   `json:"maxFeePerGas"`
	MaxPriorityFeePerGas *hexutil.Big   `json:"maxPriorityFeePerGas"`
	PaymasterAndData     hexutil.Bytes  `json:"paymasterAndData"`
	Signature            hexutil.Bytes  `json:"signature"`
}

// Hash computes the user-operation hash signed by the account owner and
// referenced by the bundler: keccak256(keccak256(packed op), entryPoint,
// chainId).
func (op *UserOperation) Hash(entryPoint common.Address, chainID uint64) common.Hash {
	packed := crypto.Keccak256(
		op.Sender.Bytes(),
		bigBytes(op.Nonce),
		crypto.Keccak256(op.CallData),
		bigBytes(op.CallGasLimit),
		bigBytes(op.VerificationGasLimit),
		bigBytes(op.PreVerificationGas),
		bigBytes(op.MaxFeePerGas),
		bigBytes(op.MaxPriorityFeePerGas),
		crypto.Keccak256(op.PaymasterAndData),
	)

	chain := new(big.Int).SetUint64(chainID)
	return common.BytesToHash(crypto.Keccak256(
		packed,
		entryPoint.Bytes(),
		common.BigToHash(chain).Bytes(),
	))
}

func bigBytes(v *hexutil.Big) []byte {
	if v == nil {
		return common.Hash{}.Bytes()
	}
	return common.BigToHash(v.ToInt()).Bytes()
}

// SponsorshipData is the paymaster's answer to a sponsorship request
type SponsorshipData struct {
	PaymasterAndData     hexutil.Bytes `json:"paymasterAndData"`
	CallGasLimit         *hexutil.Big  `json:"callGasLimit,omitempty"`
	VerificationGasLimit *hexutil.Big  `json:"verificationGasLimit,omitempty"`
	PreVerificationGas   *hexutil.Big  `json:"preVerificationGas,omitempty"`
}

// rpcRequest is a JSON-RPC 2.0 request envelope
type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// rpcResponse is a JSON-RPC 2.0 response envelope
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error,omitempty"`
}

// rpcError carries the relay's error payload. Data sometimes holds the
// raw revert bytes, so it participates in the error string for matching.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

func (e *rpcError) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("relay error %d: %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("relay error %d: %s", e.Code, e.Message)
}
