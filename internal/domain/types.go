package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainCeloMainnet   Chain = "eip155:42220"
	ChainCeloAlfajores Chain = "eip155:44787"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainCeloMainnet || chain == ChainCeloAlfajores
}

// NumericID returns the EIP-155 numeric chain id
func (c Chain) NumericID() (uint64, error) {
	parts := strings.SplitN(string(c), ":", 2)
	if len(parts) != 2 || parts[0] != "eip155" {
		return 0, fmt.Errorf("invalid chain identifier: %s", c)
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chain identifier: %s", c)
	}
	return id, nil
}

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsValidAddress checks if s is a well-formed 20-byte hex address
func IsValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// NormalizeAddress lowercases a hex address for use as a storage key
func NormalizeAddress(s string) string {
	return strings.ToLower(s)
}

// SessionStatus represents the lifecycle state of a smart-account session
type SessionStatus string

const (
	SessionUninitialized SessionStatus = "uninitialized"
	SessionRecovering    SessionStatus = "recovering"
	SessionInitializing  SessionStatus = "initializing"
	SessionReady         SessionStatus = "ready"
	SessionDegraded      SessionStatus = "degraded"
	SessionError         SessionStatus = "error"
)

// SmartAccountSession is a snapshot of one derived smart account bound to
// one owner wallet. At most one non-terminal session exists per owner;
// a new owner invalidates the previous session.
type SmartAccountSession struct {
	OwnerAddress        string        `json:"owner_address"`
	SmartAccountAddress string        `json:"smart_account_address,omitempty"`
	Status              SessionStatus `json:"status"`
	LastError           string        `json:"last_error,omitempty"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// CallStatus represents the state of a sponsored call attempt
type CallStatus string

const (
	CallPending CallStatus = "pending"
	CallSent    CallStatus = "sent"
	CallFailed  CallStatus = "failed"
)

// SponsoredCallRequest is one attempt to submit an on-chain call through
// the relay. It lives only for the duration of the session.
type SponsoredCallRequest struct {
	ID        string     `json:"id"`
	To        string     `json:"to"`
	Data      []byte     `json:"data"`
	Value     *big.Int   `json:"value"`
	Status    CallStatus `json:"status"`
	TxHash    *string    `json:"tx_hash,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TransactionMethod identifies how an on-chain call was submitted
type TransactionMethod string

const (
	MethodSponsored TransactionMethod = "sponsored"
	MethodWallet    TransactionMethod = "wallet"
)

// FunctionSelector returns the 4-byte selector prefix of encoded call data
// as a 0x-prefixed lowercase hex string, or "" if the data is too short.
func FunctionSelector(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	return fmt.Sprintf("0x%x", data[:4])
}
