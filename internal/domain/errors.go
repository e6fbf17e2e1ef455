package domain

import (
	"context"
	"errors"
	"net"
	"strings"
)

var (
	// ErrSessionNotReady is returned when a sponsored call is attempted
	// before the smart-account session reached the Ready state
	ErrSessionNotReady = errors.New("smart account session not ready")

	// ErrSponsorshipDenied is returned when a call is not on the
	// sponsorship allow-list for the active chain
	ErrSponsorshipDenied = errors.New("transaction not eligible for sponsorship")

	// ErrNoBundlerRoute is returned when the relay has no bundler for the
	// requested routing mode
	ErrNoBundlerRoute = errors.New("no bundler RPC found for routing mode")

	// ErrAlreadyEnrolled is returned when the enrollment precondition
	// already holds on-chain
	ErrAlreadyEnrolled = errors.New("already enrolled")

	// ErrAlreadyCompleted is returned when the module completion
	// precondition already holds on-chain
	ErrAlreadyCompleted = errors.New("module already completed")

	// ErrWalletNotConnected is returned when no authenticated wallet is
	// available for the requested operation
	ErrWalletNotConnected = errors.New("wallet not connected")

	// ErrNoWalletAvailable is returned when the authenticator reports no
	// linked wallets to bind a session to
	ErrNoWalletAvailable = errors.New("no wallet available for smart account binding")
)

// alreadyEnrolledHex is the hex-encoded revert payload of the contract's
// "Already enrolled" message. Relays sometimes surface the raw revert data
// instead of the decoded string, so both forms are recognized.
const alreadyEnrolledHex = "416c726561647920656e726f6c6c6564"

// IsAlreadyPerformed reports whether err indicates the on-chain
// precondition already holds (already enrolled / already completed).
// Callers must treat such errors as successful terminal states.
func IsAlreadyPerformed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAlreadyEnrolled) || errors.Is(err, ErrAlreadyCompleted) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Already enrolled") ||
		strings.Contains(msg, "Already completed") ||
		strings.Contains(msg, alreadyEnrolledHex)
}

// IsNoBundlerRoute reports whether err is the relay's recoverable
// "no bundler for this routing mode" error
func IsNoBundlerRoute(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNoBundlerRoute) || strings.Contains(err.Error(), "No bundler RPC found")
}

// IsRetryableNetwork reports whether err looks like a transient transport
// failure worth retrying during session construction
func IsRetryableNetwork(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "HTTP request failed") ||
		strings.Contains(msg, "unexpected EOF") ||
		strings.Contains(msg, "network")
}
