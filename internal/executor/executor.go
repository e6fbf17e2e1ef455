// Package executor submits sponsored calls through the smart-account
// session and tracks each attempt's lifecycle.
package executor

import (
	"context"
	"math/big"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/celo-academy/academy-engine/internal/adapter"
	"github.com/celo-academy/academy-engine/internal/config"
	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/logger"
	"github.com/celo-academy/academy-engine/internal/session"
)

//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor

// Executor submits calls through the sponsored smart-account path.
//
// The executor checks session readiness, not sponsorship eligibility:
// callers are expected to consult the sponsorship registry before
// reaching for it.
type Executor interface {
	// Execute submits a sponsored call and returns the relay's user
	// operation hash. The hash means the bundler accepted the call,
	// not that it is included in a block.
	Execute(ctx context.Context, to string, data []byte, value *big.Int) (string, error)

	// Call returns the tracked record for a previous Execute attempt.
	Call(id string) (domain.SponsoredCallRequest, bool)

	// Calls returns a snapshot of every call tracked this session,
	// newest first.
	Calls() []domain.SponsoredCallRequest

	// WaitForSettle blocks for the configured settlement window, or
	// until ctx is cancelled. Callers reading freshly-written chain
	// state use it to let the bundler land the operation first.
	WaitForSettle(ctx context.Context) error
}

type executor struct {
	sessions    session.Manager
	clock       adapter.Clock
	settleDelay config.SyncConfig

	mu    sync.Mutex
	calls map[string]domain.SponsoredCallRequest
}

// New creates an executor bound to the session manager.
func New(sessions session.Manager, clock adapter.Clock, cfg config.SyncConfig) Executor {
	return &executor{
		sessions:    sessions,
		clock:       clock,
		settleDelay: cfg,
		calls:       make(map[string]domain.SponsoredCallRequest),
	}
}

func (e *executor) Execute(ctx context.Context, to string, data []byte, value *big.Int) (string, error) {
	if !e.sessions.CanSponsorTransaction() {
		return "", domain.ErrSessionNotReady
	}
	client := e.sessions.Client()
	if client == nil {
		return "", domain.ErrSessionNotReady
	}

	call := domain.SponsoredCallRequest{
		ID:        uuid.NewString(),
		To:        domain.NormalizeAddress(to),
		Data:      data,
		Value:     value,
		Status:    domain.CallPending,
		CreatedAt: e.clock.Now(),
	}
	e.track(call)

	logger.DebugCtx(ctx, "submitting sponsored call",
		zap.String("callID", call.ID),
		zap.String("to", call.To),
		zap.String("selector", domain.FunctionSelector(data)))

	hash, err := client.SendTransaction(ctx, to, data, value)
	if err != nil {
		call.Status = domain.CallFailed
		e.track(call)
		return "", err
	}

	call.Status = domain.CallSent
	call.TxHash = &hash
	e.track(call)

	return hash, nil
}

func (e *executor) Call(id string) (domain.SponsoredCallRequest, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	call, ok := e.calls[id]
	return call, ok
}

func (e *executor) Calls() []domain.SponsoredCallRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	calls := make([]domain.SponsoredCallRequest, 0, len(e.calls))
	for _, call := range e.calls {
		calls = append(calls, call)
	}
	sort.Slice(calls, func(i, j int) bool {
		if !calls[i].CreatedAt.Equal(calls[j].CreatedAt) {
			return calls[i].CreatedAt.After(calls[j].CreatedAt)
		}
		return calls[i].ID < calls[j].ID
	})
	return calls
}

func (e *executor) WaitForSettle(ctx context.Context) error {
	select {
	case <-e.clock.After(e.settleDelay.SettleDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *executor) track(call domain.SponsoredCallRequest) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls[call.ID] = call
}
