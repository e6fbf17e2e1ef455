// Package syncer reconciles on-chain enrollment state into the off-chain
// mirror. Reconciliation is best effort: failures are logged and retried
// on a fixed schedule, never surfaced to the caller.
package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/celo-academy/academy-engine/internal/adapter"
	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/logger"
	"github.com/celo-academy/academy-engine/internal/oracle"
)

// syncSchedule is the delay before each retry attempt. The first push
// happens immediately; the ladder only paces the re-checks, absorbing
// mirror read-replica lag without hammering it.
var syncSchedule = []time.Duration{
	500 * time.Millisecond,
	1 * time.Second,
	2 * time.Second,
	3 * time.Second,
	5 * time.Second,
}

//go:generate mockgen -source=syncer.go -destination=../mocks/syncer.go -package=mocks -mock_names=Synchronizer=MockSynchronizer

// Synchronizer pushes enrollments to the off-chain mirror and confirms
// they landed.
type Synchronizer interface {
	// SyncIfNeeded reconciles one (address, course) pair. Each pair is
	// attempted at most once per synchronizer lifetime; later calls
	// are no-ops. Returns immediately; the reconciliation loop runs in
	// the background until it confirms, exhausts the schedule, or ctx
	// is cancelled.
	SyncIfNeeded(ctx context.Context, address, courseSlug string)

	// SyncAfterTransaction waits out the settlement window before
	// reconciling, giving the bundler time to land the enrollment
	// the hash refers to.
	SyncAfterTransaction(ctx context.Context, address, courseSlug, txHash string)

	// Wait blocks until all in-flight reconciliation loops finish.
	Wait()
}

type synchronizer struct {
	mirror      MirrorClient
	oracle      oracle.Oracle
	clock       adapter.Clock
	settleDelay time.Duration

	mu        sync.Mutex
	attempted map[string]struct{}
	loops     sync.WaitGroup
}

// New creates a synchronizer. settleDelay is the wait applied before
// post-transaction reconciliation.
func New(mirror MirrorClient, orc oracle.Oracle, clock adapter.Clock, settleDelay time.Duration) Synchronizer {
	return &synchronizer{
		mirror:      mirror,
		oracle:      orc,
		clock:       clock,
		settleDelay: settleDelay,
		attempted:   make(map[string]struct{}),
	}
}

func (s *synchronizer) SyncIfNeeded(ctx context.Context, address, courseSlug string) {
	if !domain.IsValidAddress(address) || courseSlug == "" {
		return
	}

	key := fmt.Sprintf("%s:%s", domain.NormalizeAddress(address), courseSlug)
	s.mu.Lock()
	if _, seen := s.attempted[key]; seen {
		s.mu.Unlock()
		return
	}
	s.attempted[key] = struct{}{}
	s.mu.Unlock()

	s.loops.Add(1)
	go func() {
		defer s.loops.Done()
		s.reconcile(ctx, domain.NormalizeAddress(address), courseSlug)
	}()
}

func (s *synchronizer) SyncAfterTransaction(ctx context.Context, address, courseSlug, txHash string) {
	if !domain.IsValidAddress(address) || courseSlug == "" {
		return
	}

	logger.InfoCtx(ctx, "scheduling post-transaction reconciliation",
		zap.String("address", domain.NormalizeAddress(address)),
		zap.String("course", courseSlug),
		zap.String("txHash", txHash))

	s.loops.Add(1)
	go func() {
		defer s.loops.Done()
		select {
		case <-s.clock.After(s.settleDelay):
		case <-ctx.Done():
			return
		}
		s.reconcile(ctx, domain.NormalizeAddress(address), courseSlug)
	}()
}

func (s *synchronizer) Wait() {
	s.loops.Wait()
}

// reconcile pushes the enrollment, then re-reads the mirror count until
// it turns non-zero or the schedule runs out. Attempt errors are logged
// and absorbed; the next rung of the schedule retries anyway.
func (s *synchronizer) reconcile(ctx context.Context, address, courseSlug string) {
	for attempt := 0; ; attempt++ {
		if done := s.attemptOnce(ctx, address, courseSlug, attempt); done {
			return
		}

		if attempt >= len(syncSchedule) {
			logger.WarnCtx(ctx, "reconciliation schedule exhausted",
				zap.String("address", address),
				zap.String("course", courseSlug))
			return
		}

		select {
		case <-s.clock.After(syncSchedule[attempt]):
		case <-ctx.Done():
			logger.DebugCtx(ctx, "reconciliation cancelled",
				zap.String("address", address),
				zap.String("course", courseSlug))
			return
		}
	}
}

func (s *synchronizer) attemptOnce(ctx context.Context, address, courseSlug string, attempt int) bool {
	if err := s.mirror.PushEnrollment(ctx, courseSlug, address); err != nil {
		logger.DebugCtx(ctx, "enrollment push failed",
			zap.String("address", address),
			zap.String("course", courseSlug),
			zap.Int("attempt", attempt),
			zap.Error(err))
		return false
	}

	count, err := s.mirror.EnrollmentCount(ctx, courseSlug)
	if err != nil {
		logger.DebugCtx(ctx, "enrollment count read failed",
			zap.String("course", courseSlug),
			zap.Int("attempt", attempt),
			zap.Error(err))
		return false
	}
	if count == 0 {
		return false
	}

	s.oracle.Invalidate(oracle.Identity{WalletAddress: address})
	logger.InfoCtx(ctx, "enrollment reconciled",
		zap.String("address", address),
		zap.String("course", courseSlug),
		zap.Int64("count", count),
		zap.Int("attempts", attempt+1))
	return true
}
