// Package session manages the smart-account session lifecycle: wallet
// selection, account client construction with retry, optimistic recovery
// of persisted account addresses, and the watchdog that caps how long a
// session may stay in a transitional state.
package session

import (
	"context"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/celo-academy/academy-engine/internal/adapter"
	"github.com/celo-academy/academy-engine/internal/config"
	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/logger"
	"github.com/celo-academy/academy-engine/internal/relay"
	"github.com/celo-academy/academy-engine/internal/store"
	"github.com/celo-academy/academy-engine/internal/wallet"
)

//go:generate mockgen -source=manager.go -destination=../mocks/session.go -package=mocks -mock_names=Manager=MockSessionManager

// Manager owns the smart-account session for the authenticated user.
// It is an explicit service with its own lifecycle; nothing here is
// constructed as a side effect of serving a request.
type Manager interface {
	// Init restores persisted wallet selection and, when the
	// authenticator already reports an authenticated user, drives the
	// session toward Ready.
	Init(ctx context.Context) error

	// OnWalletAuthenticated re-evaluates wallet selection and
	// (re)builds the account client. Safe to call repeatedly; a call
	// for the already-bound owner in a Ready session is a no-op.
	OnWalletAuthenticated(ctx context.Context) error

	// Logout tears the session down to Uninitialized. The persisted
	// owner -> smart-account mapping is retained for the next login.
	Logout(ctx context.Context) error

	// ForceReconnect clears persisted session state and runs the full
	// logout/login cycle. This is the only path that deletes the
	// owner -> smart-account mapping.
	ForceReconnect(ctx context.Context) error

	// Session returns a snapshot of the current session state.
	Session() domain.SmartAccountSession

	// IsReady reports whether the session holds a live account client
	// and a smart-account address, outside the transitional states.
	IsReady() bool

	// CanSponsorTransaction reports whether sponsored execution is
	// available right now. Only a Ready session qualifies.
	CanSponsorTransaction() bool

	// Client returns the live account client, or nil unless the
	// session is Ready.
	Client() relay.AccountClient

	// Reset drops all in-memory session state without touching
	// persisted keys.
	Reset()

	// Dispose stops background work. The manager must not be used
	// after Dispose returns.
	Dispose()
}

type manager struct {
	auth     wallet.Authenticator
	factory  relay.AccountFactory
	sessions store.SessionStore
	clock    adapter.Clock
	cfg      config.SessionConfig

	mu         sync.Mutex
	session    domain.SmartAccountSession
	client     relay.AccountClient
	generation uint64
	watchdogs  sync.WaitGroup
	disposed   bool
}

// NewManager creates a session manager. Init must be called before use.
func NewManager(
	auth wallet.Authenticator,
	factory relay.AccountFactory,
	sessions store.SessionStore,
	clock adapter.Clock,
	cfg config.SessionConfig,
) Manager {
	return &manager{
		auth:     auth,
		factory:  factory,
		sessions: sessions,
		clock:    clock,
		cfg:      cfg,
		session:  domain.SmartAccountSession{Status: domain.SessionUninitialized},
	}
}

func (m *manager) Init(ctx context.Context) error {
	if !m.auth.Ready() || !m.auth.Authenticated() {
		return nil
	}
	return m.OnWalletAuthenticated(ctx)
}

func (m *manager) OnWalletAuthenticated(ctx context.Context) error {
	if !m.auth.Ready() {
		return nil
	}
	if !m.auth.Authenticated() {
		return m.Logout(ctx)
	}

	persisted, err := m.sessions.SelectedWallet(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "failed to load persisted wallet selection", zap.Error(err))
		persisted = ""
	}

	selected, ok := wallet.SelectWallet(m.auth.Wallets(), persisted)
	if !ok && persisted != "" {
		// The persisted owner is not in the wallet list yet. Linked
		// wallets arrive asynchronously after login, so give the list
		// one debounce window to settle before treating the owner as
		// gone.
		m.clock.Sleep(m.cfg.RecoveryDebounce)
		selected, ok = wallet.SelectWallet(m.auth.Wallets(), persisted)
		if !ok {
			selected, ok = wallet.SelectWallet(m.auth.Wallets(), "")
		}
	}
	if !ok {
		return domain.ErrNoWalletAvailable
	}

	owner := domain.NormalizeAddress(selected.Address)
	if err := m.sessions.SetSelectedWallet(ctx, owner); err != nil {
		logger.WarnCtx(ctx, "failed to persist wallet selection",
			zap.String("owner", owner), zap.Error(err))
	}

	recovered, err := m.sessions.SmartAccountFor(ctx, owner)
	if err != nil {
		logger.WarnCtx(ctx, "failed to load persisted smart account",
			zap.String("owner", owner), zap.Error(err))
		recovered = ""
	}

	gen, proceed := m.begin(owner, recovered)
	if !proceed {
		return nil
	}

	m.startWatchdog(ctx, gen)
	return m.initialize(ctx, gen, owner, recovered)
}

// begin transitions the session into Recovering or Initializing for the
// given owner and returns the generation token guarding the attempt.
// proceed is false when the owner is already bound and Ready.
func (m *manager) begin(owner, recovered string) (uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.OwnerAddress == owner && m.session.Status == domain.SessionReady && m.client != nil {
		return 0, false
	}

	m.generation++
	m.client = nil
	status := domain.SessionInitializing
	if recovered != "" {
		status = domain.SessionRecovering
	}
	m.session = domain.SmartAccountSession{
		OwnerAddress:        owner,
		SmartAccountAddress: recovered,
		Status:              status,
		UpdatedAt:           m.clock.Now(),
	}
	return m.generation, true
}

// startWatchdog caps how long the session may sit in a transitional
// state. When the timeout fires and a recovered address is on hand, the
// session degrades: the address stays usable, sponsored execution does
// not. A later successful initialization still upgrades to Ready.
func (m *manager) startWatchdog(ctx context.Context, gen uint64) {
	m.watchdogs.Add(1)
	timer := m.clock.After(m.cfg.WatchdogTimeout)

	go func() {
		defer m.watchdogs.Done()
		select {
		case <-timer:
		case <-ctx.Done():
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if m.generation != gen {
			return
		}
		if m.session.Status != domain.SessionRecovering && m.session.Status != domain.SessionInitializing {
			return
		}
		if m.session.SmartAccountAddress == "" {
			return
		}

		m.session.Status = domain.SessionDegraded
		m.session.UpdatedAt = m.clock.Now()
		logger.WarnCtx(ctx, "session watchdog fired, degrading to read-only account",
			zap.String("owner", m.session.OwnerAddress),
			zap.String("account", m.session.SmartAccountAddress),
			zap.Duration("timeout", m.cfg.WatchdogTimeout))
	}()
}

// initialize builds the account client, retrying transient network
// failures on a fixed delay. Non-network failures abort immediately.
func (m *manager) initialize(ctx context.Context, gen uint64, owner, recovered string) error {
	var client relay.AccountClient

	operation := func() error {
		provider, err := m.auth.Provider(ctx, owner)
		if err != nil {
			if domain.IsRetryableNetwork(err) {
				return err
			}
			return backoff.Permanent(err)
		}

		m.markInitializing(gen)

		built, err := m.factory.Build(ctx, owner, provider)
		if err != nil {
			if domain.IsRetryableNetwork(err) {
				logger.WarnCtx(ctx, "account client construction failed, retrying",
					zap.String("owner", owner), zap.Error(err))
				return err
			}
			return backoff.Permanent(err)
		}

		client = built
		return nil
	}

	retries := uint64(0)
	if m.cfg.InitRetryLimit > 1 {
		retries = uint64(m.cfg.InitRetryLimit - 1)
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(m.cfg.InitRetryDelay), retries),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		m.fail(ctx, gen, recovered, err)
		return err
	}

	account, err := m.sessions.RecordSmartAccount(ctx, owner, client.AccountAddress())
	if err != nil {
		logger.WarnCtx(ctx, "failed to persist smart account address",
			zap.String("owner", owner), zap.Error(err))
		account = client.AccountAddress()
	}
	if account != client.AccountAddress() {
		logger.WarnCtx(ctx, "derived smart account differs from persisted address",
			zap.String("owner", owner),
			zap.String("derived", client.AccountAddress()),
			zap.String("persisted", account))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen {
		return nil
	}

	m.client = client
	m.session.SmartAccountAddress = account
	m.session.Status = domain.SessionReady
	m.session.LastError = ""
	m.session.UpdatedAt = m.clock.Now()

	logger.InfoCtx(ctx, "smart account session ready",
		zap.String("owner", owner),
		zap.String("account", account))
	return nil
}

// markInitializing moves a recovered session into Initializing once the
// signing provider handle is on hand and client construction starts. The
// recovered address stays surfaced throughout.
func (m *manager) markInitializing(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen || m.session.Status != domain.SessionRecovering {
		return
	}
	m.session.Status = domain.SessionInitializing
	m.session.UpdatedAt = m.clock.Now()
}

// fail records a terminal initialization failure. With a recovered
// address on hand the session degrades instead of erroring, matching
// what the watchdog would have done.
func (m *manager) fail(ctx context.Context, gen uint64, recovered string, cause error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen {
		return
	}

	status := domain.SessionError
	if recovered != "" {
		status = domain.SessionDegraded
	}
	m.session.Status = status
	m.session.LastError = cause.Error()
	m.session.UpdatedAt = m.clock.Now()

	logger.ErrorCtx(ctx, cause,
		zap.String("owner", m.session.OwnerAddress),
		zap.String("status", string(status)))
}

func (m *manager) Logout(ctx context.Context) error {
	if err := m.auth.Logout(ctx); err != nil {
		logger.WarnCtx(ctx, "authenticator logout failed", zap.Error(err))
	}

	m.mu.Lock()
	m.generation++
	m.client = nil
	m.session = domain.SmartAccountSession{
		Status:    domain.SessionUninitialized,
		UpdatedAt: m.clock.Now(),
	}
	m.mu.Unlock()

	return nil
}

func (m *manager) ForceReconnect(ctx context.Context) error {
	m.mu.Lock()
	owner := m.session.OwnerAddress
	m.mu.Unlock()

	if err := m.sessions.Clear(ctx, owner); err != nil {
		return err
	}
	if err := m.Logout(ctx); err != nil {
		return err
	}
	if err := m.auth.Login(ctx); err != nil {
		return err
	}
	return m.OnWalletAuthenticated(ctx)
}

func (m *manager) Session() domain.SmartAccountSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

func (m *manager) IsReady() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil || m.session.SmartAccountAddress == "" {
		return false
	}
	return m.session.Status != domain.SessionInitializing &&
		m.session.Status != domain.SessionRecovering
}

func (m *manager) CanSponsorTransaction() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Status == domain.SessionReady && m.client != nil
}

func (m *manager) Client() relay.AccountClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.Status != domain.SessionReady {
		return nil
	}
	return m.client
}

func (m *manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	m.client = nil
	m.session = domain.SmartAccountSession{
		Status:    domain.SessionUninitialized,
		UpdatedAt: m.clock.Now(),
	}
}

func (m *manager) Dispose() {
	m.Reset()

	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	m.disposed = true
	m.mu.Unlock()

	m.watchdogs.Wait()
}
