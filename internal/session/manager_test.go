package session_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/celo-academy/academy-engine/internal/config"
	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/logger"
	"github.com/celo-academy/academy-engine/internal/mocks"
	"github.com/celo-academy/academy-engine/internal/relay"
	"github.com/celo-academy/academy-engine/internal/session"
	"github.com/celo-academy/academy-engine/internal/wallet"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const (
	testOwner        = "0x1111111111111111111111111111111111111111"
	testSmartAccount = "0x2222222222222222222222222222222222222222"
)

// testSessionManagerMocks contains all the mocks needed for testing the
// session manager
type testSessionManagerMocks struct {
	ctrl       *gomock.Controller
	auth       *mocks.MockAuthenticator
	factory    *mocks.MockAccountFactory
	sessions   *mocks.MockSessionStore
	clock      *mocks.MockClock
	provider   *mocks.MockProvider
	client     *mocks.MockAccountClient
	manager    session.Manager
	testConfig config.SessionConfig
}

// setupTest creates all the mocks and session manager for testing
func setupTest(t *testing.T) *testSessionManagerMocks {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)
	factory := mocks.NewMockAccountFactory(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	provider := mocks.NewMockProvider(ctrl)
	client := mocks.NewMockAccountClient(ctrl)

	testConfig := config.SessionConfig{
		WatchdogTimeout:  7 * time.Second,
		InitRetryLimit:   3,
		InitRetryDelay:   time.Millisecond,
		RecoveryDebounce: 500 * time.Millisecond,
	}

	clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).AnyTimes()
	client.EXPECT().AccountAddress().Return(testSmartAccount).AnyTimes()
	client.EXPECT().OwnerAddress().Return(testOwner).AnyTimes()

	return &testSessionManagerMocks{
		ctrl:       ctrl,
		auth:       auth,
		factory:    factory,
		sessions:   sessions,
		clock:      clock,
		provider:   provider,
		client:     client,
		manager:    session.NewManager(auth, factory, sessions, clock, testConfig),
		testConfig: testConfig,
	}
}

// tearDownTest cleans up the test resources
func tearDownTest(tm *testSessionManagerMocks) {
	tm.ctrl.Finish()
}

// expectWatchdog arms the clock with a watchdog timer channel the test
// controls. A channel that is never written to keeps the watchdog idle.
func expectWatchdog(tm *testSessionManagerMocks) chan time.Time {
	timerCh := make(chan time.Time, 1)
	tm.clock.EXPECT().After(tm.testConfig.WatchdogTimeout).Return((<-chan time.Time)(timerCh))
	return timerCh
}

func TestSessionManager_FreshLogin_BecomesReady(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return("", nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).Return(tm.client, nil)
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), testOwner, testSmartAccount).Return(testSmartAccount, nil)

	err := tm.manager.OnWalletAuthenticated(ctx)
	assert.NoError(t, err)

	snapshot := tm.manager.Session()
	assert.Equal(t, domain.SessionReady, snapshot.Status)
	assert.Equal(t, testOwner, snapshot.OwnerAddress)
	assert.Equal(t, testSmartAccount, snapshot.SmartAccountAddress)
	assert.Empty(t, snapshot.LastError)

	assert.True(t, tm.manager.IsReady())
	assert.True(t, tm.manager.CanSponsorTransaction())
	assert.NotNil(t, tm.manager.Client())
}

func TestSessionManager_FreshLogin_NormalizesOwnerAddress(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mixedCase := "0xAbCd111111111111111111111111111111111111"
	lower := "0xabcd111111111111111111111111111111111111"

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: mixedCase, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), lower).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), lower).Return("", nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), lower).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), lower, tm.provider).Return(tm.client, nil)
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), lower, testSmartAccount).Return(testSmartAccount, nil)

	err := tm.manager.OnWalletAuthenticated(ctx)
	assert.NoError(t, err)
	assert.Equal(t, lower, tm.manager.Session().OwnerAddress)
}

func TestSessionManager_Recovery_SurfacesPersistedAddressImmediately(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return(testOwner, nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return(testSmartAccount, nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).
		DoAndReturn(func(context.Context, string) (wallet.Provider, error) {
			<-release
			return tm.provider, nil
		})
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).Return(tm.client, nil)
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), testOwner, testSmartAccount).Return(testSmartAccount, nil)

	done := make(chan error, 1)
	go func() { done <- tm.manager.OnWalletAuthenticated(ctx) }()

	// until the signing provider is on hand the persisted address is
	// already visible, but the session is not usable yet
	assert.Eventually(t, func() bool {
		snapshot := tm.manager.Session()
		return snapshot.Status == domain.SessionRecovering &&
			snapshot.SmartAccountAddress == testSmartAccount
	}, time.Second, time.Millisecond)
	assert.False(t, tm.manager.IsReady())
	assert.False(t, tm.manager.CanSponsorTransaction())
	assert.Nil(t, tm.manager.Client())

	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, domain.SessionReady, tm.manager.Session().Status)
	assert.True(t, tm.manager.IsReady())
}

func TestSessionManager_Recovery_EntersInitializingOnceProviderAvailable(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return(testOwner, nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return(testSmartAccount, nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).
		DoAndReturn(func(context.Context, string, wallet.Provider) (relay.AccountClient, error) {
			<-release
			return tm.client, nil
		})
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), testOwner, testSmartAccount).Return(testSmartAccount, nil)

	done := make(chan error, 1)
	go func() { done <- tm.manager.OnWalletAuthenticated(ctx) }()

	// client construction has started, so the session has left Recovering;
	// the recovered address stays surfaced throughout
	assert.Eventually(t, func() bool {
		snapshot := tm.manager.Session()
		return snapshot.Status == domain.SessionInitializing &&
			snapshot.SmartAccountAddress == testSmartAccount
	}, time.Second, time.Millisecond)
	assert.False(t, tm.manager.IsReady())

	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, domain.SessionReady, tm.manager.Session().Status)
}

func TestSessionManager_Watchdog_DegradesThenLateSuccessUpgrades(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return(testOwner, nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return(testSmartAccount, nil)
	timerCh := expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).
		DoAndReturn(func(context.Context, string, wallet.Provider) (relay.AccountClient, error) {
			<-release
			return tm.client, nil
		})
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), testOwner, testSmartAccount).Return(testSmartAccount, nil)

	done := make(chan error, 1)
	go func() { done <- tm.manager.OnWalletAuthenticated(ctx) }()

	assert.Eventually(t, func() bool {
		return tm.manager.Session().Status == domain.SessionRecovering
	}, time.Second, time.Millisecond)

	// watchdog fires while construction is stuck
	timerCh <- time.Date(2024, 1, 1, 0, 0, 7, 0, time.UTC)

	assert.Eventually(t, func() bool {
		return tm.manager.Session().Status == domain.SessionDegraded
	}, time.Second, time.Millisecond)
	assert.Equal(t, testSmartAccount, tm.manager.Session().SmartAccountAddress)
	assert.False(t, tm.manager.CanSponsorTransaction())

	// the stuck construction finishing late still upgrades the session
	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, domain.SessionReady, tm.manager.Session().Status)
	assert.True(t, tm.manager.CanSponsorTransaction())
}

func TestSessionManager_WatchdogWithoutRecoveredAddress_DoesNotDegrade(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return("", nil)
	timerCh := expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).
		DoAndReturn(func(context.Context, string, wallet.Provider) (relay.AccountClient, error) {
			<-release
			return tm.client, nil
		})
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), testOwner, testSmartAccount).Return(testSmartAccount, nil)

	done := make(chan error, 1)
	go func() { done <- tm.manager.OnWalletAuthenticated(ctx) }()

	assert.Eventually(t, func() bool {
		return tm.manager.Session().Status == domain.SessionInitializing
	}, time.Second, time.Millisecond)

	// without a recovered address there is nothing to degrade to
	timerCh <- time.Date(2024, 1, 1, 0, 0, 7, 0, time.UTC)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, domain.SessionInitializing, tm.manager.Session().Status)

	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, domain.SessionReady, tm.manager.Session().Status)
}

func TestSessionManager_RetryableFailure_RetriesThenSucceeds(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return("", nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil).Times(3)
	gomock.InOrder(
		tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).
			Return(nil, errors.New("dial tcp: connection refused")),
		tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).
			Return(nil, errors.New("dial tcp: connection refused")),
		tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).
			Return(tm.client, nil),
	)
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), testOwner, testSmartAccount).Return(testSmartAccount, nil)

	err := tm.manager.OnWalletAuthenticated(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.SessionReady, tm.manager.Session().Status)
}

func TestSessionManager_RetryableFailure_ExhaustedWithoutRecovery_Errors(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return("", nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil).Times(3)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).
		Return(nil, errors.New("dial tcp: connection refused")).
		Times(3)

	err := tm.manager.OnWalletAuthenticated(ctx)
	assert.Error(t, err)

	snapshot := tm.manager.Session()
	assert.Equal(t, domain.SessionError, snapshot.Status)
	assert.Contains(t, snapshot.LastError, "connection refused")
	assert.False(t, tm.manager.IsReady())
}

func TestSessionManager_RetryableFailure_ExhaustedWithRecovery_Degrades(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return(testOwner, nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return(testSmartAccount, nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil).Times(3)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).
		Return(nil, errors.New("dial tcp: connection refused")).
		Times(3)

	err := tm.manager.OnWalletAuthenticated(ctx)
	assert.Error(t, err)

	snapshot := tm.manager.Session()
	assert.Equal(t, domain.SessionDegraded, snapshot.Status)
	assert.Equal(t, testSmartAccount, snapshot.SmartAccountAddress)
	assert.False(t, tm.manager.CanSponsorTransaction())
}

func TestSessionManager_NonRetryableFailure_AbortsImmediately(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return("", nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).
		Return(nil, errors.New("invalid owner address"))

	err := tm.manager.OnWalletAuthenticated(ctx)
	assert.Error(t, err)
	assert.Equal(t, domain.SessionError, tm.manager.Session().Status)
}

func TestSessionManager_PersistedOwnerMissing_DebouncesThenRebinds(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	other := "0x3333333333333333333333333333333333333333"
	available := []wallet.Wallet{{Address: other, Embedded: true}}

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return(testOwner, nil)
	// the persisted owner never shows up, the list settles without it
	tm.auth.EXPECT().Wallets().Return(available).Times(3)
	tm.clock.EXPECT().Sleep(tm.testConfig.RecoveryDebounce)
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), other).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), other).Return("", nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), other).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), other, tm.provider).Return(tm.client, nil)
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), other, testSmartAccount).Return(testSmartAccount, nil)

	err := tm.manager.OnWalletAuthenticated(ctx)
	assert.NoError(t, err)
	assert.Equal(t, other, tm.manager.Session().OwnerAddress)
}

func TestSessionManager_NoWalletAvailable(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.auth.EXPECT().Wallets().Return(nil)

	err := tm.manager.OnWalletAuthenticated(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoWalletAvailable)
	assert.Equal(t, domain.SessionUninitialized, tm.manager.Session().Status)
}

func TestSessionManager_AuthenticatorNotReady_IsNoOp(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.auth.EXPECT().Ready().Return(false)

	err := tm.manager.OnWalletAuthenticated(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.SessionUninitialized, tm.manager.Session().Status)
}

func TestSessionManager_NotAuthenticated_TearsDown(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(false)
	tm.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	err := tm.manager.OnWalletAuthenticated(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.SessionUninitialized, tm.manager.Session().Status)
}

func TestSessionManager_RepeatedCallForBoundOwner_IsNoOp(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.auth.EXPECT().Ready().Return(true).Times(2)
	tm.auth.EXPECT().Authenticated().Return(true).Times(2)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return(testOwner, nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}}).Times(2)
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil).Times(2)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return("", nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return(testSmartAccount, nil)
	expectWatchdog(tm)
	// the account client is built exactly once
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).Return(tm.client, nil)
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), testOwner, testSmartAccount).Return(testSmartAccount, nil)

	assert.NoError(t, tm.manager.OnWalletAuthenticated(ctx))
	assert.NoError(t, tm.manager.OnWalletAuthenticated(ctx))
	assert.Equal(t, domain.SessionReady, tm.manager.Session().Status)
}

func TestSessionManager_Logout_KeepsPersistedMapping(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return("", nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).Return(tm.client, nil)
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), testOwner, testSmartAccount).Return(testSmartAccount, nil)
	assert.NoError(t, tm.manager.OnWalletAuthenticated(ctx))

	// logout signs the user out but never deletes persisted keys
	tm.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	assert.NoError(t, tm.manager.Logout(ctx))
	assert.Equal(t, domain.SessionUninitialized, tm.manager.Session().Status)
	assert.False(t, tm.manager.IsReady())
	assert.Nil(t, tm.manager.Client())
}

func TestSessionManager_ForceReconnect_ClearsAndRebinds(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the empty owner from a fresh manager clears only the selection key
	tm.sessions.EXPECT().Clear(gomock.Any(), "").Return(nil)
	tm.auth.EXPECT().Logout(gomock.Any()).Return(nil)
	tm.auth.EXPECT().Login(gomock.Any()).Return(nil)

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return("", nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).Return(tm.client, nil)
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), testOwner, testSmartAccount).Return(testSmartAccount, nil)

	err := tm.manager.ForceReconnect(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.SessionReady, tm.manager.Session().Status)
}

func TestSessionManager_PersistedMismatch_SurfacesPersistedAddress(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	persisted := "0x4444444444444444444444444444444444444444"

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(true)
	tm.sessions.EXPECT().SelectedWallet(gomock.Any()).Return("", nil)
	tm.auth.EXPECT().Wallets().Return([]wallet.Wallet{{Address: testOwner, Embedded: true}})
	tm.sessions.EXPECT().SetSelectedWallet(gomock.Any(), testOwner).Return(nil)
	tm.sessions.EXPECT().SmartAccountFor(gomock.Any(), testOwner).Return("", nil)
	expectWatchdog(tm)
	tm.auth.EXPECT().Provider(gomock.Any(), testOwner).Return(tm.provider, nil)
	tm.factory.EXPECT().Build(gomock.Any(), testOwner, tm.provider).Return(tm.client, nil)
	// the mapping is write-once: an earlier persisted address wins
	tm.sessions.EXPECT().RecordSmartAccount(gomock.Any(), testOwner, testSmartAccount).Return(persisted, nil)

	err := tm.manager.OnWalletAuthenticated(ctx)
	assert.NoError(t, err)
	assert.Equal(t, persisted, tm.manager.Session().SmartAccountAddress)
}

func TestSessionManager_Init_SkipsWhenNotAuthenticated(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.auth.EXPECT().Ready().Return(true)
	tm.auth.EXPECT().Authenticated().Return(false)

	err := tm.manager.Init(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.SessionUninitialized, tm.manager.Session().Status)
}
