package oracle_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/celo-academy/academy-engine/internal/config"
	"github.com/celo-academy/academy-engine/internal/logger"
	"github.com/celo-academy/academy-engine/internal/mocks"
	"github.com/celo-academy/academy-engine/internal/oracle"
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
	testContract     = "0xf8CA094fd88F259Df35e0B8a9f38Df8f4F28F336"
	testWallet       = "0x1111111111111111111111111111111111111111"
	testSmartAccount = "0x2222222222222222222222222222222222222222"
)

var testTokenID = big.NewInt(42)

// testOracleMocks contains all the mocks needed for testing the oracle
type testOracleMocks struct {
	ctrl   *gomock.Controller
	caller *mocks.MockEthCaller
	clock  *mocks.MockClock
	oracle oracle.Oracle
}

// setupTest creates all the mocks and oracle for testing
func setupTest(t *testing.T) *testOracleMocks {
	ctrl := gomock.NewController(t)
	caller := mocks.NewMockEthCaller(ctrl)
	clock := mocks.NewMockClock(ctrl)

	clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).AnyTimes()

	orc, err := oracle.New(caller, clock, config.ChainConfig{
		ContractAddress: testContract,
		CacheTTL:        12 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to create oracle: %v", err)
	}

	return &testOracleMocks{
		ctrl:   ctrl,
		caller: caller,
		clock:  clock,
		oracle: orc,
	}
}

// tearDownTest cleans up the test resources
func tearDownTest(tm *testOracleMocks) {
	tm.ctrl.Finish()
}

func boolWord(v bool) []byte {
	word := make([]byte, 32)
	if v {
		word[31] = 1
	}
	return word
}

// callDataAddress extracts the address argument from the encoded call
func callDataAddress(data []byte) string {
	return strings.ToLower(common.BytesToAddress(data[4:36]).Hex())
}

func TestOracle_New_InvalidContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := oracle.New(mocks.NewMockEthCaller(ctrl), mocks.NewMockClock(ctrl), config.ChainConfig{
		ContractAddress: "not-an-address",
	})
	assert.Error(t, err)
}

func TestOracle_IsEnrolled_EitherIdentityCounts(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	// wallet says no, smart account says yes
	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			return boolWord(callDataAddress(msg.Data) == testSmartAccount), nil
		}).
		Times(2)

	enrolled, err := tm.oracle.IsEnrolled(context.Background(), oracle.Identity{
		WalletAddress:       testWallet,
		SmartAccountAddress: testSmartAccount,
	}, testTokenID)
	assert.NoError(t, err)
	assert.True(t, enrolled)
}

func TestOracle_IsEnrolled_NeitherIdentity(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(boolWord(false), nil).
		Times(2)

	enrolled, err := tm.oracle.IsEnrolled(context.Background(), oracle.Identity{
		WalletAddress:       testWallet,
		SmartAccountAddress: testSmartAccount,
	}, testTokenID)
	assert.NoError(t, err)
	assert.False(t, enrolled)
}

func TestOracle_IsEnrolled_EmptyIdentity(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	enrolled, err := tm.oracle.IsEnrolled(context.Background(), oracle.Identity{}, testTokenID)
	assert.NoError(t, err)
	assert.False(t, enrolled)
}

func TestOracle_IsEnrolled_DuplicateIdentityQueriedOnce(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(boolWord(true), nil)

	enrolled, err := tm.oracle.IsEnrolled(context.Background(), oracle.Identity{
		WalletAddress:       testWallet,
		SmartAccountAddress: "0x" + strings.ToUpper(testWallet[2:]),
	}, testTokenID)
	assert.NoError(t, err)
	assert.True(t, enrolled)
}

func TestOracle_IsEnrolled_PartialFailureWithPositiveRead(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			if callDataAddress(msg.Data) == testWallet {
				return nil, errors.New("connection refused")
			}
			return boolWord(true), nil
		}).
		Times(2)

	enrolled, err := tm.oracle.IsEnrolled(context.Background(), oracle.Identity{
		WalletAddress:       testWallet,
		SmartAccountAddress: testSmartAccount,
	}, testTokenID)
	assert.NoError(t, err)
	assert.True(t, enrolled)
}

func TestOracle_IsEnrolled_AllReadsFail(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(nil, errors.New("connection refused")).
		Times(2)

	_, err := tm.oracle.IsEnrolled(context.Background(), oracle.Identity{
		WalletAddress:       testWallet,
		SmartAccountAddress: testSmartAccount,
	}, testTokenID)
	assert.Error(t, err)
}

func TestOracle_HasCompletedModule_UsesOneBasedIndex(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	var captured []byte
	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			captured = msg.Data
			return boolWord(true), nil
		})

	done, err := tm.oracle.HasCompletedModule(context.Background(), oracle.Identity{
		WalletAddress: testWallet,
	}, testTokenID, 4)
	assert.NoError(t, err)
	assert.True(t, done)

	// the last encoded word carries the module index, shifted to the
	// contract's one-based numbering
	index := new(big.Int).SetBytes(captured[len(captured)-32:])
	assert.Equal(t, uint64(5), index.Uint64())
}

func TestOracle_CacheHitSkipsChain(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(boolWord(true), nil)
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	id := oracle.Identity{WalletAddress: testWallet}
	enrolled, err := tm.oracle.IsEnrolled(context.Background(), id, testTokenID)
	assert.NoError(t, err)
	assert.True(t, enrolled)

	// second read answers from cache
	enrolled, err = tm.oracle.IsEnrolled(context.Background(), id, testTokenID)
	assert.NoError(t, err)
	assert.True(t, enrolled)
}

func TestOracle_CacheExpiryRefetches(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(boolWord(true), nil).
		Times(2)
	tm.clock.EXPECT().Since(gomock.Any()).Return(13 * time.Second).AnyTimes()

	id := oracle.Identity{WalletAddress: testWallet}
	_, err := tm.oracle.IsEnrolled(context.Background(), id, testTokenID)
	assert.NoError(t, err)
	_, err = tm.oracle.IsEnrolled(context.Background(), id, testTokenID)
	assert.NoError(t, err)
}

func TestOracle_InvalidateDropsCachedAnswers(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(boolWord(false), nil).
		Times(2)
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	id := oracle.Identity{WalletAddress: testWallet}
	_, err := tm.oracle.IsEnrolled(context.Background(), id, testTokenID)
	assert.NoError(t, err)

	tm.oracle.Invalidate(id)

	// the cached negative answer is gone, the chain is read again
	_, err = tm.oracle.IsEnrolled(context.Background(), id, testTokenID)
	assert.NoError(t, err)
}

func TestOracle_Snapshot(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	id := oracle.Identity{WalletAddress: testWallet}

	// nothing cached, nothing in flight
	answer := tm.oracle.Snapshot(id, testTokenID, -1)
	assert.False(t, answer.Value)
	assert.False(t, answer.Loading)

	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		Return(boolWord(true), nil)
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	_, err := tm.oracle.IsEnrolled(context.Background(), id, testTokenID)
	assert.NoError(t, err)

	answer = tm.oracle.Snapshot(id, testTokenID, -1)
	assert.True(t, answer.Value)
	assert.False(t, answer.Loading)
}

func TestOracle_Snapshot_LoadingWhileReadInFlight(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	release := make(chan struct{})
	tm.caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
			<-release
			return boolWord(true), nil
		})
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	id := oracle.Identity{WalletAddress: testWallet}
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = tm.oracle.IsEnrolled(context.Background(), id, testTokenID)
	}()

	assert.Eventually(t, func() bool {
		return tm.oracle.Snapshot(id, testTokenID, -1).Loading
	}, time.Second, time.Millisecond)

	close(release)
	<-done
	assert.True(t, tm.oracle.Snapshot(id, testTokenID, -1).Value)
}
