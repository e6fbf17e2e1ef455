package sponsorship_test

import (
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"

	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/logger"
	"github.com/celo-academy/academy-engine/internal/sponsorship"
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
	mainnetBadgeContract   = "0xf8CA094fd88F259Df35e0B8a9f38Df8f4F28F336"
	alfajoresBadgeContract = "0x4193D2f9Bf93495d4665C485A3B8AadAF78CDf29"
)

func enrollCallData() []byte {
	return hexutil.MustDecode("0x6339fbaa" + "000000000000000000000000000000000000000000000000000000000000002a")
}

func TestRegistry_Default_AllowsBadgeCalls(t *testing.T) {
	registry := sponsorship.Default()

	assert.True(t, registry.CanSponsor(domain.ChainCeloMainnet, mainnetBadgeContract, enrollCallData()))
	assert.True(t, registry.CanSponsor(domain.ChainCeloAlfajores, alfajoresBadgeContract, enrollCallData()))

	completeModule := hexutil.MustDecode("0x4e4bfa29")
	assert.True(t, registry.CanSponsor(domain.ChainCeloMainnet, mainnetBadgeContract, completeModule))

	claimBadge := hexutil.MustDecode("0x7b8b9c8d")
	assert.True(t, registry.CanSponsor(domain.ChainCeloMainnet, mainnetBadgeContract, claimBadge))
}

func TestRegistry_Default_DeniesUnknownSelector(t *testing.T) {
	registry := sponsorship.Default()

	// transfer(address,uint256) is not on the allow-list
	transfer := hexutil.MustDecode("0xa9059cbb")
	assert.False(t, registry.CanSponsor(domain.ChainCeloMainnet, mainnetBadgeContract, transfer))
}

func TestRegistry_Default_DeniesUnknownContract(t *testing.T) {
	registry := sponsorship.Default()

	assert.False(t, registry.CanSponsor(domain.ChainCeloMainnet, "0x0000000000000000000000000000000000000001", enrollCallData()))
}

func TestRegistry_Default_DeniesWrongChain(t *testing.T) {
	registry := sponsorship.Default()

	// the mainnet contract is not allow-listed on alfajores
	assert.False(t, registry.CanSponsor(domain.ChainCeloAlfajores, mainnetBadgeContract, enrollCallData()))
	assert.False(t, registry.CanSponsor(domain.Chain("eip155:1"), mainnetBadgeContract, enrollCallData()))
}

func TestRegistry_Default_DeniesShortCallData(t *testing.T) {
	registry := sponsorship.Default()

	assert.False(t, registry.CanSponsor(domain.ChainCeloMainnet, mainnetBadgeContract, nil))
	assert.False(t, registry.CanSponsor(domain.ChainCeloMainnet, mainnetBadgeContract, []byte{0x63, 0x39}))
}

func TestRegistry_CaseInsensitiveLookup(t *testing.T) {
	registry := sponsorship.New(sponsorship.AllowlistData{
		"EIP155:42220": {
			"0xF8CA094FD88F259DF35E0B8A9F38DF8F4F28F336": {"0x6339FBAA"},
		},
	})

	assert.True(t, registry.CanSponsor(domain.ChainCeloMainnet, "0xf8ca094fd88f259df35e0b8a9f38df8f4f28f336", enrollCallData()))
	assert.True(t, registry.CanSponsor(domain.ChainCeloMainnet, mainnetBadgeContract, enrollCallData()))
}

func TestRegistry_SponsoredContracts(t *testing.T) {
	registry := sponsorship.Default()

	contracts := registry.SponsoredContracts(domain.ChainCeloMainnet)
	assert.Equal(t, []string{"0xf8ca094fd88f259df35e0b8a9f38df8f4f28f336"}, contracts)

	assert.Empty(t, registry.SponsoredContracts(domain.Chain("eip155:1")))
}

func TestRegistry_LoadFromFile(t *testing.T) {
	path := t.TempDir() + "/sponsorship.json"
	data := `{"eip155:42220":{"0xf8CA094fd88F259Df35e0B8a9f38Df8f4F28F336":["0x6339fbaa"]}}`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	registry, err := sponsorship.Load(path)
	assert.NoError(t, err)
	assert.True(t, registry.CanSponsor(domain.ChainCeloMainnet, mainnetBadgeContract, enrollCallData()))

	completeModule := hexutil.MustDecode("0x4e4bfa29")
	assert.False(t, registry.CanSponsor(domain.ChainCeloMainnet, mainnetBadgeContract, completeModule))
}

func TestRegistry_LoadMissingFile(t *testing.T) {
	_, err := sponsorship.Load(t.TempDir() + "/absent.json")
	assert.Error(t, err)
}
