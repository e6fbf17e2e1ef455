package domain

const (
	// Blockchain constants
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// Persisted key-value keys. One smart-account key is written at most
	// once per owner for the lifetime of the system.
	SelectedWalletKey        = "selected-wallet"
	SmartAccountKeyPrefix    = "smart-account-"
	DefaultRelayBaseEndpoint = "https://rpc.zerodev.app/api/v3"
)

// SmartAccountKey returns the persistence key for an owner's derived
// smart-account address
func SmartAccountKey(ownerAddress string) string {
	return SmartAccountKeyPrefix + NormalizeAddress(ownerAddress)
}
