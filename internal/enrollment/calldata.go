package enrollment

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Function selectors of the academy badge contract. The sponsorship
// allow-list matches on these exact bytes, so calldata is assembled from
// the same constants rather than re-hashed from signatures.
const (
	SelectorEnroll         = "0x6339fbaa" // enroll(uint256)
	SelectorCompleteModule = "0x4e4bfa29" // completeModule(uint256,uint256)
	SelectorClaimBadge     = "0x7b8b9c8d" // claimBadge(uint256,address)
)

// EnrollCallData encodes enroll(tokenID)
func EnrollCallData(tokenID *big.Int) []byte {
	return packCall(SelectorEnroll, tokenID)
}

// CompleteModuleCallData encodes completeModule(tokenID, moduleIndex).
// moduleIndex is zero-based; the contract counts modules from one.
func CompleteModuleCallData(tokenID *big.Int, moduleIndex uint64) []byte {
	onChainIndex := new(big.Int).SetUint64(moduleIndex + 1)
	return packCall(SelectorCompleteModule, tokenID, onChainIndex)
}

// ClaimBadgeCallData encodes claimBadge(tokenID, recipient)
func ClaimBadgeCallData(tokenID *big.Int, recipient string) []byte {
	return packCall(SelectorClaimBadge, tokenID, common.HexToAddress(recipient).Big())
}

func packCall(selector string, args ...*big.Int) []byte {
	data := hexutil.MustDecode(selector)
	for _, arg := range args {
		data = append(data, common.BigToHash(arg).Bytes()...)
	}
	return data
}
