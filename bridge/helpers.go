package bridge

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// NativeTokenAddress marks a transfer of the chain's gas token instead of an
// ERC20.
var NativeTokenAddress = common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")

func IsNativeToken(token common.Address) bool {
	return token == NativeTokenAddress
}

// ApplySlippage reduces an expected output by the slippage tolerance,
// truncated to basis points.
func ApplySlippage(amount *big.Int, slippage float64) *big.Int {
	bps := big.NewInt(int64(math.Floor(slippage * 10000)))
	cut := new(big.Int).Div(new(big.Int).Mul(amount, bps), big.NewInt(10000))
	return new(big.Int).Sub(amount, cut)
}

// QuoteID derives a stable identifier from the encoded contract call, so the
// same quote always carries the same ID.
func QuoteID(provider ProviderName, srcChainID, dstChainID uint64, calldata []byte) string {
	return fmt.Sprintf("%s-%d-%d-%x", provider, srcChainID, dstChainID, crypto.Keccak256(calldata)[:6])
}
