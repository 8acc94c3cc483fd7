package router

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// maxDecimals keeps 10^decimals inside uint256 range.
const maxDecimals = 77

// ScaleAmount converts a human-readable decimal amount into base units by
// multiplying with 10^decimals. Excess fractional digits are truncated
// toward zero, so "1.000000000000000009" at 18 decimals becomes
// 1000000000000000009 and "1.5" at 0 decimals becomes 1.
func ScaleAmount(amount string, decimals uint8) (*big.Int, error) {
	if decimals > maxDecimals {
		return nil, types.NewInvalidParameters("decimals", "must not exceed 77")
	}
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, types.NewInvalidParameters("amount", "must be a decimal number")
	}
	if d.IsNegative() {
		return nil, types.NewInvalidParameters("amount", "must not be negative")
	}
	return d.Shift(int32(decimals)).Truncate(0).BigInt(), nil
}

// ParseAddress validates a hex address string. All-lowercase and
// all-uppercase hex digits are accepted as unchecksummed; mixed case must
// match the EIP-55 checksum exactly. field names the offending argument
// in the returned error.
func ParseAddress(field, value string) (common.Address, error) {
	if !addressPattern.MatchString(value) {
		return common.Address{}, types.NewInvalidParameters(field, "must be a 0x-prefixed 20-byte hex address")
	}
	hexPart := value[2:]
	if hexPart != strings.ToLower(hexPart) && hexPart != strings.ToUpper(hexPart) {
		addr := common.HexToAddress(value)
		if addr.Hex() != value {
			return common.Address{}, types.NewInvalidParameters(field, "failed the EIP-55 checksum")
		}
		return addr, nil
	}
	return common.HexToAddress(value), nil
}

// ParseAmount parses a non-negative base-unit integer string.
func ParseAmount(field, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok {
		return nil, types.NewInvalidParameters(field, "must be an integer amount in base units")
	}
	if n.Sign() < 0 {
		return nil, types.NewInvalidParameters(field, "must not be negative")
	}
	return n, nil
}

// Tuple mirrors for abi.Pack. Field order and names follow the contract
// struct components exactly.

type approxTuple struct {
	GuessMin      *big.Int
	GuessMax      *big.Int
	GuessOffchain *big.Int
	MaxIteration  *big.Int
	Eps           *big.Int
}

type swapDataTuple struct {
	SwapType    uint8
	ExtRouter   common.Address
	ExtCalldata []byte
	NeedScale   bool
}

type tokenInputTuple struct {
	TokenIn     common.Address
	NetTokenIn  *big.Int
	TokenMintSy common.Address
	PendleSwap  common.Address
	SwapData    swapDataTuple
}

type tokenOutputTuple struct {
	TokenOut      common.Address
	MinTokenOut   *big.Int
	TokenRedeemSy common.Address
	PendleSwap    common.Address
	SwapData      swapDataTuple
}

func approxToTuple(p types.ApproxParams) approxTuple {
	return approxTuple{
		GuessMin:      p.GuessMin,
		GuessMax:      p.GuessMax,
		GuessOffchain: p.GuessOffchain,
		MaxIteration:  p.MaxIteration,
		Eps:           p.Eps,
	}
}

// swapToTuple encodes a missing swap as the NONE tuple: type 0, zero
// router, empty calldata, no scaling.
func swapToTuple(sd *types.SwapData) swapDataTuple {
	if sd == nil {
		return swapDataTuple{
			SwapType:    uint8(types.SwapTypeNone),
			ExtRouter:   common.Address{},
			ExtCalldata: []byte{},
			NeedScale:   false,
		}
	}
	calldata := sd.ExtCalldata
	if calldata == nil {
		calldata = []byte{}
	}
	return swapDataTuple{
		SwapType:    uint8(sd.SwapType),
		ExtRouter:   sd.ExtRouter,
		ExtCalldata: calldata,
		NeedScale:   sd.NeedScale,
	}
}

func inputToTuple(in types.TokenInput) tokenInputTuple {
	return tokenInputTuple{
		TokenIn:     in.TokenIn,
		NetTokenIn:  in.NetTokenIn,
		TokenMintSy: in.TokenMintSy,
		PendleSwap:  in.PendleSwap,
		SwapData:    swapToTuple(in.SwapData),
	}
}

func outputToTuple(out types.TokenOutput) tokenOutputTuple {
	return tokenOutputTuple{
		TokenOut:      out.TokenOut,
		MinTokenOut:   out.MinTokenOut,
		TokenRedeemSy: out.TokenRedeemSy,
		PendleSwap:    out.PendleSwap,
		SwapData:      swapToTuple(out.SwapData),
	}
}
