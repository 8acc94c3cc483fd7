package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// SwapType identifies the external aggregator route carried in SwapData.
// The values are the integer codes the router contract expects.
type SwapType uint8

const (
	SwapTypeNone SwapType = iota
	SwapTypeKyberSwap
	SwapTypeOneInch
	SwapTypeNative
	SwapTypeUniswapV2
	SwapTypeUniswapV3
	SwapTypeCurve
	SwapTypeBalancer
)

// swapTypeNames is ordered by enum value.
var swapTypeNames = []string{
	"NONE",
	"KYBERSWAP",
	"ONE_INCH",
	"NATIVE",
	"UNISWAPV2",
	"UNISWAPV3",
	"CURVE",
	"BALANCER",
}

func (t SwapType) String() string {
	if int(t) < len(swapTypeNames) {
		return swapTypeNames[t]
	}
	return "UNKNOWN"
}

// SwapTypeFromInt converts a raw integer code into a SwapType.
func SwapTypeFromInt(v int64) (SwapType, error) {
	if v < 0 || v >= int64(len(swapTypeNames)) {
		return SwapTypeNone, NewInvalidParameters("swapType", "must be an integer between 0 (NONE) and 7 (BALANCER)")
	}
	return SwapType(v), nil
}

// SwapTypeNames returns the name → code table for every supported swap type.
func SwapTypeNames() map[string]uint8 {
	names := make(map[string]uint8, len(swapTypeNames))
	for i, name := range swapTypeNames {
		names[name] = uint8(i)
	}
	return names
}

// ApproxParams bounds the router's on-chain binary search for an exact
// output amount. Construct via NewApproxParams or DefaultApproxParams;
// the constructor copies every field so a value never changes after it
// is built.
type ApproxParams struct {
	GuessMin      *big.Int
	GuessMax      *big.Int
	GuessOffchain *big.Int
	MaxIteration  *big.Int
	Eps           *big.Int
}

// maxEps is 1e18, the fixed-point representation of 100%.
var maxEps = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// NewApproxParams validates and builds approximation parameters.
func NewApproxParams(guessMin, guessMax, guessOffchain, maxIteration, eps *big.Int) (ApproxParams, error) {
	if guessMin == nil || guessMin.Sign() < 0 {
		return ApproxParams{}, NewInvalidParameters("guessMin", "must be a non-negative integer")
	}
	if guessMax == nil || guessMax.Sign() < 0 {
		return ApproxParams{}, NewInvalidParameters("guessMax", "must be a non-negative integer")
	}
	if guessMin.Cmp(guessMax) > 0 {
		return ApproxParams{}, NewInvalidParameters("guessMax", "must be greater than or equal to guessMin")
	}
	if guessOffchain == nil || guessOffchain.Sign() < 0 {
		return ApproxParams{}, NewInvalidParameters("guessOffchain", "must be a non-negative integer")
	}
	if maxIteration == nil || maxIteration.Sign() <= 0 {
		return ApproxParams{}, NewInvalidParameters("maxIteration", "must be greater than zero")
	}
	if eps == nil || eps.Sign() <= 0 {
		return ApproxParams{}, NewInvalidParameters("eps", "must be greater than zero")
	}
	if eps.Cmp(maxEps) > 0 {
		return ApproxParams{}, NewInvalidParameters("eps", "must not exceed 1e18")
	}

	return ApproxParams{
		GuessMin:      new(big.Int).Set(guessMin),
		GuessMax:      new(big.Int).Set(guessMax),
		GuessOffchain: new(big.Int).Set(guessOffchain),
		MaxIteration:  new(big.Int).Set(maxIteration),
		Eps:           new(big.Int).Set(eps),
	}, nil
}

// DefaultApproxParams returns the router's recommended search bounds:
// guessMin 0, guessMax 1e18, guessOffchain 0, maxIteration 256, eps 1e15.
func DefaultApproxParams() ApproxParams {
	params, _ := NewApproxParams(
		big.NewInt(0),
		new(big.Int).Set(maxEps),
		big.NewInt(0),
		big.NewInt(256),
		new(big.Int).Exp(big.NewInt(10), big.NewInt(15), nil),
	)
	return params
}

// SwapData describes an external aggregator hop executed by the router.
type SwapData struct {
	SwapType    SwapType
	ExtRouter   common.Address
	ExtCalldata []byte
	NeedScale   bool
}

// NewSwapData validates and builds an external swap descriptor.
// A NONE swap must carry no router address and no calldata.
func NewSwapData(swapType SwapType, extRouter common.Address, extCalldata []byte, needScale bool) (SwapData, error) {
	if int(swapType) >= len(swapTypeNames) {
		return SwapData{}, NewInvalidParameters("swapType", "must be an integer between 0 (NONE) and 7 (BALANCER)")
	}
	if swapType == SwapTypeNone {
		if extRouter != (common.Address{}) {
			return SwapData{}, NewInvalidParameters("extRouter", "must be the zero address when swapType is NONE")
		}
		if len(extCalldata) != 0 {
			return SwapData{}, NewInvalidParameters("extCalldata", "must be empty when swapType is NONE")
		}
	}

	return SwapData{
		SwapType:    swapType,
		ExtRouter:   extRouter,
		ExtCalldata: append([]byte(nil), extCalldata...),
		NeedScale:   needScale,
	}, nil
}

// TokenInput describes the input leg of a router call: the token paid in
// and the optional external swap that converts it into the SY underlying.
// SwapData is nil when no external route is involved.
type TokenInput struct {
	TokenIn     common.Address
	NetTokenIn  *big.Int
	TokenMintSy common.Address
	PendleSwap  common.Address
	SwapData    *SwapData
}

// NewTokenInput validates and builds a token input descriptor.
// The zero TokenIn address is valid and means the chain's native token.
func NewTokenInput(tokenIn common.Address, netTokenIn *big.Int, tokenMintSy, pendleSwap common.Address, swapData *SwapData) (TokenInput, error) {
	if netTokenIn == nil || netTokenIn.Sign() <= 0 {
		return TokenInput{}, NewInvalidParameters("netTokenIn", "must be greater than zero")
	}
	if swapData != nil && pendleSwap == (common.Address{}) {
		return TokenInput{}, NewInvalidParameters("pendleSwap", "must be a non-zero address when swapData is present")
	}

	var swapCopy *SwapData
	if swapData != nil {
		sd := *swapData
		sd.ExtCalldata = append([]byte(nil), swapData.ExtCalldata...)
		swapCopy = &sd
	}

	return TokenInput{
		TokenIn:     tokenIn,
		NetTokenIn:  new(big.Int).Set(netTokenIn),
		TokenMintSy: tokenMintSy,
		PendleSwap:  pendleSwap,
		SwapData:    swapCopy,
	}, nil
}

// TokenOutput mirrors TokenInput for the output leg.
type TokenOutput struct {
	TokenOut      common.Address
	MinTokenOut   *big.Int
	TokenRedeemSy common.Address
	PendleSwap    common.Address
	SwapData      *SwapData
}

// NewTokenOutput validates and builds a token output descriptor.
// MinTokenOut may be zero (no slippage floor).
func NewTokenOutput(tokenOut common.Address, minTokenOut *big.Int, tokenRedeemSy, pendleSwap common.Address, swapData *SwapData) (TokenOutput, error) {
	if minTokenOut == nil || minTokenOut.Sign() < 0 {
		return TokenOutput{}, NewInvalidParameters("minTokenOut", "must not be negative")
	}
	if swapData != nil && pendleSwap == (common.Address{}) {
		return TokenOutput{}, NewInvalidParameters("pendleSwap", "must be a non-zero address when swapData is present")
	}

	var swapCopy *SwapData
	if swapData != nil {
		sd := *swapData
		sd.ExtCalldata = append([]byte(nil), swapData.ExtCalldata...)
		swapCopy = &sd
	}

	return TokenOutput{
		TokenOut:      tokenOut,
		MinTokenOut:   new(big.Int).Set(minTokenOut),
		TokenRedeemSy: tokenRedeemSy,
		PendleSwap:    pendleSwap,
		SwapData:      swapCopy,
	}, nil
}

// CallDescriptor is an unsigned contract call produced by the call builder:
// target contract, canonical method name, full calldata and attached value.
// It is consumed exactly once by the executor and never mutated.
type CallDescriptor struct {
	Contract common.Address
	Method   string
	Data     []byte
	Value    *big.Int
}
