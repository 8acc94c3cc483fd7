package router

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

// Operation names exposed to callers. Each maps to exactly one router
// method.
const (
	OpAddLiquidityDualSyAndPt    = "add_liquidity_with_sy_and_pt"
	OpAddLiquiditySingleSy       = "add_liquidity_with_sy_only"
	OpAddLiquiditySingleToken    = "add_liquidity_with_token"
	OpRemoveLiquidityDualSyAndPt = "remove_liquidity_to_sy_and_pt"
	OpRemoveLiquiditySingleSy    = "remove_liquidity_to_sy_only"
	OpRemoveLiquiditySingleToken = "remove_liquidity_to_token"
	OpMintPyFromSy               = "mint_py_tokens"
	OpRedeemPyToSy               = "redeem_py_tokens"
)

var operationNames = []string{
	OpAddLiquidityDualSyAndPt,
	OpAddLiquiditySingleSy,
	OpAddLiquiditySingleToken,
	OpRemoveLiquidityDualSyAndPt,
	OpRemoveLiquiditySingleSy,
	OpRemoveLiquiditySingleToken,
	OpMintPyFromSy,
	OpRedeemPyToSy,
}

// SupportedOperations returns every operation name in alphabetical order.
func SupportedOperations() []string {
	names := make([]string, len(operationNames))
	copy(names, operationNames)
	sort.Strings(names)
	return names
}

// UnknownOperation builds the rejection for an operation name outside the
// supported set.
func UnknownOperation(name string) *types.Error {
	return types.NewInvalidParameters("operation",
		fmt.Sprintf("unknown operation %q, supported operations: %s", name, strings.Join(SupportedOperations(), ", ")))
}

// Operation is the closed set of router call requests. Adding an
// operation means adding a variant here and a case in Build.
type Operation interface {
	isOperation()
}

// AddLiquidityDualSyAndPt supplies SY and PT in proportion for LP tokens.
type AddLiquidityDualSyAndPt struct {
	Receiver     common.Address
	Market       common.Address
	NetSyDesired *big.Int
	NetPtDesired *big.Int
	MinLpOut     *big.Int
}

// AddLiquiditySingleSy supplies only SY; the router swaps part of it into
// PT using the approximation bounds.
type AddLiquiditySingleSy struct {
	Receiver common.Address
	Market   common.Address
	NetSyIn  *big.Int
	MinLpOut *big.Int
	Approx   types.ApproxParams
}

// AddLiquiditySingleToken supplies an arbitrary token, optionally routed
// through an external aggregator before minting SY.
type AddLiquiditySingleToken struct {
	Receiver common.Address
	Market   common.Address
	MinLpOut *big.Int
	Approx   types.ApproxParams
	Input    types.TokenInput
}

// RemoveLiquidityDualSyAndPt burns LP tokens for both SY and PT.
type RemoveLiquidityDualSyAndPt struct {
	Receiver      common.Address
	Market        common.Address
	NetLpToRemove *big.Int
	MinSyOut      *big.Int
	MinPtOut      *big.Int
}

// RemoveLiquiditySingleSy burns LP tokens for SY only.
type RemoveLiquiditySingleSy struct {
	Receiver      common.Address
	Market        common.Address
	NetLpToRemove *big.Int
	MinSyOut      *big.Int
}

// RemoveLiquiditySingleToken burns LP tokens and redeems into a single
// output token.
type RemoveLiquiditySingleToken struct {
	Receiver      common.Address
	Market        common.Address
	NetLpToRemove *big.Int
	Output        types.TokenOutput
}

// MintPyFromSy splits SY into principal and yield tokens.
type MintPyFromSy struct {
	Receiver common.Address
	Yt       common.Address
	NetSyIn  *big.Int
	MinPyOut *big.Int
}

// RedeemPyToSy recombines principal and yield tokens back into SY.
type RedeemPyToSy struct {
	Receiver common.Address
	Yt       common.Address
	NetPyIn  *big.Int
	MinSyOut *big.Int
}

func (AddLiquidityDualSyAndPt) isOperation()    {}
func (AddLiquiditySingleSy) isOperation()       {}
func (AddLiquiditySingleToken) isOperation()    {}
func (RemoveLiquidityDualSyAndPt) isOperation() {}
func (RemoveLiquiditySingleSy) isOperation()    {}
func (RemoveLiquiditySingleToken) isOperation() {}
func (MintPyFromSy) isOperation()               {}
func (RedeemPyToSy) isOperation()               {}

// Builder turns operations into calldata for one router deployment.
// It holds no connection and performs no I/O, so identical operations
// always produce byte-identical descriptors.
type Builder struct {
	routerABI abi.ABI
	router    common.Address
}

// NewBuilder parses the router ABI once and binds it to the given
// deployment address. A zero address is allowed; the executor rejects
// it before touching the network.
func NewBuilder(router common.Address) (*Builder, error) {
	parsed, err := ParseRouterABI()
	if err != nil {
		return nil, fmt.Errorf("failed to parse router ABI: %w", err)
	}
	return &Builder{routerABI: parsed, router: router}, nil
}

// RouterAddress returns the bound deployment address.
func (b *Builder) RouterAddress() common.Address {
	return b.router
}

// Build validates the operation and encodes it into a call descriptor.
// Validation failures and unsupported variants surface as
// invalid_parameters errors; no network traffic happens here.
func (b *Builder) Build(op Operation) (*types.CallDescriptor, error) {
	switch o := op.(type) {
	case AddLiquidityDualSyAndPt:
		return b.buildAddLiquidityDual(o)
	case AddLiquiditySingleSy:
		return b.buildAddLiquiditySingleSy(o)
	case AddLiquiditySingleToken:
		return b.buildAddLiquiditySingleToken(o)
	case RemoveLiquidityDualSyAndPt:
		return b.buildRemoveLiquidityDual(o)
	case RemoveLiquiditySingleSy:
		return b.buildRemoveLiquiditySingleSy(o)
	case RemoveLiquiditySingleToken:
		return b.buildRemoveLiquiditySingleToken(o)
	case MintPyFromSy:
		return b.buildMintPyFromSy(o)
	case RedeemPyToSy:
		return b.buildRedeemPyToSy(o)
	default:
		return nil, UnknownOperation(fmt.Sprintf("%T", op))
	}
}

func (b *Builder) buildAddLiquidityDual(o AddLiquidityDualSyAndPt) (*types.CallDescriptor, error) {
	if err := requireAddress("receiver", o.Receiver); err != nil {
		return nil, err
	}
	if err := requireAddress("market", o.Market); err != nil {
		return nil, err
	}
	if err := requirePositive("netSyDesired", o.NetSyDesired); err != nil {
		return nil, err
	}
	if err := requirePositive("netPtDesired", o.NetPtDesired); err != nil {
		return nil, err
	}
	if err := requireNonNegative("minLpOut", o.MinLpOut); err != nil {
		return nil, err
	}
	return b.pack(MethodAddLiquidityDualSyAndPt, nil,
		o.Receiver, o.Market, o.NetSyDesired, o.NetPtDesired, o.MinLpOut)
}

func (b *Builder) buildAddLiquiditySingleSy(o AddLiquiditySingleSy) (*types.CallDescriptor, error) {
	if err := requireAddress("receiver", o.Receiver); err != nil {
		return nil, err
	}
	if err := requireAddress("market", o.Market); err != nil {
		return nil, err
	}
	if err := requirePositive("netSyIn", o.NetSyIn); err != nil {
		return nil, err
	}
	if err := requireNonNegative("minLpOut", o.MinLpOut); err != nil {
		return nil, err
	}
	if err := requireApprox(o.Approx); err != nil {
		return nil, err
	}
	return b.pack(MethodAddLiquiditySingleSy, nil,
		o.Receiver, o.Market, o.NetSyIn, o.MinLpOut, approxToTuple(o.Approx))
}

func (b *Builder) buildAddLiquiditySingleToken(o AddLiquiditySingleToken) (*types.CallDescriptor, error) {
	if err := requireAddress("receiver", o.Receiver); err != nil {
		return nil, err
	}
	if err := requireAddress("market", o.Market); err != nil {
		return nil, err
	}
	if err := requireNonNegative("minLpOut", o.MinLpOut); err != nil {
		return nil, err
	}
	if err := requireApprox(o.Approx); err != nil {
		return nil, err
	}
	if o.Input.NetTokenIn == nil {
		return nil, types.NewInvalidParameters("input", "must be built with NewTokenInput")
	}

	// A zero tokenIn means the native token rides along as call value.
	var value *big.Int
	if o.Input.TokenIn == (common.Address{}) {
		value = o.Input.NetTokenIn
	}
	return b.pack(MethodAddLiquiditySingleToken, value,
		o.Receiver, o.Market, o.MinLpOut, approxToTuple(o.Approx), inputToTuple(o.Input))
}

func (b *Builder) buildRemoveLiquidityDual(o RemoveLiquidityDualSyAndPt) (*types.CallDescriptor, error) {
	if err := requireAddress("receiver", o.Receiver); err != nil {
		return nil, err
	}
	if err := requireAddress("market", o.Market); err != nil {
		return nil, err
	}
	if err := requirePositive("netLpToRemove", o.NetLpToRemove); err != nil {
		return nil, err
	}
	if err := requireNonNegative("minSyOut", o.MinSyOut); err != nil {
		return nil, err
	}
	if err := requireNonNegative("minPtOut", o.MinPtOut); err != nil {
		return nil, err
	}
	return b.pack(MethodRemoveLiquidityDualSyAndPt, nil,
		o.Receiver, o.Market, o.NetLpToRemove, o.MinSyOut, o.MinPtOut)
}

func (b *Builder) buildRemoveLiquiditySingleSy(o RemoveLiquiditySingleSy) (*types.CallDescriptor, error) {
	if err := requireAddress("receiver", o.Receiver); err != nil {
		return nil, err
	}
	if err := requireAddress("market", o.Market); err != nil {
		return nil, err
	}
	if err := requirePositive("netLpToRemove", o.NetLpToRemove); err != nil {
		return nil, err
	}
	if err := requireNonNegative("minSyOut", o.MinSyOut); err != nil {
		return nil, err
	}
	return b.pack(MethodRemoveLiquiditySingleSy, nil,
		o.Receiver, o.Market, o.NetLpToRemove, o.MinSyOut)
}

func (b *Builder) buildRemoveLiquiditySingleToken(o RemoveLiquiditySingleToken) (*types.CallDescriptor, error) {
	if err := requireAddress("receiver", o.Receiver); err != nil {
		return nil, err
	}
	if err := requireAddress("market", o.Market); err != nil {
		return nil, err
	}
	if err := requirePositive("netLpToRemove", o.NetLpToRemove); err != nil {
		return nil, err
	}
	if o.Output.MinTokenOut == nil {
		return nil, types.NewInvalidParameters("output", "must be built with NewTokenOutput")
	}
	return b.pack(MethodRemoveLiquiditySingleToken, nil,
		o.Receiver, o.Market, o.NetLpToRemove, outputToTuple(o.Output))
}

func (b *Builder) buildMintPyFromSy(o MintPyFromSy) (*types.CallDescriptor, error) {
	if err := requireAddress("receiver", o.Receiver); err != nil {
		return nil, err
	}
	if err := requireAddress("yt", o.Yt); err != nil {
		return nil, err
	}
	if err := requirePositive("netSyIn", o.NetSyIn); err != nil {
		return nil, err
	}
	if err := requireNonNegative("minPyOut", o.MinPyOut); err != nil {
		return nil, err
	}
	return b.pack(MethodMintPyFromSy, nil, o.Receiver, o.Yt, o.NetSyIn, o.MinPyOut)
}

func (b *Builder) buildRedeemPyToSy(o RedeemPyToSy) (*types.CallDescriptor, error) {
	if err := requireAddress("receiver", o.Receiver); err != nil {
		return nil, err
	}
	if err := requireAddress("yt", o.Yt); err != nil {
		return nil, err
	}
	if err := requirePositive("netPyIn", o.NetPyIn); err != nil {
		return nil, err
	}
	if err := requireNonNegative("minSyOut", o.MinSyOut); err != nil {
		return nil, err
	}
	return b.pack(MethodRedeemPyToSy, nil, o.Receiver, o.Yt, o.NetPyIn, o.MinSyOut)
}

func (b *Builder) pack(method string, value *big.Int, args ...interface{}) (*types.CallDescriptor, error) {
	data, err := b.routerABI.Pack(method, args...)
	if err != nil {
		return nil, types.NewContractError("failed to encode "+method+" calldata", err)
	}
	if value == nil {
		value = new(big.Int)
	}
	return &types.CallDescriptor{
		Contract: b.router,
		Method:   method,
		Data:     data,
		Value:    value,
	}, nil
}

func requireAddress(field string, addr common.Address) error {
	if addr == (common.Address{}) {
		return types.NewInvalidParameters(field, "must not be the zero address")
	}
	return nil
}

func requirePositive(field string, n *big.Int) error {
	if n == nil || n.Sign() <= 0 {
		return types.NewInvalidParameters(field, "must be greater than zero")
	}
	return nil
}

func requireNonNegative(field string, n *big.Int) error {
	if n == nil || n.Sign() < 0 {
		return types.NewInvalidParameters(field, "must not be negative")
	}
	return nil
}

func requireApprox(p types.ApproxParams) error {
	if p.GuessMin == nil || p.GuessMax == nil || p.GuessOffchain == nil || p.MaxIteration == nil || p.Eps == nil {
		return types.NewInvalidParameters("approxParams", "must be built with NewApproxParams or DefaultApproxParams")
	}
	return nil
}
