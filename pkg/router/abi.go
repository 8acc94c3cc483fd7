package router

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Router ABI methods
const (
	MethodAddLiquidityDualSyAndPt    = "addLiquidityDualSyAndPt"
	MethodAddLiquiditySingleSy       = "addLiquiditySingleSy"
	MethodAddLiquiditySingleToken    = "addLiquiditySingleToken"
	MethodRemoveLiquidityDualSyAndPt = "removeLiquidityDualSyAndPt"
	MethodRemoveLiquiditySingleSy    = "removeLiquiditySingleSy"
	MethodRemoveLiquiditySingleToken = "removeLiquiditySingleToken"
	MethodMintPyFromSy               = "mintPyFromSy"
	MethodRedeemPyToSy               = "redeemPyToSy"
)

// Market ABI methods
const (
	MethodReadTokens = "readTokens"
)

// MethodSignatures pins the canonical signature of every router method.
// Selectors are derived from these strings; if the deployed contract
// changes a signature, calldata stops matching and calls fail loudly
// instead of silently targeting the wrong function.
var MethodSignatures = map[string]string{
	MethodAddLiquidityDualSyAndPt:    "addLiquidityDualSyAndPt(address,address,uint256,uint256,uint256)",
	MethodAddLiquiditySingleSy:       "addLiquiditySingleSy(address,address,uint256,uint256,(uint256,uint256,uint256,uint256,uint256))",
	MethodAddLiquiditySingleToken:    "addLiquiditySingleToken(address,address,uint256,(uint256,uint256,uint256,uint256,uint256),(address,uint256,address,address,(uint8,address,bytes,bool)))",
	MethodRemoveLiquidityDualSyAndPt: "removeLiquidityDualSyAndPt(address,address,uint256,uint256,uint256)",
	MethodRemoveLiquiditySingleSy:    "removeLiquiditySingleSy(address,address,uint256,uint256)",
	MethodRemoveLiquiditySingleToken: "removeLiquiditySingleToken(address,address,uint256,(address,uint256,address,address,(uint8,address,bytes,bool)))",
	MethodMintPyFromSy:               "mintPyFromSy(address,address,uint256,uint256)",
	MethodRedeemPyToSy:               "redeemPyToSy(address,address,uint256,uint256)",
}

// approxParamsComponents is the ApproxParams tuple:
// (uint256 guessMin, uint256 guessMax, uint256 guessOffchain, uint256 maxIteration, uint256 eps)
const approxParamsComponents = `[
	{"name": "guessMin", "type": "uint256"},
	{"name": "guessMax", "type": "uint256"},
	{"name": "guessOffchain", "type": "uint256"},
	{"name": "maxIteration", "type": "uint256"},
	{"name": "eps", "type": "uint256"}
]`

// swapDataComponents is the SwapData tuple:
// (uint8 swapType, address extRouter, bytes extCalldata, bool needScale)
const swapDataComponents = `[
	{"name": "swapType", "type": "uint8"},
	{"name": "extRouter", "type": "address"},
	{"name": "extCalldata", "type": "bytes"},
	{"name": "needScale", "type": "bool"}
]`

// ParseRouterABI returns the subset of the Pendle Router V2 ABI this
// agent calls.
func ParseRouterABI() (abi.ABI, error) {
	abiJSON := `[
		{
			"name": "addLiquidityDualSyAndPt",
			"type": "function",
			"inputs": [
				{"name": "receiver", "type": "address"},
				{"name": "market", "type": "address"},
				{"name": "netSyDesired", "type": "uint256"},
				{"name": "netPtDesired", "type": "uint256"},
				{"name": "minLpOut", "type": "uint256"}
			],
			"outputs": [
				{"name": "netLpOut", "type": "uint256"},
				{"name": "netSyUsed", "type": "uint256"},
				{"name": "netPtUsed", "type": "uint256"}
			],
			"stateMutability": "nonpayable"
		},
		{
			"name": "addLiquiditySingleSy",
			"type": "function",
			"inputs": [
				{"name": "receiver", "type": "address"},
				{"name": "market", "type": "address"},
				{"name": "netSyIn", "type": "uint256"},
				{"name": "minLpOut", "type": "uint256"},
				{"name": "guessPtReceivedFromSy", "type": "tuple", "components": ` + approxParamsComponents + `}
			],
			"outputs": [
				{"name": "netLpOut", "type": "uint256"},
				{"name": "netSyFee", "type": "uint256"}
			],
			"stateMutability": "nonpayable"
		},
		{
			"name": "addLiquiditySingleToken",
			"type": "function",
			"inputs": [
				{"name": "receiver", "type": "address"},
				{"name": "market", "type": "address"},
				{"name": "minLpOut", "type": "uint256"},
				{"name": "guessPtReceivedFromSy", "type": "tuple", "components": ` + approxParamsComponents + `},
				{"name": "input", "type": "tuple", "components": [
					{"name": "tokenIn", "type": "address"},
					{"name": "netTokenIn", "type": "uint256"},
					{"name": "tokenMintSy", "type": "address"},
					{"name": "pendleSwap", "type": "address"},
					{"name": "swapData", "type": "tuple", "components": ` + swapDataComponents + `}
				]}
			],
			"outputs": [
				{"name": "netLpOut", "type": "uint256"},
				{"name": "netSyFee", "type": "uint256"},
				{"name": "netSyInterm", "type": "uint256"}
			],
			"stateMutability": "payable"
		},
		{
			"name": "removeLiquidityDualSyAndPt",
			"type": "function",
			"inputs": [
				{"name": "receiver", "type": "address"},
				{"name": "market", "type": "address"},
				{"name": "netLpToRemove", "type": "uint256"},
				{"name": "minSyOut", "type": "uint256"},
				{"name": "minPtOut", "type": "uint256"}
			],
			"outputs": [
				{"name": "netSyOut", "type": "uint256"},
				{"name": "netPtOut", "type": "uint256"}
			],
			"stateMutability": "nonpayable"
		},
		{
			"name": "removeLiquiditySingleSy",
			"type": "function",
			"inputs": [
				{"name": "receiver", "type": "address"},
				{"name": "market", "type": "address"},
				{"name": "netLpToRemove", "type": "uint256"},
				{"name": "minSyOut", "type": "uint256"}
			],
			"outputs": [
				{"name": "netSyOut", "type": "uint256"},
				{"name": "netSyFee", "type": "uint256"}
			],
			"stateMutability": "nonpayable"
		},
		{
			"name": "removeLiquiditySingleToken",
			"type": "function",
			"inputs": [
				{"name": "receiver", "type": "address"},
				{"name": "market", "type": "address"},
				{"name": "netLpToRemove", "type": "uint256"},
				{"name": "output", "type": "tuple", "components": [
					{"name": "tokenOut", "type": "address"},
					{"name": "minTokenOut", "type": "uint256"},
					{"name": "tokenRedeemSy", "type": "address"},
					{"name": "pendleSwap", "type": "address"},
					{"name": "swapData", "type": "tuple", "components": ` + swapDataComponents + `}
				]}
			],
			"outputs": [
				{"name": "netTokenOut", "type": "uint256"},
				{"name": "netSyFee", "type": "uint256"},
				{"name": "netSyInterm", "type": "uint256"}
			],
			"stateMutability": "nonpayable"
		},
		{
			"name": "mintPyFromSy",
			"type": "function",
			"inputs": [
				{"name": "receiver", "type": "address"},
				{"name": "YT", "type": "address"},
				{"name": "netSyIn", "type": "uint256"},
				{"name": "minPyOut", "type": "uint256"}
			],
			"outputs": [
				{"name": "netPyOut", "type": "uint256"}
			],
			"stateMutability": "nonpayable"
		},
		{
			"name": "redeemPyToSy",
			"type": "function",
			"inputs": [
				{"name": "receiver", "type": "address"},
				{"name": "YT", "type": "address"},
				{"name": "netPyIn", "type": "uint256"},
				{"name": "minSyOut", "type": "uint256"}
			],
			"outputs": [
				{"name": "netSyOut", "type": "uint256"}
			],
			"stateMutability": "nonpayable"
		}
	]`

	return abi.JSON(strings.NewReader(abiJSON))
}

// ParseMarketABI returns the subset of the Pendle market ABI this agent
// reads. readTokens() view returns (address _SY, address _PT, address _YT)
func ParseMarketABI() (abi.ABI, error) {
	const abiJSON = `[
		{
			"name": "readTokens",
			"type": "function",
			"inputs": [],
			"outputs": [
				{"name": "_SY", "type": "address"},
				{"name": "_PT", "type": "address"},
				{"name": "_YT", "type": "address"}
			],
			"stateMutability": "view"
		}
	]`

	return abi.JSON(strings.NewReader(abiJSON))
}
