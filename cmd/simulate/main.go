// Command simulate encodes every router operation offline and prints
// the resulting calldata. It never connects to a node, so it can run
// against any configuration to eyeball what the agent would submit.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/config"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/router"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

// The mainnet router stands in when PENDLE_ROUTER_ADDRESS is unset;
// calldata is identical for every deployment.
var fallbackRouter = common.HexToAddress("0x888888888889758F76e7103c6CbF23ABbF58F946")

func main() {
	// 1. Resolve the same configuration as the agent binary
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	routerAddr := cfg.RouterAddress
	if !cfg.RouterConfigured {
		routerAddr = fallbackRouter
	}
	builder, err := router.NewBuilder(routerAddr)
	if err != nil {
		log.Fatalf("Failed to initialize builder: %v", err)
	}

	// 2. Prepare one canned instance of each operation
	receiver := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	market := common.HexToAddress("0x27b1dAcd74688aF24a64BD3C9C1B143118740784")
	yt := common.HexToAddress("0x1c48cD1179aa0c503A48fcD5852559942492e31b")
	usdc := common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831")

	syAmount := mustScale("100", 18)
	ptAmount := mustScale("95", 18)
	lpAmount := mustScale("10", 18)
	minOut := mustScale("9.5", 18)

	input, err := types.NewTokenInput(usdc, mustScale("250", 6), usdc, common.Address{}, nil)
	if err != nil {
		log.Fatalf("Failed to build token input: %v", err)
	}
	output, err := types.NewTokenOutput(usdc, mustScale("240", 6), usdc, common.Address{}, nil)
	if err != nil {
		log.Fatalf("Failed to build token output: %v", err)
	}

	ops := []router.Operation{
		router.AddLiquidityDualSyAndPt{Receiver: receiver, Market: market,
			NetSyDesired: syAmount, NetPtDesired: ptAmount, MinLpOut: minOut},
		router.AddLiquiditySingleSy{Receiver: receiver, Market: market,
			NetSyIn: syAmount, MinLpOut: minOut, Approx: types.DefaultApproxParams()},
		router.AddLiquiditySingleToken{Receiver: receiver, Market: market,
			MinLpOut: minOut, Approx: types.DefaultApproxParams(), Input: input},
		router.RemoveLiquidityDualSyAndPt{Receiver: receiver, Market: market,
			NetLpToRemove: lpAmount, MinSyOut: minOut, MinPtOut: minOut},
		router.RemoveLiquiditySingleSy{Receiver: receiver, Market: market,
			NetLpToRemove: lpAmount, MinSyOut: minOut},
		router.RemoveLiquiditySingleToken{Receiver: receiver, Market: market,
			NetLpToRemove: lpAmount, Output: output},
		router.MintPyFromSy{Receiver: receiver, Yt: yt, NetSyIn: syAmount, MinPyOut: minOut},
		router.RedeemPyToSy{Receiver: receiver, Yt: yt, NetPyIn: ptAmount, MinSyOut: minOut},
	}

	// 3. Encode each one offline
	log.Printf("Encoding %d operations against router %s...", len(ops), routerAddr.Hex())
	rows := make([]map[string]string, 0, len(ops))
	for _, op := range ops {
		desc, err := builder.Build(op)
		if err != nil {
			log.Fatalf("Build failed: %v", err)
		}
		rows = append(rows, map[string]string{
			"method":   desc.Method,
			"to":       desc.Contract.Hex(),
			"value":    desc.Value.String(),
			"calldata": hexutil.Encode(desc.Data),
		})
	}

	// 4. Print the descriptors
	out, _ := json.MarshalIndent(rows, "", "  ")
	fmt.Println(string(out))
}

func mustScale(amount string, decimals uint8) *big.Int {
	scaled, err := router.ScaleAmount(amount, decimals)
	if err != nil {
		log.Fatalf("Invalid amount %q: %v", amount, err)
	}
	return scaled
}
