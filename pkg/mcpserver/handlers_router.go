package mcpserver

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/executor"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/router"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

// execute builds the calldata and drives it through the full
// transaction lifecycle.
func (s *Server) execute(ctx context.Context, op router.Operation) (*mcp.CallToolResult, error) {
	desc, err := s.deps.Builder.Build(op)
	if err != nil {
		return errorResult(err), nil
	}
	res, err := s.deps.Executor.Execute(ctx, desc)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(s.txReport(desc, res))
}

// txReport is the success payload for a confirmed transaction.
func (s *Server) txReport(desc *types.CallDescriptor, res *executor.Result) map[string]interface{} {
	report := map[string]interface{}{
		"status":       "success",
		"method":       desc.Method,
		"tx_hash":      res.TxHash.Hex(),
		"gas_used":     res.GasUsed,
		"block_number": res.BlockNumber,
		"trace":        res.Trace,
	}
	if res.EffectiveGasPrice != nil {
		report["effective_gas_price"] = res.EffectiveGasPrice.String()
	}
	if explorer := s.deps.Config.BlockExplorerURL; explorer != "" {
		report["explorer_url"] = strings.TrimRight(explorer, "/") + "/tx/" + res.TxHash.Hex()
	}
	return report
}

func (s *Server) handleAddLiquidityDual(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	op := router.AddLiquidityDualSyAndPt{
		Receiver:     args.address("receiver"),
		Market:       args.address("market"),
		NetSyDesired: args.amount("net_sy_desired"),
		NetPtDesired: args.amount("net_pt_desired"),
		MinLpOut:     args.amount("min_lp_out"),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	return s.execute(ctx, op)
}

func (s *Server) handleAddLiquiditySingleSy(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	op := router.AddLiquiditySingleSy{
		Receiver: args.address("receiver"),
		Market:   args.address("market"),
		NetSyIn:  args.amount("net_sy_in"),
		MinLpOut: args.amount("min_lp_out"),
		Approx:   args.approx(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	return s.execute(ctx, op)
}

func (s *Server) handleAddLiquiditySingleToken(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	receiver := args.address("receiver")
	market := args.address("market")
	minLpOut := args.amount("min_lp_out")
	tokenIn := args.address("token_in")
	netTokenIn := args.amount("net_token_in")
	tokenMintSy := args.address("token_mint_sy")
	swapData := args.swapData()
	approx := args.approx()
	if args.err != nil {
		return errorResult(args.err), nil
	}

	var pendleSwap common.Address
	if raw := strings.TrimSpace(req.GetString("pendle_swap", "")); raw != "" {
		addr, err := router.ParseAddress("pendle_swap", raw)
		if err != nil {
			return errorResult(err), nil
		}
		pendleSwap = addr
	}

	input, err := types.NewTokenInput(tokenIn, netTokenIn, tokenMintSy, pendleSwap, swapData)
	if err != nil {
		return errorResult(err), nil
	}
	return s.execute(ctx, router.AddLiquiditySingleToken{
		Receiver: receiver,
		Market:   market,
		MinLpOut: minLpOut,
		Approx:   approx,
		Input:    input,
	})
}

func (s *Server) handleRemoveLiquidityDual(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	op := router.RemoveLiquidityDualSyAndPt{
		Receiver:      args.address("receiver"),
		Market:        args.address("market"),
		NetLpToRemove: args.amount("net_lp_to_remove"),
		MinSyOut:      args.amount("min_sy_out"),
		MinPtOut:      args.amount("min_pt_out"),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	return s.execute(ctx, op)
}

func (s *Server) handleRemoveLiquiditySingleSy(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	op := router.RemoveLiquiditySingleSy{
		Receiver:      args.address("receiver"),
		Market:        args.address("market"),
		NetLpToRemove: args.amount("net_lp_to_remove"),
		MinSyOut:      args.amount("min_sy_out"),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	return s.execute(ctx, op)
}

func (s *Server) handleRemoveLiquiditySingleToken(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	receiver := args.address("receiver")
	market := args.address("market")
	netLpToRemove := args.amount("net_lp_to_remove")
	tokenOut := args.address("token_out")
	minTokenOut := args.amount("min_token_out")
	tokenRedeemSy := args.address("token_redeem_sy")
	swapData := args.swapData()
	if args.err != nil {
		return errorResult(args.err), nil
	}

	var pendleSwap common.Address
	if raw := strings.TrimSpace(req.GetString("pendle_swap", "")); raw != "" {
		addr, err := router.ParseAddress("pendle_swap", raw)
		if err != nil {
			return errorResult(err), nil
		}
		pendleSwap = addr
	}

	output, err := types.NewTokenOutput(tokenOut, minTokenOut, tokenRedeemSy, pendleSwap, swapData)
	if err != nil {
		return errorResult(err), nil
	}
	return s.execute(ctx, router.RemoveLiquiditySingleToken{
		Receiver:      receiver,
		Market:        market,
		NetLpToRemove: netLpToRemove,
		Output:        output,
	})
}

func (s *Server) handleMintPyTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	op := router.MintPyFromSy{
		Receiver: args.address("receiver"),
		Yt:       args.address("yt_address"),
		NetSyIn:  args.amount("net_sy_in"),
		MinPyOut: args.optionalAmount("min_py_out", "0"),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	return s.execute(ctx, op)
}

func (s *Server) handleRedeemPyTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	op := router.RedeemPyToSy{
		Receiver: args.address("receiver"),
		Yt:       args.address("yt_address"),
		NetPyIn:  args.amount("net_py_in"),
		MinSyOut: args.optionalAmount("min_sy_out", "0"),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	return s.execute(ctx, op)
}

// handleEstimateGas estimates a dual liquidity addition from the agent
// wallet without signing or submitting anything.
func (s *Server) handleEstimateGas(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.deps.Wallet == (common.Address{}) {
		return errorResult(types.NewInvalidParameters("wallet",
			"no signing key configured, cannot estimate from the agent wallet")), nil
	}
	args := &argReader{req: req}
	op := router.AddLiquidityDualSyAndPt{
		Receiver:     s.deps.Wallet,
		Market:       args.address("market"),
		NetSyDesired: args.amount("net_sy_desired"),
		NetPtDesired: args.amount("net_pt_desired"),
		MinLpOut:     big.NewInt(0),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	desc, err := s.deps.Builder.Build(op)
	if err != nil {
		return errorResult(err), nil
	}
	estimate, buffered, err := s.deps.Executor.EstimateGas(ctx, desc)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(map[string]interface{}{
		"estimated_gas":             estimate,
		"estimated_gas_with_buffer": buffered,
	})
}
