package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/domain"
)

func (s *Server) handleConvertSwap(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.SwapRequest{
		ChainID:  args.chainID(),
		Market:   args.hexAddress("marketAddress"),
		Receiver: args.hexAddress("receiver"),
		TokenIn:  args.hexAddress("tokenIn"),
		TokenOut: args.hexAddress("tokenOut"),
		AmountIn: args.amountString("amountIn"),
		Slippage: args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.Swap(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("🔄 Swap Transaction Ready", prepared)
}

func (s *Server) handleConvertAddLiquidity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.AddLiquidityRequest{
		ChainID:  args.chainID(),
		Market:   args.hexAddress("marketAddress"),
		Receiver: args.hexAddress("receiver"),
		TokenIn:  args.hexAddress("tokenIn"),
		AmountIn: args.amountString("amountIn"),
		Slippage: args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.AddLiquidity(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("💧 Add Liquidity Transaction Ready", prepared)
}

func (s *Server) handleConvertAddLiquidityZpi(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.AddLiquidityRequest{
		ChainID:         args.chainID(),
		Market:          args.hexAddress("marketAddress"),
		Receiver:        args.hexAddress("receiver"),
		TokenIn:         args.hexAddress("tokenIn"),
		AmountIn:        args.amountString("amountIn"),
		Slippage:        args.slippage(),
		ZeroPriceImpact: true,
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.AddLiquidity(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("💧 Add Liquidity (ZPI) Transaction Ready", prepared)
}

func (s *Server) handleConvertRemoveLiquidity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.RemoveLiquidityRequest{
		ChainID:  args.chainID(),
		Market:   args.hexAddress("marketAddress"),
		Receiver: args.hexAddress("receiver"),
		AmountLp: args.amountString("amountLp"),
		TokenOut: args.hexAddress("tokenOut"),
		Slippage: args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.RemoveLiquidity(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("💸 Remove Liquidity Transaction Ready", prepared)
}

func (s *Server) handleConvertMintPtYt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.MintPtYtRequest{
		ChainID:  args.chainID(),
		Market:   args.hexAddress("marketAddress"),
		Receiver: args.hexAddress("receiver"),
		TokenIn:  args.hexAddress("tokenIn"),
		AmountIn: args.amountString("amountIn"),
		Slippage: args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.MintPtYt(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("🪙 Mint PT & YT Transaction Ready", prepared)
}

func (s *Server) handleConvertRedeemPtYt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.RedeemPtYtRequest{
		ChainID:  args.chainID(),
		Market:   args.hexAddress("marketAddress"),
		Receiver: args.hexAddress("receiver"),
		AmountPt: args.amountString("amountPt"),
		TokenOut: args.hexAddress("tokenOut"),
		Slippage: args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.RedeemPtYt(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("💰 Redeem PT & YT Transaction Ready", prepared)
}

func (s *Server) handleConvertMintSy(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.MintSyRequest{
		ChainID:  args.chainID(),
		Sy:       args.hexAddress("syAddress"),
		Receiver: args.hexAddress("receiver"),
		TokenIn:  args.hexAddress("tokenIn"),
		AmountIn: args.amountString("amountIn"),
		Slippage: args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.MintSy(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("🏭 Mint SY Transaction Ready", prepared)
}

func (s *Server) handleConvertRedeemSy(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.RedeemSyRequest{
		ChainID:  args.chainID(),
		Sy:       args.hexAddress("syAddress"),
		Receiver: args.hexAddress("receiver"),
		AmountSy: args.amountString("amountSy"),
		TokenOut: args.hexAddress("tokenOut"),
		Slippage: args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.RedeemSy(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("🔓 Redeem SY Transaction Ready", prepared)
}

func (s *Server) handleConvertRolloverPt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.RolloverPtRequest{
		ChainID:    args.chainID(),
		FromMarket: args.hexAddress("fromMarket"),
		ToMarket:   args.hexAddress("toMarket"),
		Receiver:   args.hexAddress("receiver"),
		AmountPt:   args.amountString("amountPt"),
		Slippage:   args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.RolloverPt(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("🔄 Rollover PT Transaction Ready", prepared)
}

func (s *Server) handleConvertAddLiquidityDual(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.AddLiquidityDualRequest{
		ChainID:     args.chainID(),
		Market:      args.hexAddress("marketAddress"),
		Receiver:    args.hexAddress("receiver"),
		AmountToken: args.amountString("amountToken"),
		AmountPt:    args.amountString("amountPt"),
		Slippage:    args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.AddLiquidityDual(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("💎 Add Dual Liquidity Transaction Ready", prepared)
}

func (s *Server) handleConvertRemoveLiquidityDual(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.RemoveLiquidityDualRequest{
		ChainID:  args.chainID(),
		Market:   args.hexAddress("marketAddress"),
		Receiver: args.hexAddress("receiver"),
		AmountLp: args.amountString("amountLp"),
		Slippage: args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.RemoveLiquidityDual(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("💎 Remove Dual Liquidity Transaction Ready", prepared)
}

func (s *Server) handleConvertTransferLiquidity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.TransferLiquidityRequest{
		ChainID:    args.chainID(),
		FromMarket: args.hexAddress("fromMarket"),
		ToMarket:   args.hexAddress("toMarket"),
		Receiver:   args.hexAddress("receiver"),
		AmountLp:   args.amountString("amountLp"),
		Slippage:   args.slippage(),
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.TransferLiquidity(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("🔀 Transfer Liquidity Transaction Ready", prepared)
}

func (s *Server) handleConvertTransferLiquidityZpi(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	r := domain.TransferLiquidityRequest{
		ChainID:         args.chainID(),
		FromMarket:      args.hexAddress("fromMarket"),
		ToMarket:        args.hexAddress("toMarket"),
		Receiver:        args.hexAddress("receiver"),
		AmountLp:        args.amountString("amountLp"),
		Slippage:        args.slippage(),
		ZeroPriceImpact: true,
	}
	if args.err != nil {
		return errorResult(args.err), nil
	}
	prepared, err := s.deps.Preparer.TransferLiquidity(ctx, r)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("🔀 Transfer Liquidity (ZPI) Transaction Ready", prepared)
}
