package mcpserver

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/config"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/router"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

func (s *Server) handleWalletInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.deps.Info.WalletInfo(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(info)
}

func (s *Server) handleContractInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.deps.Info.ContractInfo(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(info)
}

func (s *Server) handleMarketTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	market := args.address("market")
	if args.err != nil {
		return errorResult(args.err), nil
	}
	tokens, err := s.deps.Tokens.ReadMarketTokens(ctx, market)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(map[string]interface{}{
		"market": market.Hex(),
		"sy":     tokens.Sy.Hex(),
		"pt":     tokens.Pt.Hex(),
		"yt":     tokens.Yt.Hex(),
	})
}

// handleCreateApproximationParams validates the search bounds and echoes
// them back. Values stay strings so nothing is rounded on the way out.
func (s *Server) handleCreateApproximationParams(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	params := args.approx()
	if args.err != nil {
		return errorResult(args.err), nil
	}
	return jsonResult(map[string]interface{}{
		"guess_min":      params.GuessMin.String(),
		"guess_max":      params.GuessMax.String(),
		"guess_offchain": params.GuessOffchain.String(),
		"max_iteration":  params.MaxIteration.String(),
		"eps":            params.Eps.String(),
	})
}

func (s *Server) handleSwapTypesNames(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(types.SwapTypeNames())
}

// handleConvertToBaseUnits scales a decimal amount by the token's
// decimals. An explicit decimals argument wins over the per-token
// configuration; unknown tokens fall back to 18.
func (s *Server) handleConvertToBaseUnits(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	amount, err := req.RequireString("amount")
	if err != nil {
		return errorResult(types.NewInvalidParameters("amount", "is required")), nil
	}
	amount = strings.TrimSpace(amount)

	decimals := req.GetInt("decimals", -1)
	if decimals < 0 {
		decimals = config.DefaultTokenDecimals
		if raw := strings.TrimSpace(req.GetString("token", "")); raw != "" {
			token, err := router.ParseAddress("token", raw)
			if err != nil {
				return errorResult(err), nil
			}
			decimals = int(s.deps.Config.DecimalsFor(token))
		}
	}
	if decimals > 77 {
		return errorResult(types.NewInvalidParameters("decimals", "must not exceed 77")), nil
	}

	scaled, err := router.ScaleAmount(amount, uint8(decimals))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(map[string]interface{}{
		"amount":     amount,
		"decimals":   decimals,
		"base_units": scaled.String(),
	})
}
