package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/adapters/chain"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/config"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/domain"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/service"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/executor"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/router"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

// TokenReader reads the token triple behind a market contract.
// *chain.Client satisfies it.
type TokenReader interface {
	ReadMarketTokens(ctx context.Context, market common.Address) (chain.MarketTokens, error)
}

// Deps are the wired components behind the tool surface. Builder and
// Executor drive the on-chain tools, Preparer and Markets the hosted
// API tools.
type Deps struct {
	Builder  *router.Builder
	Executor *executor.Executor
	Tokens   TokenReader
	Info     *service.InfoService
	Markets  domain.MarketDataService
	Preparer domain.TransactionPreparer
	Config   *config.Config

	// Wallet is the signing address, zero when the agent runs read-only.
	Wallet common.Address
}

type entry struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

// Server owns the tool registry. The MCP stdio server and the gateway
// bridge both dispatch through Invoke, so a tool behaves identically no
// matter which transport carried the call.
type Server struct {
	deps  Deps
	tools map[string]entry
	names []string
}

// New wires every tool to its handler.
func New(deps Deps) *Server {
	s := &Server{deps: deps, tools: make(map[string]entry)}

	// On-chain router tools
	s.add(ToolAddLiquidityDual, s.handleAddLiquidityDual)
	s.add(ToolAddLiquiditySingleSy, s.handleAddLiquiditySingleSy)
	s.add(ToolAddLiquiditySingleToken, s.handleAddLiquiditySingleToken)
	s.add(ToolRemoveLiquidityDual, s.handleRemoveLiquidityDual)
	s.add(ToolRemoveLiquiditySingleSy, s.handleRemoveLiquiditySingleSy)
	s.add(ToolRemoveLiquiditySingleToken, s.handleRemoveLiquiditySingleToken)
	s.add(ToolMintPyTokens, s.handleMintPyTokens)
	s.add(ToolRedeemPyTokens, s.handleRedeemPyTokens)
	s.add(ToolEstimateGas, s.handleEstimateGas)

	// On-chain reads and local helpers
	s.add(ToolGetWalletInfo, s.handleWalletInfo)
	s.add(ToolGetContractInfo, s.handleContractInfo)
	s.add(ToolGetMarketTokens, s.handleMarketTokens)
	s.add(ToolCreateApproximationParams, s.handleCreateApproximationParams)
	s.add(ToolGetSwapTypesNames, s.handleSwapTypesNames)
	s.add(ToolConvertToBaseUnits, s.handleConvertToBaseUnits)

	// Hosted SDK convert tools
	s.add(ToolConvertSwap, s.handleConvertSwap)
	s.add(ToolConvertAddLiquidity, s.handleConvertAddLiquidity)
	s.add(ToolConvertAddLiquidityZpi, s.handleConvertAddLiquidityZpi)
	s.add(ToolConvertRemoveLiquidity, s.handleConvertRemoveLiquidity)
	s.add(ToolConvertMintPtYt, s.handleConvertMintPtYt)
	s.add(ToolConvertRedeemPtYt, s.handleConvertRedeemPtYt)
	s.add(ToolConvertMintSy, s.handleConvertMintSy)
	s.add(ToolConvertRedeemSy, s.handleConvertRedeemSy)
	s.add(ToolConvertRolloverPt, s.handleConvertRolloverPt)
	s.add(ToolConvertAddLiquidityDual, s.handleConvertAddLiquidityDual)
	s.add(ToolConvertRemoveLiquidityDual, s.handleConvertRemoveLiquidityDual)
	s.add(ToolConvertTransferLiquidity, s.handleConvertTransferLiquidity)
	s.add(ToolConvertTransferLiquidityZpi, s.handleConvertTransferLiquidityZpi)

	// Analytics tools
	s.add(ToolGetMarketsBatch, s.handleMarketsBatch)
	s.add(ToolGetMarketDepth, s.handleMarketDepth)
	s.add(ToolGetTrendingMarkets, s.handleTrendingMarkets)
	s.add(ToolGetProtocolRevenue, s.handleProtocolRevenue)
	s.add(ToolGetSupportedChains, s.handleSupportedChains)

	return s
}

func (s *Server) add(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.tools[tool.Name] = entry{tool: tool, handler: handler}
	s.names = append(s.names, tool.Name)
}

// ToolNames returns every registered tool name in alphabetical order.
func (s *Server) ToolNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	sort.Strings(names)
	return names
}

// Register adds every tool to an MCP server.
func (s *Server) Register(mcpServer *server.MCPServer) {
	for _, name := range s.names {
		e := s.tools[name]
		mcpServer.AddTool(e.tool, e.handler)
	}
}

// Invoke dispatches a tool call by name. Unknown names come back as an
// error result listing the supported tools; the Go error is reserved
// for transport-level failures, which never happen here.
func (s *Server) Invoke(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	e, ok := s.tools[name]
	if !ok {
		return errorResult(types.NewInvalidParameters("tool",
			fmt.Sprintf("unknown tool %q, supported tools: %s", name, strings.Join(s.ToolNames(), ", ")))), nil
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return e.handler(ctx, req)
}

// errorResult renders a classified error as a structured error result:
// {"status":"error","error":{kind,message,field?,revert_reason?,tx_hash?}}.
// Unclassified errors surface as contract errors with their full text.
func errorResult(err error) *mcp.CallToolResult {
	var classified *types.Error
	if !errors.As(err, &classified) {
		classified = &types.Error{Kind: types.KindContract, Message: err.Error(), Cause: err}
	}
	detail := map[string]interface{}{
		"kind":    classified.Kind.String(),
		"message": classified.Message,
	}
	if classified.Field != "" {
		detail["field"] = classified.Field
	}
	if classified.RevertReason != "" {
		detail["revert_reason"] = classified.RevertReason
	}
	if classified.TxHash != "" {
		detail["tx_hash"] = classified.TxHash
	}
	data, _ := json.Marshal(map[string]interface{}{
		"status": "error",
		"error":  detail,
	})
	return mcp.NewToolResultError(string(data))
}

// jsonResult marshals a success payload into a text result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(types.NewContractError("failed to encode result", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// hostedResult wraps hosted API data in the success envelope the
// analytics and convert tools share.
func hostedResult(message string, data interface{}) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]interface{}{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}
