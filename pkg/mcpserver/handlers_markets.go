package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/domain"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

const defaultBatchLimit = 20

// handleMarketsBatch fans one markets query out to several chains. A
// failed chain drops out of the batch instead of failing the call.
func (s *Server) handleMarketsBatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chainIDs, err := intList(req, "chainIds")
	if err != nil {
		return errorResult(err), nil
	}
	limit := req.GetInt("limit", defaultBatchLimit)
	if limit <= 0 {
		limit = defaultBatchLimit
	}

	rows := make([]map[string]interface{}, 0, len(chainIDs)*limit)
	for _, chainID := range chainIDs {
		markets, err := s.deps.Markets.Markets(ctx, chainID, limit)
		if err != nil {
			continue
		}
		for _, m := range markets {
			rows = append(rows, marketRow(m))
		}
	}
	return hostedResult(
		fmt.Sprintf("📊 Multi-Chain Markets (%d chains)", len(chainIDs)),
		map[string]interface{}{
			"markets":     rows,
			"totalChains": len(chainIDs),
		})
}

func (s *Server) handleMarketDepth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	chainID := args.chainID()
	market := args.hexAddress("marketAddress")
	if args.err != nil {
		return errorResult(args.err), nil
	}
	doc, err := s.deps.Markets.MarketData(ctx, chainID, market)
	if err != nil {
		return errorResult(err), nil
	}
	return hostedResult("📈 Market Depth Analysis", depthView(market, doc))
}

func (s *Server) handleTrendingMarkets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := &argReader{req: req}
	chainID := args.chainID()
	if args.err != nil {
		return errorResult(args.err), nil
	}
	period := req.GetString("period", "24h")

	markets, err := s.deps.Markets.TrendingMarkets(ctx, chainID, period)
	if err != nil {
		return errorResult(err), nil
	}
	rows := make([]map[string]interface{}, 0, len(markets))
	for _, m := range markets {
		rows = append(rows, marketRow(m))
	}
	return hostedResult("🔥 Trending Markets", map[string]interface{}{
		"period":   period,
		"trending": rows,
	})
}

func (s *Server) handleProtocolRevenue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chainID := req.GetInt("chainId", 0)
	if chainID < 0 {
		return errorResult(types.NewInvalidParameters("chainId", "must be a positive chain id")), nil
	}
	report, err := s.deps.Markets.ProtocolRevenue(ctx, int64(chainID))
	if err != nil {
		return errorResult(err), nil
	}
	byChain := report.ByChain
	if byChain == nil {
		byChain = map[string]float64{}
	}
	return hostedResult("💵 Protocol Revenue", map[string]interface{}{
		"totalRevenue":   formatMillions(report.Total),
		"revenue24h":     formatThousands(report.Last24h),
		"revenue7d":      formatMillions(report.Last7d),
		"revenueByChain": byChain,
	})
}

func (s *Server) handleSupportedChains(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chains := make(map[string]int64)
	for _, c := range s.deps.Markets.SupportedChains() {
		chains[strings.ToLower(c.Name)] = c.ChainID
	}
	return jsonResult(chains)
}

// marketRow is the display row for one market: APYs as percentages,
// liquidity compressed to millions.
func marketRow(m domain.Market) map[string]interface{} {
	return map[string]interface{}{
		"address":    m.Address,
		"name":       m.Name,
		"chain":      m.Chain,
		"chainId":    m.ChainID,
		"impliedAPY": formatPercent(m.ImpliedAPY),
		"lpAPY":      formatPercent(m.AggregatedAPY),
		"liquidity":  formatMillions(m.LiquidityUSD),
	}
}

// depthView reshapes a raw market document into the depth summary.
// Missing sections surface as nulls rather than errors; the document
// layout varies by market age.
func depthView(market string, doc map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"marketAddress":   market,
		"totalLiquidity":  formatMillions(docFloat(doc, "liquidity")),
		"ptReserves":      docSection(doc, "pt")["totalSupply"],
		"syReserves":      docSection(doc, "sy")["totalSupply"],
		"utilizationRate": formatPercent(docFloat(doc, "utilizationRate")),
		"depth": map[string]interface{}{
			"buy1Percent":  docSection(doc, "depth")["buy1pct"],
			"sell1Percent": docSection(doc, "depth")["sell1pct"],
		},
	}
}

func docFloat(doc map[string]interface{}, key string) float64 {
	if v, ok := doc[key].(float64); ok {
		return v
	}
	return 0
}

func docSection(doc map[string]interface{}, key string) map[string]interface{} {
	if v, ok := doc[key].(map[string]interface{}); ok {
		return v
	}
	return map[string]interface{}{}
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func formatMillions(v float64) string {
	return fmt.Sprintf("$%.2fM", v/1e6)
}

func formatThousands(v float64) string {
	return fmt.Sprintf("$%.2fK", v/1e3)
}
