package pendleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/domain"
)

const (
	defaultMarketLimit = 20
	trendingLimit      = 10
)

// supportedChains lists the chains the hosted API serves, in display order.
var supportedChains = []domain.ChainInfo{
	{Name: "Ethereum", ChainID: 1},
	{Name: "Arbitrum", ChainID: 42161},
	{Name: "Optimism", ChainID: 10},
	{Name: "BSC", ChainID: 56},
	{Name: "Mantle", ChainID: 5000},
}

// ChainName returns the display name for a chain the hosted API serves.
func ChainName(chainID int64) string {
	for _, c := range supportedChains {
		if c.ChainID == chainID {
			return c.Name
		}
	}
	return fmt.Sprintf("Chain %d", chainID)
}

// SupportedChains lists the chains the hosted API serves.
func (c *Client) SupportedChains() []domain.ChainInfo {
	out := make([]domain.ChainInfo, len(supportedChains))
	copy(out, supportedChains)
	return out
}

// marketRow is one market as the analytics endpoints report it. Older
// deployments return expiry as a unix timestamp, newer ones as a string.
type marketRow struct {
	Address       string      `json:"address"`
	Name          string      `json:"name"`
	Symbol        string      `json:"symbol"`
	Expiry        interface{} `json:"expiry"`
	ImpliedApy    float64     `json:"impliedApy"`
	AggregatedApy float64     `json:"aggregatedApy"`
	UnderlyingApy float64     `json:"underlyingApy"`
	Liquidity     float64     `json:"liquidity"`
	Volume24h     float64     `json:"volume24h"`
}

func (r marketRow) toMarket(chainID int64) domain.Market {
	name := r.Name
	if name == "" {
		name = r.Symbol
	}
	return domain.Market{
		Name:          name,
		Address:       r.Address,
		Chain:         ChainName(chainID),
		ChainID:       chainID,
		Expiry:        expiryString(r.Expiry),
		LiquidityUSD:  r.Liquidity,
		Volume24hUSD:  r.Volume24h,
		ImpliedAPY:    r.ImpliedApy,
		AggregatedAPY: r.AggregatedApy,
		UnderlyingAPY: r.UnderlyingApy,
	}
}

func expiryString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == 0 {
			return ""
		}
		return time.Unix(int64(t), 0).UTC().Format(time.RFC3339)
	default:
		return ""
	}
}

// Markets returns the top markets on a chain ordered by liquidity.
func (c *Client) Markets(ctx context.Context, chainID int64, limit int) ([]domain.Market, error) {
	if limit <= 0 {
		limit = defaultMarketLimit
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("order_by", "liquidity:desc")

	var raw json.RawMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/%d/markets", chainID), params, &raw); err != nil {
		return nil, err
	}
	rows, err := decodeMarketRows(raw)
	if err != nil {
		return nil, err
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	markets := make([]domain.Market, 0, len(rows))
	for _, r := range rows {
		markets = append(markets, r.toMarket(chainID))
	}
	return markets, nil
}

// decodeMarketRows accepts both response shapes the analytics API has
// used: a bare array and an object with a results key.
func decodeMarketRows(raw json.RawMessage) ([]marketRow, error) {
	var wrapped struct {
		Results []marketRow `json:"results"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return wrapped.Results, nil
	}
	var rows []marketRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse markets response: %w", err)
	}
	return rows, nil
}

// MarketData returns the raw analytics document for one market. The
// document shape varies by chain and market age, so it is passed
// through undecoded for the caller to pick fields from.
func (c *Client) MarketData(ctx context.Context, chainID int64, market string) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/%d/markets/%s", chainID, market), nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// TrendingMarkets returns the markets with the most recent activity.
func (c *Client) TrendingMarkets(ctx context.Context, chainID int64, period string) ([]domain.Market, error) {
	if period == "" {
		period = "24h"
	}
	params := url.Values{}
	params.Set("period", period)

	var resp struct {
		Markets []marketRow `json:"markets"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/%d/trending", chainID), params, &resp); err != nil {
		return nil, err
	}
	rows := resp.Markets
	if len(rows) > trendingLimit {
		rows = rows[:trendingLimit]
	}
	markets := make([]domain.Market, 0, len(rows))
	for _, r := range rows {
		markets = append(markets, r.toMarket(chainID))
	}
	return markets, nil
}

// ProtocolRevenue returns protocol fee totals, for one chain or, with a
// zero chainID, aggregated across all of them.
func (c *Client) ProtocolRevenue(ctx context.Context, chainID int64) (*domain.RevenueReport, error) {
	path := "/v1/revenue"
	if chainID != 0 {
		path = fmt.Sprintf("/v1/%d/revenue", chainID)
	}

	var resp struct {
		Total   float64            `json:"total"`
		Last24h float64            `json:"24h"`
		Last7d  float64            `json:"7d"`
		ByChain map[string]float64 `json:"byChain"`
	}
	if err := c.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &domain.RevenueReport{
		Total:   resp.Total,
		Last24h: resp.Last24h,
		Last7d:  resp.Last7d,
		ByChain: resp.ByChain,
	}, nil
}
