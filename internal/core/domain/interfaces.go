package domain

import "context"

// MarketDataService defines read access to hosted market analytics.
type MarketDataService interface {
	// Markets returns the top markets on a chain ordered by liquidity.
	Markets(ctx context.Context, chainID int64, limit int) ([]Market, error)

	// MarketData returns the raw analytics document for one market.
	MarketData(ctx context.Context, chainID int64, market string) (map[string]interface{}, error)

	// TrendingMarkets returns the markets with the most recent activity.
	// Period is an API window such as "1d" or "7d".
	TrendingMarkets(ctx context.Context, chainID int64, period string) ([]Market, error)

	// ProtocolRevenue returns protocol fee totals, optionally for one chain.
	// A zero chainID aggregates across all chains.
	ProtocolRevenue(ctx context.Context, chainID int64) (*RevenueReport, error)

	// SupportedChains lists the chains the hosted API serves.
	SupportedChains() []ChainInfo
}

// TransactionPreparer builds unsigned calldata through the hosted SDK.
// Every method returns a transaction the caller signs and submits itself.
type TransactionPreparer interface {
	Swap(ctx context.Context, req SwapRequest) (*PreparedTransaction, error)
	AddLiquidity(ctx context.Context, req AddLiquidityRequest) (*PreparedTransaction, error)
	RemoveLiquidity(ctx context.Context, req RemoveLiquidityRequest) (*PreparedTransaction, error)
	MintPtYt(ctx context.Context, req MintPtYtRequest) (*PreparedTransaction, error)
	RedeemPtYt(ctx context.Context, req RedeemPtYtRequest) (*PreparedTransaction, error)
	MintSy(ctx context.Context, req MintSyRequest) (*PreparedTransaction, error)
	RedeemSy(ctx context.Context, req RedeemSyRequest) (*PreparedTransaction, error)
	RolloverPt(ctx context.Context, req RolloverPtRequest) (*PreparedTransaction, error)
	AddLiquidityDual(ctx context.Context, req AddLiquidityDualRequest) (*PreparedTransaction, error)
	RemoveLiquidityDual(ctx context.Context, req RemoveLiquidityDualRequest) (*PreparedTransaction, error)
	TransferLiquidity(ctx context.Context, req TransferLiquidityRequest) (*PreparedTransaction, error)
}
