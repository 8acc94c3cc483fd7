package domain

// Market is one Pendle market as reported by the hosted analytics API.
// APY values are fractions (0.05 means 5%), USD values are plain floats.
type Market struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Chain         string  `json:"chain,omitempty"`
	ChainID       int64   `json:"chain_id,omitempty"`
	Expiry        string  `json:"expiry,omitempty"`
	Pt            string  `json:"pt,omitempty"`
	Yt            string  `json:"yt,omitempty"`
	Sy            string  `json:"sy,omitempty"`
	LiquidityUSD  float64 `json:"liquidity_usd"`
	Volume24hUSD  float64 `json:"volume_24h_usd"`
	ImpliedAPY    float64 `json:"implied_apy"`
	AggregatedAPY float64 `json:"lp_apy"`
	UnderlyingAPY float64 `json:"underlying_apy"`
}

// UnsignedCall is calldata ready to sign and submit.
type UnsignedCall struct {
	To    string `json:"to"`
	Data  string `json:"data"`
	Value string `json:"value,omitempty"`
}

// PreparedTransaction is an unsigned call assembled by the hosted SDK
// together with the quote behind it. Amount fields are base-unit strings
// straight off the wire; only the ones relevant to the operation are set.
type PreparedTransaction struct {
	Transaction UnsignedCall `json:"transaction"`

	AmountOut      string `json:"amountOut,omitempty"`
	MinAmountOut   string `json:"minAmountOut,omitempty"`
	AmountLpOut    string `json:"amountLpOut,omitempty"`
	MinLpOut       string `json:"minLpOut,omitempty"`
	AmountPtOut    string `json:"amountPtOut,omitempty"`
	AmountYtOut    string `json:"amountYtOut,omitempty"`
	AmountSyOut    string `json:"amountSyOut,omitempty"`
	AmountTokenOut string `json:"amountTokenOut,omitempty"`
	MinTokenOut    string `json:"minTokenOut,omitempty"`
	PriceImpact    string `json:"priceImpact,omitempty"`
	Gas            string `json:"gas,omitempty"`
}

// RevenueReport is the protocol revenue summary in USD.
type RevenueReport struct {
	Total   float64            `json:"total_usd"`
	Last24h float64            `json:"revenue_24h_usd"`
	Last7d  float64            `json:"revenue_7d_usd"`
	ByChain map[string]float64 `json:"by_chain,omitempty"`
}

// ChainInfo names a chain the hosted API serves.
type ChainInfo struct {
	Name    string `json:"name"`
	ChainID int64  `json:"chain_id"`
}

// WalletInfo describes the signing wallet, or its absence.
type WalletInfo struct {
	Configured   bool   `json:"configured"`
	Address      string `json:"address,omitempty"`
	BalanceWei   string `json:"balance_wei,omitempty"`
	PendingNonce uint64 `json:"pending_nonce,omitempty"`
	Network      string `json:"network"`
	ChainID      int64  `json:"chain_id"`
	Explorer     string `json:"explorer_url,omitempty"`
}

// ContractInfo describes the router deployment this agent targets.
// Status is "ready" only when an address is configured and code exists
// at it on the current network.
type ContractInfo struct {
	RouterAddress string `json:"router_address,omitempty"`
	Configured    bool   `json:"configured"`
	Deployed      bool   `json:"deployed"`
	Status        string `json:"status"`
	Network       string `json:"network"`
	ChainID       int64  `json:"chain_id"`
	Explorer      string `json:"explorer_url,omitempty"`
}

// Contract info statuses
const (
	ContractStatusReady       = "ready"
	ContractStatusNotDeployed = "not_deployed"
)
