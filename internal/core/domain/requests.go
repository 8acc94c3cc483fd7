package domain

// DefaultSlippage is applied when a request leaves Slippage zero.
// 0.005 is 0.5%.
const DefaultSlippage = 0.005

// SwapRequest trades tokenIn for tokenOut through a market.
type SwapRequest struct {
	ChainID  int64
	Market   string
	Receiver string
	TokenIn  string
	TokenOut string
	AmountIn string
	Slippage float64
}

// AddLiquidityRequest supplies a single token to a market.
// ZeroPriceImpact routes through the ZPI variant.
type AddLiquidityRequest struct {
	ChainID         int64
	Market          string
	Receiver        string
	TokenIn         string
	AmountIn        string
	Slippage        float64
	ZeroPriceImpact bool
}

// RemoveLiquidityRequest burns LP tokens into a single output token.
type RemoveLiquidityRequest struct {
	ChainID  int64
	Market   string
	Receiver string
	AmountLp string
	TokenOut string
	Slippage float64
}

// MintPtYtRequest mints PT and YT from an input token.
type MintPtYtRequest struct {
	ChainID  int64
	Market   string
	Receiver string
	TokenIn  string
	AmountIn string
	Slippage float64
}

// RedeemPtYtRequest redeems PT and YT into an output token.
type RedeemPtYtRequest struct {
	ChainID  int64
	Market   string
	Receiver string
	AmountPt string
	TokenOut string
	Slippage float64
}

// MintSyRequest wraps an input token into SY.
type MintSyRequest struct {
	ChainID  int64
	Sy       string
	Receiver string
	TokenIn  string
	AmountIn string
	Slippage float64
}

// RedeemSyRequest unwraps SY into an output token.
type RedeemSyRequest struct {
	ChainID  int64
	Sy       string
	Receiver string
	AmountSy string
	TokenOut string
	Slippage float64
}

// RolloverPtRequest moves a PT position into a later-expiry market.
type RolloverPtRequest struct {
	ChainID    int64
	FromMarket string
	ToMarket   string
	Receiver   string
	AmountPt   string
	Slippage   float64
}

// AddLiquidityDualRequest supplies a token and PT side by side.
type AddLiquidityDualRequest struct {
	ChainID     int64
	Market      string
	Receiver    string
	AmountToken string
	AmountPt    string
	Slippage    float64
}

// RemoveLiquidityDualRequest burns LP into both a token and PT.
type RemoveLiquidityDualRequest struct {
	ChainID  int64
	Market   string
	Receiver string
	AmountLp string
	Slippage float64
}

// TransferLiquidityRequest moves an LP position between markets.
// ZeroPriceImpact routes through the ZPI variant.
type TransferLiquidityRequest struct {
	ChainID         int64
	FromMarket      string
	ToMarket        string
	Receiver        string
	AmountLp        string
	Slippage        float64
	ZeroPriceImpact bool
}
