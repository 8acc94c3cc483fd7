package pendleapi

import (
	"context"
	"fmt"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/domain"
)

// zpiPriceImpact replaces the quoted impact on zero-price-impact routes;
// those endpoints do not return a priceImpact field.
const zpiPriceImpact = "~0% (ZPI)"

// convertResponse is the wire shape shared by every convert endpoint.
// Each operation fills a different subset of the quote fields.
type convertResponse struct {
	To             string     `json:"to"`
	Data           string     `json:"data"`
	Value          flexString `json:"value"`
	AmountOut      flexString `json:"amountOut"`
	MinAmountOut   flexString `json:"minAmountOut"`
	MinOut         flexString `json:"minOut"`
	AmountLpOut    flexString `json:"amountLpOut"`
	MinLpOut       flexString `json:"minLpOut"`
	AmountPtOut    flexString `json:"amountPtOut"`
	AmountYtOut    flexString `json:"amountYtOut"`
	AmountSyOut    flexString `json:"amountSyOut"`
	AmountTokenOut flexString `json:"amountTokenOut"`
	PriceImpact    float64    `json:"priceImpact"`
	Gas            flexString `json:"gas"`
}

func (r convertResponse) unsignedCall() domain.UnsignedCall {
	return domain.UnsignedCall{To: r.To, Data: r.Data, Value: r.Value.String()}
}

func formatPriceImpact(pi float64) string {
	return fmt.Sprintf("%.4f%%", pi*100)
}

func slippageOrDefault(s float64) float64 {
	if s <= 0 {
		return domain.DefaultSlippage
	}
	return s
}

// Swap trades tokenIn for tokenOut through a market.
func (c *Client) Swap(ctx context.Context, req domain.SwapRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/markets/%s/swap", req.ChainID, req.Market)
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"receiver": req.Receiver,
		"tokenIn":  req.TokenIn,
		"tokenOut": req.TokenOut,
		"amountIn": req.AmountIn,
		"slippage": slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.PreparedTransaction{
		Transaction:  resp.unsignedCall(),
		AmountOut:    resp.AmountOut.String(),
		MinAmountOut: resp.MinAmountOut.String(),
		PriceImpact:  formatPriceImpact(resp.PriceImpact),
		Gas:          resp.Gas.String(),
	}, nil
}

// AddLiquidity supplies a single token to a market. With ZeroPriceImpact
// set it routes through the ZPI endpoint, which trades no minimum LP
// guarantee for zero impact on the market price.
func (c *Client) AddLiquidity(ctx context.Context, req domain.AddLiquidityRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/markets/%s/add-liquidity", req.ChainID, req.Market)
	if req.ZeroPriceImpact {
		path += "-zpi"
	}
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"receiver": req.Receiver,
		"tokenIn":  req.TokenIn,
		"amountIn": req.AmountIn,
		"slippage": slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	tx := &domain.PreparedTransaction{
		Transaction: resp.unsignedCall(),
		AmountLpOut: resp.AmountLpOut.String(),
		Gas:         resp.Gas.String(),
	}
	if req.ZeroPriceImpact {
		tx.PriceImpact = zpiPriceImpact
	} else {
		tx.MinLpOut = resp.MinLpOut.String()
		tx.PriceImpact = formatPriceImpact(resp.PriceImpact)
	}
	return tx, nil
}

// RemoveLiquidity burns LP tokens into a single output token.
func (c *Client) RemoveLiquidity(ctx context.Context, req domain.RemoveLiquidityRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/markets/%s/remove-liquidity", req.ChainID, req.Market)
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"receiver": req.Receiver,
		"amountLp": req.AmountLp,
		"tokenOut": req.TokenOut,
		"slippage": slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.PreparedTransaction{
		Transaction:    resp.unsignedCall(),
		AmountTokenOut: resp.AmountOut.String(),
		MinTokenOut:    resp.MinOut.String(),
		PriceImpact:    formatPriceImpact(resp.PriceImpact),
		Gas:            resp.Gas.String(),
	}, nil
}

// MintPtYt mints PT and YT from an input token.
func (c *Client) MintPtYt(ctx context.Context, req domain.MintPtYtRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/markets/%s/mint", req.ChainID, req.Market)
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"receiver": req.Receiver,
		"tokenIn":  req.TokenIn,
		"amountIn": req.AmountIn,
		"slippage": slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.PreparedTransaction{
		Transaction: resp.unsignedCall(),
		AmountPtOut: resp.AmountPtOut.String(),
		AmountYtOut: resp.AmountYtOut.String(),
		Gas:         resp.Gas.String(),
	}, nil
}

// RedeemPtYt redeems matching PT and YT amounts into an output token.
func (c *Client) RedeemPtYt(ctx context.Context, req domain.RedeemPtYtRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/markets/%s/redeem", req.ChainID, req.Market)
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"receiver": req.Receiver,
		"amountPt": req.AmountPt,
		"tokenOut": req.TokenOut,
		"slippage": slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.PreparedTransaction{
		Transaction:    resp.unsignedCall(),
		AmountTokenOut: resp.AmountOut.String(),
		Gas:            resp.Gas.String(),
	}, nil
}

// MintSy wraps an input token into SY.
func (c *Client) MintSy(ctx context.Context, req domain.MintSyRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/sy/%s/mint", req.ChainID, req.Sy)
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"receiver": req.Receiver,
		"tokenIn":  req.TokenIn,
		"amountIn": req.AmountIn,
		"slippage": slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.PreparedTransaction{
		Transaction: resp.unsignedCall(),
		AmountSyOut: resp.AmountSyOut.String(),
		Gas:         resp.Gas.String(),
	}, nil
}

// RedeemSy unwraps SY into an output token.
func (c *Client) RedeemSy(ctx context.Context, req domain.RedeemSyRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/sy/%s/redeem", req.ChainID, req.Sy)
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"receiver": req.Receiver,
		"amountSy": req.AmountSy,
		"tokenOut": req.TokenOut,
		"slippage": slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.PreparedTransaction{
		Transaction:    resp.unsignedCall(),
		AmountTokenOut: resp.AmountOut.String(),
		Gas:            resp.Gas.String(),
	}, nil
}

// RolloverPt moves a PT position into a later-expiry market.
func (c *Client) RolloverPt(ctx context.Context, req domain.RolloverPtRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/rollover", req.ChainID)
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"fromMarket": req.FromMarket,
		"toMarket":   req.ToMarket,
		"receiver":   req.Receiver,
		"amountPt":   req.AmountPt,
		"slippage":   slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.PreparedTransaction{
		Transaction: resp.unsignedCall(),
		AmountPtOut: resp.AmountPtOut.String(),
		PriceImpact: formatPriceImpact(resp.PriceImpact),
		Gas:         resp.Gas.String(),
	}, nil
}

// AddLiquidityDual supplies a token and PT side by side.
func (c *Client) AddLiquidityDual(ctx context.Context, req domain.AddLiquidityDualRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/markets/%s/add-liquidity-dual", req.ChainID, req.Market)
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"receiver":    req.Receiver,
		"amountToken": req.AmountToken,
		"amountPt":    req.AmountPt,
		"slippage":    slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.PreparedTransaction{
		Transaction: resp.unsignedCall(),
		AmountLpOut: resp.AmountLpOut.String(),
		PriceImpact: formatPriceImpact(resp.PriceImpact),
		Gas:         resp.Gas.String(),
	}, nil
}

// RemoveLiquidityDual burns LP into both a token and PT.
func (c *Client) RemoveLiquidityDual(ctx context.Context, req domain.RemoveLiquidityDualRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/markets/%s/remove-liquidity-dual", req.ChainID, req.Market)
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"receiver": req.Receiver,
		"amountLp": req.AmountLp,
		"slippage": slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.PreparedTransaction{
		Transaction:    resp.unsignedCall(),
		AmountTokenOut: resp.AmountTokenOut.String(),
		AmountPtOut:    resp.AmountPtOut.String(),
		Gas:            resp.Gas.String(),
	}, nil
}

// TransferLiquidity moves an LP position between markets, optionally
// through the zero-price-impact route.
func (c *Client) TransferLiquidity(ctx context.Context, req domain.TransferLiquidityRequest) (*domain.PreparedTransaction, error) {
	path := fmt.Sprintf("/v1/%d/transfer-liquidity", req.ChainID)
	if req.ZeroPriceImpact {
		path += "-zpi"
	}
	var resp convertResponse
	err := c.postJSON(ctx, path, map[string]interface{}{
		"fromMarket": req.FromMarket,
		"toMarket":   req.ToMarket,
		"receiver":   req.Receiver,
		"amountLp":   req.AmountLp,
		"slippage":   slippageOrDefault(req.Slippage),
	}, &resp)
	if err != nil {
		return nil, err
	}
	tx := &domain.PreparedTransaction{
		Transaction: resp.unsignedCall(),
		AmountLpOut: resp.AmountLpOut.String(),
		Gas:         resp.Gas.String(),
	}
	if req.ZeroPriceImpact {
		tx.PriceImpact = zpiPriceImpact
	}
	return tx, nil
}
