package mcpserver

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/domain"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/router"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

// Default search bounds for the router's on-chain binary search, as
// strings because they exceed JSON number precision.
const (
	defaultGuessMin     = "0"
	defaultGuessMax     = "1000000000000000000" // 1e18
	defaultGuessOff     = "0"
	defaultEps          = "1000000000000000" // 1e15
	defaultMaxIteration = 256
)

// argReader pulls typed arguments out of a tool request. The first
// extraction failure sticks; later reads become no-ops so call sites
// can collect a whole struct and check the error once.
type argReader struct {
	req mcp.CallToolRequest
	err error
}

// address reads and validates a required address argument.
func (r *argReader) address(field string) common.Address {
	if r.err != nil {
		return common.Address{}
	}
	raw, err := r.req.RequireString(field)
	if err != nil {
		r.err = types.NewInvalidParameters(field, "is required")
		return common.Address{}
	}
	addr, err := router.ParseAddress(field, strings.TrimSpace(raw))
	if err != nil {
		r.err = err
		return common.Address{}
	}
	return addr
}

// amount reads and validates a required base-unit integer argument.
func (r *argReader) amount(field string) *big.Int {
	if r.err != nil {
		return nil
	}
	raw, err := r.req.RequireString(field)
	if err != nil {
		r.err = types.NewInvalidParameters(field, "is required")
		return nil
	}
	n, err := router.ParseAmount(field, raw)
	if err != nil {
		r.err = err
		return nil
	}
	return n
}

// optionalAmount reads a base-unit integer argument, applying fallback
// when the argument is absent.
func (r *argReader) optionalAmount(field, fallback string) *big.Int {
	if r.err != nil {
		return nil
	}
	n, err := router.ParseAmount(field, r.req.GetString(field, fallback))
	if err != nil {
		r.err = err
		return nil
	}
	return n
}

// hexAddress validates a required address argument and returns it in
// its original string form for the hosted API.
func (r *argReader) hexAddress(field string) string {
	if r.err != nil {
		return ""
	}
	raw, err := r.req.RequireString(field)
	if err != nil {
		r.err = types.NewInvalidParameters(field, "is required")
		return ""
	}
	raw = strings.TrimSpace(raw)
	if _, err := router.ParseAddress(field, raw); err != nil {
		r.err = err
		return ""
	}
	return raw
}

// amountString validates a required base-unit integer argument and
// returns it as the string the hosted API expects.
func (r *argReader) amountString(field string) string {
	if r.err != nil {
		return ""
	}
	raw, err := r.req.RequireString(field)
	if err != nil {
		r.err = types.NewInvalidParameters(field, "is required")
		return ""
	}
	raw = strings.TrimSpace(raw)
	if _, err := router.ParseAmount(field, raw); err != nil {
		r.err = err
		return ""
	}
	return raw
}

// chainID reads the required chainId argument.
func (r *argReader) chainID() int64 {
	if r.err != nil {
		return 0
	}
	id, err := r.req.RequireInt("chainId")
	if err != nil || id <= 0 {
		r.err = types.NewInvalidParameters("chainId", "must be a positive chain id")
		return 0
	}
	return int64(id)
}

// slippage reads the optional slippage fraction.
func (r *argReader) slippage() float64 {
	if r.err != nil {
		return 0
	}
	v := r.req.GetFloat("slippage", domain.DefaultSlippage)
	if v < 0 || v > 1 {
		r.err = types.NewInvalidParameters("slippage", "must be a fraction between 0 and 1")
		return 0
	}
	return v
}

// approx collects the optional approximation bounds, falling back to
// the router's recommended defaults per field.
func (r *argReader) approx() types.ApproxParams {
	if r.err != nil {
		return types.ApproxParams{}
	}
	guessMin := r.optionalAmount("guess_min", defaultGuessMin)
	guessMax := r.optionalAmount("guess_max", defaultGuessMax)
	guessOffchain := r.optionalAmount("guess_offchain", defaultGuessOff)
	eps := r.optionalAmount("eps", defaultEps)
	if r.err != nil {
		return types.ApproxParams{}
	}
	maxIteration := r.req.GetInt("max_iteration", defaultMaxIteration)
	if maxIteration <= 0 {
		r.err = types.NewInvalidParameters("max_iteration", "must be greater than zero")
		return types.ApproxParams{}
	}
	params, err := types.NewApproxParams(guessMin, guessMax, guessOffchain, big.NewInt(int64(maxIteration)), eps)
	if err != nil {
		r.err = err
		return types.ApproxParams{}
	}
	return params
}

// swapData collects the optional external swap leg. A NONE swap with no
// router, calldata or scaling stays nil; the encoder emits the NONE
// tuple either way.
func (r *argReader) swapData() *types.SwapData {
	if r.err != nil {
		return nil
	}
	swapCode := r.req.GetInt("swap_type", 0)
	needScale := r.req.GetBool("need_scale", false)

	var extRouter common.Address
	if raw := strings.TrimSpace(r.req.GetString("ext_router", "")); raw != "" {
		addr, err := router.ParseAddress("ext_router", raw)
		if err != nil {
			r.err = err
			return nil
		}
		extRouter = addr
	}

	var extCalldata []byte
	if raw := strings.TrimSpace(r.req.GetString("ext_calldata", "")); raw != "" {
		data, err := hexutil.Decode(raw)
		if err != nil {
			r.err = types.NewInvalidParameters("ext_calldata", "must be 0x-prefixed hex")
			return nil
		}
		extCalldata = data
	}

	if swapCode == 0 && extRouter == (common.Address{}) && len(extCalldata) == 0 && !needScale {
		return nil
	}

	swapType, err := types.SwapTypeFromInt(int64(swapCode))
	if err != nil {
		r.err = err
		return nil
	}
	sd, err := types.NewSwapData(swapType, extRouter, extCalldata, needScale)
	if err != nil {
		r.err = err
		return nil
	}
	return &sd
}

// intList reads an array argument of chain ids. Elements may arrive as
// JSON numbers or numeric strings.
func intList(req mcp.CallToolRequest, field string) ([]int64, error) {
	raw, ok := req.GetArguments()[field]
	if !ok {
		return nil, types.NewInvalidParameters(field, "is required")
	}
	list, ok := raw.([]interface{})
	if !ok || len(list) == 0 {
		return nil, types.NewInvalidParameters(field, "must be a non-empty array of chain ids")
	}
	out := make([]int64, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case float64:
			out = append(out, int64(v))
		case int:
			out = append(out, int64(v))
		case int64:
			out = append(out, v)
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, types.NewInvalidParameters(field, "must contain integer chain ids")
			}
			out = append(out, n)
		default:
			return nil, types.NewInvalidParameters(field, "must contain integer chain ids")
		}
	}
	return out, nil
}
