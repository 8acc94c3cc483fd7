package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/router"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

// Client is the JSON-RPC connection used by the executor and the
// read-only tools. The embedded ethclient provides the transaction
// surface; the methods below add the contract views this agent reads.
type Client struct {
	*ethclient.Client
	marketABI abi.ABI
}

// Dial connects to an RPC endpoint.
func Dial(rpcURL string) (*Client, error) {
	eth, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint: %w", err)
	}
	marketABI, err := router.ParseMarketABI()
	if err != nil {
		return nil, fmt.Errorf("failed to parse market ABI: %w", err)
	}
	return &Client{Client: eth, marketABI: marketABI}, nil
}

// MarketTokens is the token triple behind one Pendle market.
type MarketTokens struct {
	Sy common.Address
	Pt common.Address
	Yt common.Address
}

// ReadMarketTokens calls readTokens() on a market contract.
func (c *Client) ReadMarketTokens(ctx context.Context, market common.Address) (MarketTokens, error) {
	code, err := c.CodeAt(ctx, market, nil)
	if err != nil {
		return MarketTokens{}, types.NewContractError("failed to check market code", err)
	}
	if len(code) == 0 {
		return MarketTokens{}, types.NewNotDeployedError()
	}

	data, err := c.marketABI.Pack(router.MethodReadTokens)
	if err != nil {
		return MarketTokens{}, types.NewContractError("failed to encode readTokens call", err)
	}

	result, err := c.CallContract(ctx, ethereum.CallMsg{To: &market, Data: data}, nil)
	if err != nil {
		return MarketTokens{}, types.TranslateRevert(err)
	}

	values, err := c.marketABI.Unpack(router.MethodReadTokens, result)
	if err != nil || len(values) != 3 {
		return MarketTokens{}, types.NewContractError("failed to decode readTokens output", err)
	}

	tokens := MarketTokens{}
	var ok bool
	if tokens.Sy, ok = values[0].(common.Address); !ok {
		return MarketTokens{}, types.NewContractError("unexpected readTokens output type", nil)
	}
	if tokens.Pt, ok = values[1].(common.Address); !ok {
		return MarketTokens{}, types.NewContractError("unexpected readTokens output type", nil)
	}
	if tokens.Yt, ok = values[2].(common.Address); !ok {
		return MarketTokens{}, types.NewContractError("unexpected readTokens output type", nil)
	}
	return tokens, nil
}

// HasCode reports whether an address holds deployed bytecode.
func (c *Client) HasCode(ctx context.Context, addr common.Address) (bool, error) {
	if addr == (common.Address{}) {
		return false, nil
	}
	code, err := c.CodeAt(ctx, addr, nil)
	if err != nil {
		return false, types.NewContractError("failed to check contract code", err)
	}
	return len(code) > 0, nil
}
