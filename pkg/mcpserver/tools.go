package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the Pendle agent MCP server.
// Descriptions are what the LLM reads to decide which tool to use.
// Token amounts travel as base-unit integer strings because JSON
// numbers cannot carry uint256 values without losing precision.

// On-chain router tools. These sign and submit real transactions.

var ToolAddLiquidityDual = mcp.NewTool("add_liquidity_with_sy_and_pt",
	mcp.WithDescription(
		"Add liquidity to a Pendle market by depositing both SY and PT tokens. "+
			"Signs and submits a real transaction, then waits for on-chain confirmation."),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the LP tokens")),
	mcp.WithString("market",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("net_sy_desired",
		mcp.Required(),
		mcp.Description("SY amount to deposit, in base units")),
	mcp.WithString("net_pt_desired",
		mcp.Required(),
		mcp.Description("PT amount to deposit, in base units")),
	mcp.WithString("min_lp_out",
		mcp.Required(),
		mcp.Description("Minimum LP tokens to accept, in base units")),
)

var ToolAddLiquiditySingleSy = mcp.NewTool("add_liquidity_with_sy_only",
	mcp.WithDescription(
		"Add liquidity with SY tokens only; the router swaps part of the SY into PT "+
			"using an on-chain binary search. Signs and submits a real transaction."),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the LP tokens")),
	mcp.WithString("market",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("net_sy_in",
		mcp.Required(),
		mcp.Description("SY amount to deposit, in base units")),
	mcp.WithString("min_lp_out",
		mcp.Required(),
		mcp.Description("Minimum LP tokens to accept, in base units")),
	mcp.WithString("guess_min",
		mcp.Description("Lower bound for the PT search, in base units (default 0)"),
		mcp.DefaultString("0")),
	mcp.WithString("guess_max",
		mcp.Description("Upper bound for the PT search, in base units (default 10^18)"),
		mcp.DefaultString("1000000000000000000")),
	mcp.WithNumber("max_iteration",
		mcp.Description("Maximum search iterations (default 256)"),
		mcp.DefaultNumber(256)),
)

var ToolAddLiquiditySingleToken = mcp.NewTool("add_liquidity_with_token",
	mcp.WithDescription(
		"Add liquidity with an arbitrary token, minting SY on the way in. Optionally "+
			"routes the token through an external aggregator first. Signs and submits "+
			"a real transaction."),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the LP tokens")),
	mcp.WithString("market",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("min_lp_out",
		mcp.Required(),
		mcp.Description("Minimum LP tokens to accept, in base units")),
	mcp.WithString("token_in",
		mcp.Required(),
		mcp.Description("Input token address; the zero address means the chain's native token")),
	mcp.WithString("net_token_in",
		mcp.Required(),
		mcp.Description("Input token amount, in base units")),
	mcp.WithString("token_mint_sy",
		mcp.Required(),
		mcp.Description("Token used to mint SY after the optional external swap")),
	mcp.WithString("pendle_swap",
		mcp.Description("Pendle swap helper contract; required when an external swap is used")),
	mcp.WithNumber("swap_type",
		mcp.Description("External swap route: 0=NONE, 1=KYBERSWAP, 2=ONE_INCH, 3=NATIVE, 4=UNISWAPV2, 5=UNISWAPV3, 6=CURVE, 7=BALANCER"),
		mcp.DefaultNumber(0)),
	mcp.WithString("ext_router",
		mcp.Description("External aggregator router address (swap_type other than 0)")),
	mcp.WithString("ext_calldata",
		mcp.Description("Pre-built aggregator calldata as 0x-prefixed hex")),
	mcp.WithBoolean("need_scale",
		mcp.Description("Whether the aggregator calldata amount must be rescaled on-chain"),
		mcp.DefaultBool(false)),
	mcp.WithString("guess_min",
		mcp.Description("Lower bound for the PT search, in base units (default 0)"),
		mcp.DefaultString("0")),
	mcp.WithString("guess_max",
		mcp.Description("Upper bound for the PT search, in base units (default 10^18)"),
		mcp.DefaultString("1000000000000000000")),
)

var ToolRemoveLiquidityDual = mcp.NewTool("remove_liquidity_to_sy_and_pt",
	mcp.WithDescription(
		"Remove liquidity from a Pendle market and receive both SY and PT tokens. "+
			"Signs and submits a real transaction."),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the SY and PT tokens")),
	mcp.WithString("market",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("net_lp_to_remove",
		mcp.Required(),
		mcp.Description("LP tokens to burn, in base units")),
	mcp.WithString("min_sy_out",
		mcp.Required(),
		mcp.Description("Minimum SY to accept, in base units")),
	mcp.WithString("min_pt_out",
		mcp.Required(),
		mcp.Description("Minimum PT to accept, in base units")),
)

var ToolRemoveLiquiditySingleSy = mcp.NewTool("remove_liquidity_to_sy_only",
	mcp.WithDescription(
		"Remove liquidity from a Pendle market and receive SY tokens only. "+
			"Signs and submits a real transaction."),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the SY tokens")),
	mcp.WithString("market",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("net_lp_to_remove",
		mcp.Required(),
		mcp.Description("LP tokens to burn, in base units")),
	mcp.WithString("min_sy_out",
		mcp.Required(),
		mcp.Description("Minimum SY to accept, in base units")),
)

var ToolRemoveLiquiditySingleToken = mcp.NewTool("remove_liquidity_to_token",
	mcp.WithDescription(
		"Remove liquidity from a Pendle market and redeem into a single output token, "+
			"optionally routing through an external aggregator. Signs and submits a real "+
			"transaction."),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the output tokens")),
	mcp.WithString("market",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("net_lp_to_remove",
		mcp.Required(),
		mcp.Description("LP tokens to burn, in base units")),
	mcp.WithString("token_out",
		mcp.Required(),
		mcp.Description("Output token address")),
	mcp.WithString("min_token_out",
		mcp.Required(),
		mcp.Description("Minimum output tokens to accept, in base units")),
	mcp.WithString("token_redeem_sy",
		mcp.Required(),
		mcp.Description("Token the SY redeems into before the optional external swap")),
	mcp.WithString("pendle_swap",
		mcp.Description("Pendle swap helper contract; required when an external swap is used")),
	mcp.WithNumber("swap_type",
		mcp.Description("External swap route: 0=NONE, 1=KYBERSWAP, 2=ONE_INCH, 3=NATIVE, 4=UNISWAPV2, 5=UNISWAPV3, 6=CURVE, 7=BALANCER"),
		mcp.DefaultNumber(0)),
	mcp.WithString("ext_router",
		mcp.Description("External aggregator router address (swap_type other than 0)")),
	mcp.WithString("ext_calldata",
		mcp.Description("Pre-built aggregator calldata as 0x-prefixed hex")),
	mcp.WithBoolean("need_scale",
		mcp.Description("Whether the aggregator calldata amount must be rescaled on-chain"),
		mcp.DefaultBool(false)),
)

var ToolMintPyTokens = mcp.NewTool("mint_py_tokens",
	mcp.WithDescription(
		"Split SY tokens into PT and YT. Signs and submits a real transaction."),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the PT and YT tokens")),
	mcp.WithString("yt_address",
		mcp.Required(),
		mcp.Description("Yield token address of the target market")),
	mcp.WithString("net_sy_in",
		mcp.Required(),
		mcp.Description("SY amount to split, in base units")),
	mcp.WithString("min_py_out",
		mcp.Description("Minimum PT and YT to accept, in base units (default 0)"),
		mcp.DefaultString("0")),
)

var ToolRedeemPyTokens = mcp.NewTool("redeem_py_tokens",
	mcp.WithDescription(
		"Recombine PT and YT back into SY tokens. Signs and submits a real transaction."),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the SY tokens")),
	mcp.WithString("yt_address",
		mcp.Required(),
		mcp.Description("Yield token address of the market")),
	mcp.WithString("net_py_in",
		mcp.Required(),
		mcp.Description("PT and YT amount to redeem, in base units")),
	mcp.WithString("min_sy_out",
		mcp.Description("Minimum SY to accept, in base units (default 0)"),
		mcp.DefaultString("0")),
)

var ToolEstimateGas = mcp.NewTool("estimate_gas_for_liquidity_addition",
	mcp.WithDescription(
		"Estimate the gas cost of a dual liquidity addition from the agent wallet "+
			"without sending anything. Returns the node's estimate and the buffered "+
			"limit a submission would use."),
	mcp.WithString("market",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("net_sy_desired",
		mcp.Required(),
		mcp.Description("SY amount to deposit, in base units")),
	mcp.WithString("net_pt_desired",
		mcp.Required(),
		mcp.Description("PT amount to deposit, in base units")),
)

// On-chain read tools. No signing involved.

var ToolGetWalletInfo = mcp.NewTool("get_wallet_info",
	mcp.WithDescription(
		"Check the agent wallet: address, native balance, pending nonce and the "+
			"network it operates on."),
)

var ToolGetContractInfo = mcp.NewTool("get_contract_info",
	mcp.WithDescription(
		"Check the Pendle router deployment this agent targets: configured address, "+
			"whether code exists at it on the current network, and explorer link."),
)

var ToolGetMarketTokens = mcp.NewTool("get_market_tokens",
	mcp.WithDescription(
		"Read the SY, PT and YT token addresses behind a Pendle market contract."),
	mcp.WithString("market",
		mcp.Required(),
		mcp.Description("Pendle market address")),
)

// Local helper tools. These never touch the network.

var ToolCreateApproximationParams = mcp.NewTool("create_approximation_params",
	mcp.WithDescription(
		"Validate and echo approximation parameters for the router's on-chain "+
			"binary search. Useful to preview the bounds a liquidity call will use."),
	mcp.WithString("guess_min",
		mcp.Description("Minimum guess, in base units (default 0)"),
		mcp.DefaultString("0")),
	mcp.WithString("guess_max",
		mcp.Description("Maximum guess, in base units (default 10^18)"),
		mcp.DefaultString("1000000000000000000")),
	mcp.WithString("guess_offchain",
		mcp.Description("Off-chain precomputed guess, in base units (default 0)"),
		mcp.DefaultString("0")),
	mcp.WithNumber("max_iteration",
		mcp.Description("Maximum search iterations (default 256)"),
		mcp.DefaultNumber(256)),
	mcp.WithString("eps",
		mcp.Description("Search precision in 1e18 fixed point (default 10^15 = 0.1%)"),
		mcp.DefaultString("1000000000000000")),
)

var ToolGetSwapTypesNames = mcp.NewTool("get_swap_types_names",
	mcp.WithDescription(
		"List the supported external swap protocols and their integer codes."),
)

var ToolConvertToBaseUnits = mcp.NewTool("convert_to_base_units",
	mcp.WithDescription(
		"Convert a human-readable decimal amount into base units by scaling with "+
			"the token's decimals. Excess fractional digits are truncated."),
	mcp.WithString("amount",
		mcp.Required(),
		mcp.Description("Decimal amount, e.g. '1.5'")),
	mcp.WithNumber("decimals",
		mcp.Description("Token decimals; overrides the token lookup when set")),
	mcp.WithString("token",
		mcp.Description("Token address to look decimals up for (default 18 when unknown)")),
)

// Hosted SDK convert tools. These return prepared, unsigned transaction
// data from the Pendle convert API; nothing is signed or submitted.

var ToolConvertSwap = mcp.NewTool("convert_swap",
	mcp.WithDescription(
		"Build an unsigned swap transaction through a Pendle market using the hosted "+
			"SDK. Returns {to, data, value} plus the quoted amounts and price impact."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id (1=Ethereum, 42161=Arbitrum, 10=Optimism, 56=BSC, 5000=Mantle)")),
	mcp.WithString("marketAddress",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the output tokens")),
	mcp.WithString("tokenIn",
		mcp.Required(),
		mcp.Description("Input token address")),
	mcp.WithString("tokenOut",
		mcp.Required(),
		mcp.Description("Output token address")),
	mcp.WithString("amountIn",
		mcp.Required(),
		mcp.Description("Input amount, in base units")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005 = 0.5%)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertAddLiquidity = mcp.NewTool("convert_add_liquidity",
	mcp.WithDescription(
		"Build an unsigned single-token add-liquidity transaction using the hosted SDK."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("marketAddress",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the LP tokens")),
	mcp.WithString("tokenIn",
		mcp.Required(),
		mcp.Description("Input token address")),
	mcp.WithString("amountIn",
		mcp.Required(),
		mcp.Description("Input amount, in base units")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertAddLiquidityZpi = mcp.NewTool("convert_add_liquidity_zpi",
	mcp.WithDescription(
		"Build an unsigned add-liquidity transaction in zero-price-impact mode: part "+
			"of the input is kept as YT so the market price does not move."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("marketAddress",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the LP tokens")),
	mcp.WithString("tokenIn",
		mcp.Required(),
		mcp.Description("Input token address")),
	mcp.WithString("amountIn",
		mcp.Required(),
		mcp.Description("Input amount, in base units")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertRemoveLiquidity = mcp.NewTool("convert_remove_liquidity",
	mcp.WithDescription(
		"Build an unsigned remove-liquidity transaction redeeming LP into a single "+
			"token using the hosted SDK."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("marketAddress",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the output tokens")),
	mcp.WithString("amountLp",
		mcp.Required(),
		mcp.Description("LP amount to burn, in base units")),
	mcp.WithString("tokenOut",
		mcp.Required(),
		mcp.Description("Output token address")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertMintPtYt = mcp.NewTool("convert_mint_pt_yt",
	mcp.WithDescription(
		"Build an unsigned transaction minting PT and YT from an input token using "+
			"the hosted SDK."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("marketAddress",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the PT and YT tokens")),
	mcp.WithString("tokenIn",
		mcp.Required(),
		mcp.Description("Input token address")),
	mcp.WithString("amountIn",
		mcp.Required(),
		mcp.Description("Input amount, in base units")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertRedeemPtYt = mcp.NewTool("convert_redeem_pt_yt",
	mcp.WithDescription(
		"Build an unsigned transaction redeeming PT and YT into an output token using "+
			"the hosted SDK."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("marketAddress",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the output tokens")),
	mcp.WithString("amountPt",
		mcp.Required(),
		mcp.Description("PT amount to redeem, in base units")),
	mcp.WithString("tokenOut",
		mcp.Required(),
		mcp.Description("Output token address")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertMintSy = mcp.NewTool("convert_mint_sy",
	mcp.WithDescription(
		"Build an unsigned transaction wrapping an input token into SY using the "+
			"hosted SDK."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("syAddress",
		mcp.Required(),
		mcp.Description("SY token address")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the SY tokens")),
	mcp.WithString("tokenIn",
		mcp.Required(),
		mcp.Description("Input token address")),
	mcp.WithString("amountIn",
		mcp.Required(),
		mcp.Description("Input amount, in base units")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertRedeemSy = mcp.NewTool("convert_redeem_sy",
	mcp.WithDescription(
		"Build an unsigned transaction unwrapping SY into an output token using the "+
			"hosted SDK."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("syAddress",
		mcp.Required(),
		mcp.Description("SY token address")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the output tokens")),
	mcp.WithString("amountSy",
		mcp.Required(),
		mcp.Description("SY amount to unwrap, in base units")),
	mcp.WithString("tokenOut",
		mcp.Required(),
		mcp.Description("Output token address")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertRolloverPt = mcp.NewTool("convert_rollover_pt",
	mcp.WithDescription(
		"Build an unsigned transaction rolling a PT position from one market into "+
			"another, usually a later expiry, using the hosted SDK."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("fromMarket",
		mcp.Required(),
		mcp.Description("Market the PT position currently sits in")),
	mcp.WithString("toMarket",
		mcp.Required(),
		mcp.Description("Market to move the PT position into")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the new PT tokens")),
	mcp.WithString("amountPt",
		mcp.Required(),
		mcp.Description("PT amount to roll over, in base units")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertAddLiquidityDual = mcp.NewTool("convert_add_liquidity_dual",
	mcp.WithDescription(
		"Build an unsigned dual-sided add-liquidity transaction (token plus PT) using "+
			"the hosted SDK."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("marketAddress",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the LP tokens")),
	mcp.WithString("amountToken",
		mcp.Required(),
		mcp.Description("Token amount to deposit, in base units")),
	mcp.WithString("amountPt",
		mcp.Required(),
		mcp.Description("PT amount to deposit, in base units")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertRemoveLiquidityDual = mcp.NewTool("convert_remove_liquidity_dual",
	mcp.WithDescription(
		"Build an unsigned remove-liquidity transaction redeeming LP into both the "+
			"underlying token and PT using the hosted SDK."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("marketAddress",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the token and PT")),
	mcp.WithString("amountLp",
		mcp.Required(),
		mcp.Description("LP amount to burn, in base units")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertTransferLiquidity = mcp.NewTool("convert_transfer_liquidity",
	mcp.WithDescription(
		"Build an unsigned transaction moving an LP position from one market to "+
			"another using the hosted SDK."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("fromMarket",
		mcp.Required(),
		mcp.Description("Market the LP position currently sits in")),
	mcp.WithString("toMarket",
		mcp.Required(),
		mcp.Description("Market to move the LP position into")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the new LP tokens")),
	mcp.WithString("amountLp",
		mcp.Required(),
		mcp.Description("LP amount to transfer, in base units")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

var ToolConvertTransferLiquidityZpi = mcp.NewTool("convert_transfer_liquidity_zpi",
	mcp.WithDescription(
		"Build an unsigned transaction moving an LP position between markets in "+
			"zero-price-impact mode."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("fromMarket",
		mcp.Required(),
		mcp.Description("Market the LP position currently sits in")),
	mcp.WithString("toMarket",
		mcp.Required(),
		mcp.Description("Market to move the LP position into")),
	mcp.WithString("receiver",
		mcp.Required(),
		mcp.Description("Address that receives the new LP tokens")),
	mcp.WithString("amountLp",
		mcp.Required(),
		mcp.Description("LP amount to transfer, in base units")),
	mcp.WithNumber("slippage",
		mcp.Description("Slippage tolerance as a fraction (default 0.005)"),
		mcp.DefaultNumber(0.005)),
)

// Analytics tools backed by the hosted core API. Responses are cached
// briefly, so repeated calls are cheap.

var ToolGetMarketsBatch = mcp.NewTool("get_markets_batch",
	mcp.WithDescription(
		"Fetch the top markets from several chains at once, ordered by liquidity. "+
			"Returns one flat list with APYs and liquidity per market."),
	mcp.WithArray("chainIds",
		mcp.Required(),
		mcp.Description("Chain ids to query, e.g. [1, 42161]"),
		mcp.Items(map[string]interface{}{"type": "number"})),
	mcp.WithNumber("limit",
		mcp.Description("Markets per chain (default 20)"),
		mcp.DefaultNumber(20)),
)

var ToolGetMarketDepth = mcp.NewTool("get_market_depth",
	mcp.WithDescription(
		"Get a market's liquidity distribution: total liquidity, PT and SY reserves, "+
			"utilization and the depth available within 1% of the current price."),
	mcp.WithString("marketAddress",
		mcp.Required(),
		mcp.Description("Pendle market address")),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
)

var ToolGetTrendingMarkets = mcp.NewTool("get_trending_markets",
	mcp.WithDescription(
		"Get the markets with the highest volume growth over a period."),
	mcp.WithNumber("chainId",
		mcp.Required(),
		mcp.Description("Chain id")),
	mcp.WithString("period",
		mcp.Description("Growth window: e.g. '1h', '24h', '7d' (default '24h')"),
		mcp.DefaultString("24h")),
)

var ToolGetProtocolRevenue = mcp.NewTool("get_protocol_revenue",
	mcp.WithDescription(
		"Get Pendle protocol revenue: total, last 24 hours, last 7 days and the "+
			"per-chain split. Omit chainId for the protocol-wide figures."),
	mcp.WithNumber("chainId",
		mcp.Description("Chain id to scope the figures to (optional)")),
)

var ToolGetSupportedChains = mcp.NewTool("get_supported_chains",
	mcp.WithDescription(
		"List the chains the hosted SDK serves, as a name to chain id table."),
)
