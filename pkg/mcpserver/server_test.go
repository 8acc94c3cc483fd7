package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/adapters/chain"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/config"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/domain"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/service"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/executor"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/router"
)

const (
	testRouter   = "0x888888888889758F76e7103c6CbF23ABbF58F946"
	testWallet   = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testMarket   = "0x27b1dacd74688af24a64bd3c9c1b143118740784"
	testToken    = "0xaf88d065e77c8cc2239327c5edb3a432268e5831"
	testReceiver = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
)

var testContractCode = []byte{0x60, 0x80, 0x60, 0x40}

// stubBackend fakes the chain surface behind the executor.
type stubBackend struct {
	code        []byte
	codeErr     error
	gasEstimate uint64
	estimateErr error
	nonce       uint64
	sendErr     error
	receipt     *ethtypes.Receipt

	sends int
}

func (b *stubBackend) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return b.code, b.codeErr
}

func (b *stubBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	if b.estimateErr != nil {
		return 0, b.estimateErr
	}
	return b.gasEstimate, nil
}

func (b *stubBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return b.nonce, nil
}

func (b *stubBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (b *stubBackend) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	b.sends++
	return b.sendErr
}

func (b *stubBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	if b.receipt == nil {
		return nil, ethereum.NotFound
	}
	return b.receipt, nil
}

type stubWallet struct {
	addr common.Address
}

func (w *stubWallet) Address() common.Address {
	return w.addr
}

func (w *stubWallet) SignTx(tx *ethtypes.Transaction, chainID *big.Int) (*ethtypes.Transaction, error) {
	return tx, nil
}

// stubPreparer records the last request per operation and returns a
// canned prepared transaction.
type stubPreparer struct {
	prepared *domain.PreparedTransaction
	err      error

	swapReq         *domain.SwapRequest
	addReq          *domain.AddLiquidityRequest
	removeReq       *domain.RemoveLiquidityRequest
	mintPtYtReq     *domain.MintPtYtRequest
	redeemPtYtReq   *domain.RedeemPtYtRequest
	mintSyReq       *domain.MintSyRequest
	redeemSyReq     *domain.RedeemSyRequest
	rolloverReq     *domain.RolloverPtRequest
	addDualReq      *domain.AddLiquidityDualRequest
	removeDualReq   *domain.RemoveLiquidityDualRequest
	transferReq     *domain.TransferLiquidityRequest
}

func (p *stubPreparer) Swap(ctx context.Context, req domain.SwapRequest) (*domain.PreparedTransaction, error) {
	p.swapReq = &req
	return p.prepared, p.err
}

func (p *stubPreparer) AddLiquidity(ctx context.Context, req domain.AddLiquidityRequest) (*domain.PreparedTransaction, error) {
	p.addReq = &req
	return p.prepared, p.err
}

func (p *stubPreparer) RemoveLiquidity(ctx context.Context, req domain.RemoveLiquidityRequest) (*domain.PreparedTransaction, error) {
	p.removeReq = &req
	return p.prepared, p.err
}

func (p *stubPreparer) MintPtYt(ctx context.Context, req domain.MintPtYtRequest) (*domain.PreparedTransaction, error) {
	p.mintPtYtReq = &req
	return p.prepared, p.err
}

func (p *stubPreparer) RedeemPtYt(ctx context.Context, req domain.RedeemPtYtRequest) (*domain.PreparedTransaction, error) {
	p.redeemPtYtReq = &req
	return p.prepared, p.err
}

func (p *stubPreparer) MintSy(ctx context.Context, req domain.MintSyRequest) (*domain.PreparedTransaction, error) {
	p.mintSyReq = &req
	return p.prepared, p.err
}

func (p *stubPreparer) RedeemSy(ctx context.Context, req domain.RedeemSyRequest) (*domain.PreparedTransaction, error) {
	p.redeemSyReq = &req
	return p.prepared, p.err
}

func (p *stubPreparer) RolloverPt(ctx context.Context, req domain.RolloverPtRequest) (*domain.PreparedTransaction, error) {
	p.rolloverReq = &req
	return p.prepared, p.err
}

func (p *stubPreparer) AddLiquidityDual(ctx context.Context, req domain.AddLiquidityDualRequest) (*domain.PreparedTransaction, error) {
	p.addDualReq = &req
	return p.prepared, p.err
}

func (p *stubPreparer) RemoveLiquidityDual(ctx context.Context, req domain.RemoveLiquidityDualRequest) (*domain.PreparedTransaction, error) {
	p.removeDualReq = &req
	return p.prepared, p.err
}

func (p *stubPreparer) TransferLiquidity(ctx context.Context, req domain.TransferLiquidityRequest) (*domain.PreparedTransaction, error) {
	p.transferReq = &req
	return p.prepared, p.err
}

// stubMarkets fakes the hosted analytics service.
type stubMarkets struct {
	markets     map[int64][]domain.Market
	marketsErr  map[int64]error
	doc         map[string]interface{}
	docErr      error
	trending    []domain.Market
	trendingErr error
	revenue     *domain.RevenueReport
	revenueErr  error

	lastPeriod string
	lastLimit  int
}

func (m *stubMarkets) Markets(ctx context.Context, chainID int64, limit int) ([]domain.Market, error) {
	m.lastLimit = limit
	if err := m.marketsErr[chainID]; err != nil {
		return nil, err
	}
	return m.markets[chainID], nil
}

func (m *stubMarkets) MarketData(ctx context.Context, chainID int64, market string) (map[string]interface{}, error) {
	return m.doc, m.docErr
}

func (m *stubMarkets) TrendingMarkets(ctx context.Context, chainID int64, period string) ([]domain.Market, error) {
	m.lastPeriod = period
	return m.trending, m.trendingErr
}

func (m *stubMarkets) ProtocolRevenue(ctx context.Context, chainID int64) (*domain.RevenueReport, error) {
	return m.revenue, m.revenueErr
}

func (m *stubMarkets) SupportedChains() []domain.ChainInfo {
	return []domain.ChainInfo{
		{Name: "Ethereum", ChainID: 1},
		{Name: "Arbitrum", ChainID: 42161},
		{Name: "Optimism", ChainID: 10},
		{Name: "BSC", ChainID: 56},
		{Name: "Mantle", ChainID: 5000},
	}
}

type stubTokenReader struct {
	tokens chain.MarketTokens
	err    error
}

func (r *stubTokenReader) ReadMarketTokens(ctx context.Context, market common.Address) (chain.MarketTokens, error) {
	return r.tokens, r.err
}

// stubChainReader backs the info service.
type stubChainReader struct {
	balance *big.Int
	nonce   uint64
	hasCode bool
}

func (r *stubChainReader) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	if r.balance == nil {
		return big.NewInt(0), nil
	}
	return r.balance, nil
}

func (r *stubChainReader) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return r.nonce, nil
}

func (r *stubChainReader) HasCode(ctx context.Context, addr common.Address) (bool, error) {
	return r.hasCode, nil
}

type harness struct {
	server   *Server
	backend  *stubBackend
	preparer *stubPreparer
	markets  *stubMarkets
	tokens   *stubTokenReader
}

// newHarness wires a server against stubs. withWallet false runs the
// agent read-only.
func newHarness(t *testing.T, withWallet bool) *harness {
	t.Helper()

	routerAddr := common.HexToAddress(testRouter)
	walletAddr := common.Address{}
	var wallet executor.Wallet
	if withWallet {
		walletAddr = common.HexToAddress(testWallet)
		wallet = &stubWallet{addr: walletAddr}
	}

	builder, err := router.NewBuilder(routerAddr)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}

	backend := &stubBackend{
		code:        testContractCode,
		gasEstimate: 100_000,
		nonce:       7,
		receipt: &ethtypes.Receipt{
			Status:            ethtypes.ReceiptStatusSuccessful,
			GasUsed:           95_000,
			BlockNumber:       big.NewInt(12345),
			EffectiveGasPrice: big.NewInt(2_000_000_000),
		},
	}
	exec, err := executor.New(backend, wallet, executor.Config{
		ChainID:        big.NewInt(421614),
		ConfirmTimeout: time.Second,
		PollInterval:   time.Millisecond,
	})
	if err != nil {
		t.Fatalf("executor.New() error = %v", err)
	}

	preparer := &stubPreparer{
		prepared: &domain.PreparedTransaction{
			Transaction: domain.UnsignedCall{
				To:    testRouter,
				Data:  "0xabcdef",
				Value: "0",
			},
			AmountOut:   "995000",
			PriceImpact: "0.0100%",
		},
	}
	markets := &stubMarkets{}
	tokens := &stubTokenReader{
		tokens: chain.MarketTokens{
			Sy: common.HexToAddress("0x0000000000000000000000000000000000000011"),
			Pt: common.HexToAddress("0x0000000000000000000000000000000000000022"),
			Yt: common.HexToAddress("0x0000000000000000000000000000000000000033"),
		},
	}

	cfg := &config.Config{
		ChainID:          421614,
		NetworkName:      "Arbitrum Sepolia",
		BlockExplorerURL: "https://sepolia.arbiscan.io",
		TokenDecimals: map[common.Address]uint8{
			common.HexToAddress(testToken): 6,
		},
	}

	info := service.NewInfoService(
		&stubChainReader{balance: big.NewInt(1_500_000_000_000_000_000), nonce: 7, hasCode: true},
		service.Deployment{
			Network:     cfg.NetworkName,
			ChainID:     cfg.ChainID,
			ExplorerURL: cfg.BlockExplorerURL,
			Router:      routerAddr,
			Wallet:      walletAddr,
		})

	srv := New(Deps{
		Builder:  builder,
		Executor: exec,
		Tokens:   tokens,
		Info:     info,
		Markets:  markets,
		Preparer: preparer,
		Config:   cfg,
		Wallet:   walletAddr,
	})
	return &harness{server: srv, backend: backend, preparer: preparer, markets: markets, tokens: tokens}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want mcp.TextContent", res.Content[0])
	}
	return text.Text
}

func decodeResult(t *testing.T, res *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("failed to decode result %q: %v", resultText(t, res), err)
	}
	return out
}

// errorDetail asserts the result is an error and returns its error object.
func errorDetail(t *testing.T, res *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	if !res.IsError {
		t.Fatalf("expected error result, got %s", resultText(t, res))
	}
	payload := decodeResult(t, res)
	if payload["status"] != "error" {
		t.Fatalf("status = %v, want error", payload["status"])
	}
	detail, ok := payload["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("error payload missing error object: %v", payload)
	}
	return detail
}

func TestRegistryCoversAllTools(t *testing.T) {
	h := newHarness(t, true)

	want := []string{
		"add_liquidity_with_sy_and_pt",
		"add_liquidity_with_sy_only",
		"add_liquidity_with_token",
		"remove_liquidity_to_sy_and_pt",
		"remove_liquidity_to_sy_only",
		"remove_liquidity_to_token",
		"mint_py_tokens",
		"redeem_py_tokens",
		"estimate_gas_for_liquidity_addition",
		"get_wallet_info",
		"get_contract_info",
		"get_market_tokens",
		"create_approximation_params",
		"get_swap_types_names",
		"convert_to_base_units",
		"convert_swap",
		"convert_add_liquidity",
		"convert_add_liquidity_zpi",
		"convert_remove_liquidity",
		"convert_mint_pt_yt",
		"convert_redeem_pt_yt",
		"convert_mint_sy",
		"convert_redeem_sy",
		"convert_rollover_pt",
		"convert_add_liquidity_dual",
		"convert_remove_liquidity_dual",
		"convert_transfer_liquidity",
		"convert_transfer_liquidity_zpi",
		"get_markets_batch",
		"get_market_depth",
		"get_trending_markets",
		"get_protocol_revenue",
		"get_supported_chains",
	}

	names := h.server.ToolNames()
	if len(names) != len(want) {
		t.Fatalf("registered %d tools, want %d: %v", len(names), len(want), names)
	}
	registered := make(map[string]bool, len(names))
	for _, name := range names {
		registered[name] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("tool %q not registered", name)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("ToolNames() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestInvokeUnknownTool(t *testing.T) {
	h := newHarness(t, true)

	res, err := h.server.Invoke(context.Background(), "swap_everything", nil)
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	detail := errorDetail(t, res)
	if detail["kind"] != "invalid_parameters" {
		t.Errorf("kind = %v, want invalid_parameters", detail["kind"])
	}
	msg, _ := detail["message"].(string)
	if !contains(msg, `unknown tool "swap_everything"`) {
		t.Errorf("message %q does not name the unknown tool", msg)
	}
	if !contains(msg, "convert_swap") || !contains(msg, "add_liquidity_with_sy_and_pt") {
		t.Errorf("message %q does not list the supported tools", msg)
	}
}

func TestAddLiquidityDualExecutes(t *testing.T) {
	h := newHarness(t, true)

	res, err := h.server.Invoke(context.Background(), "add_liquidity_with_sy_and_pt", map[string]interface{}{
		"receiver":       testReceiver,
		"market":         testMarket,
		"net_sy_desired": "1000000000000000000",
		"net_pt_desired": "500000000000000000",
		"min_lp_out":     "750000000000000000",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}

	payload := decodeResult(t, res)
	if payload["status"] != "success" {
		t.Errorf("status = %v, want success", payload["status"])
	}
	if payload["method"] != "addLiquidityDualSyAndPt" {
		t.Errorf("method = %v, want addLiquidityDualSyAndPt", payload["method"])
	}
	if payload["gas_used"] != float64(95_000) {
		t.Errorf("gas_used = %v, want 95000", payload["gas_used"])
	}
	if payload["block_number"] != float64(12345) {
		t.Errorf("block_number = %v, want 12345", payload["block_number"])
	}
	hash, _ := payload["tx_hash"].(string)
	if len(hash) != 66 || hash[:2] != "0x" {
		t.Errorf("tx_hash = %q, want 0x-prefixed hash", hash)
	}
	explorer, _ := payload["explorer_url"].(string)
	if explorer != "https://sepolia.arbiscan.io/tx/"+hash {
		t.Errorf("explorer_url = %q", explorer)
	}

	trace, _ := payload["trace"].([]interface{})
	if len(trace) == 0 || trace[len(trace)-1] != "CONFIRMED" {
		t.Errorf("trace = %v, want to end in CONFIRMED", trace)
	}
	if h.backend.sends != 1 {
		t.Errorf("sends = %d, want exactly one submission", h.backend.sends)
	}
}

func TestTransactionToolRejectsBadAddress(t *testing.T) {
	h := newHarness(t, true)

	res, err := h.server.Invoke(context.Background(), "add_liquidity_with_sy_and_pt", map[string]interface{}{
		"receiver":       "not-an-address",
		"market":         testMarket,
		"net_sy_desired": "1",
		"net_pt_desired": "1",
		"min_lp_out":     "0",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	detail := errorDetail(t, res)
	if detail["kind"] != "invalid_parameters" {
		t.Errorf("kind = %v, want invalid_parameters", detail["kind"])
	}
	if detail["field"] != "receiver" {
		t.Errorf("field = %v, want receiver", detail["field"])
	}
	if h.backend.sends != 0 {
		t.Errorf("sends = %d, validation must not reach the network", h.backend.sends)
	}
}

func TestTransactionToolRejectsChecksumViolation(t *testing.T) {
	h := newHarness(t, true)

	// Mixed case with one flipped letter fails EIP-55.
	bad := "0xF39fd6e51aad88F6F4ce6aB8827279cffFb92266"
	res, err := h.server.Invoke(context.Background(), "mint_py_tokens", map[string]interface{}{
		"receiver":   bad,
		"yt_address": testMarket,
		"net_sy_in":  "1000",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	detail := errorDetail(t, res)
	msg, _ := detail["message"].(string)
	if !contains(msg, "EIP-55") {
		t.Errorf("message = %q, want checksum rejection", msg)
	}
}

func TestTransactionToolFailsFastWithoutDeployment(t *testing.T) {
	h := newHarness(t, true)
	h.backend.code = nil

	res, err := h.server.Invoke(context.Background(), "remove_liquidity_to_sy_only", map[string]interface{}{
		"receiver":         testReceiver,
		"market":           testMarket,
		"net_lp_to_remove": "1000",
		"min_sy_out":       "0",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	detail := errorDetail(t, res)
	if detail["kind"] != "contract_error" {
		t.Errorf("kind = %v, want contract_error", detail["kind"])
	}
	if detail["message"] != "contract not deployed on this network" {
		t.Errorf("message = %v", detail["message"])
	}
	if h.backend.sends != 0 {
		t.Errorf("sends = %d, deployment check must run before submission", h.backend.sends)
	}
}

func TestTransactionToolTranslatesLiquidityRevert(t *testing.T) {
	h := newHarness(t, true)
	h.backend.estimateErr = errors.New("execution reverted: MarketInsufficientSy")

	res, err := h.server.Invoke(context.Background(), "add_liquidity_with_sy_only", map[string]interface{}{
		"receiver":   testReceiver,
		"market":     testMarket,
		"net_sy_in":  "1000000",
		"min_lp_out": "0",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	detail := errorDetail(t, res)
	if detail["kind"] != "insufficient_liquidity" {
		t.Errorf("kind = %v, want insufficient_liquidity", detail["kind"])
	}
	if detail["revert_reason"] != "MarketInsufficientSy" {
		t.Errorf("revert_reason = %v", detail["revert_reason"])
	}
}

func TestTransactionToolsRequireSigningKey(t *testing.T) {
	h := newHarness(t, false)

	res, err := h.server.Invoke(context.Background(), "redeem_py_tokens", map[string]interface{}{
		"receiver":   testReceiver,
		"yt_address": testMarket,
		"net_py_in":  "1000",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	detail := errorDetail(t, res)
	if detail["kind"] != "invalid_parameters" {
		t.Errorf("kind = %v, want invalid_parameters", detail["kind"])
	}
	msg, _ := detail["message"].(string)
	if !contains(msg, "no signing key") {
		t.Errorf("message = %q, want signing key rejection", msg)
	}
}

func TestEstimateGasTool(t *testing.T) {
	h := newHarness(t, true)
	h.backend.gasEstimate = 250_000

	res, err := h.server.Invoke(context.Background(), "estimate_gas_for_liquidity_addition", map[string]interface{}{
		"market":         testMarket,
		"net_sy_desired": "1000000000000000000",
		"net_pt_desired": "500000000000000000",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	payload := decodeResult(t, res)
	if payload["estimated_gas"] != float64(250_000) {
		t.Errorf("estimated_gas = %v, want 250000", payload["estimated_gas"])
	}
	if payload["estimated_gas_with_buffer"] != float64(300_000) {
		t.Errorf("estimated_gas_with_buffer = %v, want 300000", payload["estimated_gas_with_buffer"])
	}
	if h.backend.sends != 0 {
		t.Errorf("sends = %d, estimation must not submit", h.backend.sends)
	}
}

func TestEstimateGasToolNeedsWallet(t *testing.T) {
	h := newHarness(t, false)

	res, err := h.server.Invoke(context.Background(), "estimate_gas_for_liquidity_addition", map[string]interface{}{
		"market":         testMarket,
		"net_sy_desired": "1",
		"net_pt_desired": "1",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	detail := errorDetail(t, res)
	if detail["field"] != "wallet" {
		t.Errorf("field = %v, want wallet", detail["field"])
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsHelper(s, substr))
}

func containsHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
