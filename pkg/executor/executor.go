package executor

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

// Status is a stage in the transaction lifecycle. A call moves forward
// only: BUILT, GAS_ESTIMATED, SIGNED, SUBMITTED, then exactly one of
// CONFIRMED, REVERTED or TIMED_OUT.
type Status string

const (
	StatusBuilt        Status = "BUILT"
	StatusGasEstimated Status = "GAS_ESTIMATED"
	StatusSigned       Status = "SIGNED"
	StatusSubmitted    Status = "SUBMITTED"
	StatusConfirmed    Status = "CONFIRMED"
	StatusReverted     Status = "REVERTED"
	StatusTimedOut     Status = "TIMED_OUT"
)

// Gas limit is the node's estimate plus a 20% buffer.
const (
	gasBufferNum = 120
	gasBufferDen = 100
)

// Defaults applied when Config leaves the windows zero.
const (
	DefaultConfirmTimeout = 120 * time.Second
	DefaultPollInterval   = 2 * time.Second
)

// Backend is the chain surface the executor depends on. *ethclient.Client
// satisfies it.
type Backend interface {
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
}

// Wallet signs transactions for one address.
type Wallet interface {
	Address() common.Address
	SignTx(tx *ethtypes.Transaction, chainID *big.Int) (*ethtypes.Transaction, error)
}

// Result reports how far a call got. TxHash is set from the SIGNED stage
// on, so a timed-out or reverted call can still be located on-chain.
type Result struct {
	Status            Status
	Trace             []Status
	TxHash            common.Hash
	GasEstimate       uint64
	GasLimit          uint64
	GasUsed           uint64
	BlockNumber       uint64
	EffectiveGasPrice *big.Int
}

func (r *Result) advance(s Status) {
	r.Status = s
	r.Trace = append(r.Trace, s)
}

// Config carries the executor's chain parameters. ChainID is required.
type Config struct {
	ChainID        *big.Int
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

// Executor submits built calls to the chain. Nonce and gas price are
// fetched fresh for every call and each call is submitted exactly once;
// there is no retry or replacement logic.
type Executor struct {
	backend        Backend
	wallet         Wallet
	chainID        *big.Int
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

// New builds an executor. wallet may be nil for read-only use; Execute
// then rejects every call while EstimateGas keeps working.
func New(backend Backend, wallet Wallet, cfg Config) (*Executor, error) {
	if backend == nil {
		return nil, types.NewInvalidParameters("backend", "must not be nil")
	}
	if cfg.ChainID == nil || cfg.ChainID.Sign() <= 0 {
		return nil, types.NewInvalidParameters("chainID", "must be a positive integer")
	}
	confirmTimeout := cfg.ConfirmTimeout
	if confirmTimeout <= 0 {
		confirmTimeout = DefaultConfirmTimeout
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Executor{
		backend:        backend,
		wallet:         wallet,
		chainID:        new(big.Int).Set(cfg.ChainID),
		confirmTimeout: confirmTimeout,
		pollInterval:   pollInterval,
	}, nil
}

// checkDeployed fails before any estimation when the target address is
// unset or has no code on this network.
func (e *Executor) checkDeployed(ctx context.Context, contract common.Address) error {
	if contract == (common.Address{}) {
		return types.NewNotDeployedError()
	}
	code, err := e.backend.CodeAt(ctx, contract, nil)
	if err != nil {
		return types.NewContractError("failed to check contract code", err)
	}
	if len(code) == 0 {
		return types.NewNotDeployedError()
	}
	return nil
}

// EstimateGas runs the deployment check and gas estimation for a built
// call without signing or submitting anything. It returns the node's
// estimate and the buffered limit a submission would use.
func (e *Executor) EstimateGas(ctx context.Context, desc *types.CallDescriptor) (uint64, uint64, error) {
	if desc == nil || len(desc.Data) == 0 {
		return 0, 0, types.NewInvalidParameters("call", "must be a built call descriptor")
	}
	if err := e.checkDeployed(ctx, desc.Contract); err != nil {
		return 0, 0, err
	}

	msg := ethereum.CallMsg{
		To:    &desc.Contract,
		Value: desc.Value,
		Data:  desc.Data,
	}
	if e.wallet != nil {
		msg.From = e.wallet.Address()
	}
	estimate, err := e.backend.EstimateGas(ctx, msg)
	if err != nil {
		return 0, 0, types.TranslateRevert(err)
	}
	return estimate, estimate * gasBufferNum / gasBufferDen, nil
}

// Execute drives a built call through the full lifecycle. The returned
// Result is always non-nil and its Trace records every stage entered,
// including the terminal one. Reverts and timeouts return both the
// Result and a classified error carrying the transaction hash.
func (e *Executor) Execute(ctx context.Context, desc *types.CallDescriptor) (*Result, error) {
	res := &Result{Status: StatusBuilt, Trace: []Status{StatusBuilt}}

	if desc == nil || len(desc.Data) == 0 {
		return res, types.NewInvalidParameters("call", "must be a built call descriptor")
	}
	if e.wallet == nil {
		return res, types.NewInvalidParameters("wallet", "no signing key configured, transaction execution is disabled")
	}
	if err := e.checkDeployed(ctx, desc.Contract); err != nil {
		return res, err
	}

	from := e.wallet.Address()
	value := desc.Value
	if value == nil {
		value = new(big.Int)
	}

	estimate, err := e.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &desc.Contract,
		Value: value,
		Data:  desc.Data,
	})
	if err != nil {
		return res, types.TranslateRevert(err)
	}
	res.GasEstimate = estimate
	res.GasLimit = estimate * gasBufferNum / gasBufferDen
	res.advance(StatusGasEstimated)

	nonce, err := e.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return res, types.NewContractError("failed to fetch nonce", err)
	}
	gasPrice, err := e.backend.SuggestGasPrice(ctx)
	if err != nil {
		return res, types.NewContractError("failed to fetch gas price", err)
	}

	tx := ethtypes.NewTransaction(nonce, desc.Contract, value, res.GasLimit, gasPrice, desc.Data)
	signed, err := e.wallet.SignTx(tx, e.chainID)
	if err != nil {
		return res, types.NewContractError("failed to sign transaction", err)
	}
	res.advance(StatusSigned)
	res.TxHash = signed.Hash()

	if err := e.backend.SendTransaction(ctx, signed); err != nil {
		translated := types.TranslateRevert(err)
		translated.TxHash = res.TxHash.Hex()
		return res, translated
	}
	res.advance(StatusSubmitted)

	receipt, err := e.waitForReceipt(ctx, res.TxHash)
	if err != nil {
		res.advance(StatusTimedOut)
		return res, types.NewTimeoutError(res.TxHash.Hex(), err)
	}

	res.GasUsed = receipt.GasUsed
	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if receipt.EffectiveGasPrice != nil {
		res.EffectiveGasPrice = new(big.Int).Set(receipt.EffectiveGasPrice)
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		res.advance(StatusReverted)
		return res, &types.Error{
			Kind:    types.KindContract,
			Message: "transaction reverted on-chain",
			TxHash:  res.TxHash.Hex(),
		}
	}

	res.advance(StatusConfirmed)
	return res, nil
}

// waitForReceipt polls on a fixed interval until the receipt appears or
// the confirmation window closes. Transient lookup errors keep polling;
// only the window closing ends the wait.
func (e *Executor) waitForReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, e.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := e.backend.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
