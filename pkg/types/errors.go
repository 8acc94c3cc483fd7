package types

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies every error the agent reports. The set is closed:
// callers switch on it exhaustively and never see a raw chain error.
type Kind uint8

const (
	// KindInvalidParameters marks input rejected before any network traffic.
	KindInvalidParameters Kind = iota
	// KindContract marks on-chain failures: missing deployments, reverts,
	// estimation failures, RPC transport errors.
	KindContract
	// KindInsufficientLiquidity marks reverts caused by pool depth.
	KindInsufficientLiquidity
	// KindTimeout marks a confirmation window that elapsed without a receipt.
	KindTimeout
)

var kindNames = []string{
	"invalid_parameters",
	"contract_error",
	"insufficient_liquidity",
	"timeout",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Error is the single error type crossing the agent's boundaries. Kind is
// always set; the remaining fields are populated where they apply: Field
// for parameter violations, RevertReason for decoded contract reverts,
// TxHash once a transaction has been submitted.
type Error struct {
	Kind         Kind
	Message      string
	Field        string
	RevertReason string
	TxHash       string
	Cause        error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	if e.RevertReason != "" {
		return fmt.Sprintf("%s: %s (revert: %s)", e.Kind, e.Message, e.RevertReason)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewInvalidParameters reports a parameter violation detected locally.
func NewInvalidParameters(field, constraint string) *Error {
	return &Error{Kind: KindInvalidParameters, Field: field, Message: constraint}
}

// NewContractError reports an on-chain or RPC failure.
func NewContractError(message string, cause error) *Error {
	return &Error{Kind: KindContract, Message: message, Cause: cause}
}

// NewNotDeployedError reports a call against an address with no code.
func NewNotDeployedError() *Error {
	return &Error{Kind: KindContract, Message: "contract not deployed on this network"}
}

// NewInsufficientLiquidityError reports a revert caused by pool depth.
func NewInsufficientLiquidityError(message, revertReason string, cause error) *Error {
	return &Error{Kind: KindInsufficientLiquidity, Message: message, RevertReason: revertReason, Cause: cause}
}

// NewTimeoutError reports an expired confirmation window. The transaction
// may still confirm later, so the hash travels with the error.
func NewTimeoutError(txHash string, cause error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: "transaction not confirmed within the timeout window; it may still confirm later",
		TxHash:  txHash,
		Cause:   cause,
	}
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf extracts the kind from an error chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Known router revert identifiers and the kinds they translate to,
// matched in this order.
var revertKinds = []struct {
	ident string
	kind  Kind
}{
	{"MarketExpired", KindContract},
	{"MarketZeroAmountsInput", KindInvalidParameters},
	{"MarketZeroAmountsOutput", KindInvalidParameters},
	{"MarketZeroTotalPtOrTotalSy", KindInsufficientLiquidity},
	{"MarketInsufficientPt", KindInsufficientLiquidity},
	{"MarketInsufficientSy", KindInsufficientLiquidity},
	{"ApproxFail", KindInsufficientLiquidity},
}

// TranslateRevert maps a gas-estimation or submission failure onto the
// error taxonomy. Recognized router revert identifiers take priority,
// then a generic liquidity check, then the contract-error fallback.
// The original error is always preserved as the cause.
func TranslateRevert(err error) *Error {
	if err == nil {
		return nil
	}
	var translated *Error
	if errors.As(err, &translated) {
		return translated
	}

	msg := err.Error()
	for _, entry := range revertKinds {
		if !strings.Contains(msg, entry.ident) {
			continue
		}
		out := &Error{Kind: entry.kind, RevertReason: entry.ident, Cause: err}
		switch entry.kind {
		case KindInvalidParameters:
			out.Message = "contract rejected the call arguments"
		case KindInsufficientLiquidity:
			out.Message = "market cannot absorb the requested trade"
		default:
			out.Message = "contract rejected the call"
		}
		return out
	}

	if strings.Contains(strings.ToLower(msg), "insufficient") {
		return &Error{
			Kind:         KindInsufficientLiquidity,
			Message:      "market cannot absorb the requested trade",
			RevertReason: revertReason(msg),
			Cause:        err,
		}
	}

	return &Error{
		Kind:         KindContract,
		Message:      "call would revert",
		RevertReason: revertReason(msg),
		Cause:        err,
	}
}

// revertReason extracts the human-readable reason from a node error
// string such as "execution reverted: Market: expired".
func revertReason(msg string) string {
	for _, marker := range []string{"execution reverted:", "revert:"} {
		if idx := strings.Index(msg, marker); idx >= 0 {
			return strings.TrimSpace(msg[idx+len(marker):])
		}
	}
	if strings.Contains(msg, "execution reverted") {
		return "execution reverted"
	}
	return ""
}
