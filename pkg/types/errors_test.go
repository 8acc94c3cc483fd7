package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "parameter error includes field",
			err:  NewInvalidParameters("netSyIn", "must be greater than zero"),
			want: "invalid_parameters: netSyIn: must be greater than zero",
		},
		{
			name: "contract error without revert reason",
			err:  NewContractError("rpc unreachable", errors.New("dial tcp: timeout")),
			want: "contract_error: rpc unreachable",
		},
		{
			name: "revert reason is appended",
			err: &Error{
				Kind:         KindContract,
				Message:      "call would revert",
				RevertReason: "Market: expired",
			},
			want: "contract_error: call would revert (revert: Market: expired)",
		},
		{
			name: "not deployed",
			err:  NewNotDeployedError(),
			want: "contract_error: contract not deployed on this network",
		},
		{
			name: "timeout carries no hash in message",
			err:  NewTimeoutError("0xabc", nil),
			want: "timeout: transaction not confirmed within the timeout window; it may still confirm later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("execution reverted")
	err := NewContractError("estimation failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find the cause")
	}

	wrapped := fmt.Errorf("add liquidity: %w", err)
	if !IsKind(wrapped, KindContract) {
		t.Error("IsKind() did not find contract_error through wrapping")
	}

	kind, ok := KindOf(wrapped)
	if !ok || kind != KindContract {
		t.Errorf("KindOf() = %v, %v, want contract_error, true", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf() matched a plain error")
	}
}

func TestTranslateRevert(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   Kind
		wantReason string
	}{
		{
			name:       "market expired",
			err:        errors.New("execution reverted: MarketExpired()"),
			wantKind:   KindContract,
			wantReason: "MarketExpired",
		},
		{
			name:       "zero amounts",
			err:        errors.New("execution reverted: MarketZeroAmountsInput()"),
			wantKind:   KindInvalidParameters,
			wantReason: "MarketZeroAmountsInput",
		},
		{
			name:       "insufficient pt",
			err:        errors.New("execution reverted: MarketInsufficientPtForTrade()"),
			wantKind:   KindInsufficientLiquidity,
			wantReason: "MarketInsufficientPt",
		},
		{
			name:       "approximation failed",
			err:        errors.New("execution reverted: ApproxFail()"),
			wantKind:   KindInsufficientLiquidity,
			wantReason: "ApproxFail",
		},
		{
			name:     "generic insufficient message",
			err:      errors.New("insufficient funds for gas * price + value"),
			wantKind: KindInsufficientLiquidity,
		},
		{
			name:       "plain revert keeps the node reason",
			err:        errors.New("execution reverted: SY zero deposit"),
			wantKind:   KindContract,
			wantReason: "SY zero deposit",
		},
		{
			name:     "opaque rpc failure",
			err:      errors.New("context deadline exceeded"),
			wantKind: KindContract,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateRevert(tt.err)
			if got == nil {
				t.Fatal("TranslateRevert() returned nil")
			}
			if got.Kind != tt.wantKind {
				t.Errorf("TranslateRevert() kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if tt.wantReason != "" && !contains(got.RevertReason, tt.wantReason) {
				t.Errorf("TranslateRevert() reason = %q, want containing %q", got.RevertReason, tt.wantReason)
			}
			if !errors.Is(got, tt.err) {
				t.Error("TranslateRevert() lost the original cause")
			}
		})
	}
}

func TestTranslateRevertPassthrough(t *testing.T) {
	if TranslateRevert(nil) != nil {
		t.Error("TranslateRevert(nil) should be nil")
	}

	original := NewTimeoutError("0xdead", nil)
	wrapped := fmt.Errorf("confirm: %w", original)
	got := TranslateRevert(wrapped)
	if got != original {
		t.Errorf("TranslateRevert() re-translated an already classified error: %v", got)
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
