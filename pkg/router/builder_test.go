package router

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

var (
	testRouter   = common.HexToAddress("0x888888888889758F76e7103c6CbF23ABbF58F946")
	testReceiver = common.HexToAddress("0x742d35Cc6634C0532925a3b844Bc9e7595f2b21D")
	testMarket   = common.HexToAddress("0x8621c587059357d6C669f72dA3Bfe1398fc0D0B5")
	testYt       = common.HexToAddress("0x1c085D31AEb817b87cbD720bE964a4e233A8940a")
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder(testRouter)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	return b
}

func TestMethodSelectors(t *testing.T) {
	parsed, err := ParseRouterABI()
	if err != nil {
		t.Fatalf("ParseRouterABI() error = %v", err)
	}

	for method, signature := range MethodSignatures {
		m, ok := parsed.Methods[method]
		if !ok {
			t.Errorf("method %s missing from parsed ABI", method)
			continue
		}
		want := crypto.Keccak256([]byte(signature))[:4]
		if !bytes.Equal(m.ID, want) {
			t.Errorf("selector mismatch for %s: abi %x, signature %x", method, m.ID, want)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	b := newTestBuilder(t)

	op := AddLiquiditySingleSy{
		Receiver: testReceiver,
		Market:   testMarket,
		NetSyIn:  big.NewInt(1_000_000),
		MinLpOut: big.NewInt(0),
		Approx:   types.DefaultApproxParams(),
	}

	first, err := b.Build(op)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := b.Build(op)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !bytes.Equal(first.Data, second.Data) {
		t.Error("identical operations produced different calldata")
	}
	if first.Contract != testRouter {
		t.Errorf("descriptor contract = %s, want %s", first.Contract.Hex(), testRouter.Hex())
	}
	if first.Method != MethodAddLiquiditySingleSy {
		t.Errorf("descriptor method = %s, want %s", first.Method, MethodAddLiquiditySingleSy)
	}
	if first.Value.Sign() != 0 {
		t.Errorf("descriptor value = %s, want 0", first.Value)
	}
}

func TestBuildAddLiquidityDualRoundTrip(t *testing.T) {
	b := newTestBuilder(t)
	e18 := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	desc, err := b.Build(AddLiquidityDualSyAndPt{
		Receiver:     testReceiver,
		Market:       testMarket,
		NetSyDesired: new(big.Int).Set(e18),
		NetPtDesired: new(big.Int).Set(e18),
		MinLpOut:     big.NewInt(0),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	parsed, err := ParseRouterABI()
	if err != nil {
		t.Fatalf("ParseRouterABI() error = %v", err)
	}
	method := parsed.Methods[MethodAddLiquidityDualSyAndPt]

	if !bytes.Equal(desc.Data[:4], method.ID) {
		t.Fatalf("calldata selector = %x, want %x", desc.Data[:4], method.ID)
	}

	values, err := method.Inputs.Unpack(desc.Data[4:])
	if err != nil {
		t.Fatalf("Unpack() error = %v", err)
	}
	if got := values[0].(common.Address); got != testReceiver {
		t.Errorf("receiver = %s, want %s", got.Hex(), testReceiver.Hex())
	}
	if got := values[1].(common.Address); got != testMarket {
		t.Errorf("market = %s, want %s", got.Hex(), testMarket.Hex())
	}
	if got := values[2].(*big.Int); got.Cmp(e18) != 0 {
		t.Errorf("netSyDesired = %s, want %s", got, e18)
	}
	if got := values[4].(*big.Int); got.Sign() != 0 {
		t.Errorf("minLpOut = %s, want 0", got)
	}
}

func TestBuildValidation(t *testing.T) {
	b := newTestBuilder(t)

	tests := []struct {
		name   string
		op     Operation
		errMsg string
	}{
		{
			name: "dual add rejects zero receiver",
			op: AddLiquidityDualSyAndPt{
				Market:       testMarket,
				NetSyDesired: big.NewInt(1),
				NetPtDesired: big.NewInt(1),
				MinLpOut:     big.NewInt(0),
			},
			errMsg: "receiver",
		},
		{
			name: "dual add rejects zero sy amount",
			op: AddLiquidityDualSyAndPt{
				Receiver:     testReceiver,
				Market:       testMarket,
				NetSyDesired: big.NewInt(0),
				NetPtDesired: big.NewInt(1),
				MinLpOut:     big.NewInt(0),
			},
			errMsg: "netSyDesired",
		},
		{
			name: "first violated field wins",
			op: AddLiquidityDualSyAndPt{
				NetSyDesired: big.NewInt(0),
				NetPtDesired: big.NewInt(0),
			},
			errMsg: "receiver",
		},
		{
			name: "single sy add rejects zero input",
			op: AddLiquiditySingleSy{
				Receiver: testReceiver,
				Market:   testMarket,
				NetSyIn:  big.NewInt(0),
				MinLpOut: big.NewInt(0),
				Approx:   types.DefaultApproxParams(),
			},
			errMsg: "netSyIn",
		},
		{
			name: "single sy add rejects unbuilt approx params",
			op: AddLiquiditySingleSy{
				Receiver: testReceiver,
				Market:   testMarket,
				NetSyIn:  big.NewInt(1),
				MinLpOut: big.NewInt(0),
			},
			errMsg: "approxParams",
		},
		{
			name: "token add rejects unbuilt input",
			op: AddLiquiditySingleToken{
				Receiver: testReceiver,
				Market:   testMarket,
				MinLpOut: big.NewInt(0),
				Approx:   types.DefaultApproxParams(),
			},
			errMsg: "input",
		},
		{
			name: "remove dual rejects zero lp",
			op: RemoveLiquidityDualSyAndPt{
				Receiver:      testReceiver,
				Market:        testMarket,
				NetLpToRemove: big.NewInt(0),
				MinSyOut:      big.NewInt(0),
				MinPtOut:      big.NewInt(0),
			},
			errMsg: "netLpToRemove",
		},
		{
			name: "remove single token rejects unbuilt output",
			op: RemoveLiquiditySingleToken{
				Receiver:      testReceiver,
				Market:        testMarket,
				NetLpToRemove: big.NewInt(1),
			},
			errMsg: "output",
		},
		{
			name: "mint rejects zero sy",
			op: MintPyFromSy{
				Receiver: testReceiver,
				Yt:       testYt,
				NetSyIn:  big.NewInt(0),
				MinPyOut: big.NewInt(0),
			},
			errMsg: "netSyIn",
		},
		{
			name: "redeem rejects nil py amount",
			op: RedeemPyToSy{
				Receiver: testReceiver,
				Yt:       testYt,
				MinSyOut: big.NewInt(0),
			},
			errMsg: "netPyIn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := b.Build(tt.op)
			if err == nil {
				t.Fatalf("Build() succeeded, want error containing %q", tt.errMsg)
			}
			if desc != nil {
				t.Error("Build() returned a descriptor alongside an error")
			}
			if !contains(err.Error(), tt.errMsg) {
				t.Errorf("Build() error = %v, want error containing %q", err, tt.errMsg)
			}
			if !types.IsKind(err, types.KindInvalidParameters) {
				t.Errorf("Build() error kind = %v, want invalid_parameters", err)
			}
		})
	}
}

type bogusOperation struct{}

func (bogusOperation) isOperation() {}

func TestBuildUnknownOperation(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.Build(bogusOperation{})
	if err == nil {
		t.Fatal("Build() accepted an unknown operation")
	}
	if !types.IsKind(err, types.KindInvalidParameters) {
		t.Errorf("Build() error kind = %v, want invalid_parameters", err)
	}
	for _, name := range SupportedOperations() {
		if !contains(err.Error(), name) {
			t.Errorf("Build() error %v does not list operation %s", err, name)
		}
	}
}

func TestSupportedOperationsSorted(t *testing.T) {
	ops := SupportedOperations()
	if len(ops) != 8 {
		t.Fatalf("SupportedOperations() returned %d names, want 8", len(ops))
	}
	for i := 1; i < len(ops); i++ {
		if ops[i-1] >= ops[i] {
			t.Errorf("SupportedOperations() not sorted: %s before %s", ops[i-1], ops[i])
		}
	}
}

func TestBuildNativeTokenAttachesValue(t *testing.T) {
	b := newTestBuilder(t)

	amount := big.NewInt(5_000_000)
	nativeInput, err := types.NewTokenInput(common.Address{}, amount, testMarket, common.Address{}, nil)
	if err != nil {
		t.Fatalf("NewTokenInput() error = %v", err)
	}

	desc, err := b.Build(AddLiquiditySingleToken{
		Receiver: testReceiver,
		Market:   testMarket,
		MinLpOut: big.NewInt(0),
		Approx:   types.DefaultApproxParams(),
		Input:    nativeInput,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if desc.Value.Cmp(amount) != 0 {
		t.Errorf("native input value = %s, want %s", desc.Value, amount)
	}

	erc20Input, err := types.NewTokenInput(testMarket, amount, testMarket, common.Address{}, nil)
	if err != nil {
		t.Fatalf("NewTokenInput() error = %v", err)
	}
	desc, err = b.Build(AddLiquiditySingleToken{
		Receiver: testReceiver,
		Market:   testMarket,
		MinLpOut: big.NewInt(0),
		Approx:   types.DefaultApproxParams(),
		Input:    erc20Input,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if desc.Value.Sign() != 0 {
		t.Errorf("erc20 input value = %s, want 0", desc.Value)
	}
}

func TestBuildTokenOutputRoundTrip(t *testing.T) {
	b := newTestBuilder(t)

	output, err := types.NewTokenOutput(testMarket, big.NewInt(990), testMarket, common.Address{}, nil)
	if err != nil {
		t.Fatalf("NewTokenOutput() error = %v", err)
	}

	desc, err := b.Build(RemoveLiquiditySingleToken{
		Receiver:      testReceiver,
		Market:        testMarket,
		NetLpToRemove: big.NewInt(1000),
		Output:        output,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	parsed, err := ParseRouterABI()
	if err != nil {
		t.Fatalf("ParseRouterABI() error = %v", err)
	}
	method := parsed.Methods[MethodRemoveLiquiditySingleToken]
	if _, err := method.Inputs.Unpack(desc.Data[4:]); err != nil {
		t.Fatalf("Unpack() error = %v, calldata does not match the ABI", err)
	}
}
