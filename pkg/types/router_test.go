package types

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestNewApproxParams(t *testing.T) {
	one := big.NewInt(1)
	e18 := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	tests := []struct {
		name          string
		guessMin      *big.Int
		guessMax      *big.Int
		guessOffchain *big.Int
		maxIteration  *big.Int
		eps           *big.Int
		wantErr       bool
		errMsg        string
	}{
		{
			name:          "valid defaults",
			guessMin:      big.NewInt(0),
			guessMax:      new(big.Int).Set(e18),
			guessOffchain: big.NewInt(0),
			maxIteration:  big.NewInt(256),
			eps:           big.NewInt(1e15),
			wantErr:       false,
		},
		{
			name:          "nil guessMin",
			guessMin:      nil,
			guessMax:      one,
			guessOffchain: big.NewInt(0),
			maxIteration:  one,
			eps:           one,
			wantErr:       true,
			errMsg:        "guessMin",
		},
		{
			name:          "negative guessMin",
			guessMin:      big.NewInt(-1),
			guessMax:      one,
			guessOffchain: big.NewInt(0),
			maxIteration:  one,
			eps:           one,
			wantErr:       true,
			errMsg:        "guessMin",
		},
		{
			name:          "guessMin above guessMax",
			guessMin:      big.NewInt(100),
			guessMax:      big.NewInt(10),
			guessOffchain: big.NewInt(0),
			maxIteration:  one,
			eps:           one,
			wantErr:       true,
			errMsg:        "guessMax",
		},
		{
			name:          "zero maxIteration",
			guessMin:      big.NewInt(0),
			guessMax:      one,
			guessOffchain: big.NewInt(0),
			maxIteration:  big.NewInt(0),
			eps:           one,
			wantErr:       true,
			errMsg:        "maxIteration",
		},
		{
			name:          "zero eps",
			guessMin:      big.NewInt(0),
			guessMax:      one,
			guessOffchain: big.NewInt(0),
			maxIteration:  one,
			eps:           big.NewInt(0),
			wantErr:       true,
			errMsg:        "eps",
		},
		{
			name:          "eps above 1e18",
			guessMin:      big.NewInt(0),
			guessMax:      one,
			guessOffchain: big.NewInt(0),
			maxIteration:  one,
			eps:           new(big.Int).Add(e18, one),
			wantErr:       true,
			errMsg:        "must not exceed 1e18",
		},
		{
			name:          "multiple violations report the first field",
			guessMin:      big.NewInt(-1),
			guessMax:      one,
			guessOffchain: big.NewInt(0),
			maxIteration:  big.NewInt(0),
			eps:           big.NewInt(0),
			wantErr:       true,
			errMsg:        "guessMin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApproxParams(tt.guessMin, tt.guessMax, tt.guessOffchain, tt.maxIteration, tt.eps)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewApproxParams() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil {
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("NewApproxParams() error = %v, want error containing %q", err, tt.errMsg)
				}
				if !IsKind(err, KindInvalidParameters) {
					t.Errorf("NewApproxParams() error kind = %v, want invalid_parameters", err)
				}
			}
		})
	}
}

func TestApproxParamsImmutable(t *testing.T) {
	guessMax := big.NewInt(1000)
	params, err := NewApproxParams(big.NewInt(0), guessMax, big.NewInt(0), big.NewInt(256), big.NewInt(1))
	if err != nil {
		t.Fatalf("NewApproxParams() error = %v", err)
	}

	// Mutating the caller's value must not reach the constructed params.
	guessMax.SetInt64(5)
	if params.GuessMax.Cmp(big.NewInt(1000)) != 0 {
		t.Errorf("GuessMax changed after caller mutation: got %s, want 1000", params.GuessMax)
	}
}

func TestDefaultApproxParams(t *testing.T) {
	params := DefaultApproxParams()

	e18 := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	e15 := new(big.Int).Exp(big.NewInt(10), big.NewInt(15), nil)

	if params.GuessMin.Sign() != 0 {
		t.Errorf("GuessMin = %s, want 0", params.GuessMin)
	}
	if params.GuessMax.Cmp(e18) != 0 {
		t.Errorf("GuessMax = %s, want 1e18", params.GuessMax)
	}
	if params.GuessOffchain.Sign() != 0 {
		t.Errorf("GuessOffchain = %s, want 0", params.GuessOffchain)
	}
	if params.MaxIteration.Cmp(big.NewInt(256)) != 0 {
		t.Errorf("MaxIteration = %s, want 256", params.MaxIteration)
	}
	if params.Eps.Cmp(e15) != 0 {
		t.Errorf("Eps = %s, want 1e15", params.Eps)
	}
}

func TestSwapTypeFromInt(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		want    SwapType
		wantErr bool
	}{
		{name: "none", value: 0, want: SwapTypeNone},
		{name: "kyberswap", value: 1, want: SwapTypeKyberSwap},
		{name: "balancer", value: 7, want: SwapTypeBalancer},
		{name: "negative", value: -1, wantErr: true},
		{name: "above balancer", value: 8, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SwapTypeFromInt(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("SwapTypeFromInt(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("SwapTypeFromInt(%d) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestSwapTypeNames(t *testing.T) {
	names := SwapTypeNames()
	if len(names) != 8 {
		t.Fatalf("SwapTypeNames() returned %d entries, want 8", len(names))
	}
	if names["NONE"] != 0 {
		t.Errorf("NONE = %d, want 0", names["NONE"])
	}
	if names["BALANCER"] != 7 {
		t.Errorf("BALANCER = %d, want 7", names["BALANCER"])
	}
	if SwapTypeCurve.String() != "CURVE" {
		t.Errorf("SwapTypeCurve.String() = %q, want CURVE", SwapTypeCurve.String())
	}
}

func TestNewSwapData(t *testing.T) {
	extRouter := common.HexToAddress("0x1111111254EEB25477B68fb85Ed929f73A960582")

	tests := []struct {
		name        string
		swapType    SwapType
		extRouter   common.Address
		extCalldata []byte
		wantErr     bool
		errMsg      string
	}{
		{
			name:     "none swap with empty fields",
			swapType: SwapTypeNone,
			wantErr:  false,
		},
		{
			name:      "none swap with router address",
			swapType:  SwapTypeNone,
			extRouter: extRouter,
			wantErr:   true,
			errMsg:    "extRouter",
		},
		{
			name:        "none swap with calldata",
			swapType:    SwapTypeNone,
			extCalldata: []byte{0x01},
			wantErr:     true,
			errMsg:      "extCalldata",
		},
		{
			name:        "aggregator swap",
			swapType:    SwapTypeOneInch,
			extRouter:   extRouter,
			extCalldata: []byte{0xde, 0xad},
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSwapData(tt.swapType, tt.extRouter, tt.extCalldata, false)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSwapData() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !contains(err.Error(), tt.errMsg) {
				t.Errorf("NewSwapData() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestSwapDataCopiesCalldata(t *testing.T) {
	calldata := []byte{0x01, 0x02, 0x03}
	sd, err := NewSwapData(SwapTypeKyberSwap, common.HexToAddress("0x1111111254EEB25477B68fb85Ed929f73A960582"), calldata, true)
	if err != nil {
		t.Fatalf("NewSwapData() error = %v", err)
	}

	calldata[0] = 0xff
	if sd.ExtCalldata[0] != 0x01 {
		t.Errorf("ExtCalldata changed after caller mutation: got %x, want 01", sd.ExtCalldata[0])
	}
}

func TestNewTokenInput(t *testing.T) {
	usdc := common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831")
	pendleSwap := common.HexToAddress("0x313e7Ef7d52f5C10aC04ebaa4d33CDc68634c212")
	swap, err := NewSwapData(SwapTypeKyberSwap, common.HexToAddress("0x1111111254EEB25477B68fb85Ed929f73A960582"), []byte{0x01}, false)
	if err != nil {
		t.Fatalf("NewSwapData() error = %v", err)
	}

	tests := []struct {
		name       string
		tokenIn    common.Address
		netTokenIn *big.Int
		pendleSwap common.Address
		swapData   *SwapData
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "valid erc20 input",
			tokenIn:    usdc,
			netTokenIn: big.NewInt(1_000_000),
			wantErr:    false,
		},
		{
			name:       "native token input uses zero address",
			tokenIn:    common.Address{},
			netTokenIn: big.NewInt(1),
			wantErr:    false,
		},
		{
			name:       "nil amount",
			tokenIn:    usdc,
			netTokenIn: nil,
			wantErr:    true,
			errMsg:     "netTokenIn",
		},
		{
			name:       "zero amount",
			tokenIn:    usdc,
			netTokenIn: big.NewInt(0),
			wantErr:    true,
			errMsg:     "netTokenIn",
		},
		{
			name:       "negative amount",
			tokenIn:    usdc,
			netTokenIn: big.NewInt(-5),
			wantErr:    true,
			errMsg:     "netTokenIn",
		},
		{
			name:       "swap data without pendleSwap address",
			tokenIn:    usdc,
			netTokenIn: big.NewInt(1),
			swapData:   &swap,
			wantErr:    true,
			errMsg:     "pendleSwap",
		},
		{
			name:       "swap data with pendleSwap address",
			tokenIn:    usdc,
			netTokenIn: big.NewInt(1),
			pendleSwap: pendleSwap,
			swapData:   &swap,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenInput(tt.tokenIn, tt.netTokenIn, usdc, tt.pendleSwap, tt.swapData)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTokenInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !contains(err.Error(), tt.errMsg) {
				t.Errorf("NewTokenInput() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestNewTokenOutput(t *testing.T) {
	weth := common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1")

	tests := []struct {
		name        string
		minTokenOut *big.Int
		wantErr     bool
		errMsg      string
	}{
		{name: "zero floor is allowed", minTokenOut: big.NewInt(0), wantErr: false},
		{name: "positive floor", minTokenOut: big.NewInt(42), wantErr: false},
		{name: "nil floor", minTokenOut: nil, wantErr: true, errMsg: "minTokenOut"},
		{name: "negative floor", minTokenOut: big.NewInt(-1), wantErr: true, errMsg: "minTokenOut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenOutput(weth, tt.minTokenOut, weth, common.Address{}, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTokenOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !contains(err.Error(), tt.errMsg) {
				t.Errorf("NewTokenOutput() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}
