package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"

	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/router"
)

// Defaults target the Arbitrum Sepolia testnet, where the agent is
// expected to run until the router is deployed elsewhere.
const (
	DefaultRPCURL           = "https://sepolia-rollup.arbitrum.io/rpc"
	DefaultChainID          = 421614
	DefaultNetworkName      = "Arbitrum Sepolia"
	DefaultBlockExplorerURL = "https://sepolia.arbiscan.io"
	DefaultAPIBaseURL       = "https://api-v2.pendle.finance"
	DefaultCacheTTL         = 60 * time.Second
	DefaultConfirmTimeout   = 120 * time.Second
	DefaultPollInterval     = 2 * time.Second

	// DefaultTokenDecimals applies to tokens missing from TOKEN_DECIMALS.
	DefaultTokenDecimals = 18
)

// routerPlaceholder marks a router address that is not deployed yet.
const routerPlaceholder = "TBD"

// Config is the agent's full runtime configuration, resolved once at
// startup from the environment (a .env file is honored when present).
type Config struct {
	// RPC endpoint and chain identity
	RPCURL           string
	ChainID          int64
	NetworkName      string
	BlockExplorerURL string

	// Router deployment. RouterConfigured is false when
	// PENDLE_ROUTER_ADDRESS is unset or still the TBD placeholder;
	// transaction tools then fail fast without touching the network.
	RouterAddress    common.Address
	RouterConfigured bool

	// Optional: hex private key. Empty runs the agent read-only.
	PrivateKey string

	// Hosted Pendle API
	APIBaseURL string
	CacheTTL   time.Duration

	// Optional: Redis endpoint for the API response cache
	// (defaults to the in-memory cache when empty)
	RedisURL string

	// Transaction confirmation window and receipt poll interval
	ConfirmTimeout time.Duration
	PollInterval   time.Duration

	// Per-token decimals overrides, keyed by token address
	TokenDecimals map[common.Address]uint8

	// Optional: gateway websocket URL. Empty disables the bridge.
	GatewayURL string

	// Optional: OpenAI access for free-form gateway queries
	OpenAIKey   string
	OpenAIModel string
}

// Load resolves the configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // Load .env if present

	cfg := &Config{
		RPCURL:           envOrDefault("RPC_URL", DefaultRPCURL),
		NetworkName:      envOrDefault("NETWORK_NAME", DefaultNetworkName),
		BlockExplorerURL: envOrDefault("BLOCK_EXPLORER_URL", DefaultBlockExplorerURL),
		PrivateKey:       strings.TrimPrefix(os.Getenv("WALLET_PRIVATE_KEY"), "0x"),
		APIBaseURL:       strings.TrimRight(envOrDefault("PENDLE_API_BASE", DefaultAPIBaseURL), "/"),
		RedisURL:         os.Getenv("REDIS_URL"),
		GatewayURL:       os.Getenv("GATEWAY_URL"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      envOrDefault("OPENAI_MODEL", "gpt-5"),
	}

	chainID, err := envInt("CHAIN_ID", DefaultChainID)
	if err != nil {
		return nil, err
	}
	cfg.ChainID = chainID

	routerAddr := strings.TrimSpace(os.Getenv("PENDLE_ROUTER_ADDRESS"))
	if routerAddr != "" && !strings.EqualFold(routerAddr, routerPlaceholder) {
		addr, err := router.ParseAddress("PENDLE_ROUTER_ADDRESS", routerAddr)
		if err != nil {
			return nil, err
		}
		cfg.RouterAddress = addr
		cfg.RouterConfigured = true
	}

	cacheTTL, err := envSeconds("CACHE_TTL_SECONDS", DefaultCacheTTL)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = cacheTTL

	confirmTimeout, err := envSeconds("CONFIRM_TIMEOUT_SECONDS", DefaultConfirmTimeout)
	if err != nil {
		return nil, err
	}
	cfg.ConfirmTimeout = confirmTimeout

	pollInterval, err := envSeconds("POLL_INTERVAL_SECONDS", DefaultPollInterval)
	if err != nil {
		return nil, err
	}
	cfg.PollInterval = pollInterval

	decimals, err := parseTokenDecimals(os.Getenv("TOKEN_DECIMALS"))
	if err != nil {
		return nil, err
	}
	cfg.TokenDecimals = decimals

	return cfg, nil
}

// ReadOnly reports whether the agent runs without a signing key.
func (c *Config) ReadOnly() bool {
	return c.PrivateKey == ""
}

// DecimalsFor returns the configured decimals for a token, falling back
// to 18.
func (c *Config) DecimalsFor(token common.Address) uint8 {
	if d, ok := c.TokenDecimals[token]; ok {
		return d
	}
	return DefaultTokenDecimals
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, v)
	}
	return n, nil
}

func envSeconds(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive number of seconds", key, v)
	}
	return time.Duration(n) * time.Second, nil
}

// parseTokenDecimals reads "0xToken:6,0xOther:8" into an override map.
func parseTokenDecimals(raw string) (map[common.Address]uint8, error) {
	decimals := make(map[common.Address]uint8)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimals, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid TOKEN_DECIMALS entry %q: want address:decimals", pair)
		}
		addr, err := router.ParseAddress("TOKEN_DECIMALS", strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, err
		}
		d, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 8)
		if err != nil || d > 77 {
			return nil, fmt.Errorf("invalid TOKEN_DECIMALS entry %q: decimals must be 0-77", pair)
		}
		decimals[addr] = uint8(d)
	}
	return decimals, nil
}
