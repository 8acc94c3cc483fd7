// Command pendle-agent serves the Pendle tool surface as an MCP agent.
// It always speaks MCP over stdio; when GATEWAY_URL is set it also
// bridges the same tool registry to the agent gateway over websocket.
package main

import (
	"context"
	"log"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	openai "github.com/sashabaranov/go-openai"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/adapters/cache"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/adapters/chain"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/adapters/pendleapi"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/adapters/wallet"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/config"
	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/service"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/bridge"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/executor"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/mcpserver"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/router"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("🛑 Invalid configuration: %v", err)
	}

	client, err := chain.Dial(cfg.RPCURL)
	if err != nil {
		log.Fatalf("🛑 %v", err)
	}

	var signer *wallet.Wallet
	if cfg.ReadOnly() {
		log.Println("⚠️ No WALLET_PRIVATE_KEY set, transaction tools are disabled")
	} else {
		signer, err = wallet.New(cfg.PrivateKey)
		if err != nil {
			log.Fatalf("🛑 Invalid WALLET_PRIVATE_KEY: %v", err)
		}
		log.Printf("🔐 Signing as %s", signer.Address().Hex())
	}

	builder, err := router.NewBuilder(cfg.RouterAddress)
	if err != nil {
		log.Fatalf("🛑 %v", err)
	}
	if !cfg.RouterConfigured {
		log.Println("⚠️ PENDLE_ROUTER_ADDRESS not set, transaction tools will fail fast")
	}

	execCfg := executor.Config{
		ChainID:        big.NewInt(cfg.ChainID),
		ConfirmTimeout: cfg.ConfirmTimeout,
		PollInterval:   cfg.PollInterval,
	}
	var exec *executor.Executor
	if signer != nil {
		exec, err = executor.New(client, signer, execCfg)
	} else {
		exec, err = executor.New(client, nil, execCfg)
	}
	if err != nil {
		log.Fatalf("🛑 %v", err)
	}

	api := pendleapi.New(pendleapi.Config{
		BaseURL:   cfg.APIBaseURL,
		Cache:     buildCache(cfg),
		CacheTTL:  cfg.CacheTTL,
		UserAgent: version.UserAgent(),
	})

	dep := service.Deployment{
		Network:     cfg.NetworkName,
		ChainID:     cfg.ChainID,
		ExplorerURL: cfg.BlockExplorerURL,
		Router:      cfg.RouterAddress,
	}
	if signer != nil {
		dep.Wallet = signer.Address()
	}

	registry := mcpserver.New(mcpserver.Deps{
		Builder:  builder,
		Executor: exec,
		Tokens:   client,
		Info:     service.NewInfoService(client, dep),
		Markets:  api,
		Preparer: api,
		Config:   cfg,
		Wallet:   dep.Wallet,
	})

	if cfg.GatewayURL != "" {
		if signer == nil {
			log.Fatalf("🛑 GATEWAY_URL requires WALLET_PRIVATE_KEY for session authentication")
		}
		var processor bridge.QueryProcessor
		if cfg.OpenAIKey != "" {
			processor = bridge.NewOpenAIProcessor(openai.NewClient(cfg.OpenAIKey), cfg.OpenAIModel)
		} else {
			log.Println("⚠️ No OPENAI_API_KEY set, gateway queries will be refused")
		}

		gw, err := bridge.New(bridge.Config{
			GatewayURL: cfg.GatewayURL,
			Signer:     signer,
			Registry:   registry,
			Processor:  processor,
		})
		if err != nil {
			log.Fatalf("🛑 %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			if err := gw.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("⚠️ Gateway bridge stopped: %v", err)
			}
		}()
		log.Printf("🚀 Gateway bridge connecting to %s", cfg.GatewayURL)
	}

	mcpServer := server.NewMCPServer(version.SDKName, version.Version(),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	registry.Register(mcpServer)

	log.Printf("🚀 %s v%s serving %d tools on %s (chain %d)",
		version.SDKName, version.Version(), len(registry.ToolNames()), cfg.NetworkName, cfg.ChainID)
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("🛑 MCP server error: %v", err)
	}
}

// buildCache picks Redis when configured and reachable, otherwise the
// in-process cache. A dead Redis never blocks startup.
func buildCache(cfg *config.Config) cache.Cache {
	if cfg.RedisURL == "" {
		return cache.NewMemory()
	}
	redisCache, err := cache.NewRedis(cfg.RedisURL, "")
	if err != nil {
		log.Printf("⚠️ Redis unavailable: %v (falling back to the in-memory cache)", err)
		return cache.NewMemory()
	}
	log.Println("📊 Caching hosted API responses in Redis")
	return redisCache
}
