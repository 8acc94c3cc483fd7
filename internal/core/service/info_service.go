package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/core/domain"
)

// ChainReader is the node access the info service needs.
type ChainReader interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	HasCode(ctx context.Context, addr common.Address) (bool, error)
}

// Deployment is the static network state the agent reports on. The zero
// address means "not configured" for both Router and Wallet.
type Deployment struct {
	Network     string
	ChainID     int64
	ExplorerURL string
	Router      common.Address
	Wallet      common.Address
}

// InfoService answers the wallet and contract status queries.
type InfoService struct {
	reader ChainReader
	dep    Deployment
}

func NewInfoService(reader ChainReader, dep Deployment) *InfoService {
	return &InfoService{reader: reader, dep: dep}
}

// WalletInfo reports the signing address with its live balance and
// pending nonce, or just the network facts when no key is configured.
func (s *InfoService) WalletInfo(ctx context.Context) (*domain.WalletInfo, error) {
	info := &domain.WalletInfo{
		Network: s.dep.Network,
		ChainID: s.dep.ChainID,
	}
	if s.dep.Wallet == (common.Address{}) {
		return info, nil
	}

	info.Configured = true
	info.Address = s.dep.Wallet.Hex()
	info.Explorer = s.explorerLink(s.dep.Wallet)

	balance, err := s.reader.BalanceAt(ctx, s.dep.Wallet, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	info.BalanceWei = balance.String()

	nonce, err := s.reader.PendingNonceAt(ctx, s.dep.Wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nonce: %w", err)
	}
	info.PendingNonce = nonce

	return info, nil
}

// ContractInfo reports whether the configured router can actually be
// called: an address must be configured and code must exist at it on
// this network. Everything else is "not_deployed", which the executor
// treats as a fail-fast state, not an error.
func (s *InfoService) ContractInfo(ctx context.Context) (*domain.ContractInfo, error) {
	info := &domain.ContractInfo{
		Status:  domain.ContractStatusNotDeployed,
		Network: s.dep.Network,
		ChainID: s.dep.ChainID,
	}
	if s.dep.Router == (common.Address{}) {
		return info, nil
	}

	info.Configured = true
	info.RouterAddress = s.dep.Router.Hex()
	info.Explorer = s.explorerLink(s.dep.Router)

	deployed, err := s.reader.HasCode(ctx, s.dep.Router)
	if err != nil {
		return nil, fmt.Errorf("failed to check contract code: %w", err)
	}
	info.Deployed = deployed
	if deployed {
		info.Status = domain.ContractStatusReady
	}
	return info, nil
}

func (s *InfoService) explorerLink(addr common.Address) string {
	if s.dep.ExplorerURL == "" {
		return ""
	}
	return strings.TrimRight(s.dep.ExplorerURL, "/") + "/address/" + addr.Hex()
}
