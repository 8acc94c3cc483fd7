package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet holds the agent's signing key. It signs transactions for the
// executor and auth challenges for the gateway bridge.
type Wallet struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// New parses a hex private key (with or without 0x prefix) and derives
// the wallet address.
func New(privateKeyHex string) (*Wallet, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	publicKey, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("failed to derive public key")
	}

	return &Wallet{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(*publicKey),
	}, nil
}

// Address returns the wallet address.
func (w *Wallet) Address() common.Address {
	return w.address
}

// SignTx signs a transaction for the given chain with EIP-155 replay
// protection.
func (w *Wallet) SignTx(tx *ethtypes.Transaction, chainID *big.Int) (*ethtypes.Transaction, error) {
	signed, err := ethtypes.SignTx(tx, ethtypes.NewEIP155Signer(chainID), w.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return signed, nil
}

// SignMessage signs an arbitrary message following the Ethereum
// personal-sign convention and returns the hex signature with the
// recovery byte adjusted to 27/28.
func (w *Wallet) SignMessage(message []byte) (string, error) {
	signature, err := crypto.Sign(hashMessage(message), w.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}
	signature[64] += 27
	return hexutil.Encode(signature), nil
}

// hashMessage hashes a message with the Ethereum signed message prefix.
func hashMessage(data []byte) []byte {
	prefix := fmt.Sprintf("\x19Ethereum Signed Message:\n%d", len(data))
	return crypto.Keccak256([]byte(prefix), data)
}
