package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/mark3labs/mcp-go/mcp"
)

// AuthMessagePrefix is prepended to the gateway challenge before the
// EIP-191 personal-message signature. The gateway verifies against the
// same prefix.
const AuthMessagePrefix = "Pendle agent auth: "

// Connection defaults.
const (
	DefaultPingInterval     = 30 * time.Second
	DefaultReconnectDelay   = 2 * time.Second
	DefaultHandshakeTimeout = 15 * time.Second

	writeTimeout = 10 * time.Second

	// Sessions without a readable exp claim are refreshed on a fixed
	// schedule instead.
	defaultSessionLifetime = 10 * time.Minute
	reauthMargin           = time.Minute
	reauthFloor            = 10 * time.Second
)

// Signer signs gateway auth challenges with the agent's wallet key.
type Signer interface {
	Address() common.Address
	SignMessage(message []byte) (string, error)
}

// Registry dispatches tool calls by name. The MCP tool registry
// satisfies this.
type Registry interface {
	Invoke(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error)
}

// QueryProcessor answers free-text queries. Nil means query frames are
// rejected with a structured error.
type QueryProcessor interface {
	Process(ctx context.Context, text string) (string, error)
}

// Config wires a Bridge. GatewayURL, Signer and Registry are required.
type Config struct {
	GatewayURL string
	Signer     Signer
	Registry   Registry
	Processor  QueryProcessor

	PingInterval     time.Duration
	ReconnectDelay   time.Duration
	HandshakeTimeout time.Duration

	// MaxReconnects bounds consecutive failed sessions. Zero retries
	// forever; the counter resets after every authenticated session.
	MaxReconnects int
}

// Bridge serves the agent's tool registry to a remote gateway over a
// websocket connection.
type Bridge struct {
	cfg Config
}

func New(cfg Config) (*Bridge, error) {
	if cfg.GatewayURL == "" {
		return nil, errors.New("gateway url is required")
	}
	if cfg.Signer == nil {
		return nil, errors.New("signer is required")
	}
	if cfg.Registry == nil {
		return nil, errors.New("registry is required")
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = DefaultPingInterval
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = DefaultReconnectDelay
	}
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = DefaultHandshakeTimeout
	}
	return &Bridge{cfg: cfg}, nil
}

// Run dials the gateway and serves until ctx is cancelled. Dropped
// sessions reconnect with linear backoff; consecutive failures beyond
// MaxReconnects end the run.
func (b *Bridge) Run(ctx context.Context) error {
	attempts := 0
	for {
		authenticated := false
		err := b.session(ctx, func() { authenticated = true })
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if authenticated {
			attempts = 0
		}
		attempts++
		if b.cfg.MaxReconnects > 0 && attempts > b.cfg.MaxReconnects {
			return fmt.Errorf("giving up on gateway after %d failed sessions: %w", attempts, err)
		}
		delay := time.Duration(attempts) * b.cfg.ReconnectDelay
		log.Printf("⚠️ Gateway session ended: %v (reconnecting in %s)", err, delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// session runs one dial-auth-serve cycle. onAuth fires once when the
// gateway accepts the signature.
func (b *Bridge) session(ctx context.Context, onAuth func()) error {
	dialer := websocket.Dialer{HandshakeTimeout: b.cfg.HandshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, b.cfg.GatewayURL, nil)
	if err != nil {
		return fmt.Errorf("failed to dial gateway: %w", err)
	}
	defer conn.Close()
	return b.serve(ctx, conn, onAuth)
}

func (b *Bridge) serve(ctx context.Context, conn *websocket.Conn, onAuth func()) error {
	var writeMu sync.Mutex
	write := func(f Frame) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		return conn.WriteJSON(f)
	}

	// Unblock ReadJSON when the context ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	frames := make(chan Frame)
	readErr := make(chan error, 1)
	go func() {
		for {
			var f Frame
			if err := conn.ReadJSON(&f); err != nil {
				readErr <- err
				return
			}
			select {
			case frames <- f:
			case <-done:
				return
			}
		}
	}()

	addr := b.cfg.Signer.Address().Hex()
	if err := write(Frame{Type: FrameRequestChallenge, Address: addr}); err != nil {
		return fmt.Errorf("failed to request auth challenge: %w", err)
	}

	// A gateway that never finishes the handshake gets cut off.
	authTimer := time.AfterFunc(b.cfg.HandshakeTimeout, func() { conn.Close() })
	defer authTimer.Stop()

	ping := time.NewTicker(b.cfg.PingInterval)
	defer ping.Stop()
	reauth := time.NewTimer(defaultSessionLifetime)
	defer reauth.Stop()
	authenticated := false

	for {
		select {
		case <-ctx.Done():
			writeMu.Lock()
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "shutting down"))
			writeMu.Unlock()
			return ctx.Err()
		case err := <-readErr:
			return fmt.Errorf("gateway read failed: %w", err)
		case <-ping.C:
			if err := write(Frame{Type: FramePing}); err != nil {
				return fmt.Errorf("failed to ping gateway: %w", err)
			}
		case <-reauth.C:
			if err := write(Frame{Type: FrameRequestChallenge, Address: addr}); err != nil {
				return fmt.Errorf("failed to refresh auth: %w", err)
			}
		case f := <-frames:
			switch f.Type {
			case FrameChallenge:
				sig, err := b.cfg.Signer.SignMessage([]byte(AuthMessagePrefix + f.Challenge))
				if err != nil {
					return fmt.Errorf("failed to sign challenge: %w", err)
				}
				if err := write(Frame{Type: FrameAuth, Address: addr, Challenge: f.Challenge, Signature: sig}); err != nil {
					return fmt.Errorf("failed to answer challenge: %w", err)
				}
			case FrameAuthSuccess:
				authTimer.Stop()
				if !authenticated {
					authenticated = true
					log.Printf("🔐 Gateway session authenticated as %s", addr)
					if onAuth != nil {
						onAuth()
					}
				}
				expiry, ok := tokenExpiry(f.Token)
				reauth.Reset(reauthDelay(expiry, ok))
			case FrameAuthError:
				return fmt.Errorf("gateway rejected authentication: %s", f.Message)
			case FramePing:
				if err := write(Frame{Type: FramePong, ID: f.ID}); err != nil {
					return fmt.Errorf("failed to answer gateway ping: %w", err)
				}
			case FramePong:
			case FrameCall:
				go b.handleCall(ctx, write, f)
			case FrameQuery:
				go b.handleQuery(ctx, write, f)
			default:
				log.Printf("⚠️ Ignoring unknown gateway frame type %q", f.Type)
			}
		}
	}
}

func (b *Bridge) handleCall(ctx context.Context, write func(Frame) error, f Frame) {
	if f.Tool == "" {
		b.writeError(write, f.ID, "invalid_parameters", "call frame is missing a tool name")
		return
	}
	res, err := b.cfg.Registry.Invoke(ctx, f.Tool, f.Args)
	if err != nil {
		b.writeError(write, f.ID, "contract_error", err.Error())
		return
	}
	payload, ok := toolResultText(res)
	if !ok {
		b.writeError(write, f.ID, "contract_error", "tool produced no text output")
		return
	}
	if res.IsError {
		kind, message := decodeErrorPayload(payload)
		b.writeError(write, f.ID, kind, message)
		return
	}
	if err := write(Frame{Type: FrameResult, ID: f.ID, Result: json.RawMessage(payload)}); err != nil {
		log.Printf("⚠️ Failed to deliver result for call %s: %v", f.ID, err)
	}
}

func (b *Bridge) handleQuery(ctx context.Context, write func(Frame) error, f Frame) {
	if b.cfg.Processor == nil {
		b.writeError(write, f.ID, "unsupported", "no language model configured")
		return
	}
	if strings.TrimSpace(f.Text) == "" {
		b.writeError(write, f.ID, "invalid_parameters", "query frame is missing text")
		return
	}
	answer, err := b.cfg.Processor.Process(ctx, f.Text)
	if err != nil {
		b.writeError(write, f.ID, "query_failed", err.Error())
		return
	}
	if err := write(Frame{Type: FrameResult, ID: f.ID, Text: answer}); err != nil {
		log.Printf("⚠️ Failed to deliver answer for query %s: %v", f.ID, err)
	}
}

func (b *Bridge) writeError(write func(Frame) error, id, kind, message string) {
	if err := write(Frame{Type: FrameError, ID: id, Kind: kind, Message: message}); err != nil {
		log.Printf("⚠️ Failed to deliver error for %s: %v", id, err)
	}
}

func toolResultText(res *mcp.CallToolResult) (string, bool) {
	if res == nil || len(res.Content) == 0 {
		return "", false
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		return "", false
	}
	return text.Text, true
}

// tokenExpiry reads the exp claim without verifying the signature; the
// gateway signs its own tokens and this side only schedules renewal.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func reauthDelay(expiry time.Time, ok bool) time.Duration {
	if !ok {
		return defaultSessionLifetime
	}
	d := time.Until(expiry) - reauthMargin
	if d < reauthFloor {
		return reauthFloor
	}
	return d
}
