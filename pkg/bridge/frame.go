package bridge

import "encoding/json"

// Frame is the single JSON envelope exchanged with the gateway. The
// populated fields depend on Type; everything else stays empty on the
// wire.
type Frame struct {
	Type      string                 `json:"type"`
	ID        string                 `json:"id,omitempty"`
	Tool      string                 `json:"tool,omitempty"`
	Args      map[string]interface{} `json:"args,omitempty"`
	Text      string                 `json:"text,omitempty"`
	Result    json.RawMessage        `json:"result,omitempty"`
	Kind      string                 `json:"kind,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Address   string                 `json:"address,omitempty"`
	Challenge string                 `json:"challenge,omitempty"`
	Signature string                 `json:"signature,omitempty"`
	Token     string                 `json:"token,omitempty"`
}

// Frame types. The auth handshake vocabulary mirrors the gateway
// protocol; call, result, error and query carry the tool traffic.
const (
	FrameRequestChallenge = "request_challenge"
	FrameChallenge        = "challenge"
	FrameAuth             = "auth"
	FrameAuthSuccess      = "auth_success"
	FrameAuthError        = "auth_error"
	FramePing             = "ping"
	FramePong             = "pong"
	FrameCall             = "call"
	FrameResult           = "result"
	FrameError            = "error"
	FrameQuery            = "query"
)

// decodeErrorPayload lifts kind and message out of a tool error
// envelope. Payloads that do not parse travel as-is under the generic
// contract_error kind.
func decodeErrorPayload(payload string) (kind, message string) {
	var envelope struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil || envelope.Error.Kind == "" {
		return "contract_error", payload
	}
	return envelope.Error.Kind, envelope.Error.Message
}
