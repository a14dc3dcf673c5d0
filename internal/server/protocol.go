package server

import "encoding/json"

// Envelope wraps every message sent to clients.
type Envelope struct {
	Sequence uint64 `json:"sequence"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// IntentEnvelope wraps every message received from clients.
type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestLevel asks for a specific level, sent only to the requester.
type RequestLevel struct {
	Seed   int64  `json:"seed"`
	Preset string `json:"preset,omitempty"`
	Meshes bool   `json:"meshes,omitempty"`
}

// ErrorPayload reports a failed request.
type ErrorPayload struct {
	Message string `json:"message"`
}

// Message and intent types.
const (
	TypeLevel        = "Level"
	TypeError        = "Error"
	TypeNextLevel    = "NextLevel"
	TypeRequestLevel = "RequestLevel"
)
