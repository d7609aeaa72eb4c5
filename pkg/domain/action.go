package domain

// ActionRequest represents a side-effect that the host asks its frontend to perform.
type ActionRequest struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Standard Action Types
const (
	// ActionRenderView requests the frontend to display a frame.
	// Payload: Frame
	ActionRenderView = "RENDER_VIEW"

	// ActionRequestInput requests the frontend to collect the next intent.
	ActionRequestInput = "REQUEST_INPUT"

	// ActionSystemMessage represents a meta-message from the host (status, feedback).
	// Payload: string (the message)
	ActionSystemMessage = "SYSTEM_MESSAGE"
)
