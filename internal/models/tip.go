package models

const (
	TipActionComposeEmail    = "compose_email"
	TipActionGenerateContent = "generate_content"
	TipActionNavigate        = "navigate"
	TipActionNone            = "none"
)

type TipSuggestion struct {
	ID              string `json:"id"`
	ShouldShow      bool   `json:"shouldShow"`
	Message         string `json:"message"`
	ActionLabel     string `json:"actionLabel"`
	ActionType      string `json:"actionType"`
	ActionPayloadID string `json:"actionPayloadId,omitempty"`
}

type TipAction struct {
	Type     string    `json:"type"`
	Label    string    `json:"label"`
	Lead     *Lead     `json:"lead,omitempty"`
	Property *Property `json:"property,omitempty"`
	View     string    `json:"view,omitempty"`
}

type ProactiveTip struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Action  TipAction `json:"action"`
}
