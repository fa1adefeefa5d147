package model

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message unit in a conversation history.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// MaxSessionTurns caps a session's history at 10 exchanges.
// When exceeded, the oldest turns are dropped first.
const MaxSessionTurns = 20
