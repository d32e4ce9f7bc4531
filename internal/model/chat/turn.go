package chat

// Role identifies who produced a turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one message exchange unit stored in session memory. Turns are
// append-only and immutable once created.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
