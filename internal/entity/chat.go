package entity

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of an assistant conversation. History lives on
// the client for the duration of a session; the server never stores it.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func IsValidChatRole(role string) bool {
	return role == string(ChatRoleUser) || role == string(ChatRoleAssistant)
}
