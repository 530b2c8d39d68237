package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleAi   ChatRole = "ai"
)

// ChatMessage is one turn of a user's conversation. Rows are append-only:
// created once, never updated, removed only by the account-deletion cascade.
type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Content   string
	Role      ChatRole
	CreatedAt time.Time
}
