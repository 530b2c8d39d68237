package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the local mirror of an identity-provider account. SupabaseId is
// the external subject; Id is the internal key every other table references.
type User struct {
	Id         uuid.UUID
	SupabaseId string
	Email      string
	Name       *string
	AvatarURL  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
