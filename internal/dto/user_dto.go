package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id         uuid.UUID `json:"id"`
	SupabaseId string    `json:"supabase_id"`
	Email      string    `json:"email"`
	Name       *string   `json:"name"`
	AvatarURL  *string   `json:"avatar_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
