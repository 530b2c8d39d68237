package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	UserMessage ChatMessageResponse `json:"userMessage"`
	AiReply     ChatMessageResponse `json:"aiReply"`
}
