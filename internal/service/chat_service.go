package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"moody-be/internal/config"
	"moody-be/internal/constant"
	"moody-be/internal/dto"
	"moody-be/internal/entity"
	"moody-be/internal/pkg/logger"
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/repository/unitofwork"
	"moody-be/pkg/chatbot"

	"github.com/google/uuid"
)

type IChatService interface {
	GetHistory(ctx context.Context, supabaseId string) ([]*dto.ChatMessageResponse, error)
	SendMessage(ctx context.Context, supabaseId, message string) (*dto.SendChatResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   chatbot.Provider
	cfg        config.ChatConfig
	logger     logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	provider chatbot.Provider,
	cfg config.ChatConfig,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		provider:   provider,
		cfg:        cfg,
		logger:     log,
	}
}

func toChatMessageResponse(msg *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        msg.Id,
		Content:   msg.Content,
		Role:      string(msg.Role),
		CreatedAt: msg.CreatedAt,
	}
}

// GetHistory returns the newest messages, capped at the history limit,
// ordered oldest first for the chat screen.
func (s *chatService) GetHistory(ctx context.Context, supabaseId string) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindRecent(ctx, user.Id, s.cfg.HistoryLimit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChatMessageResponse, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		result = append(result, toChatMessageResponse(messages[i]))
	}
	return result, nil
}

// SendMessage runs one conversation turn:
//
//  1. Validate and resolve the sender. Nothing is written on failure.
//  2. Persist the user turn so it survives a model failure.
//  3. Re-read recent history and hand the context window to the model.
//  4. Persist and return the reply (fallback text if the model said nothing).
//
// The two writes commit independently: a model failure after step 2 leaves
// the user turn dangling, and history reads must tolerate that.
func (s *chatService) SendMessage(ctx context.Context, supabaseId, message string) (*dto.SendChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, serverutils.NewInvalidArgumentError("Message must not be empty")
	}
	// Characters, not bytes, to match the request validator.
	if utf8.RuneCountInString(message) > constant.ChatMessageMaxLength {
		return nil, serverutils.NewInvalidArgumentError("Message must be at most 2000 characters")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return nil, err
	}

	userMsg := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    user.Id,
		Content:   message,
		Role:      entity.ChatRoleUser,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		return nil, err
	}

	// The +1 accounts for the turn we just wrote; it is dropped below so
	// the window holds only prior turns.
	recent, err := uow.ChatMessageRepository().FindRecent(ctx, user.Id, s.cfg.ContextWindow+1)
	if err != nil {
		return nil, err
	}

	turns := make([]chatbot.Turn, 0, len(recent)+1)
	for i := len(recent) - 1; i >= 0; i-- {
		if recent[i].Id == userMsg.Id {
			continue
		}
		turns = append(turns, chatbot.Turn{
			Role: string(recent[i].Role),
			Text: recent[i].Content,
		})
	}
	if len(turns) > s.cfg.ContextWindow {
		turns = turns[len(turns)-s.cfg.ContextWindow:]
	}
	turns = append(turns, chatbot.Turn{Role: chatbot.RoleUser, Text: message})

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	reply, err := s.provider.Generate(callCtx, turns)
	if err != nil {
		s.logger.Error("chat", "Model call failed", map[string]interface{}{
			"user_id": user.Id.String(),
			"error":   err.Error(),
		})
		return nil, serverutils.NewServiceUnavailableError("AI service is temporarily unavailable. Please try again.")
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		reply = constant.ChatFallbackReply
	}

	// A coarse clock can stamp both turns identically; nudge the reply
	// forward so reads keep the pair in order.
	aiCreatedAt := time.Now()
	if !aiCreatedAt.After(userMsg.CreatedAt) {
		aiCreatedAt = userMsg.CreatedAt.Add(time.Microsecond)
	}

	aiMsg := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    user.Id,
		Content:   reply,
		Role:      entity.ChatRoleAi,
		CreatedAt: aiCreatedAt,
	}
	if err := uow.ChatMessageRepository().Create(ctx, aiMsg); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		UserMessage: *toChatMessageResponse(userMsg),
		AiReply:     *toChatMessageResponse(aiMsg),
	}, nil
}
