package service

import (
	"context"
	"time"

	"moody-be/internal/dto"
	"moody-be/internal/entity"
	"moody-be/internal/pkg/serverutils"
	"moody-be/internal/repository/specification"
	"moody-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IJournalService interface {
	Create(ctx context.Context, supabaseId string, req *dto.CreateJournalRequest) (*dto.JournalEntryResponse, error)
	GetAll(ctx context.Context, supabaseId string) ([]*dto.JournalEntryResponse, error)
	Show(ctx context.Context, supabaseId string, id uuid.UUID) (*dto.JournalEntryResponse, error)
	Update(ctx context.Context, supabaseId string, id uuid.UUID, req *dto.UpdateJournalRequest) (*dto.JournalEntryResponse, error)
	Delete(ctx context.Context, supabaseId string, id uuid.UUID) error
}

type journalService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewJournalService(uowFactory unitofwork.RepositoryFactory) IJournalService {
	return &journalService{
		uowFactory: uowFactory,
	}
}

func toJournalEntryResponse(entry *entity.JournalEntry) *dto.JournalEntryResponse {
	return &dto.JournalEntryResponse{
		Id:        entry.Id,
		Title:     entry.Title,
		Content:   entry.Content,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// findOwned fetches an entry scoped to the owner. Another user's entry is
// indistinguishable from a missing one.
func (s *journalService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.JournalEntry, error) {
	entry, err := uow.JournalRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, serverutils.NewNotFoundError("Journal entry not found")
	}
	return entry, nil
}

func (s *journalService) Create(ctx context.Context, supabaseId string, req *dto.CreateJournalRequest) (*dto.JournalEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &entity.JournalEntry{
		Id:        uuid.New(),
		UserId:    user.Id,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.JournalRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	return toJournalEntryResponse(entry), nil
}

func (s *journalService) GetAll(ctx context.Context, supabaseId string) ([]*dto.JournalEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return nil, err
	}

	entries, err := uow.JournalRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.JournalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toJournalEntryResponse(entry))
	}
	return result, nil
}

func (s *journalService) Show(ctx context.Context, supabaseId string, id uuid.UUID) (*dto.JournalEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return nil, err
	}

	entry, err := s.findOwned(ctx, uow, user.Id, id)
	if err != nil {
		return nil, err
	}
	return toJournalEntryResponse(entry), nil
}

func (s *journalService) Update(ctx context.Context, supabaseId string, id uuid.UUID, req *dto.UpdateJournalRequest) (*dto.JournalEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return nil, err
	}

	entry, err := s.findOwned(ctx, uow, user.Id, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}
	entry.UpdatedAt = time.Now()

	if err := uow.JournalRepository().Update(ctx, entry); err != nil {
		return nil, err
	}
	return toJournalEntryResponse(entry), nil
}

func (s *journalService) Delete(ctx context.Context, supabaseId string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return err
	}

	entry, err := s.findOwned(ctx, uow, user.Id, id)
	if err != nil {
		return err
	}

	return uow.JournalRepository().Delete(ctx, entry.Id)
}
