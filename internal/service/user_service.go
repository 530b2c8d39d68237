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

type IUserService interface {
	GetProfile(ctx context.Context, supabaseId, email string) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, supabaseId string, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	DeleteAccount(ctx context.Context, supabaseId string) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

// resolveUserBySupabaseId maps the token subject to the internal user row.
// Every owned-data service must go through this before touching the DB.
func resolveUserBySupabaseId(ctx context.Context, uow unitofwork.UnitOfWork, supabaseId string) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.BySupabaseID{SupabaseID: supabaseId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User account not found in database. Please log in again.")
	}
	return user, nil
}

func toUserProfileResponse(user *entity.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		Id:         user.Id,
		SupabaseId: user.SupabaseId,
		Email:      user.Email,
		Name:       user.Name,
		AvatarURL:  user.AvatarURL,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// GetProfile finds or creates the user row for the authenticated subject.
// Called on every profile read so first login provisions the account.
func (s *userService) GetProfile(ctx context.Context, supabaseId, email string) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.BySupabaseID{SupabaseID: supabaseId})
	if err != nil {
		return nil, err
	}
	if user != nil {
		return toUserProfileResponse(user), nil
	}

	now := time.Now()
	user = &entity.User{
		Id:         uuid.New(),
		SupabaseId: supabaseId,
		Email:      email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserProfileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, supabaseId string, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return nil, err
	}

	name := req.Name
	user.Name = &name
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return toUserProfileResponse(user), nil
}

// DeleteAccount removes the user and every row they own in one transaction.
func (s *userService) DeleteAccount(ctx context.Context, supabaseId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteAllByUserId(ctx, user.Id); err != nil {
		return err
	}
	if err := uow.MoodRepository().DeleteAllByUserId(ctx, user.Id); err != nil {
		return err
	}
	if err := uow.JournalRepository().DeleteAllByUserId(ctx, user.Id); err != nil {
		return err
	}
	if err := uow.UserRepository().Delete(ctx, user.Id); err != nil {
		return err
	}

	return uow.Commit()
}
