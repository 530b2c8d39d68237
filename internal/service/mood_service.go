package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"moody-be/internal/constant"
	"moody-be/internal/dto"
	"moody-be/internal/entity"
	"moody-be/internal/pkg/logger"
	"moody-be/internal/repository/specification"
	"moody-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const moodStatsCacheTTL = 10 * time.Minute

func moodStatsCacheKey(userId uuid.UUID) string {
	return fmt.Sprintf("mood:stats:%s", userId)
}

type IMoodService interface {
	Create(ctx context.Context, supabaseId string, req *dto.CreateMoodRequest) (*dto.MoodEntryResponse, error)
	GetWeekly(ctx context.Context, supabaseId string) ([]*dto.WeeklyMoodDay, error)
	GetStats(ctx context.Context, supabaseId string) (*dto.MoodStatsResponse, error)
}

type moodService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	redis            *redis.Client
	logger           logger.ILogger
}

func NewMoodService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	redisClient *redis.Client,
	log logger.ILogger,
) IMoodService {
	return &moodService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		redis:            redisClient,
		logger:           log,
	}
}

func toMoodEntryResponse(entry *entity.MoodEntry) *dto.MoodEntryResponse {
	return &dto.MoodEntryResponse{
		Id:        entry.Id,
		Mood:      string(entry.Mood),
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
	}
}

func (s *moodService) Create(ctx context.Context, supabaseId string, req *dto.CreateMoodRequest) (*dto.MoodEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return nil, err
	}

	entry := &entity.MoodEntry{
		Id:        uuid.New(),
		UserId:    user.Id,
		Mood:      entity.MoodLevel(req.Mood),
		Note:      req.Note,
		CreatedAt: time.Now(),
	}
	if err := uow.MoodRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	// Best-effort: a lost event only means the stats cache serves stale
	// data until its TTL expires.
	evt := dto.MoodLoggedEvent{
		UserId:     user.Id,
		Mood:       string(entry.Mood),
		OccurredAt: entry.CreatedAt,
	}
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.logger.Warn("mood", "Failed to publish mood event", map[string]interface{}{"error": err.Error()})
	}

	return toMoodEntryResponse(entry), nil
}

// GetWeekly returns one slot per day for the last 7 calendar days, oldest
// first. The last entry logged on a day wins; days without entries get a
// nil score.
func (s *moodService) GetWeekly(ctx context.Context, supabaseId string) ([]*dto.WeeklyMoodDay, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)

	entries, err := uow.MoodRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.CreatedSince{Since: windowStart},
		specification.CreatedBefore{Before: now},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	// Entries are chronological, so later writes overwrite earlier ones.
	latestByDay := make(map[string]entity.MoodLevel)
	for _, entry := range entries {
		latestByDay[entry.CreatedAt.Format("2006-01-02")] = entry.Mood
	}

	dayLabels := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	days := make([]*dto.WeeklyMoodDay, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		slot := &dto.WeeklyMoodDay{Day: dayLabels[date.Weekday()]}
		if mood, ok := latestByDay[date.Format("2006-01-02")]; ok {
			score := constant.MoodScore[mood]
			slot.Score = &score
		}
		days = append(days, slot)
	}

	return days, nil
}

// GetStats aggregates the last 30 days into a per-mood percentage
// breakdown, read through the redis cache when one is configured.
func (s *moodService) GetStats(ctx context.Context, supabaseId string) (*dto.MoodStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolveUserBySupabaseId(ctx, uow, supabaseId)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, moodStatsCacheKey(user.Id)).Bytes()
		if err == nil {
			var stats dto.MoodStatsResponse
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("mood", "Mood stats cache read failed", map[string]interface{}{"error": err.Error()})
		}
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	entries, err := uow.MoodRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.CreatedSince{Since: thirtyDaysAgo},
	)
	if err != nil {
		return nil, err
	}

	stats := buildMoodStats(entries)

	if s.redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.redis.Set(ctx, moodStatsCacheKey(user.Id), payload, moodStatsCacheTTL).Err(); err != nil {
				s.logger.Warn("mood", "Mood stats cache write failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	return stats, nil
}

func buildMoodStats(entries []*entity.MoodEntry) *dto.MoodStatsResponse {
	total := len(entries)
	stats := &dto.MoodStatsResponse{
		Total:     total,
		Breakdown: make([]dto.MoodBreakdownItem, 0),
	}
	if total == 0 {
		return stats
	}

	counts := make(map[entity.MoodLevel]int)
	for _, entry := range entries {
		counts[entry.Mood]++
	}

	// Fixed iteration order keeps equal percentages stable across calls.
	for _, mood := range []entity.MoodLevel{entity.MoodGreat, entity.MoodGood, entity.MoodOkay, entity.MoodBad, entity.MoodAwful} {
		count := counts[mood]
		if count == 0 {
			continue
		}
		stats.Breakdown = append(stats.Breakdown, dto.MoodBreakdownItem{
			Mood:       string(mood),
			Label:      constant.MoodEmotionLabel[mood],
			Percentage: int(float64(count)/float64(total)*100 + 0.5),
			Color:      constant.MoodEmotionColor[mood],
		})
	}

	sort.SliceStable(stats.Breakdown, func(i, j int) bool {
		return stats.Breakdown[i].Percentage > stats.Breakdown[j].Percentage
	})

	return stats
}
