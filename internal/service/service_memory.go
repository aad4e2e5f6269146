package service

import (
	"context"
	"fmt"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/store"
	"github.com/coladapo/puo-memo-platform/internal/validators"
	"github.com/coladapo/puo-memo-platform/models"
)

const (
	// maxTitleLength caps the title derived from untitled memory content.
	maxTitleLength = 100

	// DefaultSearchLimit applies when a search request omits the limit.
	DefaultSearchLimit = 10

	// MaxSearchLimit caps the page size of a single search request.
	MaxSearchLimit = 100
)

// monthlyQuotas maps a subscription tier to the number of memories the tier
// may create per calendar month. A zero value means unlimited. Tiers missing
// from the map fall back to the free quota.
var monthlyQuotas = map[string]int{
	"free":       100,
	"pro":        10000,
	"enterprise": 0,
}

// memoryService is the concrete implementation of MemoryService.
type memoryService struct {
	// memoryRepository persists and searches memory records.
	memoryRepository store.MemoryRepository

	// validator rejects memories with empty content.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewMemoryService constructs a MemoryService wired to the given repository.
func NewMemoryService(memoryRepository store.MemoryRepository, validator validators.Validator, logger *logger.Logger) MemoryService {
	return &memoryService{
		memoryRepository: memoryRepository,
		validator:        validator,
		logger:           logger,
	}
}

// Create persists a new memory for the user.
//
// The caller passes the full user record (obtained during authentication) so
// the monthly quota of the user's subscription tier can be enforced without
// another lookup. A write that would exceed the quota returns
// [ErrMonthlyLimitExceeded].
//
// An omitted title defaults to the first [maxTitleLength] characters of the
// content. Persistence increments the owner's usage counters in the same
// transaction as the insert.
func (s *memoryService) Create(ctx context.Context, user models.User, req models.CreateMemoryRequest) (models.Memory, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("invalid memory request")
		return models.Memory{}, newValidationError(err)
	}

	if quota := quotaForTier(user.SubscriptionTier); quota > 0 && user.MonthlyMemoryCount >= quota {
		log.Warn().
			Str("userID", user.ID).
			Str("tier", user.SubscriptionTier).
			Int("monthlyCount", user.MonthlyMemoryCount).
			Int("quota", quota).
			Msg("monthly memory quota exceeded")
		return models.Memory{}, ErrMonthlyLimitExceeded
	}

	memory := models.Memory{
		UserID:   user.ID,
		Content:  req.Content,
		Title:    req.Title,
		Tags:     req.Tags,
		Metadata: req.Metadata,
	}
	if memory.Title == "" {
		memory.Title = deriveTitle(req.Content)
	}

	saved, err := s.memoryRepository.CreateMemory(ctx, memory)
	if err != nil {
		log.Err(err).Str("userID", user.ID).Msg("memory creation ended with error")
		return models.Memory{}, fmt.Errorf("memory creation ended with error: %w", err)
	}

	return saved, nil
}

// Search returns the user's memories matching the query, newest first.
// A non-positive limit falls back to [DefaultSearchLimit]; anything above
// [MaxSearchLimit] is clamped. An empty query lists the user's latest
// memories.
func (s *memoryService) Search(ctx context.Context, userID, query string, limit int) ([]models.Memory, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	memories, err := s.memoryRepository.SearchMemories(ctx, userID, query, uint64(limit))
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("memory search ended with error")
		return nil, fmt.Errorf("memory search ended with error: %w", err)
	}

	return memories, nil
}

func quotaForTier(tier string) int {
	if quota, ok := monthlyQuotas[tier]; ok {
		return quota
	}
	return monthlyQuotas["free"]
}

// deriveTitle builds a display title from content, truncating on a rune
// boundary so multi-byte characters are never split.
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= maxTitleLength {
		return content
	}
	return string(runes[:maxTitleLength])
}
