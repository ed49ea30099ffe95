package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"family-records-api/internal/reminder"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const feedKeyPrefix = "reminders:user:"

// FeedCacheService keeps the computed reminder feed per user in Redis.
// Every mutating usecase calls Invalidate on the owner's key, which is this
// system's "source data changed" signal: the next feed read recomputes from
// scratch. The cache is strictly best-effort; any Redis failure degrades to
// a recompute, never to an error for the caller.
type FeedCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewFeedCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *FeedCacheService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &FeedCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func feedKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", feedKeyPrefix, userID)
}

// Get returns the cached feed and whether it was present.
func (s *FeedCacheService) Get(ctx context.Context, userID uuid.UUID) ([]reminder.Item, bool) {
	raw, err := s.redisClient.Get(ctx, feedKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read reminder feed cache: %+v", err)
		}
		return nil, false
	}

	var items []reminder.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warnf("Corrupt reminder feed cache entry, dropping: %+v", err)
		s.Invalidate(ctx, userID)
		return nil, false
	}

	return items, true
}

// Store caches a freshly computed feed.
func (s *FeedCacheService) Store(ctx context.Context, userID uuid.UUID, items []reminder.Item) {
	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Warnf("Failed to marshal reminder feed: %+v", err)
		return
	}

	if err := s.redisClient.Set(ctx, feedKey(userID), raw, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to store reminder feed cache: %+v", err)
	}
}

// Invalidate drops the user's cached feed.
func (s *FeedCacheService) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.redisClient.Del(ctx, feedKey(userID)).Err(); err != nil {
		s.log.Warnf("Failed to invalidate reminder feed cache: %+v", err)
	}
}
