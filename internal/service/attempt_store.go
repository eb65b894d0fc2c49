package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"encontrapsi/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrAttemptNotFound is returned when an attempt does not exist or has
// expired.
var ErrAttemptNotFound = errors.New("quiz attempt not found")

const (
	attemptKeyPrefix = "quiz:attempt:"

	// Abandoned attempts expire on their own; nothing durable to clean
	// up.
	attemptTTL = time.Hour
)

// AttemptStore keeps in-progress quiz attempts. Attempts are transient
// session state, never written to the database.
type AttemptStore interface {
	Save(ctx context.Context, attempt *entity.QuizAttempt) error
	Find(ctx context.Context, id string) (*entity.QuizAttempt, error)
	Delete(ctx context.Context, id string) error
}

type redisAttemptStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewRedisAttemptStore(redisClient *redis.Client, log *logrus.Logger) AttemptStore {
	return &redisAttemptStore{
		redisClient: redisClient,
		log:         log,
	}
}

func (s *redisAttemptStore) Save(ctx context.Context, attempt *entity.QuizAttempt) error {
	payload, err := json.Marshal(attempt)
	if err != nil {
		return err
	}

	key := attemptKeyPrefix + attempt.ID
	if err := s.redisClient.Set(ctx, key, payload, attemptTTL).Err(); err != nil {
		s.log.Warnf("Failed to store quiz attempt %s: %+v", attempt.ID, err)
		return fmt.Errorf("store attempt %s: %w", attempt.ID, err)
	}
	return nil
}

func (s *redisAttemptStore) Find(ctx context.Context, id string) (*entity.QuizAttempt, error) {
	payload, err := s.redisClient.Get(ctx, attemptKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrAttemptNotFound
		}
		s.log.Warnf("Failed to load quiz attempt %s: %+v", id, err)
		return nil, fmt.Errorf("load attempt %s: %w", id, err)
	}

	var attempt entity.QuizAttempt
	if err := json.Unmarshal(payload, &attempt); err != nil {
		return nil, fmt.Errorf("decode attempt %s: %w", id, err)
	}
	return &attempt, nil
}

func (s *redisAttemptStore) Delete(ctx context.Context, id string) error {
	return s.redisClient.Del(ctx, attemptKeyPrefix+id).Err()
}
