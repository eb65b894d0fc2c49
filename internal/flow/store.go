package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound is returned when a flow session does not exist or
// has expired.
var ErrSessionNotFound = errors.New("flow session not found")

const (
	sessionKeyPrefix = "flow:session:"
	sessionTTL       = 24 * time.Hour
)

// Store persists per-session flow state in Redis. Navigating away just
// lets the session expire.
type Store interface {
	Save(ctx context.Context, sessionID string, state State) error
	Find(ctx context.Context, sessionID string) (State, error)
}

type redisStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewRedisStore(redisClient *redis.Client, log *logrus.Logger) Store {
	return &redisStore{
		redisClient: redisClient,
		log:         log,
	}
}

func (s *redisStore) Save(ctx context.Context, sessionID string, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	key := sessionKeyPrefix + sessionID
	if err := s.redisClient.Set(ctx, key, payload, sessionTTL).Err(); err != nil {
		s.log.Warnf("Failed to store flow session %s: %+v", sessionID, err)
		return fmt.Errorf("store flow session %s: %w", sessionID, err)
	}
	return nil
}

func (s *redisStore) Find(ctx context.Context, sessionID string) (State, error) {
	payload, err := s.redisClient.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return State{}, ErrSessionNotFound
		}
		s.log.Warnf("Failed to load flow session %s: %+v", sessionID, err)
		return State{}, fmt.Errorf("load flow session %s: %w", sessionID, err)
	}

	var state State
	if err := json.Unmarshal(payload, &state); err != nil {
		return State{}, fmt.Errorf("decode flow session %s: %w", sessionID, err)
	}
	return state, nil
}
