package session

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix        = "storefront:delivery_session:"
	maxUpdateRetries = 5
)

// redisStore shares sessions between API replicas. Updates use WATCH/MULTI so
// a concurrent selection change is never overwritten by a stale writer.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisStore wraps client as a SessionStore.
func NewRedisStore(client *redis.Client, ttl time.Duration) repository.SessionStore {
	return &redisStore{client: client, ttl: ttl, now: time.Now}
}

func sessionKey(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

func (s *redisStore) Get(ctx context.Context, userID uuid.UUID) (*entity.DeliverySession, error) {
	return s.read(ctx, s.client, userID)
}

func (s *redisStore) Update(ctx context.Context, userID uuid.UUID, fn func(*entity.DeliverySession) error) (*entity.DeliverySession, error) {
	key := sessionKey(userID)

	var result *entity.DeliverySession
	txf := func(tx *redis.Tx) error {
		session, err := s.read(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := fn(session); err != nil {
			return err
		}
		session.UserID = userID
		session.UpdatedAt = s.now()

		payload, err := encodeSession(session)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)

			return nil
		})
		if err == nil {
			result = session
		}

		return err
	}

	for range maxUpdateRetries {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return nil, err
	}

	return nil, repository.ErrSessionConflict
}

func (s *redisStore) Delete(ctx context.Context, userID uuid.UUID) error {
	return errors.WithStack(s.client.Del(ctx, sessionKey(userID)).Err())
}

// getter is the part of redis.Client and redis.Tx that read needs.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *redisStore) read(ctx context.Context, cmd getter, userID uuid.UUID) (*entity.DeliverySession, error) {
	raw, err := cmd.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewDeliverySession(userID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read delivery session")
	}

	return decodeSession(raw)
}

func encodeSession(session *entity.DeliverySession) ([]byte, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "encode delivery session")
	}

	return payload, nil
}

func decodeSession(raw []byte) (*entity.DeliverySession, error) {
	var session entity.DeliverySession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "decode delivery session")
	}
	if session.Verdict == "" {
		session.Verdict = entity.VerdictUnknown
	}

	return &session, nil
}
