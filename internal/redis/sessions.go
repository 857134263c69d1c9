package redis

import (
	"context"
	"errors"

	"safescout/pkg/e"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SessionStore resolves bearer tokens to user ids. Sessions are issued
// elsewhere; this service only reads them.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

func NewSessionStore(r *Redis) *SessionStore {
	return &SessionStore{
		client: r.Client,
		prefix: "sessions:",
	}
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, e.ErrUnauthorized
	}

	val, err := s.client.Get(ctx, s.prefix+token).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return uuid.Nil, e.ErrUnauthorized
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, e.ErrUnauthorized
	}
	return userID, nil
}
