package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNoSession = errors.New("session not found")

// Flash is a one-shot notice rendered on the next admin page and then
// discarded.
type Flash struct {
	Kind string
	Text string
}

// Session is the per-browser admin state. It is loaded once per request and
// passed explicitly to handlers; there is no process-global session state.
type Session struct {
	ID            string
	AdminID       int64
	AdminUsername string
	LoggedIn      bool
}

type Store interface {
	Create(ctx context.Context, adminID int64, adminUsername string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Destroy(ctx context.Context, id string) error
	SetFlash(ctx context.Context, id, kind, text string) error
	// TakeFlash returns the stored flash and clears it. A flash is read at
	// most once; the second call returns nil.
	TakeFlash(ctx context.Context, id string) (*Flash, error)
}

const sessionTTL = 24 * time.Hour

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func sessionKey(id string) string {
	return fmt.Sprintf("admin_session:%s", id)
}

func (s *redisStore) Create(ctx context.Context, adminID int64, adminUsername string) (*Session, error) {
	sess := &Session{
		ID:            uuid.New().String(),
		AdminID:       adminID,
		AdminUsername: adminUsername,
		LoggedIn:      true,
	}

	key := sessionKey(sess.ID)
	if err := s.client.HSet(ctx, key,
		"logged_in", "1",
		"admin_id", strconv.FormatInt(adminID, 10),
		"admin_username", adminUsername,
	).Err(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.client.Expire(ctx, key, sessionTTL)

	return sess, nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNoSession
	}

	fields, err := s.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrNoSession
	}

	adminID, _ := strconv.ParseInt(fields["admin_id"], 10, 64)
	return &Session{
		ID:            id,
		AdminID:       adminID,
		AdminUsername: fields["admin_username"],
		LoggedIn:      fields["logged_in"] == "1",
	}, nil
}

func (s *redisStore) Destroy(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

func (s *redisStore) SetFlash(ctx context.Context, id, kind, text string) error {
	return s.client.HSet(ctx, sessionKey(id),
		"flash_kind", kind,
		"flash_text", text,
	).Err()
}

func (s *redisStore) TakeFlash(ctx context.Context, id string) (*Flash, error) {
	key := sessionKey(id)
	vals, err := s.client.HMGet(ctx, key, "flash_kind", "flash_text").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load flash: %w", err)
	}

	kind, _ := vals[0].(string)
	text, _ := vals[1].(string)
	if kind == "" && text == "" {
		return nil, nil
	}

	if err := s.client.HDel(ctx, key, "flash_kind", "flash_text").Err(); err != nil {
		return nil, fmt.Errorf("failed to clear flash: %w", err)
	}

	return &Flash{Kind: kind, Text: text}, nil
}
