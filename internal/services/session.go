package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"sync"
	"time"

	"github.com/moodora/moodora-backend/internal/database"
)

const (
	// SessionDuration is 7 days
	SessionDuration = 7 * 24 * time.Hour
	// SessionKeyPrefix is the Redis key prefix for sessions
	SessionKeyPrefix = "session:"
	// UserSessionKeyPrefix is the Redis key prefix for user->session mapping
	UserSessionKeyPrefix = "user_session:"
)

// SessionStore issues and validates opaque bearer tokens bound to a user id.
type SessionStore interface {
	// Create issues a token for userID, invalidating any prior session so
	// the 7-day timer restarts from this login.
	Create(userID int64) (string, error)
	// Validate returns the user id for token. ok is false for unknown or
	// expired tokens; that is not an error.
	Validate(token string) (userID int64, ok bool, err error)
	Invalidate(token string) error
	InvalidateUser(userID int64) error
}

func newSessionToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}

// RedisSessions stores sessions in Redis with a 7-day TTL. Two keys per
// session: token -> user id, and user id -> token so re-login can drop the
// previous session.
type RedisSessions struct{}

func NewRedisSessions() *RedisSessions { return &RedisSessions{} }

func (s *RedisSessions) Create(userID int64) (string, error) {
	// Drop any existing session for this user first
	s.InvalidateUser(userID)

	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	userIDStr := strconv.FormatInt(userID, 10)

	if err := database.RedisClient.Set(ctx, SessionKeyPrefix+token, userIDStr, SessionDuration).Err(); err != nil {
		return "", err
	}
	if err := database.RedisClient.Set(ctx, UserSessionKeyPrefix+userIDStr, token, SessionDuration).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisSessions) Validate(token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	ctx := context.Background()
	userIDStr, err := database.RedisClient.Get(ctx, SessionKeyPrefix+token).Result()
	if err != nil {
		return 0, false, nil
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return userID, true, nil
}

func (s *RedisSessions) Invalidate(token string) error {
	if token == "" {
		return nil
	}

	ctx := context.Background()
	sessionKey := SessionKeyPrefix + token

	// Drop the user->session mapping before the session itself
	userIDStr, err := database.RedisClient.Get(ctx, sessionKey).Result()
	if err == nil && userIDStr != "" {
		database.RedisClient.Del(ctx, UserSessionKeyPrefix+userIDStr)
	}

	return database.RedisClient.Del(ctx, sessionKey).Err()
}

func (s *RedisSessions) InvalidateUser(userID int64) error {
	ctx := context.Background()
	userSessionKey := UserSessionKeyPrefix + strconv.FormatInt(userID, 10)

	token, err := database.RedisClient.Get(ctx, userSessionKey).Result()
	if err == nil && token != "" {
		database.RedisClient.Del(ctx, SessionKeyPrefix+token)
	}

	return database.RedisClient.Del(ctx, userSessionKey).Err()
}

// MemorySessions keeps sessions in process memory. Used when no Redis is
// configured and by the handler tests. Sessions die with the process.
type MemorySessions struct {
	mu      sync.Mutex
	byToken map[string]memorySession
	byUser  map[int64]string
	now     func() time.Time
}

type memorySession struct {
	userID    int64
	expiresAt time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{
		byToken: make(map[string]memorySession),
		byUser:  make(map[int64]string),
		now:     time.Now,
	}
}

func (s *MemorySessions) Create(userID int64) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.byUser[userID]; ok {
		delete(s.byToken, old)
	}
	s.byToken[token] = memorySession{userID: userID, expiresAt: s.now().Add(SessionDuration)}
	s.byUser[userID] = token
	return token, nil
}

func (s *MemorySessions) Validate(token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byToken[token]
	if !ok {
		return 0, false, nil
	}
	if s.now().After(sess.expiresAt) {
		delete(s.byToken, token)
		delete(s.byUser, sess.userID)
		return 0, false, nil
	}
	return sess.userID, true, nil
}

func (s *MemorySessions) Invalidate(token string) error {
	if token == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.byToken[token]; ok {
		delete(s.byUser, sess.userID)
		delete(s.byToken, token)
	}
	return nil
}

func (s *MemorySessions) InvalidateUser(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token, ok := s.byUser[userID]; ok {
		delete(s.byToken, token)
		delete(s.byUser, userID)
	}
	return nil
}
