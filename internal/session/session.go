package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/SergeyKozhin/liferabbit/internal/model"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// TokenKey is the state store key of the persisted bearer token.
const TokenKey = "liferabbit:token"

type stateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Session holds the bearer token of the single local user. It is created
// once at startup and shared by every component that talks to the backend.
type Session struct {
	mu      sync.RWMutex
	token   string
	userKey string

	store  stateStore
	logger *zap.SugaredLogger
}

func New(store stateStore, logger *zap.SugaredLogger) *Session {
	return &Session{store: store, logger: logger}
}

// Start restores a previously persisted token. A missing token is not an error.
func (s *Session) Start(ctx context.Context) error {
	data, err := s.store.Load(ctx, TokenKey)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil
		}
		return fmt.Errorf("load token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return nil
	}

	s.set(token)
	s.logger.Infow("session restored", "user", s.UserKey())

	return nil
}

func (s *Session) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}

	if err := s.store.Save(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	s.set(token)

	return nil
}

func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.userKey = ""
	s.mu.Unlock()

	if err := s.store.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	return nil
}

func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token != ""
}

// Token implements oauth2.TokenSource.
func (s *Session) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return nil, model.ErrNoSession
	}

	return &oauth2.Token{AccessToken: s.token, TokenType: "Bearer"}, nil
}

// UserKey identifies the user in local storage keys. Empty when logged out.
func (s *Session) UserKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userKey
}

func (s *Session) set(token string) {
	key := userKeyFromToken(token)

	s.mu.Lock()
	s.token = token
	s.userKey = key
	s.mu.Unlock()
}
