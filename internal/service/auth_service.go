package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/CodeWithNeha/Data-Pusher/internal/domain"
	"github.com/CodeWithNeha/Data-Pusher/internal/repository"
	"github.com/CodeWithNeha/Data-Pusher/internal/security"
)

var (
	// ErrUnauthenticated means no credential was supplied at all.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidToken means a credential was supplied but matches no account.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthService resolves app secret tokens to accounts, consulting the token
// cache before the database. Cache errors degrade to a database lookup and
// never fail a request.
type AuthService struct {
	accounts repository.AccountRepository
	cache    TokenCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

func NewAuthService(accounts repository.AccountRepository, cache TokenCache, cacheTTL time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{accounts: accounts, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	digest := security.HashSecretToken(token)
	if cached, ok, err := s.cache.Get(ctx, digest); err != nil {
		s.logger.Warn("token cache lookup failed, falling back to database", "error", err)
	} else if ok {
		var account domain.Account
		decodeErr := json.Unmarshal(cached, &account)
		if decodeErr == nil {
			return &account, nil
		}
		s.logger.Warn("token cache entry corrupt, falling back to database", "error", decodeErr)
	}

	account, err := s.accounts.FindByToken(token)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if payload, err := json.Marshal(account); err == nil {
		if err := s.cache.Set(ctx, digest, payload, s.cacheTTL); err != nil {
			s.logger.Warn("token cache store failed", "error", err)
		}
	}
	return account, nil
}

// InvalidateToken drops the cached account for a secret token. Callers
// invalidate on account update and delete so the cache never outlives a
// rotated or removed credential past its TTL.
func (s *AuthService) InvalidateToken(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.cache.Invalidate(ctx, security.HashSecretToken(token)); err != nil {
		s.logger.Warn("token cache invalidation failed", "error", err)
	}
}
