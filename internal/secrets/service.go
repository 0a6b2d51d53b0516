package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/repository"
)

// Repository defines the data access interface for encrypted secrets
type Repository interface {
	repository.Secrets
}

// Service defines the interface for per-user and global API key storage
type Service interface {
	UserKey(ctx context.Context, userID string) (string, bool, error)
	SetUserKey(ctx context.Context, userID, apiKey string) error
	DeleteUserKey(ctx context.Context, userID string) (bool, error)

	GlobalKey(ctx context.Context, slot string) (string, bool, error)
	SetGlobalKey(ctx context.Context, slot, apiKey string) error
	DeleteGlobalKey(ctx context.Context, slot string) (bool, error)

	// ResolveFactionKey prefers the global faction key, then the user's own key.
	// It returns domain.ErrNoCredential when neither exists.
	ResolveFactionKey(ctx context.Context, userID string) (string, error)
}

type service struct {
	repo   Repository
	cipher Cipher
}

// NewService creates a new secrets service
func NewService(repo Repository, cipher Cipher) Service {
	return &service{repo: repo, cipher: cipher}
}

func (s *service) UserKey(ctx context.Context, userID string) (string, bool, error) {
	return s.get(ctx, userPrefix+userID)
}

func (s *service) SetUserKey(ctx context.Context, userID, apiKey string) error {
	return s.put(ctx, userPrefix+userID, apiKey)
}

func (s *service) DeleteUserKey(ctx context.Context, userID string) (bool, error) {
	return s.repo.DeleteSecret(ctx, userPrefix+userID)
}

func (s *service) GlobalKey(ctx context.Context, slot string) (string, bool, error) {
	return s.get(ctx, globalPrefix+slot)
}

func (s *service) SetGlobalKey(ctx context.Context, slot, apiKey string) error {
	return s.put(ctx, globalPrefix+slot, apiKey)
}

func (s *service) DeleteGlobalKey(ctx context.Context, slot string) (bool, error) {
	return s.repo.DeleteSecret(ctx, globalPrefix+slot)
}

func (s *service) ResolveFactionKey(ctx context.Context, userID string) (string, error) {
	key, ok, err := s.GlobalKey(ctx, SlotFaction)
	if err != nil {
		return "", err
	}
	if ok {
		return key, nil
	}

	if userID != "" {
		key, ok, err = s.UserKey(ctx, userID)
		if err != nil {
			return "", err
		}
		if ok {
			return key, nil
		}
	}
	return "", domain.ErrNoCredential
}

func (s *service) get(ctx context.Context, owner string) (string, bool, error) {
	token, ok, err := s.repo.GetSecret(ctx, owner)
	if err != nil || !ok {
		return "", false, err
	}
	plain, err := s.cipher.Open(token)
	if err != nil {
		if errors.Is(err, domain.ErrDecryptFailed) {
			return "", false, fmt.Errorf("%w: %s", domain.ErrDecryptFailed, owner)
		}
		return "", false, err
	}
	return string(plain), true, nil
}

func (s *service) put(ctx context.Context, owner, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New(ErrMsgEmptySecret)
	}
	token, err := s.cipher.Seal([]byte(value))
	if err != nil {
		return err
	}
	return s.repo.PutSecret(ctx, owner, token)
}
