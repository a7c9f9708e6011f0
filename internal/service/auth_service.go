package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/operator/actions"
	"github.com/carson-networks/expensum/internal/storage"
	"github.com/carson-networks/expensum/internal/storage/sqlconfig"
	"github.com/carson-networks/expensum/internal/token"
)

// AuthService handles signup, login and token refresh.
type AuthService struct {
	storage   *storage.Storage
	processor Processor
	tokens    *token.Service
}

func NewAuthService(store *storage.Storage, processor Processor, tokens *token.Service) *AuthService {
	return &AuthService{storage: store, processor: processor, tokens: tokens}
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates the user and their "other" category, then issues a token pair.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*Session, error) {
	hash, err := token.HashPassword(password)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateUser{
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, sqlconfig.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issueSession(action.User)
}

// Login checks the credentials. Unknown emails and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	row, err := s.storage.Users.FindByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !token.CheckPassword(password, row.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(row)
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}
	claims, err := s.tokens.Verify(refreshToken, token.KindRefresh)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRefreshToken, err)
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if _, err := s.storage.Users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	access, err := s.issue(userID, token.KindAccess)
	if err != nil {
		return nil, err
	}
	return &access, nil
}

// Me returns the signed-in user.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user := userFromStorage(row)
	return &user, nil
}

func (s *AuthService) issueSession(row *sqlconfig.User) (*Session, error) {
	access, err := s.issue(row.ID, token.KindAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issue(row.ID, token.KindRefresh)
	if err != nil {
		return nil, err
	}
	return &Session{
		User:    userFromStorage(row),
		Access:  access,
		Refresh: refresh,
	}, nil
}

func (s *AuthService) issue(userID uuid.UUID, kind token.Kind) (Token, error) {
	value, expiresAt, err := s.tokens.Issue(userID, kind)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: value, ExpiresAt: expiresAt}, nil
}
