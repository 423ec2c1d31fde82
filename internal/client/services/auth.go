// Package services contains the application services the CLI drives: the
// authentication flow and the journal flow.
package services

import (
	"context"
	"fmt"

	"emojournal/internal/client/models"
	"emojournal/internal/logging"
)

// AuthAPI is the slice of the auth backend the service needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (access, refresh string, err error)
	Register(ctx context.Context, username, email, password string) error
	Me(ctx context.Context, accessToken string) (models.User, error)
}

// Credentials is the slice of the credential store the service writes.
type Credentials interface {
	SetTokens(ctx context.Context, access, refresh string) error
	SetUser(ctx context.Context, u models.User) error
	Clear(ctx context.Context) error
	User() (models.User, bool)
	IsAuthenticated() bool
}

// AuthService implements sign-in, sign-up and sign-out on top of the auth
// backend and the credential store.
type AuthService struct {
	api   AuthAPI
	creds Credentials
	log   logging.Logger
}

func NewAuthService(api AuthAPI, creds Credentials, log logging.Logger) *AuthService {
	return &AuthService{api: api, creds: creds, log: log}
}

// SignIn authenticates, persists the token pair, then resolves and persists
// the account. Any failure propagates so the caller can report it; tokens
// stored before a failed account lookup remain usable.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (models.User, error) {
	access, refresh, err := s.api.Login(ctx, username, password)
	if err != nil {
		return models.User{}, fmt.Errorf("login failed: %w", err)
	}

	if err := s.creds.SetTokens(ctx, access, refresh); err != nil {
		return models.User{}, fmt.Errorf("error saving tokens: %w", err)
	}

	user, err := s.api.Me(ctx, access)
	if err != nil {
		return models.User{}, fmt.Errorf("error resolving account: %w", err)
	}
	if err := s.creds.SetUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("error saving user: %w", err)
	}

	s.log.Info(ctx, "signed in", "username", user.Username)
	return user, nil
}

// SignUp creates the account and immediately signs in to obtain tokens.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (models.User, error) {
	if err := s.api.Register(ctx, username, email, password); err != nil {
		return models.User{}, fmt.Errorf("registration failed: %w", err)
	}
	return s.SignIn(ctx, username, password)
}

// SignOut purges the stored session. Local journal data is kept.
func (s *AuthService) SignOut(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	s.log.Info(ctx, "signed out")
	return nil
}

// CurrentUser returns the persisted account, if any.
func (s *AuthService) CurrentUser() (models.User, bool) {
	return s.creds.User()
}

// IsAuthenticated reports whether a session is present.
func (s *AuthService) IsAuthenticated() bool {
	return s.creds.IsAuthenticated()
}
