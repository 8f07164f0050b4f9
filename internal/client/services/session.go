// Package services contains the application services of the SHIELD client.
//
// SessionService owns the authenticated session, DetectionService submits
// content for analysis and DashboardService assembles the analytics view.
// All of them talk to the API only through client.Client.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Priyanshu7318/SHIELD/internal/client/client"
	"github.com/Priyanshu7318/SHIELD/internal/client/models"
	"github.com/Priyanshu7318/SHIELD/internal/client/repositories/credentials"
	"github.com/Priyanshu7318/SHIELD/internal/logging"
)

// SessionService maintains the authenticated/unauthenticated state of the
// client and mediates the identity operations.
//
// Contract:
//   - Bootstrap: restore a session from the stored credential, failing closed.
//   - Login: obtain, persist and activate a credential, then load the user.
//   - Signup: create an account; the session is not changed.
//   - Logout: drop the session locally without contacting the API.
//   - ChangePassword: change the password of the logged-in user.
//   - Ping: check server liveness.
type SessionService interface {
	Bootstrap(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, current, next, confirm string) (*models.Message, error)
	CurrentUser() *models.User
	IsAuthenticated() bool
	Ping(ctx context.Context) error
}

type sessionService struct {
	client client.Client
	cred   *client.Credential
	repo   credentials.Repository
	log    logging.Logger

	mu   sync.RWMutex
	user *models.User
}

// NewSessionService builds a SessionService. cred must be the same holder
// the client's transport reads from.
func NewSessionService(c client.Client, cred *client.Credential, repo credentials.Repository, log logging.Logger) SessionService {
	return &sessionService{client: c, cred: cred, repo: repo, log: log}
}

// Bootstrap restores the session from the stored credential, if there is one.
// When the API does not accept the credential, for whatever reason, it is
// wiped and the session stays unauthenticated; that case is not an error.
func (s *sessionService) Bootstrap(ctx context.Context) (*models.User, error) {
	token, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	if token == "" {
		s.log.Debug(ctx, "no stored credential")
		return nil, nil
	}

	s.cred.Set(token)
	user, err := s.client.Me(ctx)
	if err != nil {
		s.log.Warn(ctx, "stored credential rejected, clearing", "error", err)
		s.dropSession(ctx)
		return nil, nil
	}

	s.setUser(user)
	s.log.Info(ctx, "session restored", "user", user.Username)
	return user, nil
}

// Login authenticates and returns the raw login payload. On success the new
// credential replaces any stored one and the current user is loaded. If the
// user cannot be loaded the credential is discarded again and the error is
// returned.
func (s *sessionService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, validationError("username is required")
	}
	if password == "" {
		return nil, validationError("password is required")
	}

	resp, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "user", username, "error", err)
		return nil, fmt.Errorf("login: %w", asAuthError(err))
	}

	if err := s.repo.Save(ctx, resp.AccessToken); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	s.cred.Set(resp.AccessToken)

	user, err := s.client.Me(ctx)
	if err != nil {
		s.log.Warn(ctx, "user lookup after login failed", "user", username, "error", err)
		s.dropSession(ctx)
		return nil, fmt.Errorf("load current user: %w", err)
	}

	s.setUser(user)
	s.log.Info(ctx, "logged in", "user", user.Username)
	return resp, nil
}

func (s *sessionService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	switch {
	case username == "":
		return nil, validationError("username is required")
	case email == "":
		return nil, validationError("email is required")
	case password == "":
		return nil, validationError("password is required")
	}

	user, err := s.client.Signup(ctx, username, email, password)
	if err != nil {
		s.log.Warn(ctx, "signup failed", "user", username, "error", err)
		return nil, fmt.Errorf("signup: %w", asAuthError(err))
	}
	s.log.Info(ctx, "account created", "user", user.Username)
	return user, nil
}

// Logout clears the session locally. The in-memory state is always cleared;
// an error only reports that the stored credential could not be removed.
func (s *sessionService) Logout(ctx context.Context) error {
	s.setUser(nil)
	s.cred.Clear()
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to remove stored credential", "error", err)
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *sessionService) ChangePassword(ctx context.Context, current, next, confirm string) (*models.Message, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	switch {
	case current == "":
		return nil, validationError("current password is required")
	case next == "":
		return nil, validationError("new password is required")
	case next != confirm:
		return nil, validationError("New passwords do not match")
	}

	msg, err := s.client.ChangePassword(ctx, current, next)
	if err != nil {
		s.log.Warn(ctx, "password change failed", "error", err)
		return nil, fmt.Errorf("change password: %w", err)
	}
	return msg, nil
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (s *sessionService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *sessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *sessionService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *sessionService) setUser(u *models.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// dropSession forgets the user and the credential both in memory and in
// the store. A store failure is logged; the in-memory state is cleared anyway.
func (s *sessionService) dropSession(ctx context.Context) {
	s.setUser(nil)
	s.cred.Clear()
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to remove stored credential", "error", err)
	}
}
