// Package services file: services/auth_service.go
package services

import (
	"context"

	"ticket-office/logger"
	"ticket-office/models"
)

// AuthServiceInterface is what the controllers depend on for sign-in,
// registration and sign-out.
type AuthServiceInterface interface {
	Login(ctx context.Context, creds models.Credentials) (models.AuthPayload, error)
	Register(ctx context.Context, reg models.Registration) (models.AuthPayload, error)
	Logout(ctx context.Context, token string)
}

// AuthService calls the backend auth endpoints.
type AuthService struct {
	client *BackendClient
}

// NewAuthService builds an AuthService over the shared backend client.
func NewAuthService(client *BackendClient) *AuthService {
	return &AuthService{client: client}
}

// Login authenticates against the backend. A successful envelope must carry
// both a token and a user record; anything less is treated as a failed
// login, because a half-filled session pair is never persisted.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (models.AuthPayload, error) {
	env, err := s.client.Post(ctx, "/auth/login", "", creds)
	if err != nil {
		return models.AuthPayload{}, err
	}
	if !env.OK() {
		return models.AuthPayload{}, appError(env, "login failed, please try again")
	}

	var payload models.AuthPayload
	if err := env.DecodeData(&payload); err != nil {
		logger.Error.Printf("Login: success envelope with undecodable data: %v", err)
		return models.AuthPayload{}, appError(env, "login failed, please try again")
	}
	if payload.Token == "" || payload.User == nil {
		logger.Warn.Println("Login: success envelope missing token or user")
		return models.AuthPayload{}, appError(env, "login failed, please try again")
	}

	logger.Info.Printf("Login: user %s authenticated (role=%s)", payload.User.Email, payload.User.Role)
	return payload, nil
}

// Register creates an account. The backend may or may not sign the new
// account in; the caller decides what to do when the token is absent.
func (s *AuthService) Register(ctx context.Context, reg models.Registration) (models.AuthPayload, error) {
	env, err := s.client.Post(ctx, "/auth/register", "", reg)
	if err != nil {
		return models.AuthPayload{}, err
	}
	if !env.OK() {
		return models.AuthPayload{}, appError(env, "registration failed, please try again")
	}

	var payload models.AuthPayload
	if len(env.Data) > 0 {
		if err := env.DecodeData(&payload); err != nil {
			logger.Warn.Printf("Register: success envelope with undecodable data: %v", err)
		}
	}

	logger.Info.Printf("Register: account created for %s", reg.Email)
	return payload, nil
}

// Logout notifies the backend, best effort. The local session is cleared by
// the caller regardless of what happens here; a dead backend must never
// keep someone signed in.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if _, err := s.client.Post(ctx, "/auth/logout", token, nil); err != nil {
		logger.Warn.Printf("Logout: backend notification failed: %v", err)
	}
}
