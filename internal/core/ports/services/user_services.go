package services

import (
	"context"

	"github.com/custos-app/custos-backend/internal/core/domain"
)

// UserSvcFacade handles API users and credential checks.
type UserSvcFacade interface {
	// AuthenticateUser verifies username/password and returns the user.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// EnsureUser creates the user if it does not exist yet. Used for the
	// bootstrap admin account configured via environment.
	EnsureUser(ctx context.Context, username, password string) error
}
