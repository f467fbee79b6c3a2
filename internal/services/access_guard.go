package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/you/marketsvc/domain"
)

// AccessGuardImpl implements domain.AccessGuard
type AccessGuardImpl struct {
	tokenSvc domain.TokenService
	userRepo domain.UserRepository
}

// NewAccessGuard creates a new access guard
func NewAccessGuard(tokenSvc domain.TokenService, userRepo domain.UserRepository) domain.AccessGuard {
	return &AccessGuardImpl{
		tokenSvc: tokenSvc,
		userRepo: userRepo,
	}
}

// Authenticate implements domain.AccessGuard. Decode failures and a stale
// token version all collapse to ErrUnauthenticated; the precise cause is
// logged but never surfaced to the caller. Storage outages stay transient.
func (g *AccessGuardImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := g.tokenSvc.Decode(token)
	if err != nil {
		log.Printf("auth: token rejected: %v", err)
		return nil, domain.ErrUnauthenticated
	}

	user, err := g.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if claims.TokenVersion != user.TokenVersion {
		log.Printf("auth: token rejected: revoked (user %s)", user.ID)
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// AuthorizeOwnership implements domain.AccessGuard
func (g *AccessGuardImpl) AuthorizeOwnership(user *domain.User, required domain.Role, ownerID uuid.UUID) error {
	if user == nil || user.Role != required || user.ID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}
