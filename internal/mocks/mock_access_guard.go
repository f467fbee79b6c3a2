package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/you/marketsvc/domain"
)

// MockAccessGuard implements domain.AccessGuard for testing
type MockAccessGuard struct {
	AuthenticateFunc       func(ctx context.Context, token string) (*domain.User, error)
	AuthorizeOwnershipFunc func(user *domain.User, required domain.Role, ownerID uuid.UUID) error
}

// NewMockAccessGuard creates a new MockAccessGuard
func NewMockAccessGuard() *MockAccessGuard {
	return &MockAccessGuard{}
}

func (m *MockAccessGuard) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	return nil, domain.ErrUnauthenticated
}

func (m *MockAccessGuard) AuthorizeOwnership(user *domain.User, required domain.Role, ownerID uuid.UUID) error {
	if m.AuthorizeOwnershipFunc != nil {
		return m.AuthorizeOwnershipFunc(user, required, ownerID)
	}
	if user == nil || user.Role != required || user.ID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

var _ domain.AccessGuard = (*MockAccessGuard)(nil)
