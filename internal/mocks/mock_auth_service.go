package mocks

import (
	"context"

	"github.com/you/marketsvc/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
	LogoutFunc   func(ctx context.Context, token string) error
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password, role)
	}
	return nil, domain.ErrEmailTaken
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", domain.ErrInvalidCredentials
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

var _ domain.AuthService = (*MockAuthService)(nil)
