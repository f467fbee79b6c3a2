package mocks

import (
	"github.com/google/uuid"

	"github.com/you/marketsvc/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc         func(userID uuid.UUID, role domain.Role, tokenVersion int) (string, error)
	DecodeFunc        func(token string) (*domain.TokenClaims, error)
	DecodeExpiredFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Issue(userID uuid.UUID, role domain.Role, tokenVersion int) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, role, tokenVersion)
	}
	return "token", nil
}

func (m *MockTokenService) Decode(token string) (*domain.TokenClaims, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(token)
	}
	return nil, domain.ErrTokenMalformed
}

func (m *MockTokenService) DecodeExpired(token string) (*domain.TokenClaims, error) {
	if m.DecodeExpiredFunc != nil {
		return m.DecodeExpiredFunc(token)
	}
	return nil, domain.ErrTokenMalformed
}

var _ domain.TokenService = (*MockTokenService)(nil)
