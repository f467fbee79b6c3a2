package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/marketsvc/domain"
)

func issueWithSubject(j *JWTServiceImpl, subject string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: string(domain.RoleCustomer),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
}

func newTestService(ttl time.Duration) domain.TokenService {
	return NewJWTService("test-secret", "marketsvc-test", ttl)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID, domain.RoleCustomer, 3)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestJWTService_RoundTrip_ShopkeeperZeroVersion(t *testing.T) {
	svc := newTestService(time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID, domain.RoleShopkeeper, 0)
	require.NoError(t, err)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, domain.RoleShopkeeper, claims.Role)
	assert.Equal(t, 0, claims.TokenVersion)
}

func TestJWTService_Decode_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)
	token, err := svc.Issue(uuid.New(), domain.RoleCustomer, 0)
	require.NoError(t, err)

	_, err = svc.Decode(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_DecodeExpired_AcceptsExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)
	userID := uuid.New()
	token, err := svc.Issue(userID, domain.RoleCustomer, 7)
	require.NoError(t, err)

	claims, err := svc.DecodeExpired(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, 7, claims.TokenVersion)
}

func TestJWTService_DecodeExpired_StillChecksSignature(t *testing.T) {
	issuer := NewJWTService("secret-a", "marketsvc-test", time.Hour)
	verifier := NewJWTService("secret-b", "marketsvc-test", time.Hour)

	token, err := issuer.Issue(uuid.New(), domain.RoleCustomer, 0)
	require.NoError(t, err)

	_, err = verifier.DecodeExpired(token)
	assert.ErrorIs(t, err, domain.ErrTokenSignatureInvalid)
}

func TestJWTService_Decode_BadSignature(t *testing.T) {
	issuer := NewJWTService("secret-a", "marketsvc-test", time.Hour)
	verifier := NewJWTService("secret-b", "marketsvc-test", time.Hour)

	token, err := issuer.Issue(uuid.New(), domain.RoleCustomer, 0)
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, domain.ErrTokenSignatureInvalid)
}

func TestJWTService_Decode_Malformed(t *testing.T) {
	svc := newTestService(time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.Decode(token)
		assert.ErrorIs(t, err, domain.ErrTokenMalformed, "token %q", token)
	}
}

func TestJWTService_Decode_UnsupportedAlgorithm(t *testing.T) {
	svc := newTestService(time.Hour)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"` + uuid.NewString() + `"}`))
	token := header + "." + payload + "."

	_, err := svc.Decode(token)
	assert.ErrorIs(t, err, domain.ErrTokenUnsupported)
}

func TestJWTService_Decode_BadSubject(t *testing.T) {
	// A token signed with our key but carrying a non-uuid subject is
	// malformed, not forged.
	svc := newTestService(time.Hour)
	impl := svc.(*JWTServiceImpl)

	token, err := issueWithSubject(impl, "not-a-uuid")
	require.NoError(t, err)

	_, err = svc.Decode(token)
	assert.ErrorIs(t, err, domain.ErrTokenMalformed)
}
