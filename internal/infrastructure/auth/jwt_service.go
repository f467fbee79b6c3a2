package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/you/marketsvc/domain"
)

// sessionClaims is the wire shape of a session token's claim set.
type sessionClaims struct {
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
	jwt.RegisteredClaims
}

// JWTServiceImpl implements domain.TokenService with HMAC-signed JWTs.
// Issue and Decode are pure; neither touches storage.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	tokenTTL  time.Duration
}

// NewJWTService creates a new JWT token service
func NewJWTService(secretKey, issuer string, tokenTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		tokenTTL:  tokenTTL,
	}
}

// Issue implements domain.TokenService
func (j *JWTServiceImpl) Issue(userID uuid.UUID, role domain.Role, tokenVersion int) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role:         string(role),
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Decode implements domain.TokenService
func (j *JWTServiceImpl) Decode(token string) (*domain.TokenClaims, error) {
	return j.decode(token, false)
}

// DecodeExpired implements domain.TokenService. The signature is still
// verified; only the expiry claim is skipped. Logout relies on this so that
// a holder of an expired token can always revoke.
func (j *JWTServiceImpl) DecodeExpired(token string) (*domain.TokenClaims, error) {
	return j.decode(token, true)
}

func (j *JWTServiceImpl) decode(tokenString string, allowExpired bool) (*domain.TokenClaims, error) {
	opts := []jwt.ParserOption{jwt.WithIssuedAt()}
	if allowExpired {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenUnsupported
		}
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, translateJWTError(err)
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}
	role := domain.Role(claims.Role)
	if !role.Valid() {
		return nil, domain.ErrTokenMalformed
	}

	out := &domain.TokenClaims{
		UserID:       userID,
		Role:         role,
		TokenVersion: claims.TokenVersion,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return out, nil
}

// translateJWTError maps jwt parser failures onto the domain's token
// sentinels so callers can log the cause without parsing error strings.
func translateJWTError(err error) error {
	switch {
	case errors.Is(err, domain.ErrTokenUnsupported):
		return domain.ErrTokenUnsupported
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domain.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return domain.ErrTokenUnsupported
	}
	return domain.ErrTokenInvalid
}
