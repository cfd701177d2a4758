// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"shop/config"
	"shop/internal/domain/service"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	defaultResetTTL   = time.Hour
)

var errUnknownTokenType = errors.New("unknown token type")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	resetTTL      time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	s := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		resetTTL:      defaultResetTTL,
		now:           time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			s.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			s.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
		if cfg.Auth.PasswordResetTTL > 0 {
			s.resetTTL = cfg.Auth.PasswordResetTTL
		}
	}
	return s, nil
}

// GenerateTokens creates a new access token and refresh token for a given user and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, roles, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, nil, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GeneratePasswordResetToken signs a reset token with the refresh secret. The
// fingerprint lets the caller reject the token once the password has changed.
func (s *jwtService) GeneratePasswordResetToken(userID uuid.UUID, fingerprint string) (string, error) {
	if fingerprint == "" {
		return "", errors.New("password reset token needs a fingerprint")
	}

	return s.sign(s.baseClaims(userID, s.resetTTL, service.TokenTypePasswordReset, jwt.MapClaims{"fp": fingerprint}), s.refreshSecret)
}

// ValidateToken verifies the signature with the secret matching the token's
// type claim and converts the payload into service.Claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	mapClaims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, mapClaims, s.keyFor,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	return toClaims(mapClaims)
}

func (s *jwtService) keyFor(token *jwt.Token) (any, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errUnknownTokenType
	}
	switch claims["type"] {
	case service.TokenTypeAccess:
		return []byte(s.accessSecret), nil
	case service.TokenTypeRefresh, service.TokenTypePasswordReset:
		return []byte(s.refreshSecret), nil
	default:
		return nil, errUnknownTokenType
	}
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	var extra jwt.MapClaims
	// Only the access token carries roles.
	if roles != nil {
		extra = jwt.MapClaims{"roles": roles}
	}

	return s.sign(s.baseClaims(userID, ttl, tokenType, extra), secret)
}

func (s *jwtService) baseClaims(userID uuid.UUID, ttl time.Duration, tokenType string, extra jwt.MapClaims) jwt.MapClaims {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"type": tokenType,
	}
	for k, v := range extra {
		claims[k] = v
	}

	return claims
}

func (s *jwtService) sign(claims jwt.MapClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

func toClaims(mapClaims jwt.MapClaims) (*service.Claims, error) {
	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	tokenType, _ := mapClaims["type"].(string)
	fingerprint, _ := mapClaims["fp"].(string)

	var roles []string
	if raw, ok := mapClaims["roles"].([]any); ok {
		roles = make([]string, 0, len(raw))
		for _, r := range raw {
			if role, ok := r.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	claims := &service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   tokenType,

		Fingerprint: fingerprint,
	}
	claims.Subject = subject
	if jti, ok := mapClaims["jti"].(string); ok {
		claims.ID = jti
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}
	return claims, nil
}
