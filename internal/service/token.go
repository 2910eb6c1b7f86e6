package service

import (
	"time"

	"taskdeck/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the signed bearer tokens handed
// out at login. Tokens are stateless: nothing is stored server-side,
// and an issued token stays valid until its expiry even if the
// account changes underneath it.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(s.ttl).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and time-based claims and returns the
// embedded user id. Every failure mode collapses into
// domain.ErrInvalidToken; callers have no reason to distinguish them.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	// jwt.Parse already rejects expired tokens; the checks below
	// guard against claims that are missing outright.
	if _, ok := claims["exp"]; !ok {
		return 0, domain.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	return int64(userID), nil
}
