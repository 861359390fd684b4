package service

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/accounthub/account-service/internal/core/domain"
)

// defaultTokenTTL bounds the blast radius of a leaked token. There is no
// refresh mechanism; re-login is the only renewal path.
const defaultTokenTTL = time.Hour

// ErrInvalidToken covers every token verification failure: bad signature,
// malformed payload, wrong algorithm, expiry.
var ErrInvalidToken = domain.NewAPIError(http.StatusUnauthorized, "Invalid or expired token")

// JWTTokenService signs and verifies HS256 bearer tokens.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

func (s *JWTTokenService) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subjectID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *JWTTokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
