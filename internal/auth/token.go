package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokenService(secret, algorithm string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		method: jwt.GetSigningMethod(algorithm),
		ttl:    ttl,
	}
}

// Issue подписывает {sub, exp} процессным секретом. Подпись покрывает
// весь payload, так что подмена subject или exp ломает токен целиком.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// IssueDefault выпускает токен со сроком жизни из конфигурации
func (s *TokenService) IssueDefault(subject string) (string, error) {
	return s.Issue(subject, s.ttl)
}

// Validate проверяет сначала подпись, потом срок. Наружу уходит
// единый 401, но ошибки различимы для диагностики.
func (s *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
