package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *TokenService {
	return NewTokenService("test-secret", "HS256", 30*time.Minute)
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	tokens := newTestTokenService()

	token, err := tokens.Issue("alice", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	tokens := newTestTokenService()

	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{name: "zero ttl", ttl: 0},
		{name: "negative ttl", ttl: -time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.Issue("alice", tt.ttl)
			require.NoError(t, err)

			_, err = tokens.Validate(token)
			assert.ErrorIs(t, err, ErrExpiredToken)
		})
	}
}

// tamper подменяет один символ в указанной части токена (header.payload.signature)
func tamper(t *testing.T, token string, part int) string {
	t.Helper()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	p := []byte(parts[part])
	if p[0] == 'A' {
		p[0] = 'B'
	} else {
		p[0] = 'A'
	}
	parts[part] = string(p)
	return strings.Join(parts, ".")
}

func TestTokenService_TamperedToken(t *testing.T) {
	tokens := newTestTokenService()

	token, err := tokens.Issue("alice", time.Minute)
	require.NoError(t, err)

	for part, name := range map[int]string{0: "header", 1: "payload", 2: "signature"} {
		t.Run("tampered "+name, func(t *testing.T) {
			_, err := tokens.Validate(tamper(t, token, part))
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenService_TamperedExpiredToken(t *testing.T) {
	tokens := newTestTokenService()

	// Просроченный токен с подмененным payload должен падать как invalid,
	// а не как expired: подпись проверяется раньше срока
	token, err := tokens.Issue("alice", -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Validate(tamper(t, token, 1))
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrExpiredToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	tokens := newTestTokenService()
	other := NewTokenService("another-secret", "HS256", 30*time.Minute)

	token, err := other.Issue("alice", time.Minute)
	require.NoError(t, err)

	_, err = tokens.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	tokens := newTestTokenService()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "abcdef"},
		{name: "two parts", token: "aaa.bbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
