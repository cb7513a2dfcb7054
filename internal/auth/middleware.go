package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/simplido/internal/model"
	"github.com/BuzzLyutic/simplido/internal/repo"
	"github.com/BuzzLyutic/simplido/pkg/respond"
)

type ctxKey int

const userKey ctxKey = 0

// CurrentUser достает пользователя, положенного в контекст миддлварой
func CurrentUser(ctx context.Context) (model.User, bool) {
	u, ok := ctx.Value(userKey).(model.User)
	return u, ok
}

// WithUser кладет разрезолвленного пользователя в контекст
func WithUser(ctx context.Context, u model.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// Gate проверяет bearer-токен и резолвит его в пользователя.
// Чистый гейт: только читает, ничего не мутирует.
type Gate struct {
	tokens *TokenService
	users  repo.UserRepository
	logger *zap.Logger
}

func NewGate(tokens *TokenService, users repo.UserRepository, logger *zap.Logger) *Gate {
	return &Gate{
		tokens: tokens,
		users:  users,
		logger: logger,
	}
}

func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			g.unauthorized(w, r)
			return
		}

		subject, err := g.tokens.Validate(raw)
		if err != nil {
			g.unauthorized(w, r)
			return
		}

		user, err := g.users.GetByUsername(r.Context(), subject)
		if err != nil {
			// Валидная подпись на несуществующего пользователя
			// неотличима снаружи от невалидного токена
			if errors.Is(err, repo.ErrorNotFound) {
				g.unauthorized(w, r)
				return
			}
			g.logger.Error("user lookup failed", zap.Error(err))
			respond.Error(w, r, http.StatusInternalServerError, "internal error")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (g *Gate) unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	respond.Error(w, r, http.StatusUnauthorized, "could not validate credentials")
}
