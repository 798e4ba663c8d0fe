package middleware

import (
	"net/http"
	"strings"

	"github.com/mjdigitalmedia/agency-api/internal/auth"
	"go.uber.org/zap"
)

// AuthMiddleware guards the admin API with bearer tokens
type AuthMiddleware struct {
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewAuthMiddleware(tokens *auth.TokenManager, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the
// admin identity on the request context
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(w, "Missing bearer token")
			return
		}

		claims, err := m.tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.logger.Warn("rejected invalid token",
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := auth.WithContext(r.Context(), &auth.UserContext{Username: claims.Username})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"` + message + `"}`))
}
