package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
)

type contextKey string

const emailKey contextKey = "auth_email"

// EmailFromContext extracts the authenticated admin email from request context.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// Authenticate returns middleware that validates bearer tokens on mutating
// routes. A missing, malformed, invalid or expired token short-circuits the
// request with 401 before any handler runs.
func Authenticate(jwtMgr *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, err := extractAndValidate(r, jwtMgr)
			if err != nil {
				writeAuthError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractAndValidate(r *http.Request, jwtMgr *JWTManager) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", domain.ErrUnauthorized("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", domain.ErrUnauthorized("invalid Authorization format")
	}

	return jwtMgr.ValidateToken(parts[1])
}

func writeAuthError(w http.ResponseWriter, err error) {
	code, message := "UNAUTHORIZED", "unauthorized"
	if appErr, ok := err.(*domain.AppError); ok {
		code, message = appErr.Code, appErr.Message
	}
	http.Error(w, `{"code":"`+code+`","message":"`+message+`"}`, http.StatusUnauthorized)
}
