package transport

import (
	"context"
	"net/http"
	"strings"

	authapp "github.com/globalremedies/backend/application/auth"
	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/gorilla/mux"
)

// AuthMiddleware validates JWT sessions via AuthApp. It accepts either a
// Bearer header or the token cookie set at login, and allows public
// endpoints through without a token.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, userType, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			ctx = context.WithValue(ctx, constant.UserTypeKey, userType)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken prefers the Authorization header, falling back to the cookie
// for browser clients.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

// isPublicPath defines which endpoints are reachable without a session.
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	switch path {
	case "/api/user/signup",
		"/api/user/verify-otp",
		"/api/user/login",
		"/api/user/forgot-password",
		"/api/user/reset-password",
		"/api/user/googleAuth",
		"/api/user/googleAuth/callback":
		return true
	}
	return false
}
