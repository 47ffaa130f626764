package middlewares

import (
	"konsulin-admin-console/internal/app/services/shared/token"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// BearerToken carries the admin's credential from the session cookie, or the
// Authorization header when no cookie is set, into the request context. It
// never rejects a request: a missing token is handled by the screens.
func (m *Middlewares) BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearer := ""
		if cookie, err := r.Cookie(m.InternalConfig.Session.TokenCookieName); err == nil {
			bearer = strings.TrimSpace(cookie.Value)
		}
		if bearer == "" {
			authHeader := r.Header.Get(constvars.HeaderAuthorization)
			if strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
				bearer = strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
			}
		}

		m.Log.Debug("Middlewares.BearerToken resolved",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.Bool(constvars.LoggingTokenPresentKey, bearer != ""),
		)

		if bearer == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(token.ContextWithToken(r.Context(), bearer)))
	})
}
