package middleware

import (
	"context"
	"net/http"
	"strings"

	"pochita-clinic/internal/ports/auth"
)

type ctxKey string

const sessionKey ctxKey = "session"

// AuthContext:
// - Si sessions != nil y viene Bearer token => busca la sesión y setea claims.
// - Si sessions == nil => modo dev: headers X-Debug-User-ID / X-Debug-Role.
// - Si no hay claims, el request sigue igual; RequireRole decide 401/403.
func AuthContext(sessions auth.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Dev mode: permitir inyectar usuario sin sesión real
			if sessions == nil {
				if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
					claims := auth.Claims{UserID: uid}
					if role, ok := auth.ParseRole(r.Header.Get("X-Debug-Role")); ok {
						claims.Role = role
					}
					sess := auth.Session{Token: bearerToken(r.Header.Get("Authorization")), User: claims}
					ctx := context.WithValue(r.Context(), sessionKey, sess)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := sessions.Get(r.Context(), token)
			if err != nil {
				// No cortamos aquí; el handler o RequireRole decide.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession devuelve la sesión completa (incluye el bearer token, que
// los módulos remotos reenvían upstream tal cual).
func GetSession(ctx context.Context) (auth.Session, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return auth.Session{}, false
	}
	s, ok := v.(auth.Session)
	return s, ok
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	s, ok := GetSession(ctx)
	if !ok {
		return auth.Claims{}, false
	}
	return s.User, true
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
