package middleware

import (
	"net/http"

	"pochita-clinic/internal/ports/auth"
)

// RequireAuth exige sesión pero no restringe por rol.
func RequireAuth() func(http.Handler) http.Handler {
	return RequireRole(auth.RoleCliente, auth.RoleRecepcionista, auth.RoleVeterinario, auth.RoleAdmin)
}

// RequireRole corta con 401 si no hay sesión y 403 si el rol no está permitido.
// Es la versión HTTP de los redirects del SPA (login / home).
func RequireRole(allowed ...auth.Role) func(http.Handler) http.Handler {
	set := make(map[auth.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok || claims.UserID == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if _, ok := set[claims.Role]; !ok {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
