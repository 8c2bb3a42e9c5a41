package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/uptalent/uptalent-server/internal/model"
)

// Fixed bodies written by the failure responders.
const (
	ForbiddenMessage    = "You need to log in to access this page"
	AccessDeniedMessage = "You do not have permission to access this page"
)

// Guard terminates requests that reach a protected route without the
// required identity. Must run after Authenticate.
type Guard struct {
	contextManager model.ContextManager
}

// NewGuard creates a new Guard middleware instance.
func NewGuard(contextManager model.ContextManager) *Guard {
	return &Guard{contextManager: contextManager}
}

// RequireAuthenticated rejects anonymous callers with a fixed 401 body.
func (g *Guard) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := g.contextManager.GetPrincipal(r.Context()); !ok {
			writeMessage(w, http.StatusUnauthorized, ForbiddenMessage)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects callers lacking the role with a fixed 403 body;
// anonymous callers get the 401 body.
func (g *Guard) RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := g.contextManager.GetPrincipal(r.Context())
			if !ok {
				writeMessage(w, http.StatusUnauthorized, ForbiddenMessage)
				return
			}
			if principal.Role != role {
				writeMessage(w, http.StatusForbidden, AccessDeniedMessage)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
