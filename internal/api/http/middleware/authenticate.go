package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/uptalent/uptalent-server/internal/logger"
	"github.com/uptalent/uptalent-server/internal/model"
	"github.com/uptalent/uptalent-server/internal/token"
)

// tokenScheme is the exact Authorization header prefix; matching is
// case-sensitive.
const tokenScheme = "Bearer "

// TokenVerifier checks token structure, signature and issuer.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Authenticate is the authentication gate. It runs on every request,
// attaches a principal for a valid bearer token and otherwise lets the
// request continue anonymous. It never terminates the pipeline itself;
// route guards decide whether anonymity is acceptable.
type Authenticate struct {
	verifier       TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(verifier TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{verifier: verifier, contextManager: contextManager, logger: logger}
}

// Handle wraps next with optional bearer authentication.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, tokenScheme) {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.verifier.Verify(strings.TrimPrefix(header, tokenScheme))
		if err != nil {
			// Forged or malformed tokens degrade to anonymous.
			m.logger.Debug("Authenticate middleware: token rejected",
				"error", err.Error())
			next.ServeHTTP(w, r)
			return
		}

		if claims.Expired(time.Now()) || claims.Subject == "" {
			next.ServeHTTP(w, r)
			return
		}

		// First principal wins; a second pass over the same request
		// must not replace an already attached identity.
		if _, ok := m.contextManager.GetPrincipal(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := m.contextManager.SetPrincipal(r.Context(), claims.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
