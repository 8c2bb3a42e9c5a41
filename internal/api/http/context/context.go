package context

import (
	"context"

	"github.com/uptalent/uptalent-server/internal/model"
)

// principalKey is the unexported context key for the request principal.
type principalKey struct{}

// Manager attaches and reads the request principal on a context.
// It implements model.ContextManager.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetPrincipal returns a new context carrying the principal.
func (m *Manager) SetPrincipal(ctx context.Context, principal model.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the principal attached to the context.
// The second return reports whether one was attached; its absence
// means the caller is anonymous.
func (m *Manager) GetPrincipal(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(model.Principal)
	return principal, ok
}
