package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/uptalent/uptalent-server/internal/api/http/context"
	"github.com/uptalent/uptalent-server/internal/model"
)

func TestGuard_RequireAuthenticated_Anonymous(t *testing.T) {
	guard := NewGuard(httpctx.NewManager())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	rec := httptest.NewRecorder()
	guard.RequireAuthenticated(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/talents/1", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"You need to log in to access this page"}`, rec.Body.String())
}

func TestGuard_RequireAuthenticated_WithPrincipal(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	guard := NewGuard(ctxMgr)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/talents/1", nil)
	req = req.WithContext(ctxMgr.SetPrincipal(req.Context(), model.Principal{Email: "john@x.com", Role: model.RoleTalent}))

	rec := httptest.NewRecorder()
	guard.RequireAuthenticated(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestGuard_RequireRole(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	guard := NewGuard(ctxMgr)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	t.Run("anonymous gets 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard.RequireRole(model.RoleTalent)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"You need to log in to access this page"}`, rec.Body.String())
	})

	t.Run("wrong role gets 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(ctxMgr.SetPrincipal(req.Context(), model.Principal{Email: "john@x.com", Role: model.Role("OTHER")}))

		rec := httptest.NewRecorder()
		guard.RequireRole(model.RoleTalent)(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"You do not have permission to access this page"}`, rec.Body.String())
	})

	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(ctxMgr.SetPrincipal(req.Context(), model.Principal{Email: "john@x.com", Role: model.RoleTalent}))

		rec := httptest.NewRecorder()
		guard.RequireRole(model.RoleTalent)(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
