package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/uptalent/uptalent-server/internal/api/http/context"
	"github.com/uptalent/uptalent-server/internal/api/http/router"
	"github.com/uptalent/uptalent-server/internal/mocks"
	"github.com/uptalent/uptalent-server/internal/model"
	"github.com/uptalent/uptalent-server/internal/testutil"
	"github.com/uptalent/uptalent-server/internal/token"
)

const testSecret = "router-test-secret"

func makeRouter(t *testing.T) (http.Handler, *mocks.TalentService, *token.JWT) {
	t.Helper()

	svc := new(mocks.TalentService)
	tokenManager := token.NewJWT(testSecret)
	handler := router.New(svc, tokenManager, httpcontext.NewManager(), testutil.MakeNoopLogger()).Register()

	return handler, svc, tokenManager
}

func issueToken(t *testing.T, tokenManager *token.JWT, email string) string {
	t.Helper()

	jwtToken, err := tokenManager.Issue(model.Talent{ID: 5, Email: email, Firstname: "Owner"})
	require.NoError(t, err)
	return jwtToken
}

func TestRouter_PublicRoutes(t *testing.T) {
	t.Run("listing needs no token", func(t *testing.T) {
		handler, svc, _ := makeRouter(t)
		svc.On("List", mock.Anything, 0, 9).Return([]model.Talent{}, 0, nil).Once()

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/talents", nil))

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("nested file keys resolve", func(t *testing.T) {
		handler, svc, _ := makeRouter(t)
		svc.On("OpenMedia", mock.Anything, "avatars/a1").
			Return(nil, "", model.ErrNotFound).Once()

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/files/avatars/a1", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	protected := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/v1/talents/5"},
		{http.MethodPatch, "/api/v1/talents/5"},
		{http.MethodDelete, "/api/v1/talents/5"},
		{http.MethodPost, "/api/v1/talents/5/avatar"},
		{http.MethodPost, "/api/v1/talents/5/banner"},
	}

	t.Run("anonymous requests are rejected before the handler", func(t *testing.T) {
		for _, route := range protected {
			t.Run(route.method+" "+route.target, func(t *testing.T) {
				handler, svc, _ := makeRouter(t)

				w := httptest.NewRecorder()
				handler.ServeHTTP(w, httptest.NewRequest(route.method, route.target, nil))

				require.Equal(t, http.StatusUnauthorized, w.Code)
				assert.JSONEq(t, `{"message": "You need to log in to access this page"}`, w.Body.String())
				svc.AssertNotCalled(t, "Profile", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("a garbage token is treated as anonymous", func(t *testing.T) {
		handler, _, _ := makeRouter(t)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/talents/5", nil)
		r.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("a valid token reaches the handler", func(t *testing.T) {
		handler, svc, tokenManager := makeRouter(t)
		svc.On("Profile", mock.Anything, int64(5)).
			Return(model.Talent{ID: 5, Email: "owner@gmail.com"}, true, nil).Once()

		r := httptest.NewRequest(http.MethodGet, "/api/v1/talents/5", nil)
		r.Header.Set("Authorization", "Bearer "+issueToken(t, tokenManager, "owner@gmail.com"))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"owner@gmail.com"`)
	})

	t.Run("non-numeric profile ids do not match", func(t *testing.T) {
		handler, _, _ := makeRouter(t)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/talents/abc", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
