package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/uptalent/uptalent-server/internal/api/http/context"
	"github.com/uptalent/uptalent-server/internal/model"
	"github.com/uptalent/uptalent-server/internal/testutil"
	"github.com/uptalent/uptalent-server/internal/token"
)

func runGate(t *testing.T, authorization string, mutate func(*http.Request) *http.Request) (model.Principal, bool) {
	t.Helper()

	ctxMgr := httpctx.NewManager()
	gate := NewAuthenticate(token.NewJWT("secret"), ctxMgr, testutil.MakeNoopLogger())

	var (
		principal model.Principal
		attached  bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, attached = ctxMgr.GetPrincipal(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/talents/1", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	if mutate != nil {
		req = mutate(req)
	}

	rec := httptest.NewRecorder()
	gate.Handle(next).ServeHTTP(rec, req)

	// the gate never terminates the pipeline
	require.Equal(t, http.StatusOK, rec.Code)

	return principal, attached
}

func TestAuthenticate_ValidToken(t *testing.T) {
	signed, err := token.NewJWT("secret").Issue(model.Talent{ID: 7, Email: "john@x.com", Firstname: "John"})
	require.NoError(t, err)

	principal, attached := runGate(t, "Bearer "+signed, nil)
	require.True(t, attached)
	assert.Equal(t, "john@x.com", principal.Email)
	assert.Equal(t, model.RoleTalent, principal.Role)
}

func TestAuthenticate_AnonymousPassthrough(t *testing.T) {
	signedOther, err := token.NewJWT("other-secret").Issue(model.Talent{ID: 7, Email: "john@x.com"})
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS512, token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    token.Issuer,
			Subject:   "john@x.com",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Role: string(model.RoleTalent),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
	}{
		{name: "no header", authorization: ""},
		{name: "wrong scheme", authorization: "Basic am9objpwdw=="},
		{name: "lowercase scheme", authorization: "bearer some-token"},
		{name: "garbage token", authorization: "Bearer not.a.token"},
		{name: "wrong secret", authorization: "Bearer " + signedOther},
		{name: "expired token", authorization: "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, attached := runGate(t, tt.authorization, nil)
			assert.False(t, attached)
		})
	}
}

func TestAuthenticate_FirstPrincipalWins(t *testing.T) {
	ctxMgr := httpctx.NewManager()
	signed, err := token.NewJWT("secret").Issue(model.Talent{ID: 2, Email: "jane@x.com"})
	require.NoError(t, err)

	first := model.Principal{Email: "john@x.com", Role: model.RoleTalent}
	principal, attached := runGate(t, "Bearer "+signed, func(r *http.Request) *http.Request {
		return r.WithContext(ctxMgr.SetPrincipal(r.Context(), first))
	})

	require.True(t, attached)
	assert.Equal(t, first, principal)
}
