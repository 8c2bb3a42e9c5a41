package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/uptalent/uptalent-server/internal/model"
)

const (
	// Issuer is stamped into every token and required back on verification.
	Issuer = "UpTalent"

	tokenTTL = time.Hour
)

var (
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrMalformedToken   = errors.New("token is malformed")
	ErrWrongIssuer      = errors.New("token issuer mismatch")
)

// Claims is the token payload: registered issuer/subject/iat/exp plus
// the talent-specific fields.
type Claims struct {
	jwt.RegisteredClaims
	TalentID  int64  `json:"talent_id"`
	Role      string `json:"role"`
	Firstname string `json:"firstname"`
}

// Expired reports whether the token expiry is at or before now.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !c.ExpiresAt.Time.After(now)
}

// Principal builds the caller identity carried by the claims.
func (c *Claims) Principal() model.Principal {
	return model.Principal{
		Email: c.Subject,
		Role:  model.Role(c.Role),
	}
}

// JWT issues and verifies HS512-signed talent tokens.
type JWT struct {
	secretKey string
}

// NewJWT creates a token codec with the provided signing secret.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey}
}

// Issue creates a signed token for the talent, valid for one hour.
func (j *JWT) Issue(talent model.Talent) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   talent.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		TalentID:  talent.ID,
		Role:      string(model.RoleTalent),
		Firstname: talent.Firstname,
	})

	tokenString, err := t.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks structure, signature and issuer and returns the claims.
// Expiry is deliberately not checked here; callers layer Expired on top
// so a structurally valid but stale token can still be inspected.
func (j *JWT) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if !t.Valid {
		return nil, ErrInvalidSignature
	}
	if claims.Issuer != Issuer {
		return nil, ErrWrongIssuer
	}
	return claims, nil
}
