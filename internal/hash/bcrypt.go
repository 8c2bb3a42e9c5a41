package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/uptalent/uptalent-server/internal/model"
)

var _ model.Hasher = (*Bcrypt)(nil)

// Bcrypt implements the credential hashing capability with bcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the default bcrypt cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// Hash derives a one-way hash of the plaintext password.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Matches reports whether the plaintext password produced the hash.
func (b *Bcrypt) Matches(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
