package model

// Hasher is the one-way credential hashing capability. Stored hashes
// are opaque to the rest of the system.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, hash string) bool
}
