package model

import "strings"

// Role is an open set of authorities a principal may carry.
type Role string

// RoleTalent is the only role issued today.
const RoleTalent Role = "TALENT"

// Principal is the authenticated caller resolved for a single request.
// It is built from verified token claims (or from a stored profile at
// login time) and is never persisted.
type Principal struct {
	Email string
	Role  Role
}

// Owns reports whether the principal is the owner of the profile
// identified by email. Ownership ignores letter casing.
func (p Principal) Owns(email string) bool {
	return strings.EqualFold(p.Email, email)
}
