// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"authcore/internal/domain/service"
	"authcore/internal/errors"
)

// User is an account that can authenticate and belong to groups.
// The password is only ever held as a hash; there is no plaintext field.
type User struct {
	ID       uint64       // Auto-incremented primary key.
	Login    string       // Login identifier, indexed but not unique.
	Username string       // Display/login name, indexed but not unique.
	Email    string       // Contact email, indexed but not unique.
	Active   ActiveStatus // Account state, ActiveYes unless changed.
	Groups   []*Group     // Groups the user is a member of, in load order.

	passwordHash string
}

// NewUser returns an active user with the given identifiers and no password.
func NewUser(login, username, email string) *User {
	return &User{
		Login:    login,
		Username: username,
		Email:    email,
		Active:   ActiveYes,
	}
}

// SetPassword hashes plaintext with hasher and stores the result.
// It is the only way to change a user's password.
func (u *User) SetPassword(hasher service.PasswordHasher, plaintext string) error {
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	u.passwordHash = hash

	return nil
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// RestoreUser rebuilds a user loaded from storage, together with the hash
// a PasswordHasher produced when it was saved. It is reserved for repository
// mappers; every other caller goes through NewUser and SetPassword.
func RestoreUser(stored User, passwordHash string) *User {
	stored.passwordHash = passwordHash

	return &stored
}

// InGroup reports whether the user belongs to a group with the given name.
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g != nil && g.Name == name {
			return true
		}
	}

	return false
}
