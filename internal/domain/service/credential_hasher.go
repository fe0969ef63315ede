// Package service declares the ports the use cases and the development backend depend on.
package service

// CredentialHasher keeps account passwords for the development backend.
type CredentialHasher interface {
	HashPassword(password string) (string, error)

	// Matches reports whether password produced hash. A malformed hash never matches.
	Matches(hash, password string) bool

	// NeedsRehash reports whether hash was made with weaker settings than the
	// hasher uses now. Accounts are upgraded on their next successful login.
	NeedsRehash(hash string) bool
}
