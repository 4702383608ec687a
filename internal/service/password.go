package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier compares a password supplied at login against the stored
// credential. The login handler is the only call site, so swapping the
// comparison strategy never touches the HTTP layer.
type PasswordVerifier interface {
	Verify(supplied, stored string) bool
}

// PlainPasswordVerifier compares passwords by exact string equality after
// trimming surrounding whitespace on both sides. This is what the stored
// plaintext credential column requires.
type PlainPasswordVerifier struct{}

func (PlainPasswordVerifier) Verify(supplied, stored string) bool {
	return strings.TrimSpace(supplied) == strings.TrimSpace(stored)
}

// BcryptPasswordVerifier treats the stored credential as a bcrypt hash.
// Drop-in replacement for PlainPasswordVerifier once the password column
// holds hashes instead of raw values.
type BcryptPasswordVerifier struct{}

func (BcryptPasswordVerifier) Verify(supplied, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(strings.TrimSpace(supplied))) == nil
}
