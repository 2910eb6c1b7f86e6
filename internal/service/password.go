package service

import "golang.org/x/crypto/bcrypt"

// fixed work factor; raising it only affects newly created hashes
const bcryptCost = 10

// PasswordHasher wraps bcrypt so handlers and services never touch
// the raw primitives.
type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

func (PasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches hash. A mismatch is a normal
// outcome, not an error.
func (PasswordHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
