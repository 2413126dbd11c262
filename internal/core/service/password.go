package service

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted one-way hash from a raw password. The salt
// is embedded in the output, so the same input yields a different hash on
// every call.
func HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether raw matches the stored hash. A malformed
// stored hash fails closed: the answer is false, never an error the caller
// could mistake for a match.
func CheckPassword(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
