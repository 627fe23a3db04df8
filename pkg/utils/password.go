package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes with bcrypt at the fixed default work factor.
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword reports whether pw matches the stored hash. A mismatch
// (or an empty stored hash) is false, never an error.
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
