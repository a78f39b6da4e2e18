// Package security provides password hashing for the authentication service.
package security

import "github.com/matthewhartstonge/argon2"

var hashConfig = argon2.DefaultConfig()

// HashPassword hashes a plaintext password with argon2id. A fresh random salt
// is drawn on every call, so hashing the same password twice yields two
// different encodings.
func HashPassword(password string) (string, error) {
	encoded, err := hashConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether password matches the stored encoded hash.
// A stored hash that cannot be parsed is treated as a mismatch rather than an
// error, so a corrupted record can never crash the login path or reveal
// whether the account exists.
func VerifyPassword(password, encoded string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encoded))
	if err != nil {
		return false, nil
	}

	return ok, nil
}
