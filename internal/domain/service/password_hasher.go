package service

// PasswordHasher defines the one-way, salted password transform.
type PasswordHasher interface {
	// Hash generates a salted hash of a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
