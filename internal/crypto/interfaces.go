package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// plaintext candidates against stored hashes.
//
// Hash must produce a different result for every call on the same input
// (a fresh salt is embedded in each hash), and Verify must succeed iff the
// plaintext matches the hash.
type PasswordHasher interface {
	// Hash returns the encoded hash of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash.
	Verify(plaintext, hash string) bool
}
