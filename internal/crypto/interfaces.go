package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/hasher_mock.go -package=mock

// Hasher turns a cleartext password into the digest stored on a
// user record and compares candidate passwords against it.
//
// The digest format is fixed: lowercase hex SHA-256 of the UTF-8 password,
// with no salt. Existing accounts (including the seeded administrator) were
// created with this format, so any replacement must keep producing it.
type Hasher interface {
	// Hash returns the 64-character lowercase hex digest of password.
	Hash(password string) string

	// Compare reports whether password hashes to storedHash.
	// The comparison takes the same time for every mismatch position.
	Compare(password, storedHash string) bool
}
