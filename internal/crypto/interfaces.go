package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing hashes and
// checks candidates against them. It knows nothing about users, storage or
// transport.
//
// Encoded hashes use the PHC string format:
//
//	$argon2id$v=19$m=<KiB>,t=<iterations>,p=<threads>$<salt b64>$<hash b64>
type PasswordHasher interface {
	// Hash derives a fresh random salt and returns the encoded hash of
	// password. Two calls with the same password return different strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. The comparison
	// runs in constant time with respect to the derived key. A malformed
	// encodedHash yields ErrInvalidHash.
	Verify(password, encodedHash string) (bool, error)
}
