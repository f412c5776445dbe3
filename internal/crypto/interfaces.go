package crypto

import (
	"time"

	"github.com/MKhiriev/go-campus-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against them.
type PasswordHasher interface {
	// Hash returns a salted hash of plain. Each call yields a different hash
	// for the same input.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches hash. It never returns an error:
	// a malformed hash simply does not match.
	Verify(plain, hash string) bool
}

// TokenGenerator issues single-use secrets for email links.
type TokenGenerator interface {
	// Issue returns a fresh token valid for ttl starting at now.
	Issue(now time.Time, ttl time.Duration) (models.PendingToken, error)

	// Digest returns the value stored for raw. Lookups compare digests,
	// never raw tokens.
	Digest(raw string) string
}
