package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-campus-blog/models"
)

// PendingTokenSize is the number of random bytes behind each emailed token.
const PendingTokenSize = 32

type tokenGenerator struct {
	random io.Reader
}

// NewTokenGenerator returns a [TokenGenerator] backed by crypto/rand.
func NewTokenGenerator() TokenGenerator {
	return &tokenGenerator{random: rand.Reader}
}

// Issue implements [TokenGenerator]. Raw is the hex encoding of
// PendingTokenSize random bytes and Digest its hex SHA-256.
func (g *tokenGenerator) Issue(now time.Time, ttl time.Duration) (models.PendingToken, error) {
	if ttl <= 0 {
		return models.PendingToken{}, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	buf := make([]byte, PendingTokenSize)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return models.PendingToken{}, fmt.Errorf("failed to generate random token: %w", err)
	}

	raw := hex.EncodeToString(buf)
	return models.PendingToken{
		Raw:       raw,
		Digest:    g.Digest(raw),
		ExpiresAt: now.Add(ttl),
	}, nil
}

// Digest implements [TokenGenerator].
func (g *tokenGenerator) Digest(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
