package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT with convenience accessors for authentication
// flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, issued-at,
// expiry).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) that is returned to the client in the login
// response body and in the "jwt" cookie.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims carries sub (user id), iss, iat and exp.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the "sub" claim, cached after a successful parse.
	UserID string `json:"-"`
}

// IssuedAtTime returns the iat claim. Tokens without iat are rejected
// during parsing, so the zero time only shows up on unparsed tokens.
func (t *Token) IssuedAtTime() (time.Time, error) {
	iat, err := t.GetIssuedAt()
	if err != nil {
		return time.Time{}, err
	}
	if iat == nil {
		return time.Time{}, errors.New("token has no iat claim")
	}
	return iat.Time, nil
}

// ExpiresAtTime returns the exp claim or the zero time.
func (t *Token) ExpiresAtTime() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// PendingToken is a single-use secret sent to a user by email.
//
// Raw goes only into the emailed link. Digest (hex SHA-256 of Raw) and
// ExpiresAt are what gets persisted on the user record.
type PendingToken struct {
	Raw       string
	Digest    string
	ExpiresAt time.Time
}
