package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PasswordChangedAfter(t *testing.T) {
	changed := time.Date(2026, 3, 1, 12, 0, 0, 500_000_000, time.UTC)

	tests := []struct {
		name    string
		changed *time.Time
		iat     time.Time
		want    bool
	}{
		{name: "never changed", iat: changed, want: false},
		{name: "token before change", changed: &changed, iat: changed.Add(-time.Second), want: true},
		{name: "token after change", changed: &changed, iat: changed.Add(time.Second), want: false},
		// iat carries whole seconds only
		{name: "same second", changed: &changed, iat: changed.Truncate(time.Second), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := User{PasswordChangedAt: tt.changed}
			assert.Equal(t, tt.want, u.PasswordChangedAfter(tt.iat))
		})
	}
}

func TestUser_PublicHidesSecrets(t *testing.T) {
	token := "digest"
	u := User{
		ID:                 "user-1",
		Name:               "Alice",
		Email:              "alice@nitc.ac.in",
		PasswordHash:       "$2a$10$hash",
		IsVerified:         true,
		Role:               Role{IsAdmin: true, AdminBranch: AdminBranchAll},
		SignupToken:        &token,
		PasswordResetToken: &token,
	}

	data, err := json.Marshal(u.Public())
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"name":"Alice"`)
	for _, leaked := range []string{"hash", "digest", "isAdmin", "isVerified", "role"} {
		assert.NotContains(t, body, leaked)
	}
}

func TestBlogQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, BlogQuery{Page: 0, Limit: 16}.Offset())
	assert.Equal(t, 0, BlogQuery{Page: 1, Limit: 16}.Offset())
	assert.Equal(t, 32, BlogQuery{Page: 3, Limit: 16}.Offset())
	assert.Equal(t, 0, BlogQuery{Page: 3}.Offset())

	// (page-1)*limit would wrap around
	huge := BlogQuery{Page: 576460752303423489, Limit: 16}.Offset()
	assert.Positive(t, huge)
	assert.Equal(t, math.MaxInt/16*16, huge)
}

func TestBlogUpdate_IsEmpty(t *testing.T) {
	assert.True(t, BlogUpdate{}.IsEmpty())

	title := "x"
	assert.False(t, BlogUpdate{Title: &title}.IsEmpty())

	// Slug alone is set by the service, not the client
	assert.True(t, BlogUpdate{Slug: &title}.IsEmpty())
}
