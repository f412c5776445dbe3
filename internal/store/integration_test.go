//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MKhiriev/go-campus-blog/internal/config"
	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/models"
)

// setupPostgres starts a throwaway PostgreSQL container and returns its DSN.
func setupPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "blog",
			"POSTGRES_PASSWORD": "blog",
			"POSTGRES_DB":       "blog",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("postgres://blog:blog@%s:%s/blog?sslmode=disable", host, mappedPort.Port())
}

func TestIntegration_UserTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	dsn := setupPostgres(t)

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{Driver: config.DriverPostgres, DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	users := storages.UserRepository
	user := testUser()

	created, err := users.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.False(t, created.IsVerified)

	_, err = users.CreateUser(ctx, user)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	now := time.Now()
	require.NoError(t, users.SetSignupToken(ctx, created.ID, "digest-1", now.Add(time.Hour)))

	found, err := users.FindUserBySignupToken(ctx, "digest-1", now)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = users.FindUserBySignupToken(ctx, "digest-1", now.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	// expired between lookup and update
	assert.ErrorIs(t, users.MarkVerified(ctx, created.ID, "digest-1", now.Add(2*time.Hour)), ErrPendingTokenMismatch)

	require.NoError(t, users.MarkVerified(ctx, created.ID, "digest-1", now))
	assert.ErrorIs(t, users.MarkVerified(ctx, created.ID, "digest-1", now), ErrPendingTokenMismatch)

	verified, err := users.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Nil(t, verified.SignupToken)
	assert.Nil(t, verified.SignupTokenExpires)

	require.NoError(t, users.SetPasswordResetToken(ctx, created.ID, "reset-1", now.Add(-time.Minute)))
	purged, err := users.PurgeExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	require.NoError(t, users.Deactivate(ctx, created.ID))
	_, err = users.FindUserByEmail(ctx, created.Email)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestIntegration_BlogLikes(t *testing.T) {
	ctx := context.Background()
	dsn := setupPostgres(t)

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{Driver: config.DriverPostgres, DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	author, err := storages.UserRepository.CreateUser(ctx, testUser())
	require.NoError(t, err)

	blog := testBlog()
	blog.UserID = author.ID
	created, err := storages.BlogRepository.CreateBlog(ctx, blog)
	require.NoError(t, err)

	likes, err := storages.BlogRepository.ToggleLike(ctx, created.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{author.ID}, likes)

	likes, err = storages.BlogRepository.ToggleLike(ctx, created.ID, author.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)

	_, err = storages.BlogRepository.ToggleLike(ctx, "missing", author.ID)
	assert.ErrorIs(t, err, ErrBlogNotFound)

	page, err := storages.BlogRepository.SearchBlogs(ctx, models.BlogQuery{OnlyPublished: true, Sort: models.SortPopular, Page: 1, Limit: 16})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	random, err := storages.BlogRepository.RandomBlogs(ctx, 4)
	require.NoError(t, err)
	require.Len(t, random, 1)
	assert.Equal(t, created.ID, random[0].ID)
}
