// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-campus-blog/models"
)

func TestEncodeTags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{name: "nil becomes empty array", tags: nil, want: "[]"},
		{name: "empty", tags: []string{}, want: "[]"},
		{name: "values", tags: []string{"dsa", "s3"}, want: `["dsa","s3"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeTags(tt.tags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTags(t *testing.T) {
	tags, err := decodeTags("")
	require.NoError(t, err)
	assert.Equal(t, []string{}, tags)

	tags, err = decodeTags(`["os"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"os"}, tags)

	_, err = decodeTags("not json")
	assert.Error(t, err)
}

func TestSearchConditions(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		assert.Empty(t, searchConditions(models.BlogQuery{}))
	})

	t.Run("admin queue", func(t *testing.T) {
		sql, args, err := searchConditions(models.BlogQuery{OnlyUnreviewed: true, Semester: "4"}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(draft = ? AND reviewed = ? AND semester = ?)", sql)
		assert.Equal(t, []any{false, false, "4"}, args)
	})

	t.Run("author and search", func(t *testing.T) {
		sql, args, err := searchConditions(models.BlogQuery{UserID: "u1", Search: "Graph"}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(user_id = ? AND LOWER(title) LIKE ?)", sql)
		assert.Equal(t, []any{"u1", "%graph%"}, args)
	})
}

func TestSortOrder(t *testing.T) {
	assert.Equal(t, []string{"created_at DESC"}, sortOrder(""))
	assert.Equal(t, []string{"created_at DESC"}, sortOrder(models.SortLatest))
	assert.Equal(t, []string{"created_at ASC"}, sortOrder(models.SortOldest))
	assert.Equal(t, []string{likesCount + " DESC", "created_at DESC"}, sortOrder(models.SortPopular))
}
