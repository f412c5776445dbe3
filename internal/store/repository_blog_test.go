package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/models"
)

func newTestBlogRepo(t *testing.T) (*blogRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &blogRepository{db: db, logger: logger.Nop()}, mock
}

func testBlog() models.Blog {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	return models.Blog{
		ID:        "0195f2a4-8000-7000-8000-000000000001",
		UserID:    "0195f2a4-7b1e-7c3d-8a9b-1c2d3e4f5a6b",
		Title:     "Compiler Design Notes",
		Slug:      "compiler-design-notes",
		Branch:    "cse",
		Semester:  "5",
		Subject:   "compilers",
		Tags:      []string{"notes", "s5"},
		Content:   "Lexing first.",
		Reviewed:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func blogRows(blogs ...models.Blog) *sqlmock.Rows {
	rows := sqlmock.NewRows(blogColumns)
	for _, b := range blogs {
		tags, _ := encodeTags(b.Tags)
		rows.AddRow(b.ID, b.UserID, b.Title, b.Slug, b.Description, b.FeaturedImage,
			b.Branch, b.Semester, b.Subject, tags, b.Content, b.Draft, b.Reviewed,
			b.CreatedAt, b.UpdatedAt)
	}
	return rows
}

func TestCreateBlog_Success(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	blog := testBlog()

	mock.ExpectQuery("INSERT INTO blogs").
		WithArgs(blog.ID, blog.UserID, blog.Title, blog.Slug, "", "",
			blog.Branch, blog.Semester, blog.Subject, `["notes","s5"]`, blog.Content, false, true).
		WillReturnRows(blogRows(blog))

	created, err := repo.CreateBlog(context.Background(), blog)
	require.NoError(t, err)
	assert.Equal(t, blog.Tags, created.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBlog_DuplicateTitle(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery("INSERT INTO blogs").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateBlog(context.Background(), testBlog())
	assert.ErrorIs(t, err, ErrTitleAlreadyExists)
}

func TestFindBlogBySlug_NotFound(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(`FROM blogs WHERE slug = \$1`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(blogColumns))

	_, err := repo.FindBlogBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestUpdateBlog_WritesOnlyGivenFields(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	blog := testBlog()
	title, slug := "Compiler Design", "compiler-design"
	tags := []string{"cd"}

	blog.Title, blog.Slug, blog.Tags = title, slug, tags

	mock.ExpectQuery(`UPDATE blogs SET title = \$1, slug = \$2, tags = \$3, updated_at = CURRENT_TIMESTAMP WHERE id = \$4 RETURNING`).
		WithArgs(title, slug, `["cd"]`, blog.ID).
		WillReturnRows(blogRows(blog))

	got, err := repo.UpdateBlog(context.Background(), blog.ID, models.BlogUpdate{Title: &title, Slug: &slug, Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, slug, got.Slug)
	assert.Equal(t, tags, got.Tags)
}

func TestDeleteBlog_NotFound(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectExec(`DELETE FROM blogs WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteBlog(context.Background(), "missing"), ErrBlogNotFound)
}

func TestMarkReviewed(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectExec(`UPDATE blogs SET reviewed = \$1`).
		WithArgs(true, "blog-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkReviewed(context.Background(), "blog-1"))
}

func TestFindOwnerID(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(`SELECT user_id FROM blogs WHERE id = \$1`).
		WithArgs("blog-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("owner-1"))

	owner, err := repo.FindOwnerID(context.Background(), "blog-1")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", owner)

	mock.ExpectQuery(`SELECT user_id FROM blogs WHERE id = \$1`).
		WithArgs("blog-2").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err = repo.FindOwnerID(context.Background(), "blog-2")
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestSearchBlogs_PublishedPage(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	blog := testBlog()

	query := models.BlogQuery{
		Branch:        "cse",
		Search:        "Compiler",
		Page:          2,
		Limit:         16,
		OnlyPublished: true,
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blogs WHERE \(draft = \$1 AND reviewed = \$2 AND branch = \$3 AND LOWER\(title\) LIKE \$4 ESCAPE '\\'\)`).
		WithArgs(false, true, "cse", "%compiler%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(17))
	mock.ExpectQuery(`SELECT (.+) FROM blogs WHERE (.+) ORDER BY created_at DESC LIMIT 16 OFFSET 16`).
		WithArgs(false, true, "cse", "%compiler%").
		WillReturnRows(blogRows(blog))

	page, err := repo.SearchBlogs(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, 17, page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Blogs, 1)
	assert.Equal(t, blog.ID, page.Blogs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchBlogs_SearchTextMatchesLiterally(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blogs WHERE \(LOWER\(title\) LIKE \$1 ESCAPE`).
		WithArgs(`%100\% c\_lang\\%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`FROM blogs WHERE \(LOWER\(title\) LIKE \$1 ESCAPE`).
		WithArgs(`%100\% c\_lang\\%`).
		WillReturnRows(sqlmock.NewRows(blogColumns))

	_, err := repo.SearchBlogs(context.Background(), models.BlogQuery{Search: `100% C_lang\`})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchBlogs_PageBeyondRangeKeepsOffsetPositive(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blogs$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`LIMIT 16 OFFSET 9223372036854775792$`).
		WillReturnRows(sqlmock.NewRows(blogColumns))

	page, err := repo.SearchBlogs(context.Background(), models.BlogQuery{Page: 576460752303423489, Limit: 16})
	require.NoError(t, err)
	assert.Empty(t, page.Blogs)
	assert.Equal(t, 3, page.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRandomBlogs_PublishedOnly(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	blog := testBlog()

	mock.ExpectQuery(`SELECT (.+) FROM blogs WHERE draft = \$1 AND reviewed = \$2 ORDER BY RANDOM\(\) LIMIT 4$`).
		WithArgs(false, true).
		WillReturnRows(blogRows(blog))

	blogs, err := repo.RandomBlogs(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, blog.ID, blogs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())

	blogs, err = repo.RandomBlogs(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestSearchBlogs_PopularSortsByLikes(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blogs$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY \(SELECT COUNT\(\*\) FROM blog_likes WHERE blog_likes.blog_id = blogs.id\) DESC, created_at DESC`).
		WillReturnRows(sqlmock.NewRows(blogColumns))

	page, err := repo.SearchBlogs(context.Background(), models.BlogQuery{Sort: models.SortPopular})
	require.NoError(t, err)
	assert.Empty(t, page.Blogs)
	assert.NotNil(t, page.Blogs)
	assert.Equal(t, 1, page.Page)
}

func TestToggleLike_AddsWhenAbsent(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM blog_likes WHERE blog_id = \$1 AND user_id = \$2`).
		WithArgs("blog-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO blog_likes \(blog_id,user_id\) VALUES \(\$1,\$2\)`).
		WithArgs("blog-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT user_id FROM blog_likes WHERE blog_id = \$1`).
		WithArgs("blog-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-0").AddRow("user-1"))
	mock.ExpectCommit()

	likes, err := repo.ToggleLike(context.Background(), "blog-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-0", "user-1"}, likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLike_RemovesWhenPresent(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM blog_likes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT user_id FROM blog_likes").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectCommit()

	likes, err := repo.ToggleLike(context.Background(), "blog-1", "user-1")
	require.NoError(t, err)
	assert.Empty(t, likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLike_UnknownBlog(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM blog_likes").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO blog_likes").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.ToggleLike(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
