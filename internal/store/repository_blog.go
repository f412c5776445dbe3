// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/models"
)

// blogRepository is the SQL implementation of [BlogRepository] over the
// "blogs" and "blog_likes" tables.
type blogRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBlog inserts blog and returns the stored row. A duplicate title
// yields [ErrTitleAlreadyExists].
func (r *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	tags, err := encodeTags(blog.Tags)
	if err != nil {
		return models.Blog{}, err
	}

	stmt := r.db.builder.Insert(blogsTable).
		Columns("id", "user_id", "title", "slug", "description", "featured_image",
			"branch", "semester", "subject", "tags", "content", "draft", "reviewed").
		Values(blog.ID, blog.UserID, blog.Title, blog.Slug, blog.Description, blog.FeaturedImage,
			blog.Branch, blog.Semester, blog.Subject, tags, blog.Content, blog.Draft, blog.Reviewed).
		Suffix("RETURNING " + strings.Join(blogColumns, ", "))

	return r.returningOne(ctx, "CreateBlog", stmt)
}

func (r *blogRepository) FindBlogByID(ctx context.Context, blogID string) (models.Blog, error) {
	return r.returningOne(ctx, "FindBlogByID", r.db.builder.Select(blogColumns...).
		From(blogsTable).
		Where(sq.Eq{"id": blogID}))
}

func (r *blogRepository) FindBlogBySlug(ctx context.Context, slug string) (models.Blog, error) {
	return r.returningOne(ctx, "FindBlogBySlug", r.db.builder.Select(blogColumns...).
		From(blogsTable).
		Where(sq.Eq{"slug": slug}).
		OrderBy("created_at ASC").
		Limit(1))
}

// UpdateBlog writes the non-nil fields of update.
func (r *blogRepository) UpdateBlog(ctx context.Context, blogID string, update models.BlogUpdate) (models.Blog, error) {
	if update.IsEmpty() {
		return r.FindBlogByID(ctx, blogID)
	}

	stmt := r.db.builder.Update(blogsTable)
	if update.Title != nil {
		stmt = stmt.Set("title", *update.Title)
	}
	if update.Slug != nil {
		stmt = stmt.Set("slug", *update.Slug)
	}
	if update.Description != nil {
		stmt = stmt.Set("description", *update.Description)
	}
	if update.FeaturedImage != nil {
		stmt = stmt.Set("featured_image", *update.FeaturedImage)
	}
	if update.Content != nil {
		stmt = stmt.Set("content", *update.Content)
	}
	if update.Tags != nil {
		tags, err := encodeTags(*update.Tags)
		if err != nil {
			return models.Blog{}, err
		}
		stmt = stmt.Set("tags", tags)
	}
	if update.Branch != nil {
		stmt = stmt.Set("branch", *update.Branch)
	}

	return r.returningOne(ctx, "UpdateBlog", stmt.
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": blogID}).
		Suffix("RETURNING "+strings.Join(blogColumns, ", ")))
}

func (r *blogRepository) DeleteBlog(ctx context.Context, blogID string) error {
	return r.execOne(ctx, "DeleteBlog", r.db.builder.Delete(blogsTable).Where(sq.Eq{"id": blogID}))
}

func (r *blogRepository) MarkReviewed(ctx context.Context, blogID string) error {
	return r.execOne(ctx, "MarkReviewed", r.db.builder.Update(blogsTable).
		Set("reviewed", true).
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": blogID}))
}

func (r *blogRepository) FindOwnerID(ctx context.Context, blogID string) (string, error) {
	var ownerID string
	err := r.db.queryRow(ctx, r.db.builder.Select("user_id").From(blogsTable).Where(sq.Eq{"id": blogID}),
		func(row rowScanner) error {
			return row.Scan(&ownerID)
		})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrBlogNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*blogRepository.FindOwnerID").Msg("error selecting owner")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ownerID, nil
}

// SearchBlogs returns one page of blogs matching query together with the
// total number of matches.
func (r *blogRepository) SearchBlogs(ctx context.Context, query models.BlogQuery) (models.BlogPage, error) {
	log := logger.FromContext(ctx)
	conditions := searchConditions(query)

	countStmt := r.db.builder.Select("COUNT(*)").From(blogsTable)
	pageStmt := r.db.builder.Select(blogColumns...).From(blogsTable)
	if len(conditions) > 0 {
		countStmt = countStmt.Where(conditions)
		pageStmt = pageStmt.Where(conditions)
	}

	var total int
	err := r.db.queryRow(ctx, countStmt, func(row rowScanner) error {
		return row.Scan(&total)
	})
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.SearchBlogs").Msg("error counting blogs")
		return models.BlogPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	pageStmt = pageStmt.OrderBy(sortOrder(query.Sort)...)
	if query.Limit > 0 {
		pageStmt = pageStmt.Limit(uint64(query.Limit)).Offset(uint64(query.Offset()))
	}

	blogs, err := r.queryBlogs(ctx, pageStmt)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.SearchBlogs").Msg("error selecting blogs")
		return models.BlogPage{}, err
	}

	return models.BlogPage{Blogs: blogs, Total: total, Page: max(query.Page, 1)}, nil
}

// RandomBlogs returns up to n published blogs in random order.
func (r *blogRepository) RandomBlogs(ctx context.Context, n int) ([]models.Blog, error) {
	if n < 1 {
		return []models.Blog{}, nil
	}

	blogs, err := r.queryBlogs(ctx, r.db.builder.Select(blogColumns...).
		From(blogsTable).
		Where(sq.Eq{"draft": false, "reviewed": true}).
		OrderBy("RANDOM()").
		Limit(uint64(n)))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogRepository.RandomBlogs").Msg("error selecting blogs")
		return nil, err
	}
	return blogs, nil
}

// ToggleLike runs delete-or-insert and the read of the resulting likes in
// one transaction.
func (r *blogRepository) ToggleLike(ctx context.Context, blogID, userID string) ([]string, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ToggleLike").Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.db.builder.Delete(blogLikesTable).
		Where(sq.Eq{"blog_id": blogID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ToggleLike").Msg("error removing like")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if removed, _ := res.RowsAffected(); removed == 0 {
		query, args, err = r.db.builder.Insert(blogLikesTable).
			Columns("blog_id", "user_id").
			Values(blogID, userID).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if r.db.errorClassificator.IsForeignKeyViolation(err) {
				return nil, ErrBlogNotFound
			}
			log.Err(err).Str("func", "*blogRepository.ToggleLike").Msg("error adding like")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	likes, err := r.likes(ctx, tx, blogID)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ToggleLike").Msg("error reading likes")
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*blogRepository.ToggleLike").Msg("error committing transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return likes, nil
}

func (r *blogRepository) FindLikes(ctx context.Context, blogID string) ([]string, error) {
	return r.likes(ctx, r.db, blogID)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *blogRepository) likes(ctx context.Context, q queryer, blogID string) ([]string, error) {
	query, args, err := r.db.builder.Select("user_id").
		From(blogLikesTable).
		Where(sq.Eq{"blog_id": blogID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	likes := []string{}
	for rows.Next() {
		var userID string
		if err = rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		likes = append(likes, userID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return likes, nil
}

func (r *blogRepository) queryBlogs(ctx context.Context, stmt sq.SelectBuilder) ([]models.Blog, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blogs []models.Blog
	err = r.db.withRetry(ctx, func() error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		blogs = []models.Blog{}
		for rows.Next() {
			blog, scanErr := scanBlog(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			blogs = append(blogs, blog)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return blogs, nil
}

func (r *blogRepository) returningOne(ctx context.Context, funcName string, stmt sq.Sqlizer) (models.Blog, error) {
	var blog models.Blog
	err := r.db.queryRow(ctx, stmt, func(row rowScanner) (scanErr error) {
		blog, scanErr = scanBlog(row)
		return scanErr
	})
	switch {
	case err == nil:
		return blog, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Blog{}, ErrBlogNotFound
	case r.db.errorClassificator.IsUniqueViolation(err):
		return models.Blog{}, ErrTitleAlreadyExists
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*blogRepository."+funcName).Msg("error querying blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *blogRepository) execOne(ctx context.Context, funcName string, stmt sq.Sqlizer) error {
	affected, err := r.db.exec(ctx, stmt)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogRepository."+funcName).Msg("error executing statement")
		return err
	}
	if affected == 0 {
		return ErrBlogNotFound
	}
	return nil
}

func searchConditions(query models.BlogQuery) sq.And {
	conditions := sq.And{}
	if query.OnlyPublished {
		conditions = append(conditions, sq.Eq{"draft": false, "reviewed": true})
	}
	if query.OnlyUnreviewed {
		conditions = append(conditions, sq.Eq{"draft": false, "reviewed": false})
	}
	if query.UserID != "" {
		conditions = append(conditions, sq.Eq{"user_id": query.UserID})
	}
	if query.Branch != "" {
		conditions = append(conditions, sq.Eq{"branch": query.Branch})
	}
	if query.Semester != "" {
		conditions = append(conditions, sq.Eq{"semester": query.Semester})
	}
	if query.Subject != "" {
		conditions = append(conditions, sq.Eq{"subject": query.Subject})
	}
	if query.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query.Search)) + "%"
		conditions = append(conditions, sq.Expr(`LOWER(title) LIKE ? ESCAPE '\'`, pattern))
	}
	return conditions
}

// likeEscaper makes user text match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func sortOrder(sort string) []string {
	switch sort {
	case models.SortOldest:
		return []string{"created_at ASC"}
	case models.SortPopular:
		return []string{likesCount + " DESC", "created_at DESC"}
	default:
		return []string{"created_at DESC"}
	}
}
