// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// Blog is a post written by a user.
type Blog struct {
	ID string `json:"id"`

	// UserID is the owner. Only the owner may update or delete the post.
	UserID string `json:"user"`

	// Title is unique across all posts.
	Title string `json:"title"`

	// Slug is derived from Title whenever Title is set.
	Slug string `json:"slug"`

	Description   string   `json:"description"`
	FeaturedImage string   `json:"featuredImage"`
	Branch        string   `json:"branch"`
	Semester      string   `json:"semester"`
	Subject       string   `json:"subject"`
	Tags          []string `json:"tags"`
	Content       string   `json:"content"`

	// Draft posts are never listed publicly.
	Draft bool `json:"draft"`

	// Reviewed is set by an admin. Only reviewed posts are listed publicly.
	Reviewed bool `json:"reviewed"`

	// Likes holds the ids of users who liked the post. Filled only by
	// queries that need it.
	Likes []string `json:"likes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}

// BlogInput is the payload accepted when creating a post.
type BlogInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	FeaturedImage string   `json:"featuredImage"`
	Branch        string   `json:"branch"`
	Semester      string   `json:"semester"`
	Subject       string   `json:"subject"`
	Tags          []string `json:"tags"`
	Content       string   `json:"content"`
	Draft         bool     `json:"draft"`
}

// BlogUpdate lists the fields an owner may change. Nil fields are left
// untouched. Slug is filled by the service when Title changes.
type BlogUpdate struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	FeaturedImage *string   `json:"featuredImage,omitempty"`
	Content       *string   `json:"content,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Branch        *string   `json:"branch,omitempty"`

	Slug *string `json:"-"`
}

// IsEmpty reports whether no field is set.
func (u BlogUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.FeaturedImage == nil &&
		u.Content == nil && u.Tags == nil && u.Branch == nil
}

// Sort orders accepted by BlogQuery.
const (
	SortLatest  = "latest"
	SortOldest  = "oldest"
	SortPopular = "popular"
)

// BlogQuery filters the public listing. Empty fields do not filter.
type BlogQuery struct {
	Branch   string
	Semester string
	Subject  string
	Search   string
	Sort     string
	Page     int
	Limit    int

	// OnlyPublished restricts results to draft=false and reviewed=true.
	OnlyPublished bool
	// OnlyUnreviewed restricts results to reviewed=false and draft=false.
	OnlyUnreviewed bool
	// UserID restricts results to one author.
	UserID string
}

// Offset returns the row offset of the requested page (pages start at 1).
// Pages past the int range are clamped to the last representable page.
func (q BlogQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt / q.Limit * q.Limit
	}
	return (q.Page - 1) * q.Limit
}

// BlogPage is one page of a listing.
type BlogPage struct {
	Blogs []Blog `json:"blogs"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
}

// ResourceKind names a collection whose items have an owner.
type ResourceKind string

// KindBlog is the only owned collection at the moment.
const KindBlog ResourceKind = "blog"
