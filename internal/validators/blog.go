// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-campus-blog/models"
)

// Field name constants accepted by ContentValidator.
const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldTags    = "tags"
	FieldBio     = "bio"
)

const (
	MaxTitleLength = 200
	MaxTags        = 10
	MaxBioLength   = 500
)

// ContentValidator checks user-written content: blog posts and profile
// updates.
type ContentValidator struct {
}

func NewContentValidator() Validator {
	return &ContentValidator{}
}

// Validate supports models.BlogInput, models.BlogUpdate and
// models.ProfileUpdate, as values or pointers.
func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BlogInput:
		return v.validateBlogInput(value, fields...)
	case *models.BlogInput:
		return v.validateBlogInput(*value, fields...)

	case models.BlogUpdate:
		return v.validateBlogUpdate(value)
	case *models.BlogUpdate:
		return v.validateBlogUpdate(*value)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) validateBlogInput(input models.BlogInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(input.Title); err != nil {
				return err
			}
		case FieldContent:
			if strings.TrimSpace(input.Content) == "" {
				return ErrEmptyContent
			}
		case FieldTags:
			if len(input.Tags) > MaxTags {
				return ErrTooManyTags
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContentValidator) validateBlogUpdate(update models.BlogUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Title != nil {
		if err := validateTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return ErrEmptyContent
	}
	if update.Tags != nil && len(*update.Tags) > MaxTags {
		return ErrTooManyTags
	}
	return nil
}

func (v *ContentValidator) validateProfileUpdate(update models.ProfileUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return ErrEmptyName
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			return ErrNameTooLong
		}
	}
	if update.Bio != nil && utf8.RuneCountInString(*update.Bio) > MaxBioLength {
		return ErrBioTooLong
	}
	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
