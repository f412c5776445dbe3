// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the blog: signup and reset
// payloads, blog posts and profile edits.
//
// A Validator receives the request model and, optionally, the names of the
// fields to check. Services wrap their inner implementation with a
// validating decorator, so handlers and storage never see invalid input.
package validators

import "context"

// Validator checks one request model. Passing field names restricts the
// check to those fields; with none, every rule of the model applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
