// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrTooManyRequests is returned once a client IP has used up its
	// request budget.
	ErrTooManyRequests = errors.New("too many requests from this IP, please try again later")

	// ErrRouteNotFound is returned for paths (or path and method pairs)
	// that no route serves.
	ErrRouteNotFound = errors.New("can't find this route on this server")
)
