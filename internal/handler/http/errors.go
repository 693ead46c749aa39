// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSessionCookie indicates a protected request without the session
	// cookie.
	ErrNoSessionCookie = errors.New("no session cookie provided")

	// ErrInvalidUserID indicates a path parameter that is not a UUID.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrNotResourceOwner indicates an authenticated request targeting
	// someone else's record.
	ErrNotResourceOwner = errors.New("you can only modify your own account")
)
