// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleAuthRequest is the body of POST /api/auth/google. The identity
// asserted by the external provider is trusted as-is: the frontend completes
// the provider handshake and forwards the verified profile.
type GoogleAuthRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// UpdateUserRequest is the body of POST /api/user/update/{id}. All fields
// are optional; an empty-string password is treated as "not provided" so
// that clients may submit a full form without re-entering the password.
type UpdateUserRequest struct {
	Username       *string `json:"username,omitempty"`
	Email          *string `json:"email,omitempty"`
	Password       *string `json:"password,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}
