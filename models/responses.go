package models

// ErrorResponse is the uniform error envelope returned by every failing
// endpoint. The shape matches what the browser client expects:
//
//	{"success": false, "message": "...", "statusCode": 401}
type ErrorResponse struct {
	// Success is always false in an error envelope. Present explicitly so
	// clients can branch on it without inspecting the HTTP status.
	Success bool `json:"success"`

	// Message is a client-safe description of the failure. Internal details
	// (driver errors, stack traces) never appear here.
	Message string `json:"message"`

	// StatusCode mirrors the HTTP status code of the response.
	StatusCode int `json:"statusCode"`
}

// AvatarResponse is returned by POST /api/user/avatar/{id} after a
// successful upload to the avatar bucket.
type AvatarResponse struct {
	// URL is the public address of the stored avatar.
	URL string `json:"url"`
}
