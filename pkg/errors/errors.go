package items_errors

import "errors"

// Common errors
var (
	ErrInvalidInput       = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoToken            = errors.New("access denied, no token provided")
	ErrInvalidToken       = errors.New("invalid token")
	ErrItemNotFound       = errors.New("item not found")
	ErrNotFound           = errors.New("not found")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrInternal           = errors.New("internal error")
)
