package lib

import (
	"errors"
	"fmt"
)

// Catalog errors
var (
	ErrNotFound      = errors.New("not found")
	ErrMissingFields = errors.New("missing required fields")
	ErrFeaturedLimit = errors.New("featured limit reached")
)

// Auth errors
var (
	ErrInvalidSession     = errors.New("invalid session")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Media errors
var (
	ErrMediaNotConfigured = errors.New("media host not configured")
)

// UpstreamError is returned when the media host answers with a non-2xx status
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Body)
}
