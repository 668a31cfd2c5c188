package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrHouseholdNotFound is returned when the household has no record in the data platform
	ErrHouseholdNotFound = errors.New("household not found")

	// ErrProfileNotFound is returned when the user profile lookup comes back empty
	ErrProfileNotFound = errors.New("user profile not found")

	// ErrBackendFailure is returned when a read against the hosted data platform fails
	ErrBackendFailure = errors.New("data platform request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
