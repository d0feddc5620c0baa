package entities

import "errors"

var (
	// ErrVersionNotFound is returned by a single version source that has nothing to offer.
	ErrVersionNotFound = errors.New("version not found")

	// ErrResolutionFailed means no version source produced a version.
	// Nothing must be written when this is returned.
	ErrResolutionFailed = errors.New("unable to detect a version")

	// ErrTagNotFound is returned when a spec file has no Version tag.
	ErrTagNotFound = errors.New("version tag not found")

	// ErrMalformedObsInfo is returned for an obsinfo file without a usable version field.
	ErrMalformedObsInfo = errors.New("malformed obsinfo")
)
