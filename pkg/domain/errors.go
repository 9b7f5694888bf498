package domain

import "errors"

// ErrBuildNotFound is returned when a build ID cannot be found in the store.
var ErrBuildNotFound = errors.New("build not found")

// ErrUnknownSkill is returned when a catalog or a caller references a skill ID that does not exist.
var ErrUnknownSkill = errors.New("unknown skill")

// ErrInvalidCatalog is returned when a catalog fails structural validation.
var ErrInvalidCatalog = errors.New("invalid catalog")
