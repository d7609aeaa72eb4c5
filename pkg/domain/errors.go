package domain

import "errors"

// ErrUnknownIntent is returned when an intent type is not recognised by the host.
var ErrUnknownIntent = errors.New("unknown intent")

// ErrControlNotFound is returned when the current view tree has no control for an intent.
var ErrControlNotFound = errors.New("control not found")

// ErrInvalidConfig is returned when a configuration value cannot be applied.
var ErrInvalidConfig = errors.New("invalid config")
