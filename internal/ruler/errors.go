package ruler

import "errors"

var (
	// ErrTargetNotFound is returned by Init if the configured selector does not
	// match any element.
	ErrTargetNotFound = errors.New("cannot find target element")
	// ErrInvalidTargetType is returned by Init if the target element is not a
	// drawable canvas.
	ErrInvalidTargetType = errors.New("target element is not a canvas")
)
