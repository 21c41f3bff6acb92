package core

import "github.com/pkg/errors"

// WrapConstruction wraps err (if non-nil) with a message identifying the
// constructor that rejected its inputs, preserving a stack trace per §7's
// construction-validation error class. The constructors in this repository
// (NewAABB, NewSphere, NewTriangle) build their errors with Errorf directly
// and do not call it.
func WrapConstruction(err error, what string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "construct %s", what)
}

// Errorf is re-exported so callers outside this package don't need a direct
// github.com/pkg/errors import just to build a stack-annotated error.
func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}
