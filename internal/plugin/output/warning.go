package output

import (
	"errors"
	"fmt"
)

// Warning is a non-fatal plugin failure. The theme files were installed but
// a follow-up step (usually patching the application's config) did not
// complete, and the user can finish it by hand.
type Warning struct {
	Message string
	Hint    string
	Err     error
}

// Error implements the error interface.
func (w *Warning) Error() string {
	if w.Err != nil {
		return fmt.Sprintf("%s: %v", w.Message, w.Err)
	}
	return w.Message
}

// Unwrap returns the underlying error, if any.
func (w *Warning) Unwrap() error {
	return w.Err
}

// AsWarning reports whether err is (or wraps) a *Warning.
func AsWarning(err error) (*Warning, bool) {
	var w *Warning
	if errors.As(err, &w) {
		return w, true
	}
	return nil, false
}
