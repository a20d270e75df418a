package render

import (
	"errors"
	"fmt"
)

var ErrUnknownFormat = errors.New("render: unknown output format")

func formatError(f Format) error {
	return fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownFormat, string(f), FormatText, FormatYAML)
}

// CheckError turns a panic in the calling function into an error stored in
// err. Use it deferred.
func CheckError(err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("render: %+v", v)
	}
}
