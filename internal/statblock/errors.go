package statblock

import (
	"github.com/KirkDiggler/statblock-api/internal/errors"
)

// ErrEmptyInput is returned when the text holds nothing but whitespace
var ErrEmptyInput = errors.InvalidArgument("stat block text is empty").WithMeta("reason", "empty_input")

// IsEmptyInput reports whether err is, or wraps, ErrEmptyInput
func IsEmptyInput(err error) bool {
	return errors.IsInvalidArgument(err) && errors.GetMeta(err)["reason"] == "empty_input"
}
