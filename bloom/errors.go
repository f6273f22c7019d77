package bloom

import "errors"

// ErrInvalidArgument is returned when a filter cannot be sized from the supplied arguments.
var ErrInvalidArgument = errors.New("bloom: invalid argument")
