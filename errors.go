package nonempty

import (
	"github.com/pkg/errors"
)

// ErrEmpty is returned when building or decoding a Vec from an empty source.
var ErrEmpty = errors.New("empty input")
