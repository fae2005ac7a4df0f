package renderer

import "errors"

var ErrInvalidSampling = errors.New("renderer: invalid sampling configuration")
