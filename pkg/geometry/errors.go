package geometry

import "errors"

var (
	ErrInvalidRadius = errors.New("geometry: sphere radius must be positive")
	ErrInvalidCamera = errors.New("geometry: invalid camera configuration")
	ErrNilMaterial   = errors.New("geometry: shape has no material")
)
