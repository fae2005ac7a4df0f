package material

import "errors"

var (
	ErrInvalidFuzz            = errors.New("material: metal fuzz must be within [0, 1]")
	ErrInvalidRefractiveIndex = errors.New("material: refractive index must be positive")
)
