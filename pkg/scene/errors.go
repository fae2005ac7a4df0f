package scene

import "errors"

var (
	ErrUnknownScene     = errors.New("scene: unknown scene")
	ErrInvalidSceneFile = errors.New("scene: invalid scene file")
)
