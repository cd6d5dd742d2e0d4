package settings

import "errors"

var ErrInvalidConfig = errors.New("invalid config")
