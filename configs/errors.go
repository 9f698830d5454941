package configs

import "errors"

// ErrValueNotFound reports that no loaded config file defines the path.
var ErrValueNotFound = errors.New("config value not found")
