package configs

import (
	"errors"
)

// First returns the first definition of path, or the zero value when no
// file defines it. Malformed configs panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
