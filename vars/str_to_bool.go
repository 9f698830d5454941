package vars

import (
	"strconv"
	"strings"
)

// StrToBool parses common boolean spellings. Unrecognized input is false.
func StrToBool(str string) bool {
	if b, err := strconv.ParseBool(str); err == nil {
		return b
	}
	switch strings.ToLower(str) {
	case "yes", "y", "on":
		return true
	}
	return false
}
