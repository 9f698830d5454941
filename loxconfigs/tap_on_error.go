package loxconfigs

import (
	"os"

	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/modes"
	"github.com/reusee/lox/vars"
)

// TapOnError enables suspending into a REPL after a failed scan.
// Never enabled outside development mode.
type TapOnError bool

func (Module) TapOnError(
	mode modes.Mode,
	loader configs.Loader,
) TapOnError {
	if mode != modes.ModeDevelopment {
		return false
	}
	return TapOnError(vars.FirstNonZero(
		configs.First[bool](loader, "tap_on_error"),
		vars.StrToBool(os.Getenv("LOX_TAP_ON_ERROR")),
	))
}
