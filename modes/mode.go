package modes

// Mode selects runtime behaviors that differ between production and
// development, such as dropping into a REPL on scan errors.
type Mode uint8

const (
	ModeProduction Mode = iota
	ModeDevelopment
)
