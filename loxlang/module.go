package loxlang

import (
	"github.com/reusee/dscope"
	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
)

type Module struct {
	dscope.Module
	Configs loxconfigs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}
