package loxconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/modes"
)

func TestConfigFileDiscovery(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(
		filepath.Join(dir, "lox.cue"),
		[]byte("tap_on_error: true"),
		0644,
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		loader configs.Loader,
		tapOnError TapOnError,
	) {
		if !configs.First[bool](loader, "tap_on_error") {
			t.Fatal()
		}
		if !tapOnError {
			t.Fatal()
		}
	})
}
