//go:build linux || darwin

package odbc

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// defaultLibrary is the platform-standard ODBC driver manager.
func defaultLibrary() string {
	if runtime.GOOS == "darwin" {
		return "libiodbc.dylib"
	}
	return "libodbc.so.2"
}

func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}
