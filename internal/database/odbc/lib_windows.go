//go:build windows

package odbc

import "golang.org/x/sys/windows"

// defaultLibrary is the platform-standard ODBC driver manager.
func defaultLibrary() string {
	return "odbc32.dll"
}

func openLibrary(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	return uintptr(h), err
}
