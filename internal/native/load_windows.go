//go:build windows

package native

import "golang.org/x/sys/windows"

var libraryNames = []string{
	"raylib.dll",
}

func openLibrary(name string) (uintptr, error) {
	handle, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}
