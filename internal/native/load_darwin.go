//go:build darwin

package native

var libraryNames = []string{
	"libraylib.dylib",
	"/opt/homebrew/lib/libraylib.dylib",
	"/usr/local/lib/libraylib.dylib",
}
