//go:build linux

package native

var libraryNames = []string{
	"libraylib.so",
	"libraylib.so.550",
	"libraylib.so.500",
}
