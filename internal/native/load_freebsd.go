//go:build freebsd

package native

var libraryNames = []string{
	"libraylib.so",
	"/usr/local/lib/libraylib.so",
}
