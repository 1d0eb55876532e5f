//go:build !(darwin || freebsd || linux || windows)

package native

// Load always fails on platforms purego cannot call into.
func Load(path string) (Library, error) {
	return nil, ErrUnsupported
}
