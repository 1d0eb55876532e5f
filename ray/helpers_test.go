package ray

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/tinyrange/raywin/internal/native/nativetest"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestWindow(t *testing.T, rec *nativetest.Recorder) *Window {
	t.Helper()

	w, err := OpenWindow(800, 600, "test", withLibrary(rec), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("open window: %v", err)
	}
	t.Cleanup(w.Close)
	rec.Reset()
	return w
}

// expectPanic runs fn and fails unless it panics with a message containing want.
func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, want) {
			t.Fatalf("panic %q does not contain %q", msg, want)
		}
	}()
	fn()
}

func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
