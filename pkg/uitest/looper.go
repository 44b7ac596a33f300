package uitest

import (
	"io/fs"
	"time"

	"github.com/go-drift/genui/pkg/platform"
	"github.com/go-drift/genui/pkg/resources"
)

// PumpTimeout bounds how long PumpUntil waits.
var PumpTimeout = 5 * time.Second

// NewContext returns a rendering context with the light palette whose
// completions are queued on a fresh looper the test drives by hand. fsys may
// be nil when no bitmaps are needed.
func NewContext(density float64, fsys fs.FS) (*resources.Context, *platform.Looper) {
	rc := resources.NewContext(density, resources.LightPalette())
	rc.Looper = platform.NewLooper()
	if fsys != nil {
		rc.Drawables = resources.NewDrawableLoader(fsys)
	}
	return rc, rc.Looper
}

// PumpUntil runs l's pending callbacks until cond holds, failing the test
// after PumpTimeout.
func PumpUntil(t TestingT, l *platform.Looper, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(PumpTimeout)
	for {
		l.RunPending()
		if cond() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within %v", PumpTimeout)
			return
		}
		time.Sleep(time.Millisecond)
	}
}

// WaitPosted blocks until at least n callbacks are queued on l, without
// running them.
func WaitPosted(t TestingT, l *platform.Looper, n int) {
	t.Helper()
	deadline := time.Now().Add(PumpTimeout)
	for l.Len() < n {
		if time.Now().After(deadline) {
			t.Fatalf("%d callbacks not posted within %v", n, PumpTimeout)
			return
		}
		time.Sleep(time.Millisecond)
	}
}
