package uitest

import (
	"sync"

	"github.com/go-drift/genui/pkg/errors"
)

// TestingT is the subset of *testing.T used by the helpers in this package,
// allowing test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
	Cleanup(func())
}

// ErrorLog records errors and panics reported through the global handler.
type ErrorLog struct {
	mu     sync.Mutex
	errs   []*errors.GenUIError
	panics []*errors.PanicError
}

// CaptureErrors installs an ErrorLog as the global error handler and
// restores the previous handler when the test ends.
func CaptureErrors(t TestingT) *ErrorLog {
	t.Helper()
	log := &ErrorLog{}
	prev := errors.DefaultHandler
	errors.SetHandler(log)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return log
}

func (l *ErrorLog) HandleError(err *errors.GenUIError) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
}

func (l *ErrorLog) HandlePanic(err *errors.PanicError) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.panics = append(l.panics, err)
}

// Errors returns the reported errors in order.
func (l *ErrorLog) Errors() []*errors.GenUIError {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*errors.GenUIError, len(l.errs))
	copy(out, l.errs)
	return out
}

// Panics returns the recovered panics in order.
func (l *ErrorLog) Panics() []*errors.PanicError {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*errors.PanicError, len(l.panics))
	copy(out, l.panics)
	return out
}

// Count returns the number of reported errors of kind.
func (l *ErrorLog) Count(kind errors.ErrorKind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, err := range l.errs {
		if err.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards everything recorded so far.
func (l *ErrorLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = nil
	l.panics = nil
}
