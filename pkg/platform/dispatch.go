package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule callbacks on the UI thread.
// This should be called once by the host during initialization.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// RegisterLooper routes Dispatch onto l. Passing nil clears the registration.
func RegisterLooper(l *Looper) {
	if l == nil {
		RegisterDispatch(nil)
		return
	}
	RegisterDispatch(func(callback func()) { l.Post(callback) })
}

// Dispatch schedules a callback to run on the UI thread.
// Returns true if the callback was successfully scheduled, false if no dispatch function
// is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// Dispatching reports whether a dispatch function is registered.
func Dispatching() bool {
	dispatchMu.RLock()
	defer dispatchMu.RUnlock()
	return dispatchFunc != nil
}
