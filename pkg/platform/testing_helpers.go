package platform

import "sync"

// SentEvent is an event delivered to a RecordingBridge.
type SentEvent struct {
	Channel string
	Data    any // decoded with DefaultCodec
}

// RecordingBridge is a NativeBridge that records every event it receives.
type RecordingBridge struct {
	mu     sync.Mutex
	events []SentEvent
}

// SendEvent decodes and records the event.
func (b *RecordingBridge) SendEvent(channel string, data []byte) error {
	decoded, err := DefaultCodec.Decode(data)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.events = append(b.events, SentEvent{Channel: channel, Data: decoded})
	b.mu.Unlock()
	return nil
}

// Events returns a copy of the recorded events.
func (b *RecordingBridge) Events() []SentEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]SentEvent(nil), b.events...)
}

// SetupTestBridge installs a recording native bridge and synchronous dispatch
// for testing. The cleanup function should be testing.T.Cleanup or
// equivalent; it registers a teardown that calls ResetForTest.
//
//	bridge := platform.SetupTestBridge(t.Cleanup)
func SetupTestBridge(cleanup func(func())) *RecordingBridge {
	b := &RecordingBridge{}
	SetNativeBridge(b)
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
	return b
}

// ResetForTest disconnects the native bridge, clears dispatch and drops all
// registered method channels.
func ResetForTest() {
	SetNativeBridge(nil)
	RegisterDispatch(nil)
	registry.mu.Lock()
	registry.methodChannels = make(map[string]*MethodChannel)
	registry.mu.Unlock()
}
