package platform

import (
	"fmt"
	"sync"

	"github.com/go-drift/genui/pkg/errors"
)

// channelRegistry manages all registered method channels.
type channelRegistry struct {
	methodChannels map[string]*MethodChannel
	mu             sync.RWMutex
}

var registry = &channelRegistry{
	methodChannels: make(map[string]*MethodChannel),
}

func (r *channelRegistry) registerMethod(name string, ch *MethodChannel) {
	r.mu.Lock()
	r.methodChannels[name] = ch
	r.mu.Unlock()
}

func (r *channelRegistry) unregisterMethod(name string, ch *MethodChannel) {
	r.mu.Lock()
	if r.methodChannels[name] == ch {
		delete(r.methodChannels, name)
	}
	r.mu.Unlock()
}

func (r *channelRegistry) getMethodChannel(name string) *MethodChannel {
	r.mu.RLock()
	ch := r.methodChannels[name]
	r.mu.RUnlock()
	return ch
}

// NativeBridge is the native side of the bridge, as seen from Go.
type NativeBridge interface {
	// SendEvent delivers an encoded event on the named channel.
	SendEvent(channel string, data []byte) error
}

var (
	bridgeMu     sync.RWMutex
	nativeBridge NativeBridge
)

// SetNativeBridge sets the native bridge implementation. Passing nil
// disconnects it.
func SetNativeBridge(b NativeBridge) {
	bridgeMu.Lock()
	nativeBridge = b
	bridgeMu.Unlock()
}

func currentBridge() NativeBridge {
	bridgeMu.RLock()
	defer bridgeMu.RUnlock()
	return nativeBridge
}

// HandleMethodCall is called by the host when native invokes a Go method.
// Arguments and results are encoded with DefaultCodec. A panic in the
// handler is recovered, reported, and returned as an error.
func HandleMethodCall(channel, method string, argsData []byte) (result []byte, err error) {
	ch := registry.getMethodChannel(channel)
	if ch == nil {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channel)
	}

	args, err := ch.codec.Decode(argsData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "platform.HandleMethodCall",
				Value:      r,
				StackTrace: errors.CaptureStack(),
			})
			result, err = nil, fmt.Errorf("panic in %s.%s: %v", channel, method, r)
		}
	}()

	out, err := ch.handleCall(method, args)
	if err != nil {
		return nil, err
	}
	return ch.codec.Encode(out)
}
