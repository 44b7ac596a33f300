package platform

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/genui/pkg/errors"
)

func TestHandleMethodCall_RoundTrip(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	ch := NewMethodChannel("test/echo")
	ch.SetHandler(func(method string, args any) (any, error) {
		return map[string]any{"method": method, "args": args}, nil
	})

	out, err := HandleMethodCall("test/echo", "ping", []byte(`{"n":1}`))
	if err != nil {
		t.Fatalf("HandleMethodCall: %v", err)
	}
	got, err := DefaultCodec.Decode(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{"method": "ping", "args": map[string]any{"n": float64(1)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleMethodCall_Errors(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	if _, err := HandleMethodCall("missing", "x", nil); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("unknown channel: err = %v, want ErrChannelNotFound", err)
	}

	NewMethodChannel("test/nohandler")
	if _, err := HandleMethodCall("test/nohandler", "x", nil); !errors.Is(err, ErrMethodNotFound) {
		t.Errorf("no handler: err = %v, want ErrMethodNotFound", err)
	}

	ch := NewMethodChannel("test/bad")
	ch.SetHandler(func(string, any) (any, error) { return nil, nil })
	if _, err := HandleMethodCall("test/bad", "x", []byte("{")); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("bad payload: err = %v, want ErrInvalidArguments", err)
	}
}

func TestHandleMethodCall_RecoversPanic(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	var panics int
	old := errors.DefaultHandler
	errors.SetHandler(&panicCounter{n: &panics})
	t.Cleanup(func() { errors.SetHandler(old) })

	ch := NewMethodChannel("test/panic")
	ch.SetHandler(func(string, any) (any, error) { panic("boom") })

	if _, err := HandleMethodCall("test/panic", "x", nil); err == nil {
		t.Fatal("expected error from panicking handler")
	}
	if panics != 1 {
		t.Errorf("reported panics = %d, want 1", panics)
	}
}

func TestMethodChannel_UnregisterKeepsReplacement(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	first := NewMethodChannel("test/dup")
	second := NewMethodChannel("test/dup")
	second.SetHandler(func(string, any) (any, error) { return "second", nil })

	first.Unregister()
	if _, err := HandleMethodCall("test/dup", "x", nil); err != nil {
		t.Errorf("replacement channel was unregistered: %v", err)
	}
	second.Unregister()
	if _, err := HandleMethodCall("test/dup", "x", nil); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("err = %v, want ErrChannelNotFound", err)
	}
}

func TestEventChannel_Send(t *testing.T) {
	bridge := SetupTestBridge(t.Cleanup)

	ch := NewEventChannel("test/events")
	if err := ch.Send(map[string]any{"event": "clicked", "id": "ok"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	want := []SentEvent{{
		Channel: "test/events",
		Data:    map[string]any{"event": "clicked", "id": "ok"},
	}}
	if diff := cmp.Diff(want, bridge.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	SetNativeBridge(nil)
	if err := ch.Send("x"); !errors.Is(err, ErrPlatformUnavailable) {
		t.Errorf("disconnected: err = %v, want ErrPlatformUnavailable", err)
	}
}

func TestEventChannel_EncodeError(t *testing.T) {
	SetupTestBridge(t.Cleanup)
	err := NewEventChannel("test/events").Send(func() {})
	if err == nil {
		t.Fatal("expected encode error for a func value")
	}
}

type panicCounter struct{ n *int }

func (h *panicCounter) HandleError(*errors.GenUIError) {}
func (h *panicCounter) HandlePanic(*errors.PanicError) { *h.n++ }
