package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestGenUIErrorString(t *testing.T) {
	err := &GenUIError{
		Op:   "builder.Build",
		Kind: KindDescriptor,
		Err:  fmt.Errorf("unknown kind %q", "Slider"),
	}
	want := `builder.Build [descriptor]: unknown kind "Slider"`
	if got := err.Error(); got != want {
		t.Errorf("GenUIError.Error() = %q, want %q", got, want)
	}
}

func TestGenUIErrorWithView(t *testing.T) {
	err := ForView("builder.ApplyAttributes", KindResource, "header_image", fmt.Errorf("missing"))
	got := err.Error()
	want := "view=header_image"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindResource, "resource"},
		{KindDescriptor, "descriptor"},
		{KindBridge, "bridge"},
		{KindParsing, "parsing"},
		{KindPanic, "panic"},
		{KindBinding, "binding"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "platform.Looper"
	if got, want := err.Error(), "panic in platform.Looper: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{Field: "booleans", DataType: "[]bool", Got: 123}
	want := "failed to parse []bool from field booleans: got int"
	if got := err.Error(); got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New("op", KindBridge, fmt.Errorf("boom")))
	if !IsKind(err, KindBridge) {
		t.Error("IsKind should see through wrapping")
	}
	if IsKind(err, KindResource) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(fmt.Errorf("plain"), KindBridge) {
		t.Error("IsKind matched a plain error")
	}
}

func TestReport(t *testing.T) {
	var captured *GenUIError
	handler := &testHandler{onError: func(err *GenUIError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&GenUIError{Op: "test.op", Kind: KindResource, Err: fmt.Errorf("missing color")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(ForView("builder.Build", KindResource, "icon", fmt.Errorf("no drawable")))
	if got, want := buf.String(), "[genui error] builder.Build: no drawable\n"; got != want {
		t.Errorf("terse output = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(ForView("builder.Build", KindResource, "icon", fmt.Errorf("no drawable")))
	if got := buf.String(); !strings.Contains(got, "[resource] view=icon") {
		t.Errorf("verbose output = %q, want kind and view", got)
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "platform.Looper", Value: "boom"})
	if got := buf.String(); !strings.HasPrefix(got, "[genui panic] platform.Looper: boom") {
		t.Errorf("panic output = %q", got)
	}
}

type testHandler struct {
	onError func(*GenUIError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *GenUIError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
