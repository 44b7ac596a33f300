package platform

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/genui/pkg/errors"
)

func TestLooper_RunsInFIFOOrder(t *testing.T) {
	l := NewLooper()
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		l.Post(func() { got = append(got, i) })
	}

	if n := l.RunPending(); n != 5 {
		t.Fatalf("RunPending() = %d, want 5", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("order = %v, want ascending", got)
		}
	}
}

func TestLooper_CallbacksPostedWhileDrainingRunAfter(t *testing.T) {
	l := NewLooper()
	var got []string
	l.Post(func() {
		got = append(got, "first")
		l.Post(func() { got = append(got, "nested") })
	})
	l.Post(func() { got = append(got, "second") })

	l.RunPending()

	want := []string{"first", "second", "nested"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLooper_PostNilOrClosed(t *testing.T) {
	l := NewLooper()
	if l.Post(nil) {
		t.Error("Post(nil) should return false")
	}
	l.Close()
	if l.Post(func() {}) {
		t.Error("Post after Close should return false")
	}
}

func TestLooper_PanicIsReported(t *testing.T) {
	var captured *errors.PanicError
	errors.SetHandler(panicCapture(func(p *errors.PanicError) { captured = p }))
	defer errors.SetHandler(nil)

	l := NewLooper()
	ran := false
	l.Post(func() { panic("boom") })
	l.Post(func() { ran = true })
	l.RunPending()

	if captured == nil || captured.Op != "platform.Looper" {
		t.Fatalf("panic not reported: %+v", captured)
	}
	if !ran {
		t.Error("callback after a panicking one should still run")
	}
}

func TestLooper_RunDrainsFromOtherGoroutines(t *testing.T) {
	l := NewLooper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var mu sync.Mutex
	count := 0
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Post(func() {
				mu.Lock()
				count++
				mu.Unlock()
			})
		}()
	}
	go func() {
		wg.Wait()
		l.Close()
	}()

	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if count != 10 {
		t.Errorf("count = %d, want 10", count)
	}
}

func TestDispatch_UsesRegisteredLooper(t *testing.T) {
	if Dispatch(func() {}) {
		t.Fatal("Dispatch without registration should return false")
	}

	l := NewLooper()
	RegisterLooper(l)
	defer RegisterLooper(nil)

	ran := false
	if !Dispatch(func() { ran = true }) {
		t.Fatal("Dispatch should succeed once a looper is registered")
	}
	if ran {
		t.Fatal("callback must not run before the looper drains")
	}
	l.RunPending()
	if !ran {
		t.Error("callback did not run")
	}
}

type panicCapture func(*errors.PanicError)

func (f panicCapture) HandleError(*errors.GenUIError)   {}
func (f panicCapture) HandlePanic(p *errors.PanicError) { f(p) }
