package uitest

import (
	"fmt"
	"sync"

	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/value"
)

// EventKind identifies a delegate notification.
type EventKind int

const (
	ValueChanged EventKind = iota
	ViewClicked
	TextLinkClicked
	GenericPopupDismissed
	ViewContainerCleared
)

func (k EventKind) String() string {
	switch k {
	case ValueChanged:
		return "ValueChanged"
	case ViewClicked:
		return "ViewClicked"
	case TextLinkClicked:
		return "TextLinkClicked"
	case GenericPopupDismissed:
		return "GenericPopupDismissed"
	case ViewContainerCleared:
		return "ViewContainerCleared"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one recorded notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	Model ident.ModelID
	Value value.Value
	View  ident.ViewID
	Link  int
	Popup ident.PopupID
}

func (e Event) String() string {
	switch e.Kind {
	case ValueChanged:
		return fmt.Sprintf("%s(%s=%s)", e.Kind, e.Model, e.Value)
	case TextLinkClicked:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Link)
	case GenericPopupDismissed:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Popup)
	default:
		return fmt.Sprintf("%s(%s)", e.Kind, e.View)
	}
}

// Recorder is a delegate that records every notification it receives.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *Recorder) OnValueChanged(model ident.ModelID, v value.Value) {
	r.record(Event{Kind: ValueChanged, Model: model, Value: v})
}

func (r *Recorder) OnViewClicked(id ident.ViewID) {
	r.record(Event{Kind: ViewClicked, View: id})
}

func (r *Recorder) OnTextLinkClicked(link int) {
	r.record(Event{Kind: TextLinkClicked, Link: link})
}

func (r *Recorder) OnGenericPopupDismissed(id ident.PopupID) {
	r.record(Event{Kind: GenericPopupDismissed, Popup: id})
}

func (r *Recorder) OnViewContainerCleared(id ident.ViewID) {
	r.record(Event{Kind: ViewContainerCleared, View: id})
}

// Events returns a copy of every recorded event in order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns the number of events of kind.
func (r *Recorder) Count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Values returns the values reported for model, in order.
func (r *Recorder) Values(model ident.ModelID) []value.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []value.Value
	for _, e := range r.events {
		if e.Kind == ValueChanged && e.Model == model {
			out = append(out, e.Value)
		}
	}
	return out
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
