package bridge

import (
	"github.com/go-drift/genui/pkg/errors"
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/interaction"
	"github.com/go-drift/genui/pkg/platform"
	"github.com/go-drift/genui/pkg/value"
)

// EventSink is an interaction.Delegate that forwards every notification to
// native code on the events channel. Delivery failures are reported.
type EventSink struct {
	channel *platform.EventChannel
}

var _ interaction.Delegate = (*EventSink)(nil)

// NewEventSink returns a sink on the events channel.
func NewEventSink() *EventSink {
	return &EventSink{channel: platform.NewEventChannel(EventsChannel)}
}

func (s *EventSink) OnValueChanged(model ident.ModelID, v value.Value) {
	s.send(map[string]any{"event": "valueChanged", "model": string(model), "value": v})
}

func (s *EventSink) OnViewClicked(id ident.ViewID) {
	s.send(map[string]any{"event": "viewClicked", "id": string(id)})
}

func (s *EventSink) OnTextLinkClicked(link int) {
	s.send(map[string]any{"event": "textLinkClicked", "link": link})
}

func (s *EventSink) OnGenericPopupDismissed(id ident.PopupID) {
	s.send(map[string]any{"event": "genericPopupDismissed", "popup": string(id)})
}

func (s *EventSink) OnViewContainerCleared(id ident.ViewID) {
	s.send(map[string]any{"event": "viewContainerCleared", "id": string(id)})
}

func (s *EventSink) send(event map[string]any) {
	if err := s.channel.Send(event); err != nil {
		errors.Report(errors.New("bridge.EventSink", errors.KindBridge, err))
	}
}
