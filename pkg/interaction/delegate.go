// Package interaction routes events between live views and the logic layer.
//
// A Dispatcher forwards user actions (value edits, clicks, link taps, popup
// dismissals) to a Delegate, and applies values pushed by the logic layer to
// the views bound to a model identifier. Forwarding is unconditional: the
// dispatcher never validates, debounces, or suppresses a notification.
//
// # Bindings
//
// Each bound view moves through Unbound, Bound, and Disposed, in that order.
// A binding becomes Disposed when its view is disposed, either because the
// containing view was cleared or because the screen was torn down. Disposed
// bindings ignore pushed values.
//
// All methods must be called on the UI thread.
package interaction

import (
	"github.com/go-drift/genui/pkg/ident"
	"github.com/go-drift/genui/pkg/value"
)

// Delegate receives notifications from the dispatcher. Every method is a
// fire-and-forget notification.
type Delegate interface {
	// OnValueChanged is called when the user edits a value bound to model.
	OnValueChanged(model ident.ModelID, v value.Value)
	// OnViewClicked is called when the user clicks a clickable view.
	OnViewClicked(id ident.ViewID)
	// OnTextLinkClicked is called when the user taps a link in a text view.
	OnTextLinkClicked(link int)
	// OnGenericPopupDismissed is called when a generic popup is dismissed.
	OnGenericPopupDismissed(id ident.PopupID)
	// OnViewContainerCleared is called after a container's children were removed.
	OnViewContainerCleared(id ident.ViewID)
}
