package platform

// MethodHandler handles incoming method calls on a channel.
type MethodHandler func(method string, args any) (any, error)

// MethodChannel receives method calls from native code.
type MethodChannel struct {
	name    string
	codec   MessageCodec
	handler MethodHandler
}

// NewMethodChannel creates a method channel and registers it under name,
// replacing any channel previously registered with that name.
func NewMethodChannel(name string) *MethodChannel {
	ch := &MethodChannel{
		name:  name,
		codec: DefaultCodec,
	}
	registry.registerMethod(name, ch)
	return ch
}

// Name returns the channel name.
func (c *MethodChannel) Name() string {
	return c.name
}

// SetHandler sets the handler for incoming method calls from native code.
func (c *MethodChannel) SetHandler(handler MethodHandler) {
	c.handler = handler
}

// Unregister removes the channel from the registry.
func (c *MethodChannel) Unregister() {
	registry.unregisterMethod(c.name, c)
}

// handleCall processes an incoming method call from native code.
func (c *MethodChannel) handleCall(method string, args any) (any, error) {
	if c.handler == nil {
		return nil, ErrMethodNotFound
	}
	return c.handler(method, args)
}

// EventChannel sends a stream of events from Go to native code.
type EventChannel struct {
	name  string
	codec MessageCodec
}

// NewEventChannel creates an event channel with the given name.
func NewEventChannel(name string) *EventChannel {
	return &EventChannel{name: name, codec: DefaultCodec}
}

// Name returns the channel name.
func (c *EventChannel) Name() string {
	return c.name
}

// Send encodes data and delivers it to the native side.
func (c *EventChannel) Send(data any) error {
	b := currentBridge()
	if b == nil {
		return ErrPlatformUnavailable
	}
	payload, err := c.codec.Encode(data)
	if err != nil {
		return err
	}
	return b.SendEvent(c.name, payload)
}
