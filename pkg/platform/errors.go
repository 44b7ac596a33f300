package platform

import "errors"

// Sentinel errors for the channel layer.
var (
	// ErrChannelNotFound is returned when no method channel is registered
	// under the requested name.
	ErrChannelNotFound = errors.New("platform: channel not found")

	// ErrPlatformUnavailable is returned when no native bridge is connected.
	ErrPlatformUnavailable = errors.New("platform: native bridge unavailable")
)
