// Package platform provides the UI-thread event loop and the message plumbing
// shared by the native bridge: a JSON codec, standard bridge errors, and
// converters for untyped payload values.
package platform

import (
	"encoding/json"
	"errors"
)

// MessageCodec encodes and decodes messages exchanged with the native side.
type MessageCodec interface {
	// Encode converts a Go value to bytes for transmission to native code.
	Encode(value any) ([]byte, error)

	// Decode converts bytes received from native code to a Go value.
	Decode(data []byte) (any, error)
}

// JsonCodec implements MessageCodec using JSON encoding.
type JsonCodec struct{}

// Encode serializes the value to JSON bytes.
func (c JsonCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON bytes to a Go value.
func (c JsonCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DefaultCodec is the codec used by the native bridge.
var DefaultCodec MessageCodec = JsonCodec{}

// Standard errors for bridge calls.
var (
	// ErrMethodNotFound indicates the method is not implemented.
	ErrMethodNotFound = errors.New("method not implemented")

	// ErrInvalidArguments indicates the arguments passed to the method were invalid.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrViewNotFound indicates no live view carries the requested identifier.
	ErrViewNotFound = errors.New("view not found")
)
