package thread

import "errors"

// ErrCDPTransport wraps a failed round trip to the browser: a send
// failed, the session detached mid-call, or the target returned a
// protocol-level error.
var ErrCDPTransport = errors.New("thread: cdp transport error")

// ErrProtocolViolation indicates a CDP response didn't have the shape
// this package expects.
var ErrProtocolViolation = errors.New("thread: protocol violation")
