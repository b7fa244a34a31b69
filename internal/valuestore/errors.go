package valuestore

import "errors"

// ErrProtocolViolation indicates CDP returned a property-descriptor shape
// this adapter doesn't recognize: missing a
// value/objectId, or a wasm-value wrapper missing its type/value pair.
var ErrProtocolViolation = errors.New("valuestore: protocol violation")
