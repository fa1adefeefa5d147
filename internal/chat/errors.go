package chat

import "errors"

// ErrUpstream marks any third-party API failure (network, non-2xx, timeout).
// It is never shown to end users raw; they get a fixed retry-later message.
var ErrUpstream = errors.New("upstream service failed")
