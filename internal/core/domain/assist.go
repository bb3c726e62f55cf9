package domain

import "errors"

// ErrAssistInFlight is returned when a user triggers an AI operation that is
// already running for them. The caller should retry after the first call
// settles.
var ErrAssistInFlight = errors.New("an identical assist request is already in flight")
