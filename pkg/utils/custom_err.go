package utils

import "errors"

var (
	ErrMissingRelayConfig  = errors.New("missing relay webhook url or token")
	ErrUpstreamUnreachable = errors.New("lead webhook unreachable")
)
