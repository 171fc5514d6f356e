package transport

import "errors"

var (
	ErrDisconnected  = errors.New("transport: peer disconnected")
	ErrAcceptTimeout = errors.New("transport: accept timed out")
)
