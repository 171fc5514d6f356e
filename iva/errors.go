package iva

import "errors"

var (
	ErrInvalidInstruction = errors.New("iva: invalid instruction")
	ErrResponseParse      = errors.New("iva: cannot parse response")
	ErrUnexpectedResponse = errors.New("iva: unexpected response")
)
