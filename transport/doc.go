// Package transport owns the line-oriented TCP link to the robot runtime.
//
// Ownership boundary:
// - listener/dial lifecycle and deadlines
// - CRLF-terminated line framing
// - local address discovery for the connect-back handshake
package transport
