// Package rosbridge drives the controller's rosbridge websocket endpoint.
//
// Ownership boundary:
// - sequence start/stop service calls
// - runtime state queries and stop-waiting
//
// Every call opens its own short-lived websocket connection, mirroring how
// the controller treats clients; closing the connection also drops any
// topic subscription the call made.
package rosbridge
