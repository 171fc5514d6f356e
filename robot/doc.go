// Package robot owns the command surface of one Inovo arm.
//
// Ownership boundary:
// - instruction round trips and ack discipline
// - reversible motion/parameter/sequence contexts
// - connect-back bootstrap through the rosbridge launcher
//
// A Robot serves one caller at a time: every operation is one blocking
// request/reply exchange and the connection carries no interleaved traffic.
package robot
