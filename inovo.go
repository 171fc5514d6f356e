// Package inovo is a client for Inovo robot arms.
//
// The arm's runtime dials back to the controlling program over a
// line-oriented TCP channel; every instruction is one request line
// answered by one reply line. The robot package owns that session,
// the iva package the wire model, geometry the pose algebra, scope
// the reversible-context machinery, and rosbridge the launcher that
// starts the runtime sequence on the controller.
//
// Typical use:
//
//	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	bot, err := robot.Connect(ctx, robot.Config{Host: "psu001"}, log)
//	if err != nil {
//		return err
//	}
//	defer bot.Close()
//
//	guard, err := bot.WithLinear(geometry.Transform{X: 100})
//	if err != nil {
//		return err
//	}
//	defer guard.Close()
package inovo

// Version is the library version the cmd binaries report.
const Version = "0.1.0"
