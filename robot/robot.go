package robot

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dizzyi/inovo-go/geometry"
	"github.com/dizzyi/inovo-go/internal/observability"
	"github.com/dizzyi/inovo-go/iva"
	"github.com/dizzyi/inovo-go/scope"
)

// Conn is the line link a Robot speaks over. transport.Stream satisfies it.
type Conn interface {
	WriteLine(line string) error
	ReadLine() (string, error)
	Close() error
}

// Machine is the capability surface context operations act on. Robot
// implements it; tests substitute fakes.
type Machine interface {
	// CurrentPose reads the live pose of the given kind.
	CurrentPose(kind geometry.PoseKind) (geometry.Pose, error)
	// SendCommand executes one command and requires an ack.
	SendCommand(cmd iva.RobotCommand) error
	// SendInstruction sends one instruction and requires an ack.
	SendInstruction(in iva.Instruction) error
	// DefaultParam reports the parameter set the machine idles at.
	DefaultParam() iva.MotionParam
	// Params exposes the parameter sets currently in force.
	Params() *ParamStack
}

// Robot drives one Inovo arm over an established runtime connection.
// It is not safe for concurrent use; the protocol is strictly one
// request, one reply.
type Robot struct {
	name   string
	conn   Conn
	cfg    Config
	log    zerolog.Logger
	stack  *scope.Stack[Machine]
	params ParamStack
}

// New wraps an established connection. Callers that want the full
// listen/launch/accept bootstrap use Connect instead.
func New(conn Conn, cfg Config, log zerolog.Logger) *Robot {
	cfg = cfg.WithDefaults()
	r := &Robot{
		name: cfg.Name,
		conn: conn,
		cfg:  cfg,
		log:  log.With().Str("robot", cfg.Name).Logger(),
	}
	r.stack = scope.NewStack[Machine](r)
	observability.RegisterMetrics()
	return r
}

// Name reports the robot's configured name.
func (r *Robot) Name() string { return r.name }

// Close releases the runtime connection. Contexts still entered are not
// unwound; close guards before closing the robot.
func (r *Robot) Close() error {
	r.log.Info().Msg("robot.Close")
	return r.conn.Close()
}

// roundTrip performs one request/reply exchange without recording metrics.
func (r *Robot) roundTrip(in iva.Instruction) (string, error) {
	line, err := iva.Encode(in)
	if err != nil {
		return "", err
	}
	if err := r.conn.WriteLine(line); err != nil {
		return "", fmt.Errorf("robot: send %s: %w", in.OpCode(), err)
	}
	reply, err := r.conn.ReadLine()
	if err != nil {
		return "", fmt.Errorf("robot: reply to %s: %w", in.OpCode(), err)
	}
	return reply, nil
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return observability.StatusOK
	case errors.Is(err, iva.ErrInvalidInstruction):
		return observability.StatusEncode
	case errors.Is(err, iva.ErrUnexpectedResponse), errors.Is(err, iva.ErrResponseParse):
		return observability.StatusResponse
	default:
		return observability.StatusTransport
	}
}

// Instruction sends one instruction and returns the raw reply line.
func (r *Robot) Instruction(in iva.Instruction) (string, error) {
	start := time.Now()
	reply, err := r.roundTrip(in)
	observability.RecordInstruction(r.name, in.OpCode(), statusOf(err), time.Since(start))
	return reply, err
}

// SendInstruction sends one instruction and requires the runtime's ack.
func (r *Robot) SendInstruction(in iva.Instruction) error {
	start := time.Now()
	reply, err := r.roundTrip(in)
	if err == nil {
		err = iva.DecodeAck(reply)
	}
	observability.RecordInstruction(r.name, in.OpCode(), statusOf(err), time.Since(start))
	return err
}

// instructionScalar sends in and decodes the reply as a T.
func instructionScalar[T bool | int64 | float64 | string](r *Robot, in iva.Instruction) (T, error) {
	start := time.Now()
	reply, err := r.roundTrip(in)
	var out T
	if err == nil {
		out, err = iva.DecodeScalar[T](reply)
	}
	observability.RecordInstruction(r.name, in.OpCode(), statusOf(err), time.Since(start))
	return out, err
}

// SendCommand executes one command immediately and requires an ack.
func (r *Robot) SendCommand(cmd iva.RobotCommand) error {
	return r.SendInstruction(iva.Exec(cmd))
}

// CurrentPose reads the live pose of the given kind.
func (r *Robot) CurrentPose(kind geometry.PoseKind) (geometry.Pose, error) {
	var query iva.QueryTarget
	switch kind {
	case geometry.PoseCartesian:
		query = iva.QueryTransform()
	case geometry.PoseJoint:
		query = iva.QueryJointCoord()
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPoseKind, kind)
	}
	in := iva.Get(query)
	start := time.Now()
	reply, err := r.roundTrip(in)
	var pose geometry.Pose
	if err == nil {
		pose, err = iva.DecodePose(reply, kind)
	}
	observability.RecordInstruction(r.name, in.OpCode(), statusOf(err), time.Since(start))
	return pose, err
}

// DefaultParam reports the parameter set contexts restore to.
func (r *Robot) DefaultParam() iva.MotionParam { return r.cfg.DefaultParam }

// Params exposes the parameter sets currently in force.
func (r *Robot) Params() *ParamStack { return &r.params }

// Enter moves the robot into op's state and records it. On failure the
// robot is left exactly as it was.
func (r *Robot) Enter(op scope.Operation[Machine]) error {
	if err := r.stack.Enter(op); err != nil {
		return err
	}
	observability.SetContextDepth(r.name, r.stack.Depth())
	r.log.Debug().Str("context", op.Label()).Int("depth", r.stack.Depth()).Msg("robot.Enter")
	return nil
}

// Exit unwinds the most recent context. With none entered it reports
// scope.ErrNoContext.
func (r *Robot) Exit() error {
	err := r.stack.Exit()
	observability.SetContextDepth(r.name, r.stack.Depth())
	if err == nil {
		r.log.Debug().Int("depth", r.stack.Depth()).Msg("robot.Exit")
	}
	return err
}

// Guard unwinds one scoped context exactly once. Close after the first
// call returns nil.
type Guard struct {
	robot *Robot
	inner *scope.Guard[Machine]
}

func (g *Guard) Close() error {
	err := g.inner.Close()
	observability.SetContextDepth(g.robot.name, g.robot.stack.Depth())
	return err
}

// Scoped enters op and returns a guard that exits it. Guards follow defer
// discipline: close them in reverse order of creation.
func (r *Robot) Scoped(op scope.Operation[Machine]) (*Guard, error) {
	inner, err := r.stack.Scoped(op)
	if err != nil {
		return nil, err
	}
	observability.SetContextDepth(r.name, r.stack.Depth())
	r.log.Debug().Str("context", op.Label()).Int("depth", r.stack.Depth()).Msg("robot.Scoped")
	return &Guard{robot: r, inner: inner}, nil
}

// ContextDepth reports how many contexts are currently entered.
func (r *Robot) ContextDepth() int { return r.stack.Depth() }

// ContextLabels reports the labels of entered contexts, oldest first.
func (r *Robot) ContextLabels() []string { return r.stack.Labels() }
