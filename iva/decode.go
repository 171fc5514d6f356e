package iva

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dizzyi/inovo-go/geometry"
)

// DecodeAck checks the reply to a command that answers with a bare OK.
func DecodeAck(raw string) error {
	if strings.TrimSpace(raw) == "OK" {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnexpectedResponse, raw)
}

// DecodeScalar parses a scalar reply line. Booleans are the literals True
// and False, numbers plain decimal; a string is returned as received.
func DecodeScalar[T bool | int64 | float64 | string](raw string) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *bool:
		switch strings.TrimSpace(raw) {
		case "True":
			*p = true
		case "False":
			*p = false
		default:
			return out, fmt.Errorf("%w: %q as bool", ErrResponseParse, raw)
		}
	case *int64:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return out, fmt.Errorf("%w: %q as int", ErrResponseParse, raw)
		}
		*p = v
	case *float64:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return out, fmt.Errorf("%w: %q as float", ErrResponseParse, raw)
		}
		*p = v
	}
	return out, nil
}

// DecodePose parses a pose reply of the given kind. Cartesian components
// arrive in meters and radians and are converted to millimeters and
// degrees; joint components are degrees already. Unknown keys are ignored,
// missing keys default to zero, and a trailing comma is tolerated.
func DecodePose(raw string, kind geometry.PoseKind) (geometry.Pose, error) {
	fields, err := parsePoseFields(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case geometry.PoseCartesian:
		return geometry.Transform{
			X:  fields["x"] * 1000,
			Y:  fields["y"] * 1000,
			Z:  fields["z"] * 1000,
			RX: geometry.RadToDeg(fields["rx"]),
			RY: geometry.RadToDeg(fields["ry"]),
			RZ: geometry.RadToDeg(fields["rz"]),
		}, nil
	case geometry.PoseJoint:
		return geometry.JointCoord{
			J1: fields["j1"], J2: fields["j2"], J3: fields["j3"],
			J4: fields["j4"], J5: fields["j5"], J6: fields["j6"],
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown pose kind %d", ErrResponseParse, kind)
	}
}

func parsePoseFields(raw string) (map[string]float64, error) {
	clean := strings.NewReplacer("{", "", "}", "", " ", "").Replace(raw)
	fields := make(map[string]float64)
	for _, kv := range strings.Split(clean, ",") {
		if kv == "" {
			continue
		}
		k, v, ok := strings.Cut(kv, ":")
		if !ok {
			return nil, fmt.Errorf("%w: pose field %q", ErrResponseParse, kv)
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: pose value %q", ErrResponseParse, kv)
		}
		fields[k] = f
	}
	return fields, nil
}
