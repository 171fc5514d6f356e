package iva

// CustomCommand is an application-defined instruction payload: a set of
// string or float arguments keyed by name. Keys are encoded in sorted
// order; adding an existing key replaces its value.
type CustomCommand struct {
	args []customArg
}

type customArg struct {
	key     string
	str     string
	num     float64
	isFloat bool
}

// NewCustom returns an empty custom command.
func NewCustom() CustomCommand {
	return CustomCommand{}
}

// AddString sets a string argument.
func (c CustomCommand) AddString(key, value string) CustomCommand {
	return c.put(customArg{key: key, str: value})
}

// AddFloat sets a float argument.
func (c CustomCommand) AddFloat(key string, value float64) CustomCommand {
	return c.put(customArg{key: key, num: value, isFloat: true})
}

// Len reports the number of arguments.
func (c CustomCommand) Len() int { return len(c.args) }

func (c CustomCommand) put(arg customArg) CustomCommand {
	args := c.args[:len(c.args):len(c.args)]
	for i := range args {
		if args[i].key == arg.key {
			out := append([]customArg(nil), args...)
			out[i] = arg
			return CustomCommand{args: out}
		}
	}
	return CustomCommand{args: append(args, arg)}
}
