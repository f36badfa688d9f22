package command

import "fmt"

// InvalidCommandError is reported when the top-level frame is not an
// Array with a BulkString first element.
type InvalidCommandError struct {
	Reason string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("command: invalid command: %s", e.Reason)
}

// InvalidArgumentError is reported for wrong arity or an argument with
// the wrong Frame variant for its command.
type InvalidArgumentError struct {
	Command string
	Reason  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("command: %s: invalid argument: %s", e.Command, e.Reason)
}

// Utf8Error is reported when an argument required to be text contained
// invalid UTF-8.
type Utf8Error struct {
	Command string
	Arg     string
}

func (e *Utf8Error) Error() string {
	return fmt.Sprintf("command: %s: argument %s is not valid UTF-8", e.Command, e.Arg)
}
