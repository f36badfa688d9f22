// Package command converts a decoded RESP array frame into a tagged
// command and executes it against a store.Store.
package command

import (
	"bytes"
	"unicode/utf8"

	"github.com/flarekv/respd/resp"
	"github.com/flarekv/respd/store"
)

// Sentinel reply frames, shared by every command rather than allocated
// per execution -- the RESP_OK/RESP_NULL/RESP_ZERO/RESP_ONE constants in
// the source this layer is modeled on.
var (
	replyOK      = resp.SimpleString("OK")
	replyUnknown = resp.SimpleString("UNKNOWN")
	replyNull    = resp.Null{}
	replyZero    = resp.Integer(0)
	replyOne     = resp.Integer(1)
)

// Command is a fully parsed, executable request. Execute must not block
// on anything other than the store -- per the concurrency model, command
// execution itself never suspends.
type Command interface {
	// Execute runs the command against s and returns the reply Frame.
	Execute(s store.Store) resp.Frame

	// Request reconstructs the RESP array this command would have been
	// parsed from. It exists for the command round-trip property and
	// for client-side request construction; it is not used by the
	// server.
	Request() resp.Frame
}

// Parse converts a top-level Frame into a Command. Only Array frames
// whose first element is a BulkString can name a command; anything else
// reports InvalidCommandError. An Array whose BulkString head does not
// match a recognized name yields an Unrecognized command, never a hard
// error, so that the client still sees a reply.
func Parse(frame resp.Frame) (Command, error) {
	arr, ok := frame.(resp.Array)
	if !ok {
		return nil, &InvalidCommandError{Reason: "top-level frame must be an Array"}
	}
	if len(arr) == 0 {
		return nil, &InvalidCommandError{Reason: "command array must have at least one element"}
	}
	head, ok := arr[0].(resp.BulkString)
	if !ok {
		return nil, &InvalidCommandError{Reason: "command name must be a BulkString"}
	}

	name := bytes.ToLower(head)
	switch string(name) {
	case "echo":
		return parseEcho(arr)
	case "get":
		return parseGet(arr)
	case "set":
		return parseSet(arr)
	case "hget":
		return parseHGet(arr)
	case "hset":
		return parseHSet(arr)
	case "hgetall":
		return parseHGetAll(arr)
	case "hmget":
		return parseHMGet(arr)
	case "sadd":
		return parseSAdd(arr)
	case "sismember":
		return parseSIsMember(arr)
	case "mget":
		return parseMGet(arr)
	case "del":
		return parseDel(arr)
	case "exists":
		return parseExists(arr)
	default:
		return Unrecognized{}, nil
	}
}

// textArg coerces a Frame argument to UTF-8 text. Only BulkString
// arguments qualify; non-UTF-8 payloads report Utf8Error.
func textArg(cmdName, argName string, f resp.Frame) (string, error) {
	bs, ok := f.(resp.BulkString)
	if !ok {
		return "", &InvalidArgumentError{Command: cmdName, Reason: argName + " must be a bulk string"}
	}
	if !utf8.Valid(bs) {
		return "", &Utf8Error{Command: cmdName, Arg: argName}
	}
	return string(bs), nil
}

// fixedArity reports InvalidArgumentError unless arr has exactly
// wantLen elements (including the command name at index 0).
func fixedArity(cmdName string, arr resp.Array, wantLen int) error {
	if len(arr) != wantLen {
		return &InvalidArgumentError{
			Command: cmdName,
			Reason:  "wrong number of arguments",
		}
	}
	return nil
}

// decodeVariadicKeys validates that arr has the command name followed by
// at least one key argument, and coerces every argument after index 0 to
// text.
func decodeVariadicKeys(cmdName string, arr resp.Array) ([]string, error) {
	if len(arr) < 2 {
		return nil, &InvalidArgumentError{Command: cmdName, Reason: "requires at least one key"}
	}
	keys := make([]string, 0, len(arr)-1)
	for _, f := range arr[1:] {
		key, err := textArg(cmdName, "key", f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func requestOf(name string, args ...resp.Frame) resp.Frame {
	arr := make(resp.Array, 0, len(args)+1)
	arr = append(arr, resp.BulkString(name))
	arr = append(arr, args...)
	return arr
}

func requestOfKeys(name string, keys []string) resp.Frame {
	arr := make(resp.Array, 0, len(keys)+1)
	arr = append(arr, resp.BulkString(name))
	for _, k := range keys {
		arr = append(arr, resp.BulkString(k))
	}
	return arr
}
