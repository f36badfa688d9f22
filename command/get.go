package command

import (
	"github.com/flarekv/respd/resp"
	"github.com/flarekv/respd/store"
)

// Get reads a single top-level key.
type Get struct {
	Key string
}

func parseGet(arr resp.Array) (Command, error) {
	if err := fixedArity("get", arr, 2); err != nil {
		return nil, err
	}
	key, err := textArg("get", "key", arr[1])
	if err != nil {
		return nil, err
	}
	return Get{Key: key}, nil
}

// Execute implements Command.
func (c Get) Execute(s store.Store) resp.Frame {
	v, ok := s.Get(c.Key)
	if !ok {
		return replyNull
	}
	return v
}

// Request implements Command.
func (c Get) Request() resp.Frame {
	return requestOf("get", resp.BulkString(c.Key))
}

// Set writes a top-level key.
type Set struct {
	Key   string
	Value resp.Frame
}

func parseSet(arr resp.Array) (Command, error) {
	if err := fixedArity("set", arr, 3); err != nil {
		return nil, err
	}
	key, err := textArg("set", "key", arr[1])
	if err != nil {
		return nil, err
	}
	return Set{Key: key, Value: arr[2]}, nil
}

// Execute implements Command.
func (c Set) Execute(s store.Store) resp.Frame {
	s.Set(c.Key, c.Value)
	return replyOK
}

// Request implements Command.
func (c Set) Request() resp.Frame {
	return requestOf("set", resp.BulkString(c.Key), c.Value)
}
