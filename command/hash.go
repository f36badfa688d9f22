package command

import (
	"sort"

	"github.com/flarekv/respd/resp"
	"github.com/flarekv/respd/store"
)

// HGet reads a single field of a hash key.
type HGet struct {
	Key, Field string
}

func parseHGet(arr resp.Array) (Command, error) {
	if err := fixedArity("hget", arr, 3); err != nil {
		return nil, err
	}
	key, err := textArg("hget", "key", arr[1])
	if err != nil {
		return nil, err
	}
	field, err := textArg("hget", "field", arr[2])
	if err != nil {
		return nil, err
	}
	return HGet{Key: key, Field: field}, nil
}

// Execute implements Command.
func (c HGet) Execute(s store.Store) resp.Frame {
	v, ok := s.HGet(c.Key, c.Field)
	if !ok {
		return replyNull
	}
	return v
}

// Request implements Command.
func (c HGet) Request() resp.Frame {
	return requestOf("hget", resp.BulkString(c.Key), resp.BulkString(c.Field))
}

// HSet writes a single field of a hash key.
type HSet struct {
	Key, Field string
	Value      resp.Frame
}

func parseHSet(arr resp.Array) (Command, error) {
	if err := fixedArity("hset", arr, 4); err != nil {
		return nil, err
	}
	key, err := textArg("hset", "key", arr[1])
	if err != nil {
		return nil, err
	}
	field, err := textArg("hset", "field", arr[2])
	if err != nil {
		return nil, err
	}
	return HSet{Key: key, Field: field, Value: arr[3]}, nil
}

// Execute implements Command.
func (c HSet) Execute(s store.Store) resp.Frame {
	s.HSet(c.Key, c.Field, c.Value)
	return replyOK
}

// Request implements Command.
func (c HSet) Request() resp.Frame {
	return requestOf("hset", resp.BulkString(c.Key), resp.BulkString(c.Field), c.Value)
}

// HGetAll reads every field of a hash key. Sort is always true in
// practice -- the command table requires ascending field order -- but is
// kept as a construction-time flag, matching the source's HGetAllArgs.sort
// field, so tests can exercise the unsorted path directly.
type HGetAll struct {
	Key  string
	Sort bool
}

func parseHGetAll(arr resp.Array) (Command, error) {
	if err := fixedArity("hgetall", arr, 2); err != nil {
		return nil, err
	}
	key, err := textArg("hgetall", "key", arr[1])
	if err != nil {
		return nil, err
	}
	return HGetAll{Key: key, Sort: true}, nil
}

// Execute implements Command.
func (c HGetAll) Execute(s store.Store) resp.Frame {
	entries, ok := s.HGetAll(c.Key)
	if !ok {
		return resp.Array{}
	}
	if c.Sort {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Field < entries[j].Field })
	}
	out := make(resp.Array, 0, len(entries)*2)
	for _, e := range entries {
		out = append(out, resp.BulkString(e.Field), e.Value)
	}
	return out
}

// Request implements Command.
func (c HGetAll) Request() resp.Frame {
	return requestOf("hgetall", resp.BulkString(c.Key))
}

// HMGet reads several fields of one hash key in a single round trip.
// A missing field reports as Null, not an empty bulk string (spec's
// canonical-semantics choice over the source's bug-for-bug behavior).
type HMGet struct {
	Key    string
	Fields []string
}

func parseHMGet(arr resp.Array) (Command, error) {
	if len(arr) < 3 {
		return nil, &InvalidArgumentError{Command: "hmget", Reason: "requires a key and at least one field"}
	}
	key, err := textArg("hmget", "key", arr[1])
	if err != nil {
		return nil, err
	}
	fields := make([]string, 0, len(arr)-2)
	for _, f := range arr[2:] {
		field, err := textArg("hmget", "field", f)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return HMGet{Key: key, Fields: fields}, nil
}

// Execute implements Command.
func (c HMGet) Execute(s store.Store) resp.Frame {
	out := make(resp.Array, 0, len(c.Fields))
	for _, field := range c.Fields {
		v, ok := s.HGet(c.Key, field)
		if !ok {
			out = append(out, replyNull)
			continue
		}
		out = append(out, v)
	}
	return out
}

// Request implements Command.
func (c HMGet) Request() resp.Frame {
	args := make([]resp.Frame, 0, len(c.Fields)+1)
	args = append(args, resp.BulkString(c.Key))
	for _, f := range c.Fields {
		args = append(args, resp.BulkString(f))
	}
	return requestOf("hmget", args...)
}
