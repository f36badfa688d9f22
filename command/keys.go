package command

import (
	"github.com/flarekv/respd/resp"
	"github.com/flarekv/respd/store"
)

// MGet reads several top-level keys in a single round trip, get's
// variadic sibling the way hmget is hget's.
type MGet struct {
	Keys []string
}

func parseMGet(arr resp.Array) (Command, error) {
	keys, err := decodeVariadicKeys("mget", arr)
	if err != nil {
		return nil, err
	}
	return MGet{Keys: keys}, nil
}

// Execute implements Command.
func (c MGet) Execute(s store.Store) resp.Frame {
	out := make(resp.Array, 0, len(c.Keys))
	for _, key := range c.Keys {
		v, ok := s.Get(key)
		if !ok {
			out = append(out, replyNull)
			continue
		}
		out = append(out, v)
	}
	return out
}

// Request implements Command.
func (c MGet) Request() resp.Frame {
	return requestOfKeys("mget", c.Keys)
}

// Del removes zero or more top-level keys, replying with how many
// actually existed.
type Del struct {
	Keys []string
}

func parseDel(arr resp.Array) (Command, error) {
	keys, err := decodeVariadicKeys("del", arr)
	if err != nil {
		return nil, err
	}
	return Del{Keys: keys}, nil
}

// Execute implements Command.
func (c Del) Execute(s store.Store) resp.Frame {
	return resp.Integer(s.Del(c.Keys))
}

// Request implements Command.
func (c Del) Request() resp.Frame {
	return requestOfKeys("del", c.Keys)
}

// Exists counts how many of the given top-level keys are present.
type Exists struct {
	Keys []string
}

func parseExists(arr resp.Array) (Command, error) {
	keys, err := decodeVariadicKeys("exists", arr)
	if err != nil {
		return nil, err
	}
	return Exists{Keys: keys}, nil
}

// Execute implements Command.
func (c Exists) Execute(s store.Store) resp.Frame {
	return resp.Integer(s.Exists(c.Keys))
}

// Request implements Command.
func (c Exists) Request() resp.Frame {
	return requestOfKeys("exists", c.Keys)
}
