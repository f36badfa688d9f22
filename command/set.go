package command

import (
	"github.com/flarekv/respd/resp"
	"github.com/flarekv/respd/store"
)

// SAdd inserts a member into the set stored at key.
type SAdd struct {
	Key, Member string
}

func parseSAdd(arr resp.Array) (Command, error) {
	if err := fixedArity("sadd", arr, 3); err != nil {
		return nil, err
	}
	key, err := textArg("sadd", "key", arr[1])
	if err != nil {
		return nil, err
	}
	member, err := textArg("sadd", "member", arr[2])
	if err != nil {
		return nil, err
	}
	return SAdd{Key: key, Member: member}, nil
}

// Execute implements Command. The reply is the number of newly inserted
// members (0 or 1, since this command takes exactly one member) --
// canonical Redis insertion-count semantics, not the source's always-1
// behavior.
func (c SAdd) Execute(s store.Store) resp.Frame {
	if s.SAdd(c.Key, c.Member) {
		return replyOne
	}
	return replyZero
}

// Request implements Command.
func (c SAdd) Request() resp.Frame {
	return requestOf("sadd", resp.BulkString(c.Key), resp.BulkString(c.Member))
}

// SIsMember reports whether member is present in the set stored at key.
type SIsMember struct {
	Key, Member string
}

func parseSIsMember(arr resp.Array) (Command, error) {
	if err := fixedArity("sismember", arr, 3); err != nil {
		return nil, err
	}
	key, err := textArg("sismember", "key", arr[1])
	if err != nil {
		return nil, err
	}
	member, err := textArg("sismember", "member", arr[2])
	if err != nil {
		return nil, err
	}
	return SIsMember{Key: key, Member: member}, nil
}

// Execute implements Command. A missing set key replies Integer(0) --
// canonical Redis semantics, not the source's Null-on-missing-key
// behavior.
func (c SIsMember) Execute(s store.Store) resp.Frame {
	isMember, _ := s.SIsMember(c.Key, c.Member)
	if isMember {
		return replyOne
	}
	return replyZero
}

// Request implements Command.
func (c SIsMember) Request() resp.Frame {
	return requestOf("sismember", resp.BulkString(c.Key), resp.BulkString(c.Member))
}
