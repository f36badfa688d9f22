package command

import (
	"github.com/flarekv/respd/resp"
	"github.com/flarekv/respd/store"
)

// Echo replies with its argument unchanged. It touches no store state.
type Echo struct {
	Val string
}

func parseEcho(arr resp.Array) (Command, error) {
	if err := fixedArity("echo", arr, 2); err != nil {
		return nil, err
	}
	val, err := textArg("echo", "val", arr[1])
	if err != nil {
		return nil, err
	}
	return Echo{Val: val}, nil
}

// Execute implements Command.
func (c Echo) Execute(store.Store) resp.Frame {
	return resp.BulkString(c.Val)
}

// Request implements Command.
func (c Echo) Request() resp.Frame {
	return requestOf("echo", resp.BulkString(c.Val))
}
