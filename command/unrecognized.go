package command

import (
	"github.com/flarekv/respd/resp"
	"github.com/flarekv/respd/store"
)

// Unrecognized is produced for any command array whose head does not
// match a known name. It is never an error: the client still gets a
// reply, just a fixed one.
type Unrecognized struct{}

// Execute implements Command.
func (Unrecognized) Execute(store.Store) resp.Frame {
	return replyUnknown
}

// Request implements Command. There is no canonical request form for an
// unrecognized command; callers constructing one directly should build
// their own Array instead.
func (Unrecognized) Request() resp.Frame {
	return resp.Array{resp.BulkString("unrecognized")}
}
