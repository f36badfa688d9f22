package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flarekv/respd/resp"
	"github.com/flarekv/respd/store"
)

// fakeStore is a minimal, non-concurrent store.Store used to exercise
// command execution in isolation from the sharded backend.
type fakeStore struct {
	kv   map[string]resp.Frame
	hash map[string]map[string]resp.Frame
	sets map[string]map[string]struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		kv:   make(map[string]resp.Frame),
		hash: make(map[string]map[string]resp.Frame),
		sets: make(map[string]map[string]struct{}),
	}
}

func (f *fakeStore) Get(key string) (resp.Frame, bool) { v, ok := f.kv[key]; return v, ok }
func (f *fakeStore) Set(key string, value resp.Frame)  { f.kv[key] = value }

func (f *fakeStore) Del(keys []string) int {
	n := 0
	for _, k := range keys {
		if _, ok := f.kv[k]; ok {
			delete(f.kv, k)
			n++
		}
	}
	return n
}

func (f *fakeStore) Exists(keys []string) int {
	n := 0
	for _, k := range keys {
		if _, ok := f.kv[k]; ok {
			n++
		}
	}
	return n
}

func (f *fakeStore) HGet(key, field string) (resp.Frame, bool) {
	fields, ok := f.hash[key]
	if !ok {
		return nil, false
	}
	v, ok := fields[field]
	return v, ok
}

func (f *fakeStore) HSet(key, field string, value resp.Frame) {
	fields, ok := f.hash[key]
	if !ok {
		fields = make(map[string]resp.Frame)
		f.hash[key] = fields
	}
	fields[field] = value
}

func (f *fakeStore) HGetAll(key string) ([]store.HashEntry, bool) {
	fields, ok := f.hash[key]
	if !ok {
		return nil, false
	}
	entries := make([]store.HashEntry, 0, len(fields))
	for field, value := range fields {
		entries = append(entries, store.HashEntry{Field: field, Value: value})
	}
	return entries, true
}

func (f *fakeStore) SAdd(key, member string) bool {
	set, ok := f.sets[key]
	if !ok {
		set = make(map[string]struct{})
		f.sets[key] = set
	}
	if _, present := set[member]; present {
		return false
	}
	set[member] = struct{}{}
	return true
}

func (f *fakeStore) SIsMember(key, member string) (isMember, keyExists bool) {
	set, ok := f.sets[key]
	if !ok {
		return false, false
	}
	_, present := set[member]
	return present, true
}

var _ store.Store = (*fakeStore)(nil)

func mustParse(t *testing.T, arr resp.Array) Command {
	t.Helper()
	cmd, err := Parse(arr)
	if err != nil {
		t.Fatalf("Parse(%#v) failed: %v", arr, err)
	}
	return cmd
}

// wantFrame compares reply against want using testify's deep-equality
// check rather than ==: several Frame variants (BulkString, Array) carry
// a slice, and comparing an interface holding an uncomparable dynamic
// type with == panics at runtime instead of reporting false.
func wantFrame(t *testing.T, reply, want resp.Frame) {
	t.Helper()
	require.Equal(t, want, reply)
}

func TestParseUnrecognizedCommand(t *testing.T) {
	cmd := mustParse(t, resp.Array{resp.BulkString("nope")})
	if _, ok := cmd.(Unrecognized); !ok {
		t.Fatalf("Parse(nope) = %#v, want Unrecognized", cmd)
	}
	wantFrame(t, cmd.Execute(newFakeStore()), replyUnknown)
}

func TestParseRejectsNonArrayTopLevel(t *testing.T) {
	if _, err := Parse(resp.SimpleString("get")); err == nil {
		t.Fatalf("Parse(SimpleString) succeeded, want InvalidCommandError")
	}
}

func TestParseRejectsEmptyArray(t *testing.T) {
	if _, err := Parse(resp.Array{}); err == nil {
		t.Fatalf("Parse(empty array) succeeded, want InvalidCommandError")
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	s := newFakeStore()

	setCmd := mustParse(t, resp.Array{resp.BulkString("set"), resp.BulkString("a"), resp.BulkString("1")})
	wantFrame(t, setCmd.Execute(s), replyOK)

	getCmd := mustParse(t, resp.Array{resp.BulkString("get"), resp.BulkString("a")})
	wantFrame(t, getCmd.Execute(s), resp.BulkString("1"))

	missCmd := mustParse(t, resp.Array{resp.BulkString("get"), resp.BulkString("missing")})
	wantFrame(t, missCmd.Execute(s), replyNull)
}

func TestEchoReturnsItsArgument(t *testing.T) {
	s := newFakeStore()
	cmd := mustParse(t, resp.Array{resp.BulkString("echo"), resp.BulkString("hi")})
	wantFrame(t, cmd.Execute(s), resp.BulkString("hi"))
}

func TestHashCommands(t *testing.T) {
	s := newFakeStore()

	mustParse(t, resp.Array{resp.BulkString("hset"), resp.BulkString("h"), resp.BulkString("f1"), resp.BulkString("v1")}).Execute(s)
	mustParse(t, resp.Array{resp.BulkString("hset"), resp.BulkString("h"), resp.BulkString("f2"), resp.BulkString("v2")}).Execute(s)

	hget := mustParse(t, resp.Array{resp.BulkString("hget"), resp.BulkString("h"), resp.BulkString("f1")})
	wantFrame(t, hget.Execute(s), resp.BulkString("v1"))

	hgetall := mustParse(t, resp.Array{resp.BulkString("hgetall"), resp.BulkString("h")})
	wantFrame(t, hgetall.Execute(s), resp.Array{
		resp.BulkString("f1"), resp.BulkString("v1"),
		resp.BulkString("f2"), resp.BulkString("v2"),
	})

	hmget := mustParse(t, resp.Array{resp.BulkString("hmget"), resp.BulkString("h"), resp.BulkString("f1"), resp.BulkString("absent")})
	wantFrame(t, hmget.Execute(s), resp.Array{resp.BulkString("v1"), replyNull})
}

func TestSetCommands(t *testing.T) {
	s := newFakeStore()

	first := mustParse(t, resp.Array{resp.BulkString("sadd"), resp.BulkString("s"), resp.BulkString("x")})
	wantFrame(t, first.Execute(s), replyOne)
	wantFrame(t, first.Execute(s), replyZero)

	member := mustParse(t, resp.Array{resp.BulkString("sismember"), resp.BulkString("s"), resp.BulkString("x")})
	wantFrame(t, member.Execute(s), replyOne)

	missing := mustParse(t, resp.Array{resp.BulkString("sismember"), resp.BulkString("nope"), resp.BulkString("x")})
	wantFrame(t, missing.Execute(s), replyZero)
}

func TestMGetDelExists(t *testing.T) {
	s := newFakeStore()
	mustParse(t, resp.Array{resp.BulkString("set"), resp.BulkString("a"), resp.BulkString("1")}).Execute(s)
	mustParse(t, resp.Array{resp.BulkString("set"), resp.BulkString("b"), resp.BulkString("2")}).Execute(s)

	mget := mustParse(t, resp.Array{resp.BulkString("mget"), resp.BulkString("a"), resp.BulkString("b"), resp.BulkString("c")})
	wantFrame(t, mget.Execute(s), resp.Array{resp.BulkString("1"), resp.BulkString("2"), replyNull})

	del := mustParse(t, resp.Array{resp.BulkString("del"), resp.BulkString("a"), resp.BulkString("c")})
	wantFrame(t, del.Execute(s), resp.Integer(1))

	exists := mustParse(t, resp.Array{resp.BulkString("exists"), resp.BulkString("a"), resp.BulkString("b")})
	wantFrame(t, exists.Execute(s), resp.Integer(1))
}

func TestCommandRequestRoundTrip(t *testing.T) {
	cmds := []Command{
		Echo{Val: "hi"},
		Get{Key: "a"},
		Set{Key: "a", Value: resp.BulkString("1")},
		HGet{Key: "h", Field: "f"},
		MGet{Keys: []string{"a", "b"}},
	}
	for _, cmd := range cmds {
		reparsed, err := Parse(cmd.Request())
		require.NoError(t, err, "Parse(%#v.Request())", cmd)
		require.Equal(t, cmd, reparsed)
	}
}
