// Package store implements the concurrent in-memory backend the command
// layer executes against: a top-level key/value map, a per-key hash
// field map, and a per-key string set.
package store

import "github.com/flarekv/respd/resp"

// HashEntry is one (field, value) pair returned by HGetAll.
type HashEntry struct {
	Field string
	Value resp.Frame
}

// Store is the narrow contract the command layer requires from the
// backend. Every method is safe to call concurrently from any connection
// task; semantics are last-writer-wins with no transactionality across
// keys.
type Store interface {
	Get(key string) (resp.Frame, bool)
	Set(key string, value resp.Frame)
	Del(keys []string) int
	Exists(keys []string) int

	HGet(key, field string) (resp.Frame, bool)
	HSet(key, field string, value resp.Frame)
	HGetAll(key string) ([]HashEntry, bool)

	SAdd(key, member string) bool
	SIsMember(key, member string) (isMember, keyExists bool)
}
