package store

import (
	"sync"

	"github.com/dchest/siphash"

	"github.com/flarekv/respd/internal/xrand"
	"github.com/flarekv/respd/resp"
)

// DefaultShardCount is the shard count Memory uses when NewMemory is
// called with a non-positive value.
const DefaultShardCount = 16

// Memory is a sharded, mutex-guarded implementation of Store. The key
// space is partitioned across a power-of-two number of shards, each
// independently locked, so that lock contention between connection tasks
// touching unrelated keys scales down with shard count instead of
// serializing on one global lock.
type Memory struct {
	shards []*shard
	mask   uint64
	k0, k1 uint64
}

type shard struct {
	mu   sync.RWMutex
	kv   map[string]resp.Frame
	hash map[string]map[string]resp.Frame
	sets map[string]map[string]struct{}
}

func newShard() *shard {
	return &shard{
		kv:   make(map[string]resp.Frame),
		hash: make(map[string]map[string]resp.Frame),
		sets: make(map[string]map[string]struct{}),
	}
}

// NewMemory builds an empty Memory store with shardCount shards, rounded
// up to the next power of two. shardCount <= 0 selects DefaultShardCount.
func NewMemory(shardCount int) *Memory {
	if shardCount <= 0 {
		shardCount = DefaultShardCount
	}
	n := 1
	for n < shardCount {
		n <<= 1
	}

	var keyMaterial [16]byte
	if err := xrand.Bytes(keyMaterial[:]); err != nil {
		panic("store: failed to seed shard hash key: " + err.Error())
	}

	shards := make([]*shard, n)
	for i := range shards {
		shards[i] = newShard()
	}

	return &Memory{
		shards: shards,
		mask:   uint64(n - 1),
		k0:     leUint64(keyMaterial[0:8]),
		k1:     leUint64(keyMaterial[8:16]),
	}
}

func leUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func (m *Memory) shardFor(key string) *shard {
	sum := siphash.Hash(m.k0, m.k1, []byte(key))
	return m.shards[sum&m.mask]
}

// Get implements Store.
func (m *Memory) Get(key string) (resp.Frame, bool) {
	s := m.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.kv[key]
	return v, ok
}

// Set implements Store.
func (m *Memory) Set(key string, value resp.Frame) {
	s := m.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kv[key] = value
}

// Del implements Store.
func (m *Memory) Del(keys []string) int {
	removed := 0
	for _, key := range keys {
		s := m.shardFor(key)
		s.mu.Lock()
		if _, ok := s.kv[key]; ok {
			delete(s.kv, key)
			removed++
		}
		s.mu.Unlock()
	}
	return removed
}

// Exists implements Store.
func (m *Memory) Exists(keys []string) int {
	present := 0
	for _, key := range keys {
		s := m.shardFor(key)
		s.mu.RLock()
		if _, ok := s.kv[key]; ok {
			present++
		}
		s.mu.RUnlock()
	}
	return present
}

// HGet implements Store.
func (m *Memory) HGet(key, field string) (resp.Frame, bool) {
	s := m.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	fields, ok := s.hash[key]
	if !ok {
		return nil, false
	}
	v, ok := fields[field]
	return v, ok
}

// HSet implements Store.
func (m *Memory) HSet(key, field string, value resp.Frame) {
	s := m.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	fields, ok := s.hash[key]
	if !ok {
		fields = make(map[string]resp.Frame)
		s.hash[key] = fields
	}
	fields[field] = value
}

// HGetAll implements Store. The returned entries are in map iteration
// order; callers that need a stable order (hgetall's sort flag) sort
// them.
func (m *Memory) HGetAll(key string) ([]HashEntry, bool) {
	s := m.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	fields, ok := s.hash[key]
	if !ok {
		return nil, false
	}
	entries := make([]HashEntry, 0, len(fields))
	for field, value := range fields {
		entries = append(entries, HashEntry{Field: field, Value: value})
	}
	return entries, true
}

// SAdd implements Store. It reports whether member was newly inserted.
func (m *Memory) SAdd(key, member string) bool {
	s := m.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[key]
	if !ok {
		set = make(map[string]struct{})
		s.sets[key] = set
	}
	if _, present := set[member]; present {
		return false
	}
	set[member] = struct{}{}
	return true
}

// SIsMember implements Store.
func (m *Memory) SIsMember(key, member string) (isMember, keyExists bool) {
	s := m.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.sets[key]
	if !ok {
		return false, false
	}
	_, present := set[member]
	return present, true
}
