// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// operation recorded against a pending key
type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// Cache - pending writes of the current transaction, so a
// transaction can read back data it has not yet committed
type Cache interface {
	Get(key string) (dbOperation, []byte, bool)
	Set(op dbOperation, key string, value []byte)
	Clear()
}

type cacheEntry struct {
	op    dbOperation
	value []byte
}

type memoryCache struct {
	sync.RWMutex
	data map[string]cacheEntry
}

func newMemoryCache() Cache {
	return &memoryCache{
		data: make(map[string]cacheEntry),
	}
}

func (c *memoryCache) Get(key string) (dbOperation, []byte, bool) {
	c.RLock()
	defer c.RUnlock()
	entry, found := c.data[key]
	return entry.op, entry.value, found
}

func (c *memoryCache) Set(op dbOperation, key string, value []byte) {
	c.Lock()
	c.data[key] = cacheEntry{op: op, value: value}
	c.Unlock()
}

func (c *memoryCache) Clear() {
	c.Lock()
	c.data = make(map[string]cacheEntry)
	c.Unlock()
}
