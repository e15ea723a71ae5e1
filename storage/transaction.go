// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"
)

// Transaction - an all-or-nothing mutation of ledger state
//
// Begin blocks until any previous transaction has finished, so
// mutations are applied strictly one at a time.  Writes accumulate in
// a batch that only reaches the database on Commit; Abort discards
// everything.  Reads through the transaction see its own pending
// writes, reads through a plain pool handle never do.
type Transaction interface {
	Abort()
	Begin()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

type transaction struct {
	sync.Mutex
	inUse      bool
	dataAccess DataAccess
}

func newTransaction(dataAccess DataAccess) Transaction {
	return &transaction{
		inUse:      false,
		dataAccess: dataAccess,
	}
}

func (t *transaction) Begin() {
	t.Lock()
	t.inUse = true
}

func (t *transaction) Commit() error {
	err := t.dataAccess.Commit()
	t.inUse = false
	t.Unlock()
	return err
}

func (t *transaction) Abort() {
	t.dataAccess.Abort()
	t.inUse = false
	t.Unlock()
}

func (t *transaction) InUse() bool {
	return t.inUse
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.put(key, buffer)
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	return p.getPending(key)
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := p.getPending(key)
	if nil == buffer || len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	return p.hasPending(key)
}
