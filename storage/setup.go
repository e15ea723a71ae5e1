// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/openmarket/marketd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Items         *PoolHandle `prefix:"I"`
	Approvals     *PoolHandle `prefix:"P"`
	Listings      *PoolHandle `prefix:"L"`
	ActiveListing *PoolHandle `prefix:"A"`
	Counters      *PoolHandle `prefix:"N"`
	Balances      *PoolHandle `prefix:"B"`
	FeePolicy     *PoolHandle `prefix:"F"`
}

// Pool - the set of exported pools
var Pool pools

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db         *leveldb.DB
	dataAccess DataAccess
	trx        Transaction
}

// Initialise - open the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	db, err := leveldb.OpenFile(database, &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return err
	}
	poolData.db = db
	poolData.dataAccess = newDataAccess(db)
	poolData.trx = newTransaction(poolData.dataAccess)

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			dbClose()
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: poolData.dataAccess,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()
	dbClose()
}

func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
		poolData.dataAccess = nil
		poolData.trx = nil

		// clear the pool handles
		poolValue := reflect.ValueOf(&Pool).Elem()
		for i := 0; i < poolValue.NumField(); i += 1 {
			poolValue.Field(i).Set(reflect.Zero(poolValue.Field(i).Type()))
		}
	}
}

// NewDBTransaction - obtain the transaction for the database
//
// there is a single underlying batch, so the returned transaction
// serialises all mutating operations through its Begin
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.trx {
		return nil, fault.NotInitialised
	}
	return poolData.trx, nil
}

// IsInitialised - check the database is open
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}
