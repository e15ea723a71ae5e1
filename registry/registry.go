// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/openmarket/marketd/fault"
	"github.com/openmarket/marketd/storage"
)

// Handles - the pools the registry needs
type Handles struct {
	Items     *storage.PoolHandle
	Approvals *storage.PoolHandle
	Counters  *storage.PoolHandle
}

// globals
var globalData struct {
	sync.RWMutex
	log         *logger.L
	pools       Handles
	initialised bool
}

// Initialise - connect the registry to its pools
func Initialise(pools Handles) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	globalData.pools = pools
	globalData.initialised = true
	return nil
}

// Finalise - shut down the registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.pools = Handles{}
	globalData.initialised = false
	return nil
}
