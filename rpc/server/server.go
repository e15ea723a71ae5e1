// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/openmarket/marketd/counter"
	"github.com/openmarket/marketd/rpc/item"
	"github.com/openmarket/marketd/rpc/market"
	"github.com/openmarket/marketd/rpc/node"
	"github.com/openmarket/marketd/rpc/query"
)

// Create - make a server with all the handlers registered
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(item.New(log))
	_ = server.Register(market.New(log))
	_ = server.Register(query.New(log))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
