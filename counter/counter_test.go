// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openmarket/marketd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.Equal(t, uint64(0), c.Uint64(), "not zero initially")
	assert.Equal(t, uint64(1), c.Increment(), "wrong value after increment")
	assert.Equal(t, uint64(0), c.Decrement(), "wrong value after decrement")
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const n = 50
	wg.Add(2 * n)
	for i := 0; i < n; i += 1 {
		go func() {
			c.Increment()
			wg.Done()
		}()
		go func() {
			c.Increment()
			c.Decrement()
			wg.Done()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(n), c.Uint64(), "wrong final value")
}
