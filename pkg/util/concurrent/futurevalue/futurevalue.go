/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futurevalue

import (
	"context"
	"sync"
	"sync/atomic"
)

// Value implements a Future Value that is resolved once (and only once).
// Any number of Go routines may race to resolve it with Set; the first call
// wins and every later call is ignored. Multiple Go routines may invoke Get,
// and will wait until the value has been resolved.
type Value struct {
	once  sync.Once
	done  chan struct{}
	set   int32
	value interface{}
	err   error
}

// New returns a new pending future value
func New() *Value {
	return &Value{done: make(chan struct{})}
}

// Set resolves the future value with the given value and error.
// It returns true if this call resolved the value and false if the value
// had already been resolved by a previous call.
func (f *Value) Set(value interface{}, err error) bool {
	resolved := false
	f.once.Do(func() {
		f.value = value
		f.err = err
		atomic.StoreInt32(&f.set, 1)
		close(f.done)
		resolved = true
	})
	return resolved
}

// Get waits for the value to be resolved and returns the value and/or error
// it was resolved with. If ctx is done first, ctx.Err() is returned and the
// future value stays pending.
func (f *Value) Get(ctx context.Context) (interface{}, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done returns a channel that is closed once the value has been resolved
func (f *Value) Done() <-chan struct{} {
	return f.done
}

// IsSet returns true if the value has been resolved, otherwise false is returned
func (f *Value) IsSet() bool {
	return atomic.LoadInt32(&f.set) == 1
}
