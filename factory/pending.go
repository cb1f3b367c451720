// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"context"
	"sync"
)

// queue is the completion queue that resolver callbacks post
// continuations to from any goroutine.
type queue struct {
	mu     sync.Mutex
	items  []func()
	notify chan struct{}
}

func (q *queue) post(fun func()) {
	q.mu.Lock()
	q.items = append(q.items, fun)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

func (q *queue) take() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// post queues fun to run on the owning goroutine. It is safe to call
// from any goroutine.
func (f *Factory) post(fun func()) {
	f.queue.post(fun)
}

// Tick runs every queued completion, including any queued while
// running, and returns how many ran. The host calls it once per frame.
func (f *Factory) Tick() int {
	n := 0
	for {
		items := f.queue.take()
		if len(items) == 0 {
			return n
		}
		for _, fun := range items {
			fun()
			n++
		}
	}
}

// pump runs completions as they arrive until done returns true or
// ctx ends.
func (f *Factory) pump(ctx context.Context, done func() bool) error {
	for {
		f.Tick()
		if done() {
			return nil
		}
		select {
		case <-f.queue.notify:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Pending is the result of an asynchronous creation call. It is done
// once its load has completed and the object has been inserted, or
// the load has failed. Font loads that fail never complete.
type Pending[T any] struct {
	f     *Factory
	path  string
	done  bool
	value T
	err   error
	hooks []func()
}

func newPending[T any](f *Factory, path string) *Pending[T] {
	return &Pending[T]{f: f, path: path}
}

// Path returns the asset path that was requested.
func (p *Pending[T]) Path() string {
	return p.path
}

// Done returns whether the creation has completed.
func (p *Pending[T]) Done() bool {
	return p.done
}

// Result returns the created object and error; both are zero until Done.
func (p *Pending[T]) Result() (T, error) {
	return p.value, p.err
}

// Wait runs factory completions until this one is done or ctx ends,
// and returns the result. It must be called on the owning goroutine.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	if err := p.f.pump(ctx, p.Done); err != nil {
		var zero T
		return zero, err
	}
	return p.value, p.err
}

func (p *Pending[T]) resolve(v T, err error) {
	if p.done {
		return
	}
	p.done = true
	p.value = v
	p.err = err
	for _, fun := range p.hooks {
		fun()
	}
	p.hooks = nil
}

// whenDone calls fun once p is done, or now if it already is.
func (p *Pending[T]) whenDone(fun func()) {
	if p.done {
		fun()
		return
	}
	p.hooks = append(p.hooks, fun)
}
