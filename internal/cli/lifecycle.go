// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package cli provides helpers shared by the command-line layer.
package cli

import (
	"context"
	"sync"
	"time"
)

// shutdownTimeout bounds graceful shutdown once the run context ends.
const shutdownTimeout = 10 * time.Second

// Lifecycle represents a long-running component: the API server or the
// audit retention sweeper.
type Lifecycle interface {
	// Start starts the component without blocking.
	Start()
	// Stop gracefully shuts down the component.
	Stop(ctx context.Context)
}

// Group composes Lifecycle components. Start runs them in registration
// order; Stop runs them concurrently and waits for all to finish, so a
// slow sweeper drain cannot stall the server shutdown or vice versa.
type Group struct {
	components []Lifecycle
}

// NewGroup creates a Group over the given components.
func NewGroup(
	components ...Lifecycle,
) *Group {
	return &Group{components: components}
}

// Start starts every component in order.
func (g *Group) Start() {
	for _, c := range g.components {
		c.Start()
	}
}

// Stop stops every component concurrently, bounded by ctx.
func (g *Group) Stop(
	ctx context.Context,
) {
	var wg sync.WaitGroup
	for _, c := range g.components {
		wg.Add(1)
		go func(lc Lifecycle) {
			defer wg.Done()
			lc.Stop(ctx)
		}(c)
	}
	wg.Wait()
}

// RunServer blocks until ctx is cancelled, then shuts down the server
// with a timeout and runs cleanup functions.
func RunServer(
	ctx context.Context,
	server Lifecycle,
	cleanupFns ...func(),
) {
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		shutdownTimeout,
	)
	defer cancel()

	server.Stop(shutdownCtx)

	for _, fn := range cleanupFns {
		fn()
	}
}
