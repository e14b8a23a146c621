// Package memory is an in-process transport. Every node of a test or a
// single-process demo gets an Endpoint on one shared Bus.
package memory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/transport"
)

// Bus routes envelopes between the endpoints registered on it
type Bus struct {
	mu        sync.Mutex
	endpoints map[string]*Endpoint
}

// NewBus returns an empty bus
func NewBus() *Bus {
	return &Bus{endpoints: make(map[string]*Endpoint)}
}

// Endpoint registers nodeID on the bus. Calling it again for the same node
// returns the existing endpoint.
func (b *Bus) Endpoint(nodeID string) (*Endpoint, error) {
	if nodeID == "" {
		return nil, transport.ErrEmptyNodeID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if e, ok := b.endpoints[nodeID]; ok {
		return e, nil
	}

	e := &Endpoint{
		bus:    b,
		nodeID: nodeID,
		notify: make(chan struct{}, 1),
	}
	b.endpoints[nodeID] = e
	return e, nil
}

func (b *Bus) lookup(nodeID string) (*Endpoint, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.endpoints[nodeID]
	return e, ok
}

func (b *Bus) remove(nodeID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.endpoints, nodeID)
}

// Endpoint is one node's unbounded FIFO inbox on a Bus. Sends never block,
// so a node may send to itself while handling an envelope.
type Endpoint struct {
	bus    *Bus
	nodeID string

	mu     sync.Mutex
	queue  []*models.Envelope
	closed bool
	notify chan struct{}
}

var _ transport.Transport = (*Endpoint)(nil)

// Send queues env on the destination endpoint, or bounces it back here when
// the destination is not on the bus
func (e *Endpoint) Send(_ context.Context, env *models.Envelope) error {
	if err := transport.Validate(env); err != nil {
		return err
	}

	if dest, ok := e.bus.lookup(env.To); ok && dest.push(env) {
		return nil
	}

	if !e.push(env.Bounce()) {
		return transport.ErrClosed
	}
	return nil
}

// push stores a copy so sender and receiver never share an envelope
func (e *Endpoint) push(env *models.Envelope) bool {
	cp := *env

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}
	e.queue = append(e.queue, &cp)
	e.mu.Unlock()

	select {
	case e.notify <- struct{}{}:
	default:
	}
	return true
}

func (e *Endpoint) pop() (*models.Envelope, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.queue) == 0 {
		return nil, e.closed
	}

	env := e.queue[0]
	e.queue[0] = nil
	e.queue = e.queue[1:]
	return env, false
}

// Receive hands queued envelopes to handler until ctx is done or the
// endpoint is closed
func (e *Endpoint) Receive(ctx context.Context, handler transport.Handler) error {
	for {
		env, closed := e.pop()
		if closed {
			return nil
		}
		if env != nil {
			handler(ctx, env)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.notify:
		}
	}
}

// Drain hands every currently queued envelope to handler, including those
// queued while draining, and returns how many were handled
func (e *Endpoint) Drain(ctx context.Context, handler transport.Handler) int {
	handled := 0
	for {
		env, _ := e.pop()
		if env == nil {
			return handled
		}
		handler(ctx, env)
		handled++
	}
}

// Pending returns the number of queued envelopes
func (e *Endpoint) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.queue)
}

// Close leaves the bus; later sends to this node bounce
func (e *Endpoint) Close() error {
	e.bus.remove(e.nodeID)

	e.mu.Lock()
	e.closed = true
	e.queue = nil
	e.mu.Unlock()

	select {
	case e.notify <- struct{}{}:
	default:
	}
	return nil
}
