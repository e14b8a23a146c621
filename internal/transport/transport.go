// Package transport moves envelopes between nodes. Delivery is asynchronous
// and fire-and-forget; a send that cannot reach its destination comes back
// to the sender as a bounced copy.
package transport

//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/KirkDiggler/roshambo/internal/transport Sender
//go:generate mockgen -package=mocks -destination=mocks/mock_poster.go github.com/KirkDiggler/roshambo/internal/transport Poster

import (
	"context"

	"github.com/KirkDiggler/roshambo/internal/models"
)

// Sender queues an envelope for its destination node
type Sender interface {
	Send(ctx context.Context, env *models.Envelope) error
}

// Poster sends a message from the local node, see Outbox
type Poster interface {
	Post(ctx context.Context, to string, msg models.Message) error
}

// Handler is called once per inbound envelope, in arrival order
type Handler func(ctx context.Context, env *models.Envelope)

// Transport is a node's endpoint on the network
type Transport interface {
	Sender

	// Receive delivers inbound envelopes to handler until ctx is done
	Receive(ctx context.Context, handler Handler) error

	Close() error
}
