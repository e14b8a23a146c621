package messaging

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/common/clock"
	"github.com/KirkDiggler/roshambo/internal/models"
	inboxRepo "github.com/KirkDiggler/roshambo/internal/repositories/inbox"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	"github.com/KirkDiggler/roshambo/internal/services/directory"
	"github.com/KirkDiggler/roshambo/internal/services/game"
	"github.com/KirkDiggler/roshambo/internal/services/leaderboard"
	"github.com/KirkDiggler/roshambo/internal/transport"
)

// Outcome describes what Handle did with an envelope
type Outcome string

const (
	// OutcomeApplied means the message took effect
	OutcomeApplied Outcome = "applied"

	// OutcomeBounced means the envelope was a delivery failure notice
	OutcomeBounced Outcome = "bounced"

	// OutcomeDuplicate means the envelope or its completion was seen before
	OutcomeDuplicate Outcome = "duplicate"

	// OutcomeIgnored means the message was not meant for this node's role
	OutcomeIgnored Outcome = "ignored"

	// OutcomeRejected means the message did not fit the current state
	OutcomeRejected Outcome = "rejected"

	// OutcomeDropped means the envelope could not be decoded
	OutcomeDropped Outcome = "dropped"
)

// Config holds configuration for the message router
type Config struct {
	Game        game.Service
	Leaderboard leaderboard.Service
	Directory   directory.Service
	NodeRepo    nodeRepo.Repository
	Inbox       inboxRepo.Repository
	Poster      transport.Poster
	Clock       clock.Clock
	Logger      *zap.Logger
}

// HandleInput contains parameters for applying one envelope
type HandleInput struct {
	// Node is the local configuration, loaded once by the caller
	Node     models.NodeConfig
	Envelope *models.Envelope
}

// HandleOutput contains the result of applying one envelope
type HandleOutput struct {
	Outcome Outcome

	// Sent is the number of messages emitted in response
	Sent int
}
