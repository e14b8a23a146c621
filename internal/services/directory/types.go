package directory

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/models"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	playerRepo "github.com/KirkDiggler/roshambo/internal/repositories/player"
	"github.com/KirkDiggler/roshambo/internal/transport"
)

// Config holds configuration for the directory service
type Config struct {
	NodeRepo   nodeRepo.Repository
	PlayerRepo playerRepo.Repository

	// Poster sends UpdatePlayerName from participants
	Poster transport.Poster

	Logger *zap.Logger
}

// SetNameInput contains parameters for naming the local node
type SetNameInput struct {
	Node models.NodeConfig
	Name string
}

// SetNameOutput reports where the name went
type SetNameOutput struct {
	// Directory is true when the coordinator's directory was written or
	// an update was sent to it
	Directory bool
}

// RecordNameInput contains parameters for writing a directory entry
type RecordNameInput struct {
	Node       models.NodeConfig
	PlayerNode string
	Name       string
}

// GetNameInput contains parameters for a name lookup
type GetNameInput struct {
	NodeID string
}

// GetNameOutput contains the display name
type GetNameOutput struct {
	Name string
}

// ListNamesInput contains parameters for listing the directory
type ListNamesInput struct {
}

// ListNamesOutput contains every named node ordered by node id
type ListNamesOutput struct {
	Players []*models.Player
}
