package player

import "github.com/KirkDiggler/roshambo/internal/models"

// SetNameInput contains parameters for storing a display name
type SetNameInput struct {
	NodeID string
	Name   string
}

// GetNameInput contains parameters for retrieving a display name
type GetNameInput struct {
	NodeID string
}

// GetNamesInput contains parameters for a batch name lookup
type GetNamesInput struct {
	NodeIDs []string
}

// GetNamesOutput maps node id to display name
type GetNamesOutput struct {
	Names map[string]string
}

// ListPlayersInput contains parameters for listing the directory
type ListPlayersInput struct {
}

// ListPlayersOutput contains every named node ordered by node id
type ListPlayersOutput struct {
	Players []*models.Player
}
