package directory

import (
	"github.com/KirkDiggler/roshambo/internal/models"
	playerRepo "github.com/KirkDiggler/roshambo/internal/repositories/player"
)

// DirectoryError represents an error in the directory service
type DirectoryError string

func (e DirectoryError) Error() string { return string(e) }

const (
	ErrNilConfig     DirectoryError = "config cannot be nil"
	ErrNilNodeRepo   DirectoryError = "node repository cannot be nil"
	ErrNilPlayerRepo DirectoryError = "player repository cannot be nil"
	ErrNilPoster     DirectoryError = "poster cannot be nil"
)

const (
	ErrEmptyName   = models.InvalidInputError("player name cannot be empty")
	ErrEmptyNodeID = models.InvalidInputError("node id cannot be empty")

	ErrPlayerNotFound = playerRepo.ErrPlayerNotFound
)
