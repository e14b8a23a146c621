package node

import "github.com/KirkDiggler/roshambo/internal/models"

type GetConfigInput struct {
}

type SetupConfigInput struct {
	Config *models.NodeConfig
}

type GetMirrorInput struct {
}

type SaveMirrorInput struct {
	Mirror *models.Mirror

	// DedupKey, when set, is claimed in the same transaction as the write;
	// a claimed key fails the save with ErrAlreadyApplied
	DedupKey string
}
