package models

// Role is fixed once a node is configured
type Role string

const (
	// RoleUnconfigured is the role of a node that has not run SetupLeaderboard
	RoleUnconfigured Role = ""

	// RoleCoordinator hosts authoritative rooms, stats and the leaderboard
	RoleCoordinator Role = "coordinator"

	// RoleParticipant hosts only its own mirror
	RoleParticipant Role = "participant"
)

// NodeConfig is the immutable configuration of a node
type NodeConfig struct {
	// NodeID is this node's identity
	NodeID string `json:"node_id"`

	// CoordinatorID is the identity of the coordinator, empty until configured
	CoordinatorID string `json:"coordinator_id,omitempty"`
}

// Configured reports whether a coordinator has been chosen
func (c NodeConfig) Configured() bool {
	return c.CoordinatorID != ""
}

// Role derives the node's role from its configuration
func (c NodeConfig) Role() Role {
	switch {
	case !c.Configured():
		return RoleUnconfigured
	case c.NodeID == c.CoordinatorID:
		return RoleCoordinator
	}
	return RoleParticipant
}

// IsCoordinator reports whether this node hosts authoritative state
func (c NodeConfig) IsCoordinator() bool {
	return c.Role() == RoleCoordinator
}
