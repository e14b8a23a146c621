package models

// Player is a directory entry mapping a node identity to a display name
type Player struct {
	// NodeID is the identity of the node the player plays from
	NodeID string `json:"node_id"`

	// Name is the display name, last writer wins
	Name string `json:"name"`
}
