package models

import "time"

// Mirror is a node's local, non-authoritative view of its own participation.
// It is only updated by folding confirmation and result messages.
type Mirror struct {
	// MyRooms are the rooms the local node currently participates in
	MyRooms []string `json:"my_rooms"`

	// MyCurrentRoom is the active room, empty when none
	MyCurrentRoom string `json:"my_current_room,omitempty"`

	// MyStats is the local copy of this node's stats
	MyStats *PlayerStats `json:"my_stats,omitempty"`

	// MyPlayerName is the name set with SetPlayerName
	MyPlayerName string `json:"my_player_name,omitempty"`
}

// NewMirror returns an empty mirror
func NewMirror() *Mirror {
	return &Mirror{MyRooms: []string{}}
}

// JoinedRoom folds a successful join: the room is tracked and becomes current
func (m *Mirror) JoinedRoom(roomID string) {
	if !m.InRoom(roomID) {
		m.MyRooms = append(m.MyRooms, roomID)
	}
	m.MyCurrentRoom = roomID
}

// FinishedRoom folds a game completion for nodeID into the local stats and
// drops the room from the tracked set
func (m *Mirror) FinishedRoom(nodeID, roomID string, won bool, at time.Time) {
	if m.MyStats == nil {
		m.MyStats = NewPlayerStats(nodeID)
	}
	m.MyStats.AddGame(won, at)

	rooms := m.MyRooms[:0]
	for _, id := range m.MyRooms {
		if id != roomID {
			rooms = append(rooms, id)
		}
	}
	m.MyRooms = rooms

	if m.MyCurrentRoom == roomID {
		m.MyCurrentRoom = ""
	}
}

// InRoom reports whether roomID is tracked
func (m *Mirror) InRoom(roomID string) bool {
	for _, id := range m.MyRooms {
		if id == roomID {
			return true
		}
	}
	return false
}
