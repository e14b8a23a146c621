// Package keys names every redis key a node owns. All repositories of one
// node share a Space so a node can clear its coordinator state in one
// transaction and several nodes can share a redis instance.
package keys

const (
	roomKeyPrefix      = "room:"
	roomsIndexKey      = "rooms"
	availableRoomsKey  = "rooms:available"
	statsKeyPrefix     = "stats:"
	statsIndexKey      = "stats_index"
	leaderboardKey     = "leaderboard"
	playerNamesKey     = "player_names"
	processedKeyPrefix = "processed:"
	nodeConfigKey      = "node_config"
	mirrorKey          = "mirror"
	mirrorSeenPrefix   = "mirror:seen:"
	inboxSeenPrefix    = "inbox:seen:"
)

// Space is the key prefix of one node, e.g. "roshambo:alpha:"
type Space string

func (s Space) Room(roomID string) string { return string(s) + roomKeyPrefix + roomID }

func (s Space) RoomsIndex() string { return string(s) + roomsIndexKey }

// AvailableRooms is a sorted set of discoverable room ids scored by creation time
func (s Space) AvailableRooms() string { return string(s) + availableRoomsKey }

func (s Space) Stats(nodeID string) string { return string(s) + statsKeyPrefix + nodeID }

func (s Space) StatsIndex() string { return string(s) + statsIndexKey }

func (s Space) Leaderboard() string { return string(s) + leaderboardKey }

// PlayerNames is the directory hash of node id to display name
func (s Space) PlayerNames() string { return string(s) + playerNamesKey }

// Processed marks a completion already applied to the coordinator's stats
func (s Space) Processed(dedupKey string) string { return string(s) + processedKeyPrefix + dedupKey }

func (s Space) NodeConfig() string { return string(s) + nodeConfigKey }

func (s Space) Mirror() string { return string(s) + mirrorKey }

// MirrorSeen marks a completion already folded into the local mirror
func (s Space) MirrorSeen(dedupKey string) string { return string(s) + mirrorSeenPrefix + dedupKey }

func (s Space) InboxSeen(envelopeID string) string { return string(s) + inboxSeenPrefix + envelopeID }
