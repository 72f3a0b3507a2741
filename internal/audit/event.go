package audit

import "time"

// Action names a state change worth keeping a trail of.
type Action string

const (
	ActionZoneCreated     Action = "zone_created"
	ActionZoneUpdated     Action = "zone_updated"
	ActionZoneDeleted     Action = "zone_deleted"
	ActionCreatureCreated Action = "creature_created"
	ActionCreatureUpdated Action = "creature_updated"
	ActionCreatureDeleted Action = "creature_deleted"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject"`
	Name      string    `json:"name,omitempty"`
	ZoneID    string    `json:"zone_id,omitempty"`
	KeeperID  string    `json:"keeper_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
