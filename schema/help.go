package schema

import (
	"fmt"
	"strings"
	"time"
)

const (
	HelpRequestCollection    = "help_requests"
	HelpTransitionCollection = "help_transitions"
	CounterCollection        = "counters"

	// HelpSchemaVersion is the version of the persisted help request shape.
	// Bump it whenever a field is added to HelpRequest.
	HelpSchemaVersion = 1
)

type HelpStatus string

const (
	HelpPending    HelpStatus = "Pending"
	HelpInProgress HelpStatus = "InProgress"
	HelpResolved   HelpStatus = "Resolved"
	HelpCancelled  HelpStatus = "Cancelled"
)

// HelpStatuses lists every status in lifecycle order
var HelpStatuses = []HelpStatus{
	HelpPending,
	HelpInProgress,
	HelpResolved,
	HelpCancelled,
}

// ParseHelpStatus converts a status label into a HelpStatus. Besides the wire
// names it also accepts the "In Progress" label shown on dashboards.
func ParseHelpStatus(s string) (HelpStatus, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(s), ""))
	for _, status := range HelpStatuses {
		if strings.ToLower(string(status)) == normalized {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown help status: %q", s)
}

// Terminal reports whether no further transition is allowed out of the status
func (s HelpStatus) Terminal() bool {
	return s == HelpResolved || s == HelpCancelled
}

// HelpRequest is a single crisis-assistance case filed by a person in crisis
type HelpRequest struct {
	ID            string     `json:"id" gorm:"type:uuid;primary_key" bson:"_id"`
	Seq           int64      `json:"-" gorm:"AUTO_INCREMENT;index" bson:"seq"`
	RequesterID   string     `json:"requesterId" gorm:"index;not null" bson:"requester_id"`
	Type          string     `json:"type" bson:"type"`
	Description   string     `json:"description" gorm:"not null" bson:"description"`
	Location      string     `json:"location" gorm:"not null" bson:"location"`
	Urgency       int        `json:"urgency" gorm:"not null" bson:"urgency"`
	Status        HelpStatus `json:"status" gorm:"index;not null" bson:"status"`
	SchemaVersion int        `json:"schemaVersion" gorm:"not null;default:1" bson:"schema_version"`
	CreatedAt     time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updated_at"`
}

// HelpTransition is an audit entry written for every accepted status change
type HelpTransition struct {
	ID        string     `json:"id" gorm:"type:uuid;primary_key" bson:"_id"`
	Seq       int64      `json:"-" gorm:"AUTO_INCREMENT;index" bson:"seq"`
	HelpID    string     `json:"helpId" gorm:"type:uuid;index;not null" bson:"help_id"`
	From      HelpStatus `json:"from" gorm:"not null" bson:"from"`
	To        HelpStatus `json:"to" gorm:"not null" bson:"to"`
	ActorID   string     `json:"actorId" bson:"actor_id"`
	ActorRole Role       `json:"actorRole" gorm:"not null" bson:"actor_role"`
	CreatedAt time.Time  `json:"createdAt" bson:"created_at"`
}
