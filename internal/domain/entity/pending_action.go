// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"
)

// ActionType enumerates the mutating user actions that may be deferred
// while the client is offline.
type ActionType string

const (
	// ActionFavorite records a favorite/unfavorite toggle for a vendor.
	ActionFavorite ActionType = "favorite"
	// ActionRedeem records a flash-deal redemption.
	ActionRedeem ActionType = "redeem"
	// ActionReview records a review submission.
	ActionReview ActionType = "review"
)

// Valid reports whether the action type is one of the known kinds.
func (t ActionType) Valid() bool {
	switch t {
	case ActionFavorite, ActionRedeem, ActionReview:
		return true
	default:
		return false
	}
}

// PendingAction is a deferred, durable record of a mutation not yet
// confirmed by the remote system. The payload is opaque to the queue and
// drain logic.
type PendingAction struct {
	ID         string          `json:"id"`          // Opaque identifier generated at enqueue time.
	Type       ActionType      `json:"type"`        // The kind of deferred mutation.
	Payload    json.RawMessage `json:"payload"`     // Action payload, interpreted only by the effector.
	CreatedAt  time.Time       `json:"created_at"`  // Timestamp of when the action was recorded.
	RetryCount int             `json:"retry_count"` // Number of failed delivery attempts so far.
}
