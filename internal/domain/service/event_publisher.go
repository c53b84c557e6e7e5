package service

import (
	"context"
)

// FlashDealEvent represents a newly posted flash deal to be fanned out by the
// alert worker.
type FlashDealEvent struct {
	RequestID     string   `json:"request_id,omitempty"` // For distributed tracing
	FlashDealID   string   `json:"flash_deal_id"`
	VendorID      string   `json:"vendor_id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	OriginalPrice float64  `json:"original_price"`
	FlashPrice    float64  `json:"flash_price"`
	ExpiresAt     string   `json:"expires_at"` // RFC 3339
	CandidateIDs  []string `json:"candidate_ids"` // Pre-filtered candidate user IDs
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishFlashDealEvent publishes a flash-deal event for async processing
	PublishFlashDealEvent(ctx context.Context, event *FlashDealEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
