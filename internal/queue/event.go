// Package queue defines message payloads exchanged over the message
// broker and the background consumer that folds them into the
// interaction log.
package queue

// InterestQueueName is the durable queue carrying interest events.
const InterestQueueName = "interest.recorded"

// InterestRecordedEvent is published when an end user expresses
// interest in a listing. It carries enough for downstream consumers
// to log or notify without reading the listing store.
type InterestRecordedEvent struct {
	InteractionID string `json:"interaction_id"`
	ListingID     string `json:"pg_id"`
	ListingName   string `json:"pg_name"`
	UserName      string `json:"user_name"`
	UserPhone     string `json:"user_phone"`
	UserEmail     string `json:"user_email"`
	Message       string `json:"message,omitempty"`
	LikedAt       string `json:"liked_at"` // RFC3339 UTC
}
