package service

import (
	"context"
	"time"
)

// AccountEventRegistered is published once an account has been stored.
const AccountEventRegistered = "account.registered"

// AccountEvent describes a change to an account for downstream consumers such as the mailer.
type AccountEvent struct {
	RequestID        string    `json:"request_id,omitempty"` // For distributed tracing
	EventType        string    `json:"event_type"`
	AccountID        string    `json:"account_id"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	MarketingConsent bool      `json:"marketing_consent"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
