package messaging

import (
	"context"
	"time"

	"github.com/gemveer/inventory/internal/domain"
)

// TransferEvent is published after a custody transfer is durably recorded
type TransferEvent struct {
	TransactionNo string           `json:"transaction_no"`
	PacketNo      string           `json:"packet_no"`
	FromID        string           `json:"from_id"`
	FromKind      domain.ActorKind `json:"from_kind"`
	ToID          string           `json:"to_id"`
	ToKind        domain.ActorKind `json:"to_kind"`
	RecordedAt    time.Time        `json:"recorded_at"`
}

//go:generate mockgen -source=messaging.go -destination=../mocks/messaging_publisher.go -package=mocks -mock_names=Publisher=MockPublisher

// Publisher defines the interface for publishing custody events
type Publisher interface {
	// PublishTransfer publishes a recorded custody transfer
	PublishTransfer(ctx context.Context, event *TransferEvent) error
	// Close closes the underlying connection
	Close()
}

// noopPublisher discards all events. Used when no broker is configured.
type noopPublisher struct{}

// NewNoopPublisher creates a publisher that discards all events
func NewNoopPublisher() Publisher {
	return &noopPublisher{}
}

func (noopPublisher) PublishTransfer(ctx context.Context, event *TransferEvent) error {
	return nil
}

func (noopPublisher) Close() {}
