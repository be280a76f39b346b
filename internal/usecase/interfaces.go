package usecase

import (
	"context"

	"github.com/hannkit/lead-gateway/internal/entity"
)

// ChatNotifier delivers a formatted alert to the operators' chat. It is the
// primary channel whenever it is configured.
type ChatNotifier interface {
	SendLeadAlert(ctx context.Context, text string) error
}

// EmailNotifier delivers the lead to the operators' inbox.
type EmailNotifier interface {
	SendLeadNotification(lead *entity.Lead) error
}

// DedupStore recognizes recently-seen idempotency keys. Seen must check and
// record atomically so concurrent retries with one key cannot both pass.
type DedupStore interface {
	Seen(ctx context.Context, key string) (bool, error)
}

type SubmitLeadUseCase struct {
	Dedup DedupStore
	Chat  ChatNotifier  // nil when the chat channel is not configured
	Email EmailNotifier // nil when the email channel is not configured
}

func NewSubmitLeadUseCase(dedup DedupStore, chat ChatNotifier, email EmailNotifier) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Dedup: dedup,
		Chat:  chat,
		Email: email,
	}
}
