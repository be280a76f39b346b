package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hannkit/lead-gateway/internal/entity"
	"github.com/hannkit/lead-gateway/internal/infra/http/middleware"
	"github.com/hannkit/lead-gateway/internal/infra/integration/telegram"
)

const (
	defaultSource = "web"
)

// Execute runs the full intake pipeline: dedup, normalize, validate, check
// channel configuration, compose and dispatch. All failure paths come back as
// *DomainError or *TechnicalError so the handler can map them to a status.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {

	if key := strings.TrimSpace(input.IdempotencyKey); key != "" && uc.Dedup != nil {
		seen, err := uc.Dedup.Seen(ctx, key)
		if err != nil {
			log.Printf("⚠️ Lead: dedup check failed, delivering anyway: %v", err)
		} else if seen {
			log.Printf("🔁 Lead: duplicate suppressed (key=%s)", key)
			return &SubmitLeadOutput{OK: true, Deduped: true}, nil
		}
	}

	lead := normalize(input)

	if errs := ValidateLead(lead); len(errs) > 0 {
		return nil, domainErrorFor(errs[0])
	}

	if uc.Chat == nil && uc.Email == nil {
		log.Printf("❌ Lead: no notification channel configured")
		return nil, &TechnicalError{
			Code:    CodeNotConfigured,
			Message: "Server is not configured",
		}
	}

	text := ComposeChatMessage(lead)

	// Channels are independent: each gets its own goroutine and its own
	// outcome, so one hanging or failing never blocks the other.
	var wg sync.WaitGroup
	var chatErr, mailErr error

	if uc.Chat != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chatErr = uc.Chat.SendLeadAlert(ctx, text)
		}()
	}

	if uc.Email != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mailErr = uc.Email.SendLeadNotification(lead)
		}()
	}

	wg.Wait()

	if uc.Chat != nil {
		middleware.RecordNotification("telegram", outcomeLabel(chatErr))
		if chatErr != nil {
			middleware.RecordIntegrationError("telegram")
		}
	}
	if uc.Email != nil {
		middleware.RecordNotification("email", outcomeLabel(mailErr))
		if mailErr != nil {
			middleware.RecordIntegrationError("email")
		}
	}

	// Chat is primary when configured; email alone carries the submission
	// only when chat is disabled. A failing secondary channel is logged and
	// does not fail the request.
	if uc.Chat != nil {
		if mailErr != nil {
			log.Printf("⚠️ Lead %s: email channel failed: %v", lead.ID, mailErr)
		}
		if chatErr != nil {
			var apiErr *telegram.APIError
			if errors.As(chatErr, &apiErr) {
				return nil, &TechnicalError{Code: CodeTelegramRejected, Message: "Telegram send failed"}
			}
			return nil, &TechnicalError{Code: CodeTelegramUnreachable, Message: "Telegram unreachable"}
		}
		log.Printf("✅ Lead %s: delivered (source=%s)", lead.ID, lead.Source)
		return &SubmitLeadOutput{OK: true, LeadID: lead.ID}, nil
	}

	if mailErr != nil {
		return nil, &TechnicalError{Code: CodeEmailFailed, Message: "Email send failed"}
	}

	log.Printf("✅ Lead %s: delivered via email (source=%s)", lead.ID, lead.Source)
	return &SubmitLeadOutput{OK: true, LeadID: lead.ID}, nil
}

func normalize(input SubmitLeadInput) *entity.Lead {
	lead := &entity.Lead{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Lang:       entity.ParseLocale(input.Lang),
		Source:     strings.TrimSpace(input.Source),
		Note:       strings.TrimSpace(input.Note),
		ReceivedAt: time.Now(),
	}

	if lead.Source == "" {
		lead.Source = defaultSource
	}

	return lead
}

func outcomeLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "sent"
}

func domainErrorFor(v ValidationError) *DomainError {
	if v.Field == "email" {
		return &DomainError{Code: CodeInvalidEmail, Message: "Invalid email"}
	}
	return &DomainError{Code: CodeEmptyPayload, Message: "Empty payload"}
}
