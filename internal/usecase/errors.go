package usecase

// Stable error codes surfaced in responses and logs.
const (
	CodeEmptyPayload  = "EMPTY_PAYLOAD"
	CodeInvalidEmail  = "INVALID_EMAIL"
	CodeNotConfigured = "NOT_CONFIGURED"

	// 502-class delivery codes. "Unreachable" means the transport failed,
	// "rejected" means the upstream answered and refused the message.
	CodeTelegramUnreachable = "TELEGRAM_UNREACHABLE"
	CodeTelegramRejected    = "TELEGRAM_REJECTED"
	CodeEmailFailed         = "EMAIL_FAILED"
)

// DomainError is a client-caused failure (4xx class). Never retried, never
// triggers an outbound call.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is a server or upstream failure (5xx class). The caller may
// resubmit; the idempotency token makes the retry safe.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
