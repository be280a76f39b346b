package usecase

type SubmitLeadInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Lang   string `json:"lang"`
	Source string `json:"source"`
	Note   string `json:"note"`

	// Supplied out-of-band via the X-Idempotency-Key header, not the body.
	IdempotencyKey string `json:"-"`
}

type SubmitLeadOutput struct {
	OK      bool   `json:"ok"`
	Deduped bool   `json:"deduped,omitempty"`
	LeadID  string `json:"-"` // correlation id for logs, not exposed
}
