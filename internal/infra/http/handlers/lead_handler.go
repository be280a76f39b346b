package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hannkit/lead-gateway/internal/infra/http/middleware"
	"github.com/hannkit/lead-gateway/internal/usecase"
)

const idempotencyHeader = "X-Idempotency-Key"

type LeadHandler struct {
	uc *usecase.SubmitLeadUseCase
}

func NewLeadHandler(uc *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Handle implements POST /api/lead. The method gate lives here rather than in
// per-method routing because the contract fixes the Allow header and the JSON
// body of the 405.
func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.RecordLead("rejected")
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	input.IdempotencyKey = r.Header.Get(idempotencyHeader)

	output, err := h.uc.Execute(r.Context(), input)
	if err != nil {
		status, outcome := statusFor(err)
		middleware.RecordLead(outcome)
		writeError(w, status, err.Error())
		return
	}

	if output.Deduped {
		middleware.RecordLead("deduped")
	} else {
		middleware.RecordLead("delivered")
	}
	writeJSON(w, http.StatusOK, APIResponse{OK: true, Deduped: output.Deduped})
}

func statusFor(err error) (status int, outcome string) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		return http.StatusBadRequest, "rejected"
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) && techErr.Code != usecase.CodeNotConfigured {
		return http.StatusBadGateway, "failed"
	}

	return http.StatusInternalServerError, "failed"
}
