package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthHandler struct {
	ChatConfigured  bool
	EmailConfigured bool
	DedupBackend    string
	StartTime       time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(chatConfigured, emailConfigured bool, dedupBackend string) *HealthHandler {
	return &HealthHandler{
		ChatConfigured:  chatConfigured,
		EmailConfigured: emailConfigured,
		DedupBackend:    dedupBackend,
		StartTime:       time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.ChatConfigured {
		deps["telegram"] = "configured"
	} else {
		deps["telegram"] = "not configured"
	}

	if h.EmailConfigured {
		deps["email"] = "configured"
	} else {
		deps["email"] = "not configured"
	}

	deps["dedup"] = h.DedupBackend

	// With no delivery channel at all, every submission will 500. Surface
	// that here so a bad deployment is visible before the first lead is lost.
	status := "healthy"
	if !h.ChatConfigured && !h.EmailConfigured {
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(response)
}
