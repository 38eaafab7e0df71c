package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/salespad-outreach/internal/entity"
	"github.com/xavierca1/salespad-outreach/internal/usecase"
)

type LeadHandler struct {
	addLeadUC   *usecase.AddLeadUseCase
	replyUC     *usecase.ReplyToLeadUseCase
	detailsUC   *usecase.GetLeadDetailsUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(
	addLeadUC *usecase.AddLeadUseCase,
	replyUC *usecase.ReplyToLeadUseCase,
	detailsUC *usecase.GetLeadDetailsUseCase,
) *LeadHandler {
	return &LeadHandler{
		addLeadUC:   addLeadUC,
		replyUC:     replyUC,
		detailsUC:   detailsUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

type CreateLeadRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type ReplyLeadRequest struct {
	Channel entity.Channel  `json:"channel"`
	Message json.RawMessage `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// HandleCreate captura um novo lead e dispara o outreach inicial
func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, ErrorResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	output, err := h.addLeadUC.Execute(ctx, usecase.AddLeadUseCaseInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		RequestID: r.Header.Get("X-Request-ID"),
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

// HandleReply registra a resposta que o lead mandou em algum canal
func (h *LeadHandler) HandleReply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	leadID := chi.URLParam(r, "id")

	var req ReplyLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	channelMessage, err := entity.UnmarshalChannelMessage(req.Channel, req.Message)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid channel message: " + err.Error()})
		return
	}

	output, err := h.replyUC.Execute(ctx, usecase.ReplyToLeadUseCaseInput{
		LeadID:         leadID,
		ChannelMessage: channelMessage,
		RequestID:      r.Header.Get("X-Request-ID"),
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleGetDetails devolve o lead com mensagens e trilha de eventos
func (h *LeadHandler) HandleGetDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	leadID := chi.URLParam(r, "id")

	output, err := h.detailsUC.Execute(ctx, leadID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func writeUseCaseError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		if domainErr.Code == usecase.CodeLeadNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ErrorResponse{Success: false, Message: domainErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Success: false, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
