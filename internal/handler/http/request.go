package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/middleware"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
)

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService holiday.RequestService
}

func NewRequestHandler(requestService holiday.RequestService) RequestHandler {
	return &RequestHandlerImpl{requestService: requestService}
}

// Create implements RequestHandler.
func (h *RequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := middleware.SnapshotFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	var req holiday.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = snapshot.User.ID

	created, err := h.requestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request created successfully", created)
}

// My implements RequestHandler.
func (h *RequestHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := middleware.SnapshotFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	requests, err := h.requestService.MyRequests(r.Context(), snapshot.User.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// All implements RequestHandler. Accepts status, category and search
// query filters, combined conjunctively.
func (h *RequestHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	filter := holiday.RequestFilter{
		Status:   queryOrAll(r, "status"),
		Category: queryOrAll(r, "category"),
		Search:   r.URL.Query().Get("search"),
	}

	requests, err := h.requestService.AllRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Pending implements RequestHandler.
func (h *RequestHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.PendingRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements RequestHandler.
func (h *RequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.requestService.Approve)
}

// Reject implements RequestHandler.
func (h *RequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.requestService.Reject)
}

func (h *RequestHandlerImpl) decide(
	w http.ResponseWriter,
	r *http.Request,
	decideFn func(ctx context.Context, req holiday.DecideRequestRequest) (holiday.Request, error),
) {
	snapshot, ok := middleware.SnapshotFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var hrComment *string
	if comment := r.URL.Query().Get("hr_comment"); comment != "" {
		hrComment = &comment
	}

	decided, err := decideFn(r.Context(), holiday.DecideRequestRequest{
		RequestID: requestID,
		ActorID:   snapshot.User.ID,
		HRComment: hrComment,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, decided)
}

// queryOrAll returns the query value, defaulting to the wildcard.
func queryOrAll(r *http.Request, key string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return holiday.FilterAll
}
