package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/internal/service/reading"
)

type readingService interface {
	DrawPreview(ctx context.Context, input reading.DrawInput) (*reading.DrawResult, error)
	CreateReading(ctx context.Context, input reading.CreateReadingInput) (*domain.Reading, error)
	GetReading(ctx context.Context, id uuid.UUID) (*domain.Reading, error)
	ListReadings(ctx context.Context, input reading.ListReadingsInput) ([]domain.Reading, int, error)
	UpdateNote(ctx context.Context, input reading.UpdateNoteInput) (*domain.Reading, error)
	DeleteReading(ctx context.Context, id uuid.UUID) error
}

// ReadingHandler serves draw previews and the reading journal.
type ReadingHandler struct {
	svc readingService
	log *slog.Logger
}

// NewReadingHandler creates a ReadingHandler.
func NewReadingHandler(svc readingService, logger *slog.Logger) *ReadingHandler {
	return &ReadingHandler{svc: svc, log: logger.With("handler", "readings")}
}

type drawRequest struct {
	Type  *string `json:"type"`
	Count int     `json:"count"`
	Pool  string  `json:"pool"`
}

type createReadingRequest struct {
	Type      string  `json:"type"`
	Question  *string `json:"question"`
	Style     *string `json:"style"`
	Pool      string  `json:"pool"`
	Interpret *bool   `json:"interpret"`
}

type updateNoteRequest struct {
	Note *string `json:"note"`
}

// Draw handles POST /api/draws. Nothing is persisted.
func (h *ReadingHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req drawRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := reading.DrawInput{Count: req.Count, Pool: domain.DeckPool(req.Pool)}
	if req.Type != nil {
		t := domain.ReadingType(*req.Type)
		input.Type = &t
	}

	res, err := h.svc.DrawPreview(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDrawResponse(res))
}

// Create handles POST /api/readings.
func (h *ReadingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReadingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := reading.CreateReadingInput{
		Type:      domain.ReadingType(req.Type),
		Question:  req.Question,
		Pool:      domain.DeckPool(req.Pool),
		Interpret: req.Interpret == nil || *req.Interpret,
	}
	if req.Style != nil {
		s := domain.InterpretationStyle(*req.Style)
		input.Style = &s
	}

	rd, err := h.svc.CreateReading(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReadingResponse(rd))
}

// List handles GET /api/readings?type=three-card&limit=20&offset=0.
func (h *ReadingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var input reading.ListReadingsInput

	if v := q.Get("type"); v != "" {
		t := domain.ReadingType(v)
		input.Type = &t
	}

	var fieldErrs []domain.FieldError
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}
	if len(fieldErrs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fieldErrs))
		return
	}

	items, total, err := h.svc.ListReadings(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := readingListResponse{
		Items:  make([]readingResponse, len(items)),
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	for i := range items {
		resp.Items[i] = toReadingResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/readings/{id}.
func (h *ReadingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := readingID(w, r, h.log)
	if !ok {
		return
	}

	rd, err := h.svc.GetReading(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReadingResponse(rd))
}

// UpdateNote handles PATCH /api/readings/{id}/note.
func (h *ReadingHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := readingID(w, r, h.log)
	if !ok {
		return
	}

	var req updateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rd, err := h.svc.UpdateNote(r.Context(), reading.UpdateNoteInput{ReadingID: id, Note: req.Note})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReadingResponse(rd))
}

// Delete handles DELETE /api/readings/{id}.
func (h *ReadingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := readingID(w, r, h.log)
	if !ok {
		return
	}

	if err := h.svc.DeleteReading(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func readingID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
