package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-bank/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-bank/pkg/http/errors"
)

// HTTPHandler exposes the question bank over REST.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs the question bank HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Register mounts every question bank route on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/categories", methods(map[string]http.HandlerFunc{
		http.MethodGet: h.ListCategories,
	}))
	mux.HandleFunc("/categories/{id}/questions", methods(map[string]http.HandlerFunc{
		http.MethodGet: h.CategoryQuestions,
	}))
	mux.HandleFunc("/questions", methods(map[string]http.HandlerFunc{
		http.MethodGet:  h.ListQuestions,
		http.MethodPost: h.CreateQuestion,
	}))
	mux.HandleFunc("/questions/search", methods(map[string]http.HandlerFunc{
		http.MethodPost: h.SearchQuestions,
	}))
	mux.HandleFunc("/questions/{id}", methods(map[string]http.HandlerFunc{
		http.MethodGet:    h.GetQuestion,
		http.MethodDelete: h.DeleteQuestion,
	}))
	mux.HandleFunc("/quizzes", methods(map[string]http.HandlerFunc{
		http.MethodPost: h.PlayQuiz,
	}))
}

// ListCategories handles GET /categories
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"categories":       list.Categories,
		"total_categories": list.Total,
	})
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := ParsePage(r.URL.Query().Get("page"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	result, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
		"categories":      result.Categories,
	})
}

// GetQuestion handles GET /questions/{id}
func (h *HTTPHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	q, err := h.svc.GetQuestion(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

type createQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   FlexInt `json:"category"`
	Difficulty FlexInt `json:"difficulty"`
}

// CreateQuestion handles POST /questions
func (h *HTTPHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	q, err := h.svc.CreateQuestion(r.Context(), NewQuestion{
		Text:       req.Question,
		Answer:     req.Answer,
		CategoryID: int(req.Category),
		Difficulty: int(req.Difficulty),
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.requestLogger(r).Info().Int("question_id", q.ID).Int("category", q.CategoryID).Msg("question created")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"created": q.ID,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.requestLogger(r).Info().Int("question_id", id).Msg("question deleted")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions handles POST /questions/search?page=N
func (h *HTTPHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	page, err := ParsePage(r.URL.Query().Get("page"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	result, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm, page)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// CategoryQuestions handles GET /categories/{id}/questions?page=N
func (h *HTTPHandler) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	page, err := ParsePage(r.URL.Query().Get("page"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	result, err := h.svc.QuestionsByCategory(r.Context(), id, page)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": result.CurrentCategory,
	})
}

type quizRequest struct {
	PreviousQuestions []int `json:"previous_questions"`
	QuizCategory      *struct {
		ID   FlexInt `json:"id"`
		Type string  `json:"type"`
	} `json:"quiz_category"`
}

// PlayQuiz handles POST /quizzes
func (h *HTTPHandler) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.QuizCategory == nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidPayload, "quiz_category is required")
		return
	}
	q, err := h.svc.NextQuizQuestion(r.Context(), QuizRequest{
		CategoryID:        int(req.QuizCategory.ID),
		PreviousQuestions: req.PreviousQuestions,
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

// respondServiceError maps a Service error onto the JSON error envelope.
// Causes are logged, never written to the client.
func (h *HTTPHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		message string
		field   string
		e       *Error
	)
	if errors.As(err, &e) {
		message, field = e.Message, e.Field
	}

	switch KindOf(err) {
	case KindNotFound:
		httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, message)
	case KindBadRequest:
		code := httperrors.ErrCodeInvalidRequest
		switch field {
		case "category":
			code = httperrors.ErrCodeUnknownCategory
		case "page":
			code = httperrors.ErrCodeInvalidPage
		}
		httperrors.RespondBadRequest(w, code, message)
	case KindUnprocessable:
		h.requestLogger(r).Warn().Err(err).Msg("request unprocessable")
		if field != "" {
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, message, field)
			return
		}
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeUnprocessable, message)
	default:
		h.requestLogger(r).Error().Err(err).Msg("request failed")
		httperrors.RespondInternalError(w)
	}
}

func (h *HTTPHandler) requestLogger(r *http.Request) *zerolog.Logger {
	if logger, ok := logging.Lookup(r.Context()); ok {
		logger = logger.With().Str("component", "trivia_http").Logger()
		return &logger
	}
	return &h.logger
}

// methods dispatches on r.Method and answers anything else with a JSON 405.
func methods(handlers map[string]http.HandlerFunc) http.HandlerFunc {
	allowed := make([]string, 0, len(handlers))
	for m := range handlers {
		allowed = append(allowed, m)
	}
	sort.Strings(allowed)
	allow := strings.Join(allowed, ", ")

	return func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler(w, r)
			return
		}
		w.Header().Set("Allow", allow)
		httperrors.RespondMethodNotAllowed(w)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, fmt.Sprintf("invalid id %q", raw))
		return 0, false
	}
	return int(id), true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidPayload, "Invalid JSON payload")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// FlexInt decodes a JSON number, a numeric string or null into the int32 range
// of the store's id columns. Browser clients send category ids taken from
// object keys, which are strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return fmt.Errorf("flexint: %q is not a 32-bit integer", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int32
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flexint: %s is not a 32-bit integer", data)
	}
	*f = FlexInt(n)
	return nil
}
