// Package chat holds the handlers for the proverb endpoints: classified chat,
// the direct mood lookup from the first frontend, and per-user history.
package chat

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/GH-57/First-Project/internal/api/auth"
	"github.com/GH-57/First-Project/internal/classifier"
	"github.com/GH-57/First-Project/internal/proverb"
	"github.com/GH-57/First-Project/internal/store"
)

type ChatRequest struct {
	Prompt string `json:"prompt" example:"오늘 기분이 너무 좋아요"`
}

type RecommendRequest struct {
	Mood string `json:"mood" example:"기쁨"`
}

type HistoryItem struct {
	Prompt    string        `json:"prompt" example:"오늘 기분이 너무 좋아요"`
	Mood      string        `json:"mood" example:"기쁨"`
	Proverb   proverb.Entry `json:"proverb"`
	CreatedAt time.Time     `json:"created_at"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"server error"`
	Message string `json:"message,omitempty" example:"Classification failed"`
}

type ChatHandler struct {
	classifier classifier.Classifier
	store      store.Store
}

func NewChatHandler(cls classifier.Classifier, st store.Store) *ChatHandler {
	return &ChatHandler{
		classifier: cls,
		store:      st,
	}
}

// Chat godoc
// @Summary		Get a proverb for a free-text message
// @Description	Classify the prompt into a mood, record it in the caller's history and return the matching proverb
// @Tags			chat
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			chat	body		ChatRequest		true	"User message"
// @Success		200		{object}	proverb.Entry	"Matching proverb"
// @Failure		400		{object}	ErrorResponse	"Bad request - invalid input"
// @Failure		401		{object}	ErrorResponse	"Unauthorized - invalid or missing token"
// @Failure		500		{object}	ErrorResponse	"Classification or storage failure"
// @Router			/chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	account, err := auth.AccountFromContext(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}
	if req.Prompt == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "validation failed", "Prompt is required")
		return
	}

	mood, err := h.classifier.Classify(r.Context(), req.Prompt)
	if err != nil {
		// upstream detail stays in the server log
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Classification failed")
		return
	}

	entry := proverb.Lookup(mood)

	record := store.ChatRecord{
		ID:        uuid.New(),
		Email:     account.Email,
		Prompt:    req.Prompt,
		Mood:      mood,
		Proverb:   entry,
		CreatedAt: time.Now(),
	}
	if err := h.store.AppendChat(r.Context(), record); err != nil {
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error recording chat")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(entry)
}

// Recommend godoc
// @Summary		Get a proverb for a mood label
// @Description	Look up the proverb for one of the five mood labels; unknown labels return the fallback entry
// @Tags			chat
// @Accept			json
// @Produce		json
// @Param			mood	body		RecommendRequest	true	"Mood label"
// @Success		200		{object}	proverb.Entry		"Matching or fallback proverb"
// @Failure		400		{object}	ErrorResponse		"Bad request - invalid input"
// @Router			/recommend-proverb [post]
func (h *ChatHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid body", "Invalid JSON format")
		return
	}

	// never a hard error: unknown moods fall back to the placeholder entry
	entry := proverb.Lookup(proverb.Mood(req.Mood))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(entry)
}

// History godoc
// @Summary		Get the caller's chat history
// @Description	Return the caller's recorded chats in the order they were made
// @Tags			chat
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		HistoryItem		"Chat history, oldest first"
// @Failure		401	{object}	ErrorResponse	"Unauthorized - invalid or missing token"
// @Failure		500	{object}	ErrorResponse	"Internal server error"
// @Router			/history [get]
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	account, err := auth.AccountFromContext(r)
	if err != nil {
		h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	records, err := h.store.ChatHistory(r.Context(), account.Email)
	if err != nil {
		h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error retrieving history")
		return
	}

	items := make([]HistoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, HistoryItem{
			Prompt:    rec.Prompt,
			Mood:      string(rec.Mood),
			Proverb:   rec.Proverb,
			CreatedAt: rec.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(items)
}

func (h *ChatHandler) sendErrorResponse(w http.ResponseWriter, statusCode int, error string, message string) {
	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
