package chatbot

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	chatbotService "github.com/rootsai/rootschat/internal/service/chatbot"
	"github.com/rootsai/rootschat/internal/service/session"
	"github.com/rootsai/rootschat/pkg/utils"
)

// maxUploadBytes caps multipart parsing for document uploads.
const maxUploadBytes = 10 << 20

// Handler exposes the chatbot lifecycle over HTTP.
type Handler struct {
	svc *chatbotService.Service
}

// New creates the chatbot handler.
func New(svc *chatbotService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions", h.handleCreateSession)
	r.Post("/sessions/{id}/questions", h.handleAskQuestion)
}

// handleCreateSession accepts a multipart PDF upload and provisions a
// chatbot session for its text.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	bot, err := h.svc.CreateChatbot(r.Context(), data, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, chatbotService.ErrUnsupportedFile),
			errors.Is(err, chatbotService.ErrExtraction),
			errors.Is(err, session.ErrTextTooShort):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	utils.RespondJSON(w, http.StatusCreated, bot)
}

// handleAskQuestion answers one question against a stored document. The
// question arrives as JSON or, for the embedded widget, as a form field.
func (h *Handler) handleAskQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	question, ok := readQuestion(r)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.svc.AnswerQuestion(r.Context(), id, question)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "chatbot not found or expired")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func readQuestion(r *http.Request) (string, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var payload struct {
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return "", false
		}
		return payload.Question, true
	}
	return r.FormValue("question"), true
}
