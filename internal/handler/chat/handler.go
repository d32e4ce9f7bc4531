package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	chatService "github.com/obaidAfridi75/Afridibot-repo/internal/service/chat"
	"github.com/obaidAfridi75/Afridibot-repo/pkg/utils"
)

const sessionCookie = "session_id"

// Handler exposes the chat pipeline over HTTP.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the chat handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes attaches the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Post("/chat", h.handleChat)
}

// handleChat processes one user message. Empty input is rejected before any
// external call is made; anticipated upstream flakiness never reaches here as
// an error.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "No message provided")
		return
	}

	sessionID := h.resolveSession(w, r)

	reply, err := h.chatSvc.HandleMessage(r.Context(), sessionID, message)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// resolveSession reads the opaque session token from the request cookie,
// minting one on the first message.
func (h *Handler) resolveSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *Handler) handleHome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(homePage))
}

const homePage = `<!DOCTYPE html>
<html>
<head><title>Gold Rate Chat</title></head>
<body>
<h1>Gold Rate Chat</h1>
<p>POST a JSON body {"message": "..."} to /chat to talk to the assistant.</p>
</body>
</html>
`
