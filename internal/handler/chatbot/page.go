package chatbot

import (
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const chatPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>RootsChat - Powered by RootsAI</title>
    <link rel="stylesheet" href="/static/style.css">
</head>
<body>
    <div id="chat-section">
        <div id="chat-window">
            <div class="chat-bubble bot-bubble">
                Hello! I'm RootsChat. Ask me anything about this document!
            </div>
        </div>
        <div class="input-area">
            <input type="text" id="question-input" placeholder="Ask about the PDF...">
            <button id="send-question">Send</button>
        </div>
    </div>
    <script>
        window.chatbotId = {{.ID}};
    </script>
    <script src="/static/script.js"></script>
</body>
</html>
`

const notFoundPageHTML = `<h3 style="text-align:center;padding:80px;color:#999;">Chatbot not found or expired.</h3>`

var chatPageTmpl = template.Must(template.New("chat").Parse(chatPageHTML))

// HandleChatPage serves the embeddable chat page for a live session, or a
// minimal not-found page otherwise.
func (h *Handler) HandleChatPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if !h.svc.SessionExists(id) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(notFoundPageHTML))
		return
	}

	if err := chatPageTmpl.Execute(w, struct{ ID string }{ID: id}); err != nil {
		log.Printf("[handler] failed to render chat page: %v", err)
	}
}
