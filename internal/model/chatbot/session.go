package chatbot

import "time"

// Session holds the extracted text of one uploaded document. Text is
// immutable after creation; only LastAccessedAt changes afterwards.
type Session struct {
	ID             string    `json:"id"`
	Text           string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
}

// Chatbot is the public result of a successful document upload.
type Chatbot struct {
	ID           string `json:"id"`
	EmbedSnippet string `json:"embedSnippet"`
}
