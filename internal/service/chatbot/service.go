// Package chatbot orchestrates document ingestion and question answering.
package chatbot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	model "github.com/rootsai/rootschat/internal/model/chatbot"
	"github.com/rootsai/rootschat/internal/service/session"
)

var (
	ErrUnsupportedFile = errors.New("only PDF files are allowed")
	ErrExtraction      = errors.New("could not extract text from document")
)

// FallbackAnswer is returned whenever the answer provider fails or times
// out. The question endpoint never surfaces provider errors to end users.
const FallbackAnswer = "Sorry, there was an error contacting the AI service. Please try again."

// EmptyQuestionAnswer is returned for blank questions without calling the
// provider.
const EmptyQuestionAnswer = "Please ask a question."

// Extractor turns uploaded document bytes into plain text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// AnswerProvider produces an answer for a system-framed prompt.
type AnswerProvider interface {
	Answer(ctx context.Context, system, prompt string) (string, error)
}

// Service validates uploads and questions and coordinates the extractor,
// the session store and the answer provider.
type Service struct {
	store     *session.Store
	extractor Extractor
	provider  AnswerProvider
	timeout   time.Duration
	baseURL   string
}

// NewService wires the coordinator. provider may be nil when the AI
// credential is absent; questions then degrade to the fallback answer.
func NewService(store *session.Store, extractor Extractor, provider AnswerProvider, timeout time.Duration, baseURL string) *Service {
	return &Service{
		store:     store,
		extractor: extractor,
		provider:  provider,
		timeout:   timeout,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// CreateChatbot extracts text from an uploaded PDF, stores it and returns
// the new chatbot id together with its embed snippet.
func (s *Service) CreateChatbot(_ context.Context, data []byte, filename string) (model.Chatbot, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return model.Chatbot{}, ErrUnsupportedFile
	}

	text, err := s.extractor.Extract(data)
	if err != nil {
		return model.Chatbot{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	id, err := s.store.Create(normalizeWhitespace(text))
	if err != nil {
		return model.Chatbot{}, err
	}

	log.Printf("[chatbot] created %s from %q", id, filename)
	return model.Chatbot{ID: id, EmbedSnippet: s.embedSnippet(id)}, nil
}

// AnswerQuestion resolves the session and asks the provider about its
// stored text. Provider failures degrade to FallbackAnswer; the only error
// this returns is session.ErrSessionNotFound.
func (s *Service) AnswerQuestion(ctx context.Context, id, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return EmptyQuestionAnswer, nil
	}

	sess, err := s.store.Get(id)
	if err != nil {
		return "", err
	}

	if s.provider == nil {
		log.Printf("[chatbot] no answer provider configured, session=%s", id)
		return FallbackAnswer, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.provider.Answer(callCtx, systemPrompt, buildPrompt(sess.Text, question))
	if err != nil {
		log.Printf("[chatbot] provider error, session=%s: %v", id, err)
		return FallbackAnswer, nil
	}

	return strings.TrimSpace(answer), nil
}

// SessionExists reports whether id refers to a live chatbot. Unlike
// AnswerQuestion it does not count as session access.
func (s *Service) SessionExists(id string) bool {
	return s.store.Peek(id)
}

// normalizeWhitespace collapses every whitespace run to a single space and
// trims the ends.
func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func (s *Service) embedSnippet(id string) string {
	return fmt.Sprintf(`<script src="%s/static/chat-widget.js"></script>
<script>
    initChatWidget(%q, %q);
</script>`, s.baseURL, id, s.baseURL)
}
