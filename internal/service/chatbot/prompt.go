package chatbot

import "fmt"

const systemPrompt = "You are an expert assistant that answers questions based ONLY on the provided PDF content. " +
	"Be accurate, concise, natural, and helpful. " +
	"If the answer is not in the PDF, respond with: " +
	"'I couldn't find that information in the PDF.'"

// buildPrompt frames the stored document text and the user question as a
// single user turn.
func buildPrompt(text, question string) string {
	return fmt.Sprintf("PDF Content:\n\"\"\"\n%s\n\"\"\"\n\nQuestion: %s", text, question)
}
