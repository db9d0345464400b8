package models

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest is the assistant completion payload. Model selects the
// provider: "gemini-*" routes to Google, everything else to OpenAI.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1"`
	UserID   string        `json:"userId"`
	Model    string        `json:"model"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Message string `json:"message"`
}
