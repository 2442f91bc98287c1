package types

// ChatMessage is the chat endpoint's wire shape: the outgoing message text
// and the assistant's reply.
type ChatMessage struct {
	Message  string `json:"message"`
	Response string `json:"response"`
}
