package messaging

// Message is one outbound platform message. Type is "text" or "audio".
type Message struct {
	Type               string `json:"type"`
	Text               string `json:"text,omitempty"`
	OriginalContentURL string `json:"originalContentUrl,omitempty"`
	Duration           int    `json:"duration,omitempty"` // milliseconds
}

// NewTextMessage builds a text message.
func NewTextMessage(text string) Message {
	return Message{Type: "text", Text: text}
}

// NewAudioMessage builds an audio message pointing at a hosted clip.
func NewAudioMessage(url string, durationMillis int) Message {
	return Message{Type: "audio", OriginalContentURL: url, Duration: durationMillis}
}

// replyRequest is the body for the reply endpoint.
type replyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

// pushRequest is the body for the push endpoint.
type pushRequest struct {
	To       string    `json:"to"`
	Messages []Message `json:"messages"`
}

// APIResponse is the platform's error envelope.
type APIResponse struct {
	Message string `json:"message"`
}
