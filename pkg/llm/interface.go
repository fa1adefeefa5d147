package llm

import "context"

// ILLM is the interface for the completion/transcription upstream.
// Implementations are safe for concurrent use.
type ILLM interface {
	// ChatCompletion sends a completion request and returns the first choice text.
	ChatCompletion(ctx context.Context, messages []Message) (string, error)

	// Transcribe converts audio bytes to text with a language hint.
	Transcribe(ctx context.Context, audio []byte, filename, language string) (string, error)

	// Model returns the completion model in use.
	Model() string
}
