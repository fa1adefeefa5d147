package chat

// Config carries the deployment-fixed knobs of the conversation pipeline.
type Config struct {
	// PublicBaseURL is the externally reachable base of this service,
	// used to build audio blob URLs for outbound voice messages.
	PublicBaseURL string

	// TranscribeLanguage is the fixed language hint for speech-to-text.
	TranscribeLanguage string

	// SpeechLanguage is the voice language code for synthesis (e.g. en-US).
	SpeechLanguage string
}
