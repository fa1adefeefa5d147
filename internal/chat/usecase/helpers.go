package usecase

import (
	"fmt"

	"multi-tenant-bot-relay/pkg/messaging"
)

// splitReply splits text into ordered chunks of at most limit bytes.
// Content is never truncated: the concatenation of the chunks is the
// original text, byte for byte. Splits land on rune boundaries so a
// multibyte character is never cut in half.
func splitReply(text string, limit int) []string {
	if limit <= 0 || len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	var cur []rune
	curLen := 0
	for _, r := range runes {
		rl := len(string(r))
		if curLen+rl > limit {
			chunks = append(chunks, string(cur))
			cur = cur[:0]
			curLen = 0
		}
		cur = append(cur, r)
		curLen += rl
	}
	if len(cur) > 0 {
		chunks = append(chunks, string(cur))
	}
	return chunks
}

// textMessages converts text into a sequence of ≤limit text messages.
func textMessages(text string, limit int) []messaging.Message {
	chunks := splitReply(text, limit)
	msgs := make([]messaging.Message, 0, len(chunks))
	for _, chunk := range chunks {
		msgs = append(msgs, messaging.NewTextMessage(chunk))
	}
	return msgs
}

// estimateDurationMillis guesses the clip length for the platform's audio
// message metadata. Rough speech rate, clamped to [1s, 60s].
func estimateDurationMillis(text string) int {
	ms := len([]rune(text)) * 70
	if ms < 1000 {
		ms = 1000
	}
	if ms > 60000 {
		ms = 60000
	}
	return ms
}

// blobURL builds the public URL for a stored audio blob.
func (uc *implUseCase) blobURL(blobID string) string {
	return fmt.Sprintf("%s/audio/%s.mp3", uc.cfg.PublicBaseURL, blobID)
}
