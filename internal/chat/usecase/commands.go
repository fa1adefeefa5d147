package usecase

import "strings"

// command classifies inbound text before any model call. Commands are
// intercepted so control messages never leak into the model context or the
// session history.
type command int

const (
	cmdNone command = iota
	cmdReset
	cmdHelp
	cmdListen
)

// parseCommand matches reserved commands exactly (after lowercasing and
// trimming). Commands take no arguments; "/reset now" is free-form text.
func parseCommand(text string) command {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "/reset":
		return cmdReset
	case "/help":
		return cmdHelp
	case "/listen":
		return cmdListen
	default:
		return cmdNone
	}
}

// audioKeywords is the fixed multilingual set that triggers the auto-speech
// push after a text reply: terms users write when they want to hear
// pronunciation.
var audioKeywords = []string{
	"pronounce",
	"pronunciation",
	"read aloud",
	"how does it sound",
	"ออกเสียง",     // Thai: pronounce
	"การออกเสียง", // Thai: pronunciation
	"อ่านให้ฟัง",   // Thai: read for me
	"发音",           // Chinese: pronunciation
	"読み方",          // Japanese: reading
	"発音",           // Japanese: pronunciation
}

// wantsAudio reports whether the user's original text asks for speech,
// by case-insensitive substring match against the fixed keyword set.
func wantsAudio(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range audioKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
