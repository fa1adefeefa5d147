package usecase

import (
	"strings"
	"testing"

	"multi-tenant-bot-relay/pkg/messaging"
)

func TestSplitReply_ExactReassembly(t *testing.T) {
	text := strings.Repeat("a", 9001)

	chunks := splitReply(text, messaging.MaxMessageLength)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > messaging.MaxMessageLength {
			t.Errorf("chunk %d is %d bytes, over the limit", i, len(chunk))
		}
	}
	if strings.Join(chunks, "") != text {
		t.Error("concatenated chunks do not reconstruct the original text")
	}
}

func TestSplitReply_ShortTextUntouched(t *testing.T) {
	chunks := splitReply("hello", 4500)
	if len(chunks) != 1 || chunks[0] != "hello" {
		t.Errorf("splitReply = %v", chunks)
	}
}

func TestSplitReply_Empty(t *testing.T) {
	chunks := splitReply("", 4500)
	if len(chunks) != 1 || chunks[0] != "" {
		t.Errorf("splitReply(\"\") = %v", chunks)
	}
}

func TestSplitReply_RuneBoundaries(t *testing.T) {
	// 3-byte runes with a limit that does not divide evenly.
	text := strings.Repeat("あ", 10) // 30 bytes
	chunks := splitReply(text, 7)    // room for two runes per chunk

	if strings.Join(chunks, "") != text {
		t.Fatal("chunks do not reassemble")
	}
	for i, chunk := range chunks {
		if !strings.HasPrefix(chunk, "あ") {
			t.Errorf("chunk %d starts mid-rune: %q", i, chunk)
		}
	}
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		in   string
		want command
	}{
		{"/reset", cmdReset},
		{"/RESET", cmdReset},
		{"  /reset  ", cmdReset},
		{"/help", cmdHelp},
		{"/Listen", cmdListen},
		{"/reset please", cmdNone}, // commands take no arguments
		{"reset", cmdNone},
		{"what is /help?", cmdNone},
		{"", cmdNone},
	}
	for _, tc := range cases {
		if got := parseCommand(tc.in); got != tc.want {
			t.Errorf("parseCommand(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWantsAudio(t *testing.T) {
	positives := []string{
		"How do you pronounce 'colonel'?",
		"what's the PRONUNCIATION of this word",
		"please read aloud the last sentence",
		"ออกเสียงคำนี้ยังไง",
		"この単語の発音は?",
	}
	for _, in := range positives {
		if !wantsAudio(in) {
			t.Errorf("wantsAudio(%q) = false, want true", in)
		}
	}

	negatives := []string{
		"tell me about pronouns", // "pronoun" is not "pronounce"
		"hello there",
		"",
	}
	for _, in := range negatives {
		if wantsAudio(in) {
			t.Errorf("wantsAudio(%q) = true, want false", in)
		}
	}
}

func TestEstimateDurationMillis(t *testing.T) {
	if got := estimateDurationMillis(""); got != 1000 {
		t.Errorf("empty text duration %d, want 1000 floor", got)
	}
	if got := estimateDurationMillis(strings.Repeat("x", 10000)); got != 60000 {
		t.Errorf("long text duration %d, want 60000 cap", got)
	}
}
